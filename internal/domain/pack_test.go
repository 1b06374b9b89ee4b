package domain

import (
	"math/rand"
	"testing"
)

func TestNewPackIsComplete(t *testing.T) {
	pack := NewPack()
	if pack.Remaining() != PackSize {
		t.Fatalf("pack size = %d, want %d", pack.Remaining(), PackSize)
	}

	seen := make(map[Tile]bool)
	for _, tile := range pack.Tiles() {
		if !tile.Valid() || tile.A > tile.B || tile.Flipped {
			t.Fatalf("unexpected tile %+v", tile)
		}
		if seen[tile] {
			t.Fatalf("duplicate tile %s", tile)
		}
		seen[tile] = true
	}
	for i := MinPip; i <= MaxPip; i++ {
		for j := i; j <= MaxPip; j++ {
			if !seen[NewTile(i, j)] {
				t.Fatalf("missing tile <%d:%d>", i, j)
			}
		}
	}
}

func TestPackShuffleKeepsTiles(t *testing.T) {
	pack := NewPack().Shuffle(rand.New(rand.NewSource(5)))
	seen := make(map[Tile]bool)
	for _, tile := range pack.Tiles() {
		seen[tile] = true
	}
	if len(seen) != PackSize {
		t.Fatalf("unique tiles after shuffle = %d, want %d", len(seen), PackSize)
	}
}

func TestPackDrawAndDeal(t *testing.T) {
	pack := NewPackFrom([]Tile{NewTile(0, 0), NewTile(1, 1), NewTile(2, 2)})

	tile, ok := pack.Draw()
	if !ok || tile != NewTile(2, 2) {
		t.Fatalf("Draw() = %s, %v; want top tile <2:2>", tile, ok)
	}

	hand := NewHand()
	if n := pack.Deal(hand, 5); n != 2 {
		t.Fatalf("Deal() moved %d tiles, want 2", n)
	}
	if hand.String() != "<1:1> <0:0>" {
		t.Fatalf("hand = %s", hand)
	}
	if pack.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", pack.Remaining())
	}
	if _, ok := pack.Draw(); ok {
		t.Fatalf("Draw() on empty pack should report !ok")
	}
}
