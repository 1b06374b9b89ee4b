package domain

import (
	"fmt"

	"github.com/gammazero/deque"
)

// Side names the board end a tile was attached to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Placement describes where MatchTile attached a tile.
type Placement struct {
	Tile        Tile // the tile as laid, after any flip
	ConnectedTo Tile // the end-most tile it touches
	Side        Side
}

// Board is the chain of tiles on the table. For every adjacent pair the touching
// halves are equal, and the cached ends always reflect the current chain.
type Board struct {
	tiles       deque.Deque[Tile]
	left, right int
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Place lays the opening tile on an empty board.
func (b *Board) Place(t Tile) error {
	if b.tiles.Len() != 0 {
		return fmt.Errorf("place %s on a board of %d tiles: %w", t, b.tiles.Len(), ErrInvariantViolation)
	}
	b.AppendLeft(t)
	return nil
}

// Ends returns the open values at the left and right extremities.
// Both are zero on an empty board; callers must not rely on that.
func (b *Board) Ends() (left, right int) {
	return b.left, b.right
}

// AppendLeft inserts t at the left end.
func (b *Board) AppendLeft(t Tile) {
	b.tiles.PushFront(t)
	b.refreshEnds()
}

// AppendRight inserts t at the right end.
func (b *Board) AppendRight(t Tile) {
	b.tiles.PushBack(t)
	b.refreshEnds()
}

// MatchTile attaches a tile the caller knows to be playable. The right end is tried
// before the left one; if neither fits the tile is flipped once and tried again.
func (b *Board) MatchTile(t Tile) (Placement, error) {
	if b.tiles.Len() == 0 {
		return Placement{}, fmt.Errorf("match %s on empty board: %w", t, ErrInvariantViolation)
	}
	for attempt := 0; attempt < 2; attempt++ {
		if t.A == b.right {
			p := Placement{Tile: t, ConnectedTo: b.tiles.Back(), Side: SideRight}
			b.AppendRight(t)
			return p, nil
		}
		if t.B == b.left {
			p := Placement{Tile: t, ConnectedTo: b.tiles.Front(), Side: SideLeft}
			b.AppendLeft(t)
			return p, nil
		}
		t.Flip()
	}
	return Placement{}, fmt.Errorf("match %s against ends (%d,%d): %w", t, b.left, b.right, ErrInvariantViolation)
}

// Len returns the number of tiles on the board.
func (b *Board) Len() int {
	return b.tiles.Len()
}

// Tiles returns the chain from left to right.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, b.tiles.Len())
	for i := range out {
		out[i] = b.tiles.At(i)
	}
	return out
}

func (b *Board) String() string {
	return FormatTiles(b.Tiles())
}

func (b *Board) refreshEnds() {
	b.left = b.tiles.Front().A
	b.right = b.tiles.Back().B
}
