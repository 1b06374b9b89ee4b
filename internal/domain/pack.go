package domain

import "math/rand"

// PackSize is the number of tiles in a double-six set.
const PackSize = 28

// Pack is the draw pile. Tiles are drawn from the top, which is the end of the slice.
type Pack struct {
	tiles []Tile
}

// NewPack returns the full ordered set from <0:0> to <6:6>.
func NewPack() *Pack {
	tiles := make([]Tile, 0, PackSize)
	for i := MinPip; i <= MaxPip; i++ {
		for j := i; j <= MaxPip; j++ {
			tiles = append(tiles, NewTile(i, j))
		}
	}
	return &Pack{tiles: tiles}
}

// NewPackFrom builds a pack from an explicit tile order; the last tile is drawn first.
func NewPackFrom(tiles []Tile) *Pack {
	return &Pack{tiles: append([]Tile(nil), tiles...)}
}

// Shuffle randomizes the pack order in place.
func (p *Pack) Shuffle(rng *rand.Rand) *Pack {
	rng.Shuffle(len(p.tiles), func(i, j int) { p.tiles[i], p.tiles[j] = p.tiles[j], p.tiles[i] })
	return p
}

// Draw removes and returns the top tile. ok is false when the pack is empty.
func (p *Pack) Draw() (tile Tile, ok bool) {
	n := len(p.tiles)
	if n == 0 {
		return Tile{}, false
	}
	tile = p.tiles[n-1]
	p.tiles = p.tiles[:n-1]
	return tile, true
}

// Deal moves up to n tiles from the top of the pack into the hand and returns how many moved.
func (p *Pack) Deal(h *Hand, n int) int {
	dealt := 0
	for ; dealt < n; dealt++ {
		t, ok := p.Draw()
		if !ok {
			break
		}
		h.Add(t)
	}
	return dealt
}

// Remaining returns the number of tiles left to draw.
func (p *Pack) Remaining() int {
	return len(p.tiles)
}

// Tiles returns a copy of the pack contents, bottom first.
func (p *Pack) Tiles() []Tile {
	return append([]Tile(nil), p.tiles...)
}
