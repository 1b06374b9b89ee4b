package domain

import "fmt"

// Hand is the ordered set of tiles held by one player.
type Hand struct {
	tiles []Tile
}

// NewHand returns a hand holding the given tiles in order.
func NewHand(tiles ...Tile) *Hand {
	return &Hand{tiles: append([]Tile(nil), tiles...)}
}

// Add appends a tile to the end of the hand.
func (h *Hand) Add(t Tile) {
	h.tiles = append(h.tiles, t)
}

// Remove takes out the first tile equal to t.
func (h *Hand) Remove(t Tile) error {
	for i := range h.tiles {
		if h.tiles[i] == t {
			h.tiles = append(h.tiles[:i], h.tiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %s: %w", t, ErrTileNotFound)
}

// RemoveAt takes out the tile at position i and returns it.
func (h *Hand) RemoveAt(i int) (Tile, error) {
	if i < 0 || i >= len(h.tiles) {
		return Tile{}, fmt.Errorf("remove at %d of %d: %w", i, len(h.tiles), ErrIndexOutOfRange)
	}
	t := h.tiles[i]
	h.tiles = append(h.tiles[:i], h.tiles[i+1:]...)
	return t, nil
}

// Playable returns, in hand order, every tile with a half equal to either end.
// Tiles are returned as they lie in the hand; orientation is decided by the board.
func (h *Hand) Playable(left, right int) []Tile {
	var out []Tile
	for _, t := range h.tiles {
		if t.Touches(left, right) {
			out = append(out, t)
		}
	}
	return out
}

// Size returns the number of tiles held.
func (h *Hand) Size() int {
	return len(h.tiles)
}

// Tiles returns a copy of the hand in order.
func (h *Hand) Tiles() []Tile {
	return append([]Tile(nil), h.tiles...)
}

func (h *Hand) String() string {
	return FormatTiles(h.tiles)
}
