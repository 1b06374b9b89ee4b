package domain

import "fmt"

const (
	// MinPip is the lowest value a tile half can carry.
	MinPip = 0
	// MaxPip is the highest value a tile half can carry (double-six set).
	MaxPip = 6
)

// Tile is a single domino. A is the left half and B the right half as the tile
// currently lies; Flipped records whether it has been turned over.
type Tile struct {
	A       int  `json:"a"`
	B       int  `json:"b"`
	Flipped bool `json:"flipped,omitempty"`
}

// NewTile returns an unflipped tile with the given halves.
func NewTile(a, b int) Tile {
	return Tile{A: a, B: b}
}

// Flip swaps the halves and toggles the orientation flag.
func (t *Tile) Flip() {
	t.A, t.B = t.B, t.A
	t.Flipped = !t.Flipped
}

// Touches reports whether either half equals either board end.
func (t Tile) Touches(left, right int) bool {
	return t.A == left || t.A == right || t.B == left || t.B == right
}

// Valid reports whether both halves are within the double-six range.
func (t Tile) Valid() bool {
	return t.A >= MinPip && t.A <= MaxPip && t.B >= MinPip && t.B <= MaxPip
}

// String renders the tile as <A:B>.
func (t Tile) String() string {
	return fmt.Sprintf("<%d:%d>", t.A, t.B)
}

// FormatTiles joins tiles with single spaces.
func FormatTiles(tiles []Tile) string {
	out := make([]byte, 0, len(tiles)*6)
	for i, t := range tiles {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, t.String()...)
	}
	return string(out)
}
