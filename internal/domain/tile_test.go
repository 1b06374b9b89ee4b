package domain

import "testing"

func TestTileFlipTwiceRestores(t *testing.T) {
	tile := NewTile(2, 5)
	tile.Flip()
	if tile.A != 5 || tile.B != 2 || !tile.Flipped {
		t.Fatalf("after one flip = %+v, want {5 2 true}", tile)
	}
	tile.Flip()
	if tile != NewTile(2, 5) {
		t.Fatalf("after two flips = %+v, want original", tile)
	}
}

func TestTileTouches(t *testing.T) {
	tests := []struct {
		tile        Tile
		left, right int
		want        bool
	}{
		{NewTile(3, 5), 3, 3, true},
		{NewTile(3, 5), 1, 5, true},
		{NewTile(3, 5), 5, 0, true},
		{NewTile(3, 5), 1, 2, false},
		{NewTile(6, 6), 6, 0, true},
	}
	for _, tt := range tests {
		if got := tt.tile.Touches(tt.left, tt.right); got != tt.want {
			t.Errorf("%s.Touches(%d,%d) = %v, want %v", tt.tile, tt.left, tt.right, got, tt.want)
		}
	}
}

func TestFormatTiles(t *testing.T) {
	got := FormatTiles([]Tile{NewTile(0, 1), NewTile(1, 6)})
	if got != "<0:1> <1:6>" {
		t.Fatalf("FormatTiles() = %q", got)
	}
	if FormatTiles(nil) != "" {
		t.Fatalf("FormatTiles(nil) should be empty")
	}
}
