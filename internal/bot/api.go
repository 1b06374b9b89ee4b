package bot

import (
	"domino/internal/domain"
)

// Brain picks which playable tile a player lays on the board.
type Brain interface {
	// ChooseTile returns the tile to play. ok is false when nothing is playable.
	ChooseTile(playable []domain.Tile) (tile domain.Tile, ok bool)
}
