package bot

import "domino/internal/domain"

// FirstPlayable plays the first matching tile in hand order.
type FirstPlayable struct{}

func (FirstPlayable) ChooseTile(playable []domain.Tile) (domain.Tile, bool) {
	if len(playable) == 0 {
		return domain.Tile{}, false
	}
	return playable[0], true
}
