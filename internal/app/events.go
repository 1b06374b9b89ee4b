package app

import "domino/internal/domain"

// EventKind identifies emitted match events.
type EventKind string

const (
	EventMatchStarted EventKind = "match_started"
	EventHandDealt    EventKind = "hand_dealt"
	EventOpeningMove  EventKind = "opening_move"
	EventTilePlayed   EventKind = "tile_played"
	EventTileDrawn    EventKind = "tile_drawn"
	EventTurnPassed   EventKind = "turn_passed"
	EventMatchEnded   EventKind = "match_ended"
)

// Event is one fact about a round. Board and PackSize describe the table right
// after the event was applied.
type Event struct {
	Round    int
	Kind     EventKind
	Player   string // acting player; empty for match-level events
	Payload  any
	Board    []domain.Tile
	PackSize int
}

type MatchStartedPayload struct {
	MatchID string
	Players []string
}

type HandDealtPayload struct {
	Tiles []domain.Tile
}

type OpeningMovePayload struct {
	Tile domain.Tile
}

type TilePlayedPayload struct {
	Tile        domain.Tile
	ConnectedTo domain.Tile
	Side        domain.Side
	Playable    []domain.Tile
	Hand        []domain.Tile // hand before the play
}

type TileDrawnPayload struct {
	Tile domain.Tile
	Hand []domain.Tile // hand before the draw
}

type TurnPassedPayload struct {
	Hand []domain.Tile
}

type MatchEndedPayload struct {
	Reason    domain.EndReason
	Winner    string
	HandSizes []domain.HandCount
	Rounds    int
}
