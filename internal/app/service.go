package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"domino/internal/bot"
	"domino/internal/domain"

	"github.com/google/uuid"
)

// DefaultHandSize is the number of tiles dealt to each player.
const DefaultHandSize = 7

var (
	ErrNotRunning  = errors.New("match not in running phase")
	ErrBadHandSize = errors.New("hand size does not fit the pack")
)

// Service runs domino matches. It holds no match state of its own, so one
// Service can drive any number of independent matches, one call at a time.
type Service struct {
	rng      *rand.Rand
	handSize int
	brain    bot.Brain
	newID    func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithHandSize overrides the number of tiles dealt per player.
func WithHandSize(n int) Option {
	return func(s *Service) { s.handSize = n }
}

// WithBrain overrides the tile-selection policy.
func WithBrain(b bot.Brain) Option {
	return func(s *Service) { s.brain = b }
}

// WithIDGenerator overrides how match ids are produced.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, opts ...Option) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Service{
		rng:      rng,
		handSize: DefaultHandSize,
		brain:    bot.FirstPlayable{},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate starts a match for the given players and runs it to the end.
func (s *Service) Simulate(names []string) (*domain.Match, []Event, error) {
	match, events, err := s.StartMatch(names)
	if err != nil {
		return nil, nil, err
	}
	rest, err := s.Run(match)
	return match, append(events, rest...), err
}

// StartMatch builds and shuffles a pack, seats the players, deals their hands and
// lays the opening tile of a random player.
func (s *Service) StartMatch(names []string) (*domain.Match, []Event, error) {
	if len(names) != domain.PlayersPerMatch {
		return nil, nil, fmt.Errorf("start match with %d players: %w", len(names), domain.ErrInvalidPlayerCount)
	}
	if s.handSize < 1 || s.handSize*domain.PlayersPerMatch > domain.PackSize {
		return nil, nil, fmt.Errorf("deal %d tiles each: %w", s.handSize, ErrBadHandSize)
	}

	match := &domain.Match{
		ID:    s.newID(),
		Phase: domain.PhaseNotStarted,
		Board: domain.NewBoard(),
		Pack:  domain.NewPack().Shuffle(s.rng),
	}

	events := make([]Event, 0, len(names)+2)
	events = append(events, s.event(match, EventMatchStarted, "", MatchStartedPayload{
		MatchID: match.ID,
		Players: append([]string(nil), names...),
	}))

	for _, name := range names {
		player := domain.NewPlayer(name)
		match.Pack.Deal(player.Hand, s.handSize)
		match.Players = append(match.Players, player)
		events = append(events, s.event(match, EventHandDealt, name, HandDealtPayload{Tiles: player.Hand.Tiles()}))
	}

	opening, err := s.Open(match)
	events = append(events, opening...)
	if err != nil {
		return nil, events, err
	}
	return match, events, nil
}

// Open lays a random tile from a random player's hand on the empty board and
// puts the match in the running phase. The opener counts as having acted in round 1.
func (s *Service) Open(match *domain.Match) ([]Event, error) {
	if len(match.Players) != domain.PlayersPerMatch {
		return nil, fmt.Errorf("open match with %d players: %w", len(match.Players), domain.ErrInvalidPlayerCount)
	}

	match.Current = s.rng.Intn(len(match.Players))
	opener := match.CurrentPlayer()
	if opener.Hand.Size() == 0 {
		return nil, fmt.Errorf("open match: %s holds no tiles: %w", opener.Name, domain.ErrIndexOutOfRange)
	}

	tile, err := opener.Hand.RemoveAt(s.rng.Intn(opener.Hand.Size()))
	if err != nil {
		return nil, err
	}
	if err := match.Board.Place(tile); err != nil {
		return nil, err
	}

	match.Round = 1
	match.Phase = domain.PhaseRunning
	events := []Event{s.event(match, EventOpeningMove, opener.Name, OpeningMovePayload{Tile: tile})}

	if opener.Hand.Size() == 0 {
		events = append(events, s.finish(match, domain.EndWinnerByEmptyHand, opener.Name))
	}
	return events, nil
}

// Run plays rounds until the match finishes.
func (s *Service) Run(match *domain.Match) ([]Event, error) {
	var events []Event
	for !match.Finished() {
		evs, err := s.PlayRound(match)
		events = append(events, evs...)
		if err != nil {
			return events, err
		}
	}
	return events, nil
}

// PlayRound hands the turn to the next player, who plays the first tile matching the
// board ends or, failing that, draws one tile. A player facing an empty pack passes.
// The round ends the match when the acting player empties their hand, or when the
// pack is empty and they could not play.
func (s *Service) PlayRound(match *domain.Match) ([]Event, error) {
	if match.Phase != domain.PhaseRunning {
		return nil, ErrNotRunning
	}
	if len(match.Players) != domain.PlayersPerMatch {
		return nil, fmt.Errorf("play round with %d players: %w", len(match.Players), domain.ErrInvalidPlayerCount)
	}

	match.Round++
	player := match.NextPlayer()
	left, right := match.Board.Ends()
	hand := player.Hand.Tiles()
	playable := player.Hand.Playable(left, right)

	var events []Event
	if tile, ok := s.brain.ChooseTile(playable); ok {
		if err := player.Hand.Remove(tile); err != nil {
			return nil, err
		}
		placement, err := match.Board.MatchTile(tile)
		if err != nil {
			return nil, err
		}
		events = append(events, s.event(match, EventTilePlayed, player.Name, TilePlayedPayload{
			Tile:        placement.Tile,
			ConnectedTo: placement.ConnectedTo,
			Side:        placement.Side,
			Playable:    playable,
			Hand:        hand,
		}))
		if player.Hand.Size() == 0 {
			events = append(events, s.finish(match, domain.EndWinnerByEmptyHand, player.Name))
		}
		return events, nil
	}

	if tile, ok := match.Pack.Draw(); ok {
		player.Hand.Add(tile)
		events = append(events, s.event(match, EventTileDrawn, player.Name, TileDrawnPayload{Tile: tile, Hand: hand}))
		return events, nil
	}

	events = append(events, s.event(match, EventTurnPassed, player.Name, TurnPassedPayload{Hand: hand}))
	events = append(events, s.finish(match, domain.EndBlocked, ""))
	return events, nil
}

func (s *Service) finish(match *domain.Match, reason domain.EndReason, winner string) Event {
	match.Phase = domain.PhaseFinished
	match.Outcome = &domain.Outcome{
		Reason:    reason,
		Winner:    winner,
		HandSizes: match.HandSizes(),
		Rounds:    match.Round,
	}
	return s.event(match, EventMatchEnded, "", MatchEndedPayload{
		Reason:    reason,
		Winner:    winner,
		HandSizes: match.Outcome.HandSizes,
		Rounds:    match.Round,
	})
}

func (s *Service) event(match *domain.Match, kind EventKind, player string, payload any) Event {
	return Event{
		Round:    match.Round,
		Kind:     kind,
		Player:   player,
		Payload:  payload,
		Board:    match.Board.Tiles(),
		PackSize: match.Pack.Remaining(),
	}
}
