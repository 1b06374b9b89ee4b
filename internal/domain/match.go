package domain

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseNotStarted is the state before tiles are dealt.
	PhaseNotStarted Phase = "not_started"
	// PhaseRunning indicates players are taking turns.
	PhaseRunning Phase = "running"
	// PhaseFinished indicates the match reached a terminal condition.
	PhaseFinished Phase = "finished"
)

// EndReason tells why a finished match stopped.
type EndReason string

const (
	// EndWinnerByEmptyHand is set when the acting player played their last tile.
	EndWinnerByEmptyHand EndReason = "winner_by_empty_hand"
	// EndBlocked is set when the pack is empty and the acting player could not play.
	EndBlocked EndReason = "blocked"
)

// PlayersPerMatch is the only supported table size.
const PlayersPerMatch = 2

// Player holds the domain state for one participant.
type Player struct {
	Name string
	Hand *Hand
}

// NewPlayer returns a player with an empty hand.
func NewPlayer(name string) *Player {
	return &Player{Name: name, Hand: NewHand()}
}

// HandCount is the number of tiles a player still holds.
type HandCount struct {
	Player string `json:"player"`
	Tiles  int    `json:"tiles"`
}

// Outcome is filled in once the match is finished.
type Outcome struct {
	Reason    EndReason
	Winner    string // empty when blocked
	HandSizes []HandCount
	Rounds    int
}

// Match captures the state of a single game. Every match owns its board, pack and
// players; nothing is shared between matches.
type Match struct {
	ID      string
	Phase   Phase
	Players []*Player // seat order
	Current int       // seat of the player who acted last
	Board   *Board
	Pack    *Pack
	Round   int
	Outcome *Outcome
}

// NextPlayer advances the turn by one seat and returns the new acting player.
func (m *Match) NextPlayer() *Player {
	m.Current = (m.Current + 1) % len(m.Players)
	return m.Players[m.Current]
}

// CurrentPlayer returns the player who acted last.
func (m *Match) CurrentPlayer() *Player {
	return m.Players[m.Current]
}

// HandSizes reports tiles left per player in seat order.
func (m *Match) HandSizes() []HandCount {
	out := make([]HandCount, 0, len(m.Players))
	for _, p := range m.Players {
		out = append(out, HandCount{Player: p.Name, Tiles: p.Hand.Size()})
	}
	return out
}

// Finished reports whether the match reached a terminal condition.
func (m *Match) Finished() bool {
	return m.Phase == PhaseFinished
}
