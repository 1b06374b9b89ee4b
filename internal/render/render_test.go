package render

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"domino/internal/app"
	"domino/internal/domain"
)

func TestRenderEvents(t *testing.T) {
	events := []app.Event{
		{Round: 1, Kind: app.EventOpeningMove, Player: "Alice", Payload: app.OpeningMovePayload{Tile: domain.NewTile(3, 3)}},
		{
			Round: 2, Kind: app.EventTilePlayed, Player: "Bob",
			Payload: app.TilePlayedPayload{
				Tile:        domain.NewTile(3, 5),
				ConnectedTo: domain.NewTile(3, 3),
				Side:        domain.SideRight,
				Playable:    []domain.Tile{domain.NewTile(3, 5)},
				Hand:        []domain.Tile{domain.NewTile(3, 5), domain.NewTile(0, 0)},
			},
			Board:    []domain.Tile{domain.NewTile(3, 3), domain.NewTile(3, 5)},
			PackSize: 14,
		},
		{
			Round: 9, Kind: app.EventMatchEnded,
			Payload: app.MatchEndedPayload{
				Reason:    domain.EndBlocked,
				HandSizes: []domain.HandCount{{Player: "Alice", Tiles: 2}, {Player: "Bob", Tiles: 3}},
				Rounds:    9,
			},
		},
	}

	var buf bytes.Buffer
	if err := New(&buf).Render(events); err != nil {
		t.Fatalf("render error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Round #1: Alice starts the game with <3:3>",
		"Round 2: Bob",
		"Tiles in hand: <3:5> <0:0>",
		"Bob plays <3:5> to connect with",
		"Board is now: <3:3> <3:5>",
		"Pack size: 14",
		"Game ends with no winner:",
		"Bob has 3 dominoes left.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSimulatedMatch(t *testing.T) {
	match, events, err := app.NewService(rand.New(rand.NewSource(4))).Simulate([]string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("simulate error: %v", err)
	}
	var buf bytes.Buffer
	if err := New(&buf).Render(events); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if match.Outcome.Reason == domain.EndWinnerByEmptyHand && !strings.Contains(buf.String(), match.Outcome.Winner+" wins in") {
		t.Fatalf("winner line missing:\n%s", buf.String())
	}
}

func TestRenderUnknownPayload(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).RenderEvent(app.Event{Kind: "mystery", Payload: 42}); err == nil {
		t.Fatalf("expected error for unknown payload")
	}
}
