// Package render turns match events into the human-readable match history.
package render

import (
	"fmt"
	"io"
	"strings"

	"domino/internal/app"
	"domino/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// Renderer writes one block of text per event.
type Renderer struct {
	out      io.Writer
	info     lipgloss.Style
	comment  lipgloss.Style
	question lipgloss.Style
	alert    lipgloss.Style
}

// New returns a Renderer writing to w. Styling is dropped when w is not a terminal.
func New(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		out:      w,
		info:     lr.NewStyle().Foreground(lipgloss.Color("2")),
		comment:  lr.NewStyle().Foreground(lipgloss.Color("3")),
		question: lr.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")),
		alert:    lr.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
	}
}

// Render writes every event in order.
func (r *Renderer) Render(events []app.Event) error {
	for _, ev := range events {
		if err := r.RenderEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// RenderEvent writes a single event.
func (r *Renderer) RenderEvent(ev app.Event) error {
	var lines []string
	switch p := ev.Payload.(type) {
	case app.MatchStartedPayload:
		lines = append(lines,
			r.info.Render(fmt.Sprintf("Match %s: %s", p.MatchID, strings.Join(p.Players, " vs "))),
			"Players are now playing in auto-mode - may the best bot win!",
		)
	case app.HandDealtPayload:
		lines = append(lines, r.info.Render(fmt.Sprintf("%s gets the following tiles: %s", ev.Player, domain.FormatTiles(p.Tiles))))
	case app.OpeningMovePayload:
		lines = append(lines, "", r.alert.Render(fmt.Sprintf("Round #%d: %s starts the game with %s", ev.Round, ev.Player, p.Tile)))
	case app.TilePlayedPayload:
		lines = append(lines, r.roundHeader(ev, p.Hand)...)
		lines = append(lines,
			"Playable: "+domain.FormatTiles(p.Playable),
			fmt.Sprintf("%s plays %s to connect with %s on the %s", ev.Player, p.Tile, r.comment.Render(p.ConnectedTo.String()), p.Side),
		)
		lines = append(lines, r.tableFooter(ev)...)
	case app.TileDrawnPayload:
		lines = append(lines, r.roundHeader(ev, p.Hand)...)
		lines = append(lines, fmt.Sprintf("%s can't play - drawing new domino tile %s.", ev.Player, p.Tile))
		lines = append(lines, r.tableFooter(ev)...)
	case app.TurnPassedPayload:
		lines = append(lines, r.roundHeader(ev, p.Hand)...)
		lines = append(lines, fmt.Sprintf("%s can't play and the pack is empty - passing.", ev.Player))
		lines = append(lines, r.tableFooter(ev)...)
	case app.MatchEndedPayload:
		lines = append(lines, "")
		if p.Reason == domain.EndWinnerByEmptyHand {
			lines = append(lines, r.alert.Render(fmt.Sprintf("%s wins in %d moves!", p.Winner, p.Rounds)))
			break
		}
		lines = append(lines, r.alert.Render("Game ends with no winner:"))
		for _, hc := range p.HandSizes {
			lines = append(lines, r.info.Render(fmt.Sprintf("%s has %d dominoes left.", hc.Player, hc.Tiles)))
		}
	default:
		return fmt.Errorf("render: unknown payload %T for %s", ev.Payload, ev.Kind)
	}

	_, err := io.WriteString(r.out, strings.Join(lines, "\n")+"\n")
	return err
}

func (r *Renderer) roundHeader(ev app.Event, hand []domain.Tile) []string {
	return []string{
		"",
		r.question.Render(fmt.Sprintf("Round %d: %s", ev.Round, ev.Player)),
		r.info.Render("Tiles in hand: " + domain.FormatTiles(hand)),
	}
}

func (r *Renderer) tableFooter(ev app.Event) []string {
	return []string{
		r.comment.Render("Board is now: " + domain.FormatTiles(ev.Board)),
		fmt.Sprintf("Pack size: %d", ev.PackSize),
	}
}
