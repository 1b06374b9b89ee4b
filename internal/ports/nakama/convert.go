package nakama

import (
	"fmt"

	"domino/internal/app"
	"domino/internal/domain"

	"google.golang.org/protobuf/types/known/structpb"
)

func simulationToStruct(match *domain.Match, events []app.Event, seed int64, receipt string) (*structpb.Struct, error) {
	evs := make([]interface{}, 0, len(events))
	for _, ev := range events {
		m, err := eventToMap(ev)
		if err != nil {
			return nil, err
		}
		evs = append(evs, m)
	}

	players := make([]interface{}, 0, len(match.Players))
	for _, p := range match.Players {
		players = append(players, p.Name)
	}

	fields := map[string]interface{}{
		"match_id": match.ID,
		"seed":     fmt.Sprint(seed), // int64 does not survive a JSON number
		"players":  players,
		"outcome":  outcomeToMap(match.Outcome),
		"events":   evs,
	}
	if receipt != "" {
		fields["receipt"] = receipt
	}
	return structpb.NewStruct(fields)
}

func eventToMap(ev app.Event) (map[string]interface{}, error) {
	m := map[string]interface{}{
		"round":     ev.Round,
		"kind":      string(ev.Kind),
		"board":     tilesToList(ev.Board),
		"pack_size": ev.PackSize,
	}
	if ev.Player != "" {
		m["player"] = ev.Player
	}

	switch p := ev.Payload.(type) {
	case app.MatchStartedPayload:
		names := make([]interface{}, 0, len(p.Players))
		for _, n := range p.Players {
			names = append(names, n)
		}
		m["players"] = names
	case app.HandDealtPayload:
		m["tiles"] = tilesToList(p.Tiles)
	case app.OpeningMovePayload:
		m["tile"] = tileToMap(p.Tile)
	case app.TilePlayedPayload:
		m["tile"] = tileToMap(p.Tile)
		m["connected_to"] = tileToMap(p.ConnectedTo)
		m["side"] = string(p.Side)
		m["playable"] = tilesToList(p.Playable)
	case app.TileDrawnPayload:
		m["tile"] = tileToMap(p.Tile)
	case app.TurnPassedPayload:
	case app.MatchEndedPayload:
		m["outcome"] = outcomeToMap(&domain.Outcome{
			Reason:    p.Reason,
			Winner:    p.Winner,
			HandSizes: p.HandSizes,
			Rounds:    p.Rounds,
		})
	default:
		return nil, fmt.Errorf("unknown payload %T for %s", ev.Payload, ev.Kind)
	}
	return m, nil
}

func outcomeToMap(o *domain.Outcome) map[string]interface{} {
	if o == nil {
		return nil
	}
	hands := make([]interface{}, 0, len(o.HandSizes))
	for _, hc := range o.HandSizes {
		hands = append(hands, map[string]interface{}{"player": hc.Player, "tiles": hc.Tiles})
	}
	return map[string]interface{}{
		"reason":     string(o.Reason),
		"winner":     o.Winner,
		"rounds":     o.Rounds,
		"hand_sizes": hands,
	}
}

func tileToMap(t domain.Tile) map[string]interface{} {
	return map[string]interface{}{"a": t.A, "b": t.B}
}

func tilesToList(tiles []domain.Tile) []interface{} {
	out := make([]interface{}, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, tileToMap(t))
	}
	return out
}
