package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"domino/internal/app"
	"domino/internal/bot"
	"domino/internal/config"
	"domino/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
)

type simulateRequest struct {
	Players []string `json:"players"`
	Seed    *int64   `json:"seed,omitempty"`
}

// rpcSimulateMatch runs a complete two-player match between bots and returns its history.
// Every call owns its own match; nothing is kept once the response is written.
//
// Payload: {"players": ["Alice", "Bob"], "seed": 42}
// Returns: JSON with match_id, seed, outcome, events and, when configured, a signed receipt.
func rpcSimulateMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	envVars, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.FromMap(envVars)
	if err != nil {
		logger.Error("rpcSimulateMatch: bad module config: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	var req simulateRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	if len(req.Players) != domain.PlayersPerMatch {
		return "", runtime.NewError("Two players are needed to play", codeInvalidArgument)
	}

	seed := cfg.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	brain, err := bot.NewBrain(cfg.Brain)
	if err != nil {
		logger.Error("rpcSimulateMatch: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	svc := app.NewService(rand.New(rand.NewSource(seed)), app.WithHandSize(cfg.HandSize), app.WithBrain(brain))
	match, events, err := svc.Simulate(req.Players)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPlayerCount) {
			return "", runtime.NewError("Two players are needed to play", codeInvalidArgument)
		}
		logger.Error("rpcSimulateMatch: simulation failed: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	receipt := ""
	if cfg.ReceiptsEnabled() {
		receipt, err = app.NewReceiptService(cfg.ReceiptSecret, cfg.ReceiptIssuer, cfg.ReceiptTTL).Sign(match)
		if err != nil {
			logger.Error("rpcSimulateMatch: failed to sign receipt: %v", err)
			return "", runtime.NewError("Internal error", codeInternal)
		}
	}

	resp, err := simulationToStruct(match, events, seed, receipt)
	if err != nil {
		logger.Error("rpcSimulateMatch: failed to build response: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	out, err := protojson.Marshal(resp)
	if err != nil {
		logger.Error("rpcSimulateMatch: failed to marshal response: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	logger.WithFields(map[string]interface{}{
		"match_id": match.ID,
		"reason":   string(match.Outcome.Reason),
		"rounds":   match.Outcome.Rounds,
	}).Info("rpcSimulateMatch: match finished")
	return string(out), nil
}
