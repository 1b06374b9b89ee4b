package main

import (
	"fmt"
	"math/rand"
	"time"

	"domino/internal/app"
	"domino/internal/bot"
	"domino/internal/config"
	"domino/internal/domain"
	"domino/internal/render"

	"github.com/spf13/cobra"
)

var (
	seedFlag     int64
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:           "domino",
	Short:         "Two-player double-six domino simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var startCmd = &cobra.Command{
	Use:     "start NAME NAME",
	Short:   "Starts the dominoes game",
	Example: `  domino start "Alice" "Bob"`,
	RunE:    runStart,
}

func init() {
	startCmd.Flags().Int64Var(&seedFlag, "seed", 0, "shuffle seed (overrides DOMINO_SEED; 0 picks one)")
	startCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "debug|info|warn|error (overrides DOMINO_LOG_LEVEL)")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevelFlag
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if len(args) != domain.PlayersPerMatch {
		logger.Error("Two players are needed to play!", "got", len(args))
		return domain.ErrInvalidPlayerCount
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	brain, err := bot.NewBrain(cfg.Brain)
	if err != nil {
		return err
	}

	logger.Info("Starting game...", "seed", seed, "hand_size", cfg.HandSize)
	svc := app.NewService(rand.New(rand.NewSource(seed)), app.WithHandSize(cfg.HandSize), app.WithBrain(brain))
	match, events, simErr := svc.Simulate(args)

	out := cmd.OutOrStdout()
	if err := render.New(out).Render(events); err != nil {
		return err
	}
	if simErr != nil {
		logger.Error("Match aborted", "err", simErr)
		return simErr
	}
	logger.Debug("Match finished", "match_id", match.ID, "reason", match.Outcome.Reason, "rounds", match.Outcome.Rounds)

	if cfg.ReceiptsEnabled() {
		token, err := app.NewReceiptService(cfg.ReceiptSecret, cfg.ReceiptIssuer, cfg.ReceiptTTL).Sign(match)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nReceipt: %s\n", token)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		config.Exitf("Error: %v", err)
	}
}
