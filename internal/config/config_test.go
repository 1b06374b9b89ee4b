package config

import (
	"errors"
	"testing"
	"time"
)

func TestFromMapDefaults(t *testing.T) {
	cfg, err := FromMap(nil)
	if err != nil {
		t.Fatalf("FromMap error: %v", err)
	}
	if cfg.HandSize != 7 || cfg.LogLevel != "info" || cfg.ReceiptIssuer != "domino" || cfg.ReceiptTTL != time.Hour {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Seed != 0 || cfg.ReceiptsEnabled() {
		t.Fatalf("seed and receipts should be unset: %+v", cfg)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"DOMINO_SEED":           "42",
		"DOMINO_HAND_SIZE":      "5",
		"DOMINO_LOG_LEVEL":      "debug",
		"DOMINO_RECEIPT_SECRET": "s3cret",
		"DOMINO_RECEIPT_TTL":    "15m",
		"HAND_SIZE":             "9",
	})
	if err != nil {
		t.Fatalf("FromMap error: %v", err)
	}
	if cfg.Seed != 42 || cfg.HandSize != 5 || cfg.LogLevel != "debug" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.ReceiptsEnabled() || cfg.ReceiptTTL != 15*time.Minute {
		t.Fatalf("receipt settings not applied: %+v", cfg)
	}
}

func TestFromMapValidation(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "zero hand", vars: map[string]string{"DOMINO_HAND_SIZE": "0"}},
		{name: "hands exceed pack", vars: map[string]string{"DOMINO_HAND_SIZE": "15"}},
		{name: "bad level", vars: map[string]string{"DOMINO_LOG_LEVEL": "loud"}},
		{name: "negative ttl", vars: map[string]string{"DOMINO_RECEIPT_TTL": "-1m"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromMap(tt.vars); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("FromMap error = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if _, err := FromMap(map[string]string{"DOMINO_HAND_SIZE": "seven"}); err == nil {
		t.Fatalf("expected parse error")
	}
}
