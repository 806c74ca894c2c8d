package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if c.BatchSize != 5 || len(c.Universe) != 7 {
		t.Errorf("Expected batch 5 over 7 symbols, got %d over %d", c.BatchSize, len(c.Universe))
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	t.Setenv("TRADER_LOG_DIR", "")
	t.Setenv("DESK_SEED", "")
	t.Setenv("TRADER_LOG_RETENTION_DAYS", "")
	p := writeConfig(t, `
universe: [TCS, INFY, HCLTECH]
batch_size: 2
seed: 11
simulator:
  max_move_pct: 2.5
journal:
  dir: /tmp/desk-logs
`)
	c, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(c.Universe) != 3 || c.BatchSize != 2 || c.Seed != 11 {
		t.Errorf("Unexpected overlay %+v", c)
	}
	if c.Simulator.MaxMovePct != 2.5 {
		t.Errorf("Expected max move 2.5, got %v", c.Simulator.MaxMovePct)
	}
	if c.Recommendations.EntryMin != 1000 || c.Order.DefaultQty != 1 {
		t.Error("Expected untouched sections to keep defaults")
	}
	if c.Journal.Dir != "/tmp/desk-logs" {
		t.Errorf("Expected journal dir from file, got %s", c.Journal.Dir)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRADER_LOG_DIR", "/var/desk")
	t.Setenv("DESK_SEED", "42")
	t.Setenv("TRADER_LOG_RETENTION_DAYS", "9")
	c, err := LoadConfig(writeConfig(t, "batch_size: 3\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Journal.Dir != "/var/desk" || c.Seed != 42 || c.Journal.RetentionDays != 9 {
		t.Errorf("Expected env overrides, got dir=%s seed=%d retention=%d", c.Journal.Dir, c.Seed, c.Journal.RetentionDays)
	}

	t.Setenv("DESK_SEED", "abc")
	if _, err := LoadConfig(writeConfig(t, "batch_size: 3\n")); err == nil {
		t.Error("Expected bad DESK_SEED to fail")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty universe", "universe: []\n", "universe cannot be empty"},
		{"bad batch", "batch_size: 0\n", "batch_size"},
		{"batch over universe", "universe: [TCS, INFY, TCS, \" \"]\nbatch_size: 3\n", "exceeds the 2 distinct universe symbols"},
		{"blank universe", "universe: [\"\", \" \"]\n", "universe cannot be empty"},
		{"bad target", "recommendations:\n  target_min: 0.9\n", "recommendations"},
		{"bad move", "simulator:\n  max_move_pct: 0\n", "simulator"},
		{"bad qty", "order:\n  default_qty: 0\n", "default_qty"},
		{"bad risk", "risk:\n  per_trade_risk_pct: 120\n", "per_trade_risk_pct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got %v", err)
	}
	if c.BatchSize != 5 {
		t.Errorf("Expected default batch size, got %d", c.BatchSize)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected LoadConfig to surface a missing file, got %v", err)
	}
}
