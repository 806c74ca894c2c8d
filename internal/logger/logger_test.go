package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"ERROR": slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestJSONOutputAndLevels(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithConfig(LogConfig{Level: "WARN", Format: "json", Output: &buf}); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = InitWithConfig(LogConfig{Level: "INFO", Format: "text"}) })

	ctx := context.Background()
	Info(ctx, "hidden")
	Risk(ctx, "TCS", "ORDER_VALUE_ABOVE_LIMIT", "order_value", "30000.00")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected only the WARN line, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("Expected JSON line, got %v", err)
	}
	if rec["type"] != "RISK" || rec["symbol"] != "TCS" {
		t.Errorf("Unexpected record %v", rec)
	}
}

func TestDebugRequiresDetailedLogging(t *testing.T) {
	var buf bytes.Buffer
	_ = InitWithConfig(LogConfig{Level: "DEBUG", Format: "text", Output: &buf})
	t.Cleanup(func() { _ = InitWithConfig(LogConfig{Level: "INFO", Format: "text"}) })

	Debug(context.Background(), "not shown")
	if buf.Len() != 0 {
		t.Errorf("Expected no debug output without LOG_DETAILED, got %q", buf.String())
	}

	_ = InitWithConfig(LogConfig{Level: "INFO", Format: "text", DetailedLogging: true, Output: &buf})
	Debug(context.Background(), "shown")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "source") {
		t.Errorf("Expected debug line with source, got %q", buf.String())
	}
}
