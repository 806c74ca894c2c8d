package main

import (
	"context"
	"strings"
	"testing"

	"equity-desk/internal/engine"
	"equity-desk/internal/randsrc"
	"equity-desk/internal/store"
)

func runShell(t *testing.T, script string) string {
	t.Helper()
	cfg := store.DefaultConfig()
	d := engine.New(cfg, &randsrc.Sequence{Floats: []float64{0.5}}, nil)

	var out strings.Builder
	if err := newShell(d, cfg, strings.NewReader(script), &out).run(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return out.String()
}

func TestShellSession(t *testing.T) {
	out := runShell(t, strings.Join([]string{
		"recs",
		"buy tcs 2",
		"track",
		"pnl",
		"active",
		"algo status equity",
		"quit",
		"pnl",
	}, "\n"))

	for _, want := range []string{
		"TCS",
		"2000.00",
		"Bought 2 TCS @ 2000.00 (target 2200.00, stop loss 1900.00)",
		"Cycle 1: 1 ticked, 0 exited, total P&L 0.00",
		"NO_EXIT",
		"Total P&L: 0.00",
		"equity algo: Running",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
	if strings.Count(out, "Total P&L") != 1 {
		t.Error("Expected commands after quit to be ignored")
	}
}

func TestShellErrorsKeepSessionAlive(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"buy TCS 1", "not in the current recommendations"},
		{"buy", "usage: buy SYMBOL [QTY]"},
		{"buy TCS many", `invalid quantity "many"`},
		{"algo stop options", "algo not running"},
		{"algo start futures", "unknown algo mode"},
		{"algo pause equity", `unknown algo action "pause"`},
		{"universe fx", `unknown universe "fx"`},
		{"bogus", `unknown command "bogus"`},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out := runShell(t, tt.line+"\nhelp\n")
			if !strings.Contains(out, "error: ") || !strings.Contains(out, tt.want) {
				t.Errorf("Expected error containing %q, got\n%s", tt.want, out)
			}
			if !strings.Contains(out, "Commands:") {
				t.Error("Expected the session to continue after an error")
			}
		})
	}
}

func TestShellRejectsInvalidQuantity(t *testing.T) {
	out := runShell(t, "recs\nbuy TCS 0\npositions\n")
	if !strings.Contains(out, "invalid quantity") {
		t.Errorf("Expected invalid quantity error, got\n%s", out)
	}
	if !strings.Contains(out, "No positions.") {
		t.Error("Expected no position to be opened")
	}
}

func TestShellAlgoToggle(t *testing.T) {
	out := runShell(t, "algo start commodity\nalgo start commodity\nalgo stop commodity\nalgo status commodity\n")
	for _, want := range []string{
		"commodity algo started",
		"commodity algo already running",
		"commodity algo stopped",
		"commodity algo: Stopped",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}

func TestShellUniverse(t *testing.T) {
	out := runShell(t, "universe\nuniverse indices\n")
	if !strings.Contains(out, "RELIANCE, HDFC, TCS") {
		t.Errorf("Expected the equity universe, got\n%s", out)
	}
	if !strings.Contains(out, "NIFTY, BANKNIFTY") {
		t.Errorf("Expected index underlyings, got\n%s", out)
	}
}
