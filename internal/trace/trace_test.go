package trace

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDisabledByDefault(t *testing.T) {
	t.Setenv("LOG_TRACING_ENABLED", "")
	if err := Init("test"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if Enabled() {
		t.Fatal("Expected tracing disabled by default")
	}

	ctx, span := StartSpan(context.Background(), "noop", Symbol("TCS"))
	defer span.End()
	if _, _, ok := GetTraceFields(ctx); ok {
		t.Error("Expected no trace fields while disabled")
	}
}

func TestSpansCarryDeskAttributes(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithConfig(Config{Enabled: true, Output: &buf}, "test"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	ctx, span := StartSpan(context.Background(), "desk.PlaceOrder", Symbol("TCS"), Quantity(10))
	traceID, spanID, ok := GetTraceFields(ctx)
	if !ok || traceID == "" || spanID == "" {
		t.Errorf("Expected trace fields, got %q %q %v", traceID, spanID, ok)
	}
	span.SetAttributes(Cycle(3))
	RecordError(span, errors.New("boom"))
	span.End()

	if err := Shutdown(context.Background()); err != nil {
		t.Fatalf("Expected clean shutdown, got %v", err)
	}
	if Enabled() {
		t.Error("Expected Shutdown to disable tracing")
	}

	out := buf.String()
	for _, want := range []string{"desk.PlaceOrder", "desk.symbol", "TCS", "desk.qty", "desk.cycle", "boom", "equity-desk"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected exported span to contain %q", want)
		}
	}
}
