package engineobs

import (
	"context"
	"testing"

	"equity-desk/internal/engine"
	"equity-desk/internal/interfaces"
	"equity-desk/internal/metrics"
	"equity-desk/internal/randsrc"
	"equity-desk/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestWrapRecordsMetrics(t *testing.T) {
	ctx := context.Background()
	cfg := store.DefaultConfig()
	m := metrics.New(prometheus.NewRegistry())
	seq := &randsrc.Sequence{Floats: []float64{0.5}}
	d := Wrap(engine.New(cfg, seq, nil), m)

	recs, err := d.GenerateRecommendations(ctx, cfg.Universe, 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := value(t, m.Recommendations); got != 3 {
		t.Errorf("Expected 3 recommendations counted, got %v", got)
	}
	if got := value(t, m.AlgoTransitions.WithLabelValues("equity", "Running")); got != 1 {
		t.Errorf("Expected equity start counted once, got %v", got)
	}

	if _, err := d.PlaceOrder(ctx, recs[0], 0); err == nil {
		t.Fatal("Expected invalid quantity error")
	}
	if _, err := d.PlaceOrder(ctx, recs[0], 2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if value(t, m.OrdersRejected) != 1 || value(t, m.OrdersPlaced) != 1 {
		t.Error("Expected one rejected and one placed order")
	}
	if got := value(t, m.ActivePositions); got != 1 {
		t.Errorf("Expected 1 active position, got %v", got)
	}

	// +5% per tick: 2000 -> 2100 -> 2205, target 2200
	seq.Floats = []float64{1.0}
	d.RunTrackingCycle(ctx)
	d.RunTrackingCycle(ctx)

	if got := value(t, m.TrackingCycles); got != 2 {
		t.Errorf("Expected 2 cycles, got %v", got)
	}
	if got := value(t, m.Exits.WithLabelValues("HIT_TARGET")); got != 1 {
		t.Errorf("Expected 1 target exit, got %v", got)
	}
	if got := value(t, m.TotalPnL); got != 410 {
		t.Errorf("Expected total P&L 410, got %v", got)
	}
	if got := value(t, m.ActivePositions); got != 0 {
		t.Errorf("Expected no active positions, got %v", got)
	}

	if err := d.StopAlgo(ctx, interfaces.AlgoOptions); err == nil {
		t.Error("Expected stopping an idle algo to fail")
	}
}

func TestWrapWithoutMetrics(t *testing.T) {
	d := Wrap(engine.New(store.DefaultConfig(), randsrc.New(7), nil), nil)
	if _, err := d.StartAlgo(context.Background(), interfaces.AlgoSell); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if st, _ := d.AlgoState(interfaces.AlgoSell); st != interfaces.AlgoRunning {
		t.Errorf("Expected Running, got %s", st)
	}
}

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var pb dto.Metric
	if err := m.Write(&pb); err != nil {
		t.Fatal(err)
	}
	switch {
	case pb.Counter != nil:
		return pb.Counter.GetValue()
	case pb.Gauge != nil:
		return pb.Gauge.GetValue()
	}
	t.Fatalf("unsupported metric %v", pb.String())
	return 0
}
