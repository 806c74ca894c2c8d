package engineobs

import (
	"context"
	"time"

	"equity-desk/internal/interfaces"
	"equity-desk/internal/logger"
	"equity-desk/internal/metrics"
	"equity-desk/internal/trace"
	"equity-desk/internal/types"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type observableDesk struct {
	desk    interfaces.Desk
	metrics *metrics.Metrics
}

var _ interfaces.Desk = (*observableDesk)(nil)

// Wrap decorates desk with spans, logs and, when m is non-nil, metrics.
func Wrap(desk interfaces.Desk, m *metrics.Metrics) interfaces.Desk {
	return &observableDesk{
		desk:    desk,
		metrics: m,
	}
}

func (od *observableDesk) GenerateRecommendations(ctx context.Context, universe []string, count int) ([]types.Recommendation, error) {
	ctx, span := trace.StartSpan(ctx, "desk.GenerateRecommendations", attribute.Int("desk.count", count))
	defer span.End()

	recs, err := od.desk.GenerateRecommendations(ctx, universe, count)
	if err != nil {
		trace.RecordError(span, err)
		logger.ErrorWithErrSkip(ctx, 1, "Recommendation generation failed", err,
			"universe_size", len(universe),
			"count", count,
		)
		return nil, err
	}

	if od.metrics != nil {
		od.metrics.Recommendations.Add(float64(len(recs)))
	}
	logger.InfoSkip(ctx, 1, "Recommendations generated",
		"universe_size", len(universe),
		"count", len(recs),
	)
	return recs, nil
}

func (od *observableDesk) Recommendations() []types.Recommendation {
	return od.desk.Recommendations()
}

func (od *observableDesk) PlaceOrder(ctx context.Context, rec types.Recommendation, qty int) (types.Position, error) {
	ctx, span := trace.StartSpan(ctx, "desk.PlaceOrder", trace.Symbol(rec.Symbol), trace.Quantity(qty))
	defer span.End()

	pos, err := od.desk.PlaceOrder(ctx, rec, qty)
	if err != nil {
		trace.RecordError(span, err)
		if od.metrics != nil {
			od.metrics.OrdersRejected.Inc()
		}
		logger.ErrorWithErrSkip(ctx, 1, "Order placement failed", err,
			"symbol", rec.Symbol,
			"qty", qty,
		)
		return types.Position{}, err
	}

	span.SetAttributes(trace.PositionID(pos.ID))
	od.observeBook()
	if od.metrics != nil {
		od.metrics.OrdersPlaced.Inc()
	}
	logger.InfoSkip(ctx, 1, "Position opened",
		"symbol", pos.Symbol,
		"qty", pos.Quantity,
		"buy_price", pos.BuyPrice.StringFixed(2),
		"position_id", pos.ID,
	)
	return pos, nil
}

func (od *observableDesk) RunTrackingCycle(ctx context.Context) (types.CycleReport, error) {
	ctx, span := trace.StartSpan(ctx, "desk.RunTrackingCycle")
	defer span.End()

	start := time.Now()
	report, err := od.desk.RunTrackingCycle(ctx)
	if od.metrics != nil {
		od.metrics.TrackingCycles.Inc()
		od.metrics.CycleDuration.Observe(time.Since(start).Seconds())
	}
	span.SetAttributes(trace.Cycle(report.Cycle))
	if err != nil {
		trace.RecordError(span, err)
		logger.ErrorWithErrSkip(ctx, 1, "Tracking cycle failed", err,
			"cycle", report.Cycle,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return report, err
	}

	if od.metrics != nil {
		for _, t := range report.Ticks {
			if t.Signal != types.NoExit.String() {
				od.metrics.Exits.WithLabelValues(t.Signal).Inc()
			}
		}
	}
	od.observeBook()
	span.SetAttributes(trace.Exits(report.Exits))

	logger.InfoSkip(ctx, 1, "Tracking cycle completed",
		"cycle", report.Cycle,
		"ticked", len(report.Ticks),
		"exits", report.Exits,
		"total_pnl", report.TotalPnL.StringFixed(2),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

func (od *observableDesk) TotalPnL() decimal.Decimal {
	return od.desk.TotalPnL()
}

func (od *observableDesk) ActivePositions() []types.IndexedPosition {
	return od.desk.ActivePositions()
}

func (od *observableDesk) Positions() []types.Position {
	return od.desk.Positions()
}

func (od *observableDesk) StartAlgo(ctx context.Context, mode interfaces.AlgoMode) (bool, error) {
	ctx, span := trace.StartSpan(ctx, "desk.StartAlgo", trace.Mode(string(mode)))
	defer span.End()

	started, err := od.desk.StartAlgo(ctx, mode)
	if err != nil {
		trace.RecordError(span, err)
		logger.ErrorWithErrSkip(ctx, 1, "Algo start failed", err, "mode", mode)
		return false, err
	}
	if started {
		od.observeAlgo(mode, interfaces.AlgoRunning)
	}
	return started, nil
}

func (od *observableDesk) StopAlgo(ctx context.Context, mode interfaces.AlgoMode) error {
	ctx, span := trace.StartSpan(ctx, "desk.StopAlgo", trace.Mode(string(mode)))
	defer span.End()

	if err := od.desk.StopAlgo(ctx, mode); err != nil {
		trace.RecordError(span, err)
		logger.InfoSkip(ctx, 1, "Algo stop refused", "mode", mode, "error", err)
		return err
	}
	od.observeAlgo(mode, interfaces.AlgoStopped)
	return nil
}

func (od *observableDesk) AlgoState(mode interfaces.AlgoMode) (interfaces.AlgoState, error) {
	return od.desk.AlgoState(mode)
}

func (od *observableDesk) observeBook() {
	if od.metrics == nil {
		return
	}
	od.metrics.ActivePositions.Set(float64(len(od.desk.ActivePositions())))
	od.metrics.TotalPnL.Set(od.desk.TotalPnL().InexactFloat64())
}

func (od *observableDesk) observeAlgo(mode interfaces.AlgoMode, st interfaces.AlgoState) {
	if od.metrics == nil {
		return
	}
	od.metrics.AlgoTransitions.WithLabelValues(string(mode), string(st)).Inc()
}
