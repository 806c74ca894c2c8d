package engine

import (
	"context"
	"fmt"

	"equity-desk/internal/book"
	"equity-desk/internal/exit"
	"equity-desk/internal/interfaces"
	"equity-desk/internal/logger"
	"equity-desk/internal/types"

	"github.com/shopspring/decimal"
)

type recommender interface {
	Generate(universe []string, count int) ([]types.Recommendation, error)
}

// desk is one paper-trading session. It owns its book and is driven
// synchronously by a single caller.
type desk struct {
	gen    recommender
	sim    interfaces.PriceSimulator
	book   *book.Book
	orders *orderExecutor
	risk   *riskManager
	algos  *algoBoard
	recs   []types.Recommendation
	cycles int
}

var _ interfaces.Desk = (*desk)(nil)

func newDesk(gen recommender, sim interfaces.PriceSimulator, b *book.Book, orders *orderExecutor, risk *riskManager) *desk {
	return &desk{
		gen:    gen,
		sim:    sim,
		book:   b,
		orders: orders,
		risk:   risk,
		algos:  newAlgoBoard(),
	}
}

// GenerateRecommendations replaces the current batch and marks the equity
// algo as running.
func (d *desk) GenerateRecommendations(ctx context.Context, universe []string, count int) ([]types.Recommendation, error) {
	recs, err := d.gen.Generate(universe, count)
	if err != nil {
		return nil, err
	}
	d.recs = recs

	for _, r := range recs {
		logger.Debug(ctx, "Recommendation generated",
			"symbol", r.Symbol,
			"entry", r.EntryPrice.StringFixed(2),
			"target", r.Target.StringFixed(2),
			"stop_loss", r.StopLoss.StringFixed(2),
			"expected_return_pct", r.ExpectedReturnPct.StringFixed(2),
		)
	}

	if _, err := d.StartAlgo(ctx, interfaces.AlgoEquity); err != nil {
		return nil, err
	}
	return d.Recommendations(), nil
}

func (d *desk) Recommendations() []types.Recommendation {
	out := make([]types.Recommendation, len(d.recs))
	copy(out, d.recs)
	return out
}

// PlaceOrder opens a position at the recommendation's entry price and
// journals the BUY, flagging it when the risk check is breached. Journal
// failures are logged; the position stays open.
func (d *desk) PlaceOrder(ctx context.Context, rec types.Recommendation, qty int) (types.Position, error) {
	pos, err := d.book.PlaceOrder(rec, qty)
	if err != nil {
		logger.Warn(ctx, "Order rejected", "symbol", rec.Symbol, "qty", qty, "error", err)
		return types.Position{}, err
	}

	exceeded, exposure := d.risk.check(ctx, rec, qty)
	d.orders.recordBuy(ctx, pos, exposure, exceeded)
	return pos, nil
}

// RunTrackingCycle advances every position that is Active at the start of
// the cycle by one simulated tick and closes those that reach an exit level.
// Every new price is drawn and checked before the book changes, so a failed
// cycle leaves the book and the cycle count untouched.
func (d *desk) RunTrackingCycle(ctx context.Context) (types.CycleReport, error) {
	active := d.book.ActivePositions()
	next := make([]decimal.Decimal, len(active))
	for i, ip := range active {
		next[i] = d.sim.Next(ip.Position.CurrentPrice)
		if !next[i].IsPositive() {
			return types.CycleReport{Cycle: d.cycles}, fmt.Errorf("tracking %s: %w: %s", ip.Position.Symbol, types.ErrInvalidPrice, next[i])
		}
	}

	d.cycles++
	report := types.CycleReport{Cycle: d.cycles, Ticks: []types.Tick{}}

	for i, ip := range active {
		old := ip.Position.CurrentPrice
		if err := d.book.UpdatePrice(ip.Index, next[i]); err != nil {
			return report, fmt.Errorf("tracking %s: %w", ip.Position.Symbol, err)
		}

		updated, err := d.book.Get(ip.Index)
		if err != nil {
			return report, err
		}

		sig := exit.Evaluate(updated)
		report.Ticks = append(report.Ticks, types.Tick{
			Index:    ip.Index,
			Symbol:   updated.Symbol,
			OldPrice: old,
			NewPrice: updated.CurrentPrice,
			PnL:      updated.PnL,
			Signal:   sig.String(),
		})

		logger.Debug(ctx, "Position ticked",
			"symbol", updated.Symbol,
			"old_price", old.StringFixed(2),
			"new_price", updated.CurrentPrice.StringFixed(2),
			"pnl", updated.PnL.StringFixed(2),
			"signal", sig.String(),
		)

		if sig == types.NoExit {
			continue
		}
		if err := d.book.ApplyExit(ip.Index, sig.Status()); err != nil {
			return report, err
		}
		report.Exits++
		d.orders.recordExit(ctx, updated, sig)
	}

	report.TotalPnL = d.book.TotalPnL()
	return report, nil
}

func (d *desk) TotalPnL() decimal.Decimal {
	return d.book.TotalPnL()
}

func (d *desk) ActivePositions() []types.IndexedPosition {
	return d.book.ActivePositions()
}

func (d *desk) Positions() []types.Position {
	return d.book.Positions()
}

func (d *desk) StartAlgo(ctx context.Context, mode interfaces.AlgoMode) (bool, error) {
	started, err := d.algos.start(mode)
	if err != nil {
		return false, err
	}
	if started {
		logger.Info(ctx, "Algo started", "mode", mode)
	} else {
		logger.Debug(ctx, "Algo already running", "mode", mode)
	}
	return started, nil
}

func (d *desk) StopAlgo(ctx context.Context, mode interfaces.AlgoMode) error {
	if err := d.algos.stop(mode); err != nil {
		return err
	}
	logger.Info(ctx, "Algo stopped", "mode", mode)
	return nil
}

func (d *desk) AlgoState(mode interfaces.AlgoMode) (interfaces.AlgoState, error) {
	return d.algos.state(mode)
}
