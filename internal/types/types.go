package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recommendation is a generated trade idea. It is never mutated after generation.
type Recommendation struct {
	Symbol            string          `json:"symbol"`
	EntryPrice        decimal.Decimal `json:"entry_price"`
	Target            decimal.Decimal `json:"target"`
	StopLoss          decimal.Decimal `json:"stop_loss"`
	ExpectedReturnPct decimal.Decimal `json:"expected_return_pct"`
}

// OrderValue is the amount needed to buy qty shares at the entry price.
func (r Recommendation) OrderValue(qty int) decimal.Decimal {
	return r.EntryPrice.Mul(decimal.NewFromInt(int64(qty))).Round(2)
}

// Valid reports whether 0 < StopLoss < EntryPrice < Target.
func (r Recommendation) Valid() bool {
	return r.StopLoss.IsPositive() &&
		r.StopLoss.LessThan(r.EntryPrice) &&
		r.EntryPrice.LessThan(r.Target)
}

type Status string

const (
	StatusActive         Status = "Active"
	StatusExitedTarget   Status = "Exited (Target)"
	StatusExitedStopLoss Status = "Exited (Stop Loss)"
)

// Terminal reports whether no further mutation is allowed.
func (s Status) Terminal() bool {
	return s == StatusExitedTarget || s == StatusExitedStopLoss
}

// Position is a tracked holding created from an accepted recommendation.
type Position struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	Quantity     int             `json:"quantity"`
	BuyPrice     decimal.Decimal `json:"buy_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Target       decimal.Decimal `json:"target"`
	StopLoss     decimal.Decimal `json:"stop_loss"`
	PnL          decimal.Decimal `json:"pnl"`
	Status       Status          `json:"status"`
	OpenedAt     time.Time       `json:"opened_at"`
	ClosedAt     *time.Time      `json:"closed_at,omitempty"`
}

// ComputePnL returns (CurrentPrice - BuyPrice) * Quantity rounded to paise.
func (p Position) ComputePnL() decimal.Decimal {
	return p.CurrentPrice.Sub(p.BuyPrice).Mul(decimal.NewFromInt(int64(p.Quantity))).Round(2)
}

// IndexedPosition pairs a position with its index in the book.
type IndexedPosition struct {
	Index    int      `json:"index"`
	Position Position `json:"position"`
}

// ExitSignal is the outcome of evaluating a position against its exit levels.
type ExitSignal int

const (
	NoExit ExitSignal = iota
	HitTarget
	HitStopLoss
)

func (s ExitSignal) String() string {
	switch s {
	case HitTarget:
		return "HIT_TARGET"
	case HitStopLoss:
		return "HIT_STOP_LOSS"
	default:
		return "NO_EXIT"
	}
}

// Status maps the signal to the status a position moves to. NoExit maps to Active.
func (s ExitSignal) Status() Status {
	switch s {
	case HitTarget:
		return StatusExitedTarget
	case HitStopLoss:
		return StatusExitedStopLoss
	default:
		return StatusActive
	}
}

// Reason is the journal reason recorded for an exit.
func (s ExitSignal) Reason() string {
	switch s {
	case HitTarget:
		return "TARGET"
	case HitStopLoss:
		return "STOP_LOSS"
	default:
		return ""
	}
}

// Tick is what one tracking cycle did to one position.
type Tick struct {
	Index    int             `json:"index"`
	Symbol   string          `json:"symbol"`
	OldPrice decimal.Decimal `json:"old_price"`
	NewPrice decimal.Decimal `json:"new_price"`
	PnL      decimal.Decimal `json:"pnl"`
	Signal   string          `json:"signal"`
}

// CycleReport summarises a tracking cycle.
type CycleReport struct {
	Cycle    int             `json:"cycle"`
	Ticks    []Tick          `json:"ticks"`
	Exits    int             `json:"exits"`
	TotalPnL decimal.Decimal `json:"total_pnl"`
}
