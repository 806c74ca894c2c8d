// Package book holds the authoritative in-memory collection of positions.
//
// A Book belongs to exactly one session and is not safe for concurrent use.
// Positions are appended in order and never removed; once a position leaves
// Active its price and status are frozen.
package book

import (
	"fmt"
	"time"

	"equity-desk/internal/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Book struct {
	positions []types.Position
	now       func() time.Time
}

func New() *Book {
	return &Book{now: time.Now}
}

// WithClock replaces the clock used for OpenedAt and ClosedAt.
func (b *Book) WithClock(now func() time.Time) *Book {
	b.now = now
	return b
}

// PlaceOrder appends a new Active position built from rec.
// Equal inputs produce independent positions.
func (b *Book) PlaceOrder(rec types.Recommendation, qty int) (types.Position, error) {
	if qty <= 0 {
		return types.Position{}, fmt.Errorf("%w: %d", types.ErrInvalidQuantity, qty)
	}

	p := types.Position{
		ID:           uuid.NewString(),
		Symbol:       rec.Symbol,
		Quantity:     qty,
		BuyPrice:     rec.EntryPrice,
		CurrentPrice: rec.EntryPrice,
		Target:       rec.Target,
		StopLoss:     rec.StopLoss,
		PnL:          decimal.Zero,
		Status:       types.StatusActive,
		OpenedAt:     b.now(),
	}
	b.positions = append(b.positions, p)
	return p, nil
}

// UpdatePrice sets the current price of an Active position and recomputes its P&L.
func (b *Book) UpdatePrice(index int, price decimal.Decimal) error {
	p, err := b.at(index)
	if err != nil {
		return err
	}
	if p.Status != types.StatusActive {
		return fmt.Errorf("%w: %s is %s", types.ErrPositionNotActive, p.Symbol, p.Status)
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: %s", types.ErrInvalidPrice, price)
	}

	p.CurrentPrice = price
	p.PnL = p.ComputePnL()
	return nil
}

// ApplyExit moves an Active position to a terminal status.
func (b *Book) ApplyExit(index int, status types.Status) error {
	p, err := b.at(index)
	if err != nil {
		return err
	}
	if p.Status != types.StatusActive {
		return fmt.Errorf("%w: %s is already %s", types.ErrInvalidTransition, p.Symbol, p.Status)
	}
	if !status.Terminal() {
		return fmt.Errorf("%w: %q is not a terminal status", types.ErrInvalidTransition, status)
	}

	closed := b.now()
	p.Status = status
	p.ClosedAt = &closed
	return nil
}

// Get returns a copy of the position at index.
func (b *Book) Get(index int) (types.Position, error) {
	p, err := b.at(index)
	if err != nil {
		return types.Position{}, err
	}
	return *p, nil
}

func (b *Book) Len() int {
	return len(b.positions)
}

// Positions returns a copy of every position in insertion order.
func (b *Book) Positions() []types.Position {
	out := make([]types.Position, len(b.positions))
	copy(out, b.positions)
	return out
}

// TotalPnL sums P&L over all positions regardless of status.
func (b *Book) TotalPnL() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.positions {
		total = total.Add(p.PnL)
	}
	return total
}

func (b *Book) ActivePositions() []types.IndexedPosition {
	return b.ByStatus(types.StatusActive)
}

func (b *Book) ByStatus(status types.Status) []types.IndexedPosition {
	out := make([]types.IndexedPosition, 0)
	for i, p := range b.positions {
		if p.Status == status {
			out = append(out, types.IndexedPosition{Index: i, Position: p})
		}
	}
	return out
}

func (b *Book) at(index int) (*types.Position, error) {
	if index < 0 || index >= len(b.positions) {
		return nil, fmt.Errorf("%w: index %d of %d", types.ErrPositionNotFound, index, len(b.positions))
	}
	return &b.positions[index], nil
}
