// Package pricesim simulates one tick of price movement for a held position.
package pricesim

import (
	"fmt"

	"equity-desk/internal/interfaces"

	"github.com/shopspring/decimal"
)

type Config struct {
	// MaxMovePct bounds a tick to [-MaxMovePct, +MaxMovePct] percent.
	MaxMovePct float64 `yaml:"max_move_pct"`
}

func DefaultConfig() Config {
	return Config{MaxMovePct: 5}
}

func (c Config) Validate() error {
	if c.MaxMovePct <= 0 || c.MaxMovePct >= 100 {
		return fmt.Errorf("max_move_pct must be in (0, 100), got %.2f", c.MaxMovePct)
	}
	return nil
}

// Simulator applies a uniform symmetric random move to a price.
type Simulator struct {
	move float64
	rnd  interfaces.RandSource
}

var _ interfaces.PriceSimulator = (*Simulator)(nil)

func New(cfg Config, rnd interfaces.RandSource) *Simulator {
	return &Simulator{move: cfg.MaxMovePct / 100.0, rnd: rnd}
}

var floor = decimal.New(1, -2)

// Next returns current * (1 + delta) rounded to 2 places, never below one paisa.
func (s *Simulator) Next(current decimal.Decimal) decimal.Decimal {
	delta := -s.move + s.rnd.Float64()*2*s.move
	next := current.Mul(decimal.NewFromFloat(1 + delta)).Round(2)
	if next.LessThan(floor) {
		return floor
	}
	return next
}
