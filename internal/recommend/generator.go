// Package recommend generates mock equity trade ideas.
package recommend

import (
	"fmt"

	"equity-desk/internal/interfaces"
	"equity-desk/internal/types"
	"equity-desk/internal/universe"

	"github.com/shopspring/decimal"
)

// Config holds the ranges recommendations are drawn from.
// Target and stop factors are multipliers of the entry price.
type Config struct {
	EntryMin  float64 `yaml:"entry_min"`
	EntryMax  float64 `yaml:"entry_max"`
	TargetMin float64 `yaml:"target_min"`
	TargetMax float64 `yaml:"target_max"`
	StopMin   float64 `yaml:"stop_min"`
	StopMax   float64 `yaml:"stop_max"`
}

func DefaultConfig() Config {
	return Config{
		EntryMin:  1000,
		EntryMax:  3000,
		TargetMin: 1.05,
		TargetMax: 1.15,
		StopMin:   0.92,
		StopMax:   0.98,
	}
}

var paisa = decimal.New(1, -2)

// Validate checks that every draw satisfies stop < entry < target after
// rounding to paise: at the lowest entry the target gap, the stop gap and
// the stop itself must each be at least one paisa.
func (c Config) Validate() error {
	if c.EntryMin <= 0 || c.EntryMax < c.EntryMin {
		return fmt.Errorf("entry range [%.2f, %.2f] must be positive and ordered", c.EntryMin, c.EntryMax)
	}
	if c.TargetMin <= 1 || c.TargetMax < c.TargetMin {
		return fmt.Errorf("target factor range [%.4f, %.4f] must be above 1 and ordered", c.TargetMin, c.TargetMax)
	}
	if c.StopMin <= 0 || c.StopMax >= 1 || c.StopMax < c.StopMin {
		return fmt.Errorf("stop factor range [%.4f, %.4f] must lie inside (0, 1) and be ordered", c.StopMin, c.StopMax)
	}

	one := decimal.NewFromInt(1)
	entry := decimal.NewFromFloat(c.EntryMin).Round(2)
	gaps := []struct {
		name string
		v    decimal.Decimal
	}{
		{"target gap", entry.Mul(decimal.NewFromFloat(c.TargetMin).Sub(one))},
		{"stop gap", entry.Mul(one.Sub(decimal.NewFromFloat(c.StopMax)))},
		{"stop loss", entry.Mul(decimal.NewFromFloat(c.StopMin))},
	}
	for _, g := range gaps {
		if g.v.LessThan(paisa) {
			return fmt.Errorf("entry_min %.2f too small: %s %s is below one paisa", c.EntryMin, g.name, g.v.StringFixed(4))
		}
	}
	return nil
}

// Generator draws recommendations from a symbol universe.
type Generator struct {
	cfg Config
	rnd interfaces.RandSource
}

func New(cfg Config, rnd interfaces.RandSource) *Generator {
	return &Generator{cfg: cfg, rnd: rnd}
}

// Generate picks count distinct symbols from list and prices each one.
// Per symbol the source is consumed in the order entry, target factor, stop factor.
func (g *Generator) Generate(list []string, count int) ([]types.Recommendation, error) {
	symbols := universe.Distinct(list)
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", types.ErrInsufficientUniverse, count)
	}
	if count > len(symbols) {
		return nil, fmt.Errorf("%w: need %d symbols, universe has %d", types.ErrInsufficientUniverse, count, len(symbols))
	}

	picked := g.sample(symbols, count)
	recs := make([]types.Recommendation, 0, count)
	hundred := decimal.NewFromInt(100)
	for _, sym := range picked {
		entry := decimal.NewFromFloat(g.uniform(g.cfg.EntryMin, g.cfg.EntryMax)).Round(2)
		target := entry.Mul(decimal.NewFromFloat(g.uniform(g.cfg.TargetMin, g.cfg.TargetMax))).Round(2)
		stop := entry.Mul(decimal.NewFromFloat(g.uniform(g.cfg.StopMin, g.cfg.StopMax))).Round(2)

		rec := types.Recommendation{
			Symbol:            sym,
			EntryPrice:        entry,
			Target:            target,
			StopLoss:          stop,
			ExpectedReturnPct: target.Div(entry).Sub(decimal.NewFromInt(1)).Mul(hundred).Round(2),
		}
		if !rec.Valid() {
			return nil, fmt.Errorf("%w: %s entry %s target %s stop %s", types.ErrInvalidRecommendation,
				sym, entry.StringFixed(2), target.StringFixed(2), stop.StringFixed(2))
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// sample is a partial Fisher-Yates shuffle over a copy of symbols.
func (g *Generator) sample(symbols []string, count int) []string {
	pool := make([]string, len(symbols))
	copy(pool, symbols)
	for i := 0; i < count; i++ {
		j := i + g.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count]
}

// uniform draws from [lo, hi], clamped against float drift at the edges.
func (g *Generator) uniform(lo, hi float64) float64 {
	return min(max(lo+g.rnd.Float64()*(hi-lo), lo), hi)
}
