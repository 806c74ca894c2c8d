package interfaces

import "github.com/shopspring/decimal"

// RandSource is the randomness used by generation and simulation.
// *math/rand.Rand satisfies it.
type RandSource interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// PriceSimulator produces the next simulated price for a held position.
type PriceSimulator interface {
	Next(current decimal.Decimal) decimal.Decimal
}
