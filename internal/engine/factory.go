package engine

import (
	"equity-desk/internal/book"
	"equity-desk/internal/interfaces"
	"equity-desk/internal/pricesim"
	"equity-desk/internal/recommend"
	"equity-desk/internal/store"
)

// New builds a desk with a fresh book. rnd drives both recommendation
// generation and price simulation; journal may be nil.
func New(cfg *store.Config, rnd interfaces.RandSource, journal interfaces.TradeJournal) interfaces.Desk {
	return newDesk(
		recommend.New(cfg.Recommendations, rnd),
		pricesim.New(cfg.Simulator, rnd),
		book.New(),
		newOrderExecutor(journal),
		newRiskManager(cfg.Risk.Capital, cfg.Risk.PerTradeRiskPct),
	)
}
