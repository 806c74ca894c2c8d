package engine

import (
	"context"

	"equity-desk/internal/logger"
	"equity-desk/internal/types"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// riskManager flags orders whose value is a large share of paper capital.
// It is advisory only and never blocks an order.
type riskManager struct {
	capital     decimal.Decimal
	perTradePct decimal.Decimal
}

func newRiskManager(capital, perTradePct float64) *riskManager {
	return &riskManager{
		capital:     decimal.NewFromFloat(capital),
		perTradePct: decimal.NewFromFloat(perTradePct),
	}
}

// check returns whether the order breaches the per-trade limit, logging a
// risk event when it does.
func (rm *riskManager) check(ctx context.Context, rec types.Recommendation, qty int) (exceeded bool, exposure decimal.Decimal) {
	exposure = rec.OrderValue(qty)
	if !rm.perTradePct.IsPositive() || !rm.capital.IsPositive() {
		return false, exposure
	}

	exposurePct := exposure.Div(rm.capital).Mul(hundred).Round(2)
	exceeded = exposurePct.GreaterThan(rm.perTradePct)

	if exceeded {
		logger.Risk(ctx, rec.Symbol, "PER_TRADE_LIMIT_EXCEEDED",
			"qty", qty,
			"exposure", exposure.StringFixed(2),
			"exposure_pct", exposurePct.StringFixed(2),
			"risk_limit_pct", rm.perTradePct.String(),
			"capital", rm.capital.StringFixed(2),
		)
	}
	return exceeded, exposure
}
