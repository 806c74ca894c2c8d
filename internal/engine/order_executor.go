package engine

import (
	"context"

	"equity-desk/internal/interfaces"
	"equity-desk/internal/logger"
	"equity-desk/internal/tradelog"
	"equity-desk/internal/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderExecutor journals simulated fills. There is no broker; every order
// fills at the price it is given.
type orderExecutor struct {
	journal interfaces.TradeJournal
	newID   func() string
}

func newOrderExecutor(journal interfaces.TradeJournal) *orderExecutor {
	return &orderExecutor{
		journal: journal,
		newID:   uuid.NewString,
	}
}

// recordBuy journals the opening fill of pos and returns its order id.
// Orders over the per-trade risk limit carry risk_exceeded in the journal.
func (oe *orderExecutor) recordBuy(ctx context.Context, pos types.Position, orderValue decimal.Decimal, riskExceeded bool) string {
	orderID := oe.newID()
	logger.Trade(ctx, pos.Symbol, "BUY", pos.Quantity, pos.BuyPrice.StringFixed(2), orderID,
		"position_id", pos.ID,
		"order_value", orderValue.StringFixed(2),
		"risk_exceeded", riskExceeded,
		"target", pos.Target.StringFixed(2),
		"stop_loss", pos.StopLoss.StringFixed(2),
	)
	extra := map[string]any{
		"position_id": pos.ID,
		"order_value": orderValue.StringFixed(2),
	}
	if riskExceeded {
		extra["risk_exceeded"] = true
	}
	oe.append(ctx, tradelog.Entry{
		Symbol:  pos.Symbol,
		Side:    "BUY",
		Qty:     pos.Quantity,
		Price:   pos.BuyPrice,
		OrderID: orderID,
		Reason:  "RECOMMENDATION",
		Extra:   extra,
	})
	return orderID
}

// recordExit journals the closing SELL of pos at its current price.
func (oe *orderExecutor) recordExit(ctx context.Context, pos types.Position, sig types.ExitSignal) string {
	orderID := oe.newID()
	logger.Trade(ctx, pos.Symbol, "SELL", pos.Quantity, pos.CurrentPrice.StringFixed(2), orderID,
		"position_id", pos.ID,
		"reason", sig.Reason(),
		"pnl", pos.PnL.StringFixed(2),
	)
	oe.append(ctx, tradelog.Entry{
		Symbol:  pos.Symbol,
		Side:    "SELL",
		Qty:     pos.Quantity,
		Price:   pos.CurrentPrice,
		OrderID: orderID,
		Reason:  sig.Reason(),
		Extra:   map[string]any{"position_id": pos.ID, "pnl": pos.PnL.StringFixed(2)},
	})
	return orderID
}

func (oe *orderExecutor) append(ctx context.Context, e tradelog.Entry) {
	if oe.journal == nil {
		return
	}
	if err := oe.journal.Record(ctx, e); err != nil {
		logger.ErrorWithErr(ctx, "Failed to journal fill", err,
			"symbol", e.Symbol,
			"side", e.Side,
			"order_id", e.OrderID,
		)
	}
}
