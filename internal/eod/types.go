package eod

import "github.com/shopspring/decimal"

// tradeLine is one journaled fill as written by the tradelog package.
type tradeLine struct {
	Time    string
	Symbol  string
	Side    string // BUY on order placement, SELL on a target or stop-loss exit
	Qty     int
	Price   decimal.Decimal
	OrderID string
	Reason  string
}

// aggRow accumulates a symbol's fills for the day.
type aggRow struct {
	Symbol      string
	BuyQty      int
	BuyValue    decimal.Decimal
	SellQty     int
	SellValue   decimal.Decimal
	RealizedPnL decimal.Decimal
}
