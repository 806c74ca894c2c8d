package eod

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"equity-desk/internal/tradelog"

	"github.com/shopspring/decimal"
)

type eodSummarizer struct {
	dir string
	now func() time.Time
}

// SummarizeDay aggregates the day's journal per symbol into a CSV.
// It returns an empty path when there is nothing to summarise.
func (s *eodSummarizer) SummarizeDay(_ context.Context, t time.Time) (string, error) {
	inPath := tradelog.DailyFilepath(s.dir, t)
	if _, err := os.Stat(inPath); err != nil {
		return "", nil
	}
	f, err := os.Open(inPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	aggs := map[string]*aggRow{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var tl tradeLine
		if err := json.Unmarshal(sc.Bytes(), &tl); err != nil {
			continue
		}
		row := aggs[tl.Symbol]
		if row == nil {
			row = &aggRow{Symbol: tl.Symbol}
			aggs[tl.Symbol] = row
		}
		value := tl.Price.Mul(decimal.NewFromInt(int64(tl.Qty)))
		switch tl.Side {
		case "BUY":
			row.BuyQty += tl.Qty
			row.BuyValue = row.BuyValue.Add(value)
		case "SELL":
			row.SellQty += tl.Qty
			row.SellValue = row.SellValue.Add(value)
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	if len(aggs) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(aggs))
	for k := range aggs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	outPath := eodCSVPath(s.dir, t)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	headers := []string{"symbol", "buy_qty", "buy_avg", "sell_qty", "sell_avg", "realized_pnl", "gross_buy_value", "gross_sell_value"}
	if err := w.Write(headers); err != nil {
		return "", err
	}
	totalBuy, totalSell, totalPnL := decimal.Zero, decimal.Zero, decimal.Zero
	for _, k := range keys {
		r := aggs[k]
		buyAvg, sellAvg := decimal.Zero, decimal.Zero
		if r.BuyQty > 0 {
			buyAvg = r.BuyValue.Div(decimal.NewFromInt(int64(r.BuyQty)))
		}
		if r.SellQty > 0 {
			sellAvg = r.SellValue.Div(decimal.NewFromInt(int64(r.SellQty)))
		}
		matched := r.BuyQty
		if r.SellQty < matched {
			matched = r.SellQty
		}
		r.RealizedPnL = sellAvg.Sub(buyAvg).Mul(decimal.NewFromInt(int64(matched))).Round(2)

		rec := []string{
			r.Symbol,
			strconv.Itoa(r.BuyQty), buyAvg.StringFixed(4),
			strconv.Itoa(r.SellQty), sellAvg.StringFixed(4),
			r.RealizedPnL.StringFixed(2), r.BuyValue.StringFixed(2), r.SellValue.StringFixed(2),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
		totalBuy = totalBuy.Add(r.BuyValue)
		totalSell = totalSell.Add(r.SellValue)
		totalPnL = totalPnL.Add(r.RealizedPnL)
	}
	_ = w.Write([]string{"TOTAL", "", "", "", "", totalPnL.StringFixed(2), totalBuy.StringFixed(2), totalSell.StringFixed(2)})
	w.Flush()
	return outPath, w.Error()
}

func (s *eodSummarizer) SummarizeToday(ctx context.Context) (string, error) {
	return s.SummarizeDay(ctx, s.now())
}

// ShouldRunNow is true after 15:40 IST until today's CSV exists.
func (s *eodSummarizer) ShouldRunNow() (bool, string) {
	now := s.now()
	outPath := eodCSVPath(s.dir, now)
	if now.After(marketCloseCutoff(now)) {
		if _, err := os.Stat(outPath); errors.Is(err, os.ErrNotExist) {
			return true, outPath
		}
	}
	return false, outPath
}
