package main

import (
	"context"
	"fmt"
	"io"

	"equity-desk/internal/types"

	"github.com/shopspring/decimal"
)

type simulateOptions struct {
	buy    int
	qty    int
	cycles int
	asJSON bool
}

type simulateResult struct {
	Recommendations []types.Recommendation `json:"recommendations"`
	Cycles          []types.CycleReport    `json:"cycles"`
	Positions       []types.Position       `json:"positions"`
	TotalPnL        decimal.Decimal        `json:"total_pnl"`
}

// simulate generates one batch, buys the first opts.buy recommendations and
// tracks them for up to opts.cycles cycles, stopping once nothing is active.
func simulate(ctx context.Context, a *app, opts simulateOptions, w io.Writer) error {
	recs, err := a.desk.GenerateRecommendations(ctx, a.cfg.Universe, a.cfg.BatchSize)
	if err != nil {
		return err
	}
	res := simulateResult{Recommendations: recs, Cycles: []types.CycleReport{}}

	n := min(max(opts.buy, 0), len(recs))
	for _, rec := range recs[:n] {
		if _, err := a.desk.PlaceOrder(ctx, rec, opts.qty); err != nil {
			return err
		}
	}

	for i := 0; i < opts.cycles && len(a.desk.ActivePositions()) > 0; i++ {
		report, err := a.desk.RunTrackingCycle(ctx)
		if err != nil {
			return err
		}
		res.Cycles = append(res.Cycles, report)
	}

	res.Positions = a.desk.Positions()
	res.TotalPnL = a.desk.TotalPnL()

	if opts.asJSON {
		return printJSON(w, res)
	}

	printRecommendations(w, res.Recommendations)
	fmt.Fprintf(w, "\nBought %d position(s) of %d share(s)\n\n", n, opts.qty)
	for _, c := range res.Cycles {
		printReport(w, c)
		fmt.Fprintln(w)
	}
	printPositions(w, res.Positions)
	fmt.Fprintf(w, "\nTotal P&L: %s\n", res.TotalPnL.StringFixed(2))
	return nil
}
