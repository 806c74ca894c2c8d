package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"equity-desk/internal/types"

	"github.com/tidwall/pretty"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(pretty.Pretty(data))
	return err
}

func printRecommendations(w io.Writer, recs []types.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "SYMBOL\tENTRY\tTARGET\tSTOP LOSS\tEXP. RETURN %")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Symbol,
			r.EntryPrice.StringFixed(2),
			r.Target.StringFixed(2),
			r.StopLoss.StringFixed(2),
			r.ExpectedReturnPct.StringFixed(2),
		)
	}
	tw.Flush()
}

func printPositions(w io.Writer, positions []types.Position) {
	indexed := make([]types.IndexedPosition, len(positions))
	for i, p := range positions {
		indexed[i] = types.IndexedPosition{Index: i, Position: p}
	}
	printIndexed(w, indexed)
}

func printIndexed(w io.Writer, positions []types.IndexedPosition) {
	if len(positions) == 0 {
		fmt.Fprintln(w, "No positions.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tSYMBOL\tQTY\tBUY\tCURRENT\tTARGET\tSTOP LOSS\tP&L\tSTATUS")
	for _, ip := range positions {
		p := ip.Position
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			ip.Index,
			p.Symbol,
			p.Quantity,
			p.BuyPrice.StringFixed(2),
			p.CurrentPrice.StringFixed(2),
			p.Target.StringFixed(2),
			p.StopLoss.StringFixed(2),
			p.PnL.StringFixed(2),
			p.Status,
		)
	}
	tw.Flush()
}

func printReport(w io.Writer, r types.CycleReport) {
	fmt.Fprintf(w, "Cycle %d: %d ticked, %d exited, total P&L %s\n",
		r.Cycle, len(r.Ticks), r.Exits, r.TotalPnL.StringFixed(2))
	if len(r.Ticks) == 0 {
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tSYMBOL\tOLD\tNEW\tP&L\tSIGNAL")
	for _, t := range r.Ticks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.Index,
			t.Symbol,
			t.OldPrice.StringFixed(2),
			t.NewPrice.StringFixed(2),
			t.PnL.StringFixed(2),
			t.Signal,
		)
	}
	tw.Flush()
}
