package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"equity-desk/internal/eod"
	"equity-desk/internal/interfaces"
	"equity-desk/internal/logger"
	"equity-desk/internal/store"
	"equity-desk/internal/universe"
)

const shellHelp = `Commands:
  recs                          generate a fresh batch of recommendations
  buy SYMBOL [QTY]              buy a recommendation from the current batch
  track                         run one tracking cycle
  positions                     list every position
  active                        list active positions
  pnl                           total P&L across all positions
  algo start|stop|status MODE   toggle equity, options, commodity or sell
  universe [equity|indices|mcx] list tradable symbols
  help                          show this help
  quit                          end the session`

var errQuit = errors.New("quit")

type shell struct {
	desk interfaces.Desk
	cfg  *store.Config
	in   io.Reader
	out  io.Writer
}

func newShell(desk interfaces.Desk, cfg *store.Config, in io.Reader, out io.Writer) *shell {
	return &shell{desk: desk, cfg: cfg, in: in, out: out}
}

// run reads commands until quit, EOF or ctx is done. Command errors are
// printed and the session continues.
func (s *shell) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Paper trading desk. Type 'help' for commands.")
	sc := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "desk> ")
		if !sc.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}
		err := s.exec(ctx, sc.Text())
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	fmt.Fprintln(s.out)

	if p, err := eod.SummarizeToday(ctx); err == nil && p != "" {
		logger.Info(ctx, "EOD CSV written", "path", p)
	}
	return sc.Err()
}

func (s *shell) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "recs":
		recs, err := s.desk.GenerateRecommendations(ctx, s.cfg.Universe, s.cfg.BatchSize)
		if err != nil {
			return err
		}
		printRecommendations(s.out, recs)
	case "buy":
		return s.buy(ctx, args)
	case "track":
		report, err := s.desk.RunTrackingCycle(ctx)
		if err != nil {
			return err
		}
		printReport(s.out, report)
	case "positions":
		printPositions(s.out, s.desk.Positions())
	case "active":
		printIndexed(s.out, s.desk.ActivePositions())
	case "pnl":
		fmt.Fprintf(s.out, "Total P&L: %s\n", s.desk.TotalPnL().StringFixed(2))
	case "algo":
		return s.algo(ctx, args)
	case "universe":
		return s.universe(args)
	case "help", "?":
		fmt.Fprintln(s.out, shellHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
	return nil
}

func (s *shell) buy(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: buy SYMBOL [QTY]")
	}
	symbol := strings.ToUpper(args[0])
	qty := s.cfg.Order.DefaultQty
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		qty = n
	}

	for _, rec := range s.desk.Recommendations() {
		if rec.Symbol != symbol {
			continue
		}
		pos, err := s.desk.PlaceOrder(ctx, rec, qty)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Bought %d %s @ %s (target %s, stop loss %s)\n",
			pos.Quantity, pos.Symbol, pos.BuyPrice.StringFixed(2), pos.Target.StringFixed(2), pos.StopLoss.StringFixed(2))
		return nil
	}
	return fmt.Errorf("%s is not in the current recommendations, run 'recs' first", symbol)
}

func (s *shell) algo(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: algo start|stop|status MODE")
	}
	mode := interfaces.AlgoMode(strings.ToLower(args[1]))

	switch strings.ToLower(args[0]) {
	case "start":
		started, err := s.desk.StartAlgo(ctx, mode)
		if err != nil {
			return err
		}
		if !started {
			fmt.Fprintf(s.out, "%s algo already running\n", mode)
			return nil
		}
		fmt.Fprintf(s.out, "%s algo started\n", mode)
	case "stop":
		if err := s.desk.StopAlgo(ctx, mode); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s algo stopped\n", mode)
	case "status":
		st, err := s.desk.AlgoState(mode)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s algo: %s\n", mode, st)
	default:
		return fmt.Errorf("unknown algo action %q", args[0])
	}
	return nil
}

func (s *shell) universe(args []string) error {
	list := s.cfg.Universe
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "equity":
		case "indices":
			list = universe.Indices()
		case "mcx":
			list = universe.MCX()
		default:
			return fmt.Errorf("unknown universe %q", args[0])
		}
	}
	fmt.Fprintln(s.out, strings.Join(list, ", "))
	return nil
}
