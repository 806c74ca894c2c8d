// desk is a paper-trading desk: it generates equity recommendations, opens
// simulated positions and tracks them to their target or stop loss.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"equity-desk/internal/eod"
	"equity-desk/internal/logger"

	"github.com/spf13/cobra"
)

var (
	version     = "0.1.0"
	configPath  string
	metricsAddr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "desk",
		Short: "Paper equity trading desk",
		Long: `desk generates randomized equity recommendations, lets you buy them
as simulated positions and tracks those positions tick by tick until they
hit their target or stop loss. Every fill is journaled.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file (defaults are used when missing)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9100")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(shellCmd())
	rootCmd.AddCommand(eodCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "desk version %s\n", version)
		},
	}
}

func recommendCmd() *cobra.Command {
	var (
		count  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate one batch of recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			if count <= 0 {
				count = a.cfg.BatchSize
			}
			recs, err := a.desk.GenerateRecommendations(cmd.Context(), a.cfg.Universe, count)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), recs)
			}
			printRecommendations(cmd.OutOrStdout(), recs)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of recommendations (defaults to batch_size)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func simulateCmd() *cobra.Command {
	var opts simulateOptions
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted session: generate, buy, then track",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			if opts.qty <= 0 {
				opts.qty = a.cfg.Order.DefaultQty
			}
			return simulate(cmd.Context(), a, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&opts.buy, "buy", 1, "How many of the generated recommendations to buy")
	cmd.Flags().IntVar(&opts.qty, "qty", 0, "Shares per order (defaults to order.default_qty)")
	cmd.Flags().IntVar(&opts.cycles, "cycles", 10, "Maximum tracking cycles")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print JSON instead of tables")
	return cmd
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive desk session on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			sh := newShell(a.desk, a.cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			return sh.run(cmd.Context())
		},
	}
}

func eodCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "eod",
		Short: "Write the end-of-day CSV for a journal day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := initializeSystem(ctx)
			if err != nil {
				return err
			}
			defer shutdownTracing(ctx)
			initializeEOD(cfg.Journal.Dir)

			day := time.Now()
			if date != "" {
				day, err = time.ParseInLocation("2006-01-02", date, istLocation)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
			}

			p, err := eod.SummarizeDay(ctx, day)
			if err != nil {
				return err
			}
			if p == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "No fills journaled on %s\n", day.In(istLocation).Format("2006-01-02"))
				return nil
			}
			logger.Info(ctx, "EOD CSV written", "path", p)
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Journal day as YYYY-MM-DD in IST (defaults to today)")
	return cmd
}
