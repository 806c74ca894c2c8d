package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"equity-desk/internal/engine"
	"equity-desk/internal/engine/engineobs"
	"equity-desk/internal/eod"
	"equity-desk/internal/eod/eodobs"
	"equity-desk/internal/interfaces"
	"equity-desk/internal/logger"
	"equity-desk/internal/metrics"
	"equity-desk/internal/randsrc"
	"equity-desk/internal/store"
	"equity-desk/internal/trace"
	"equity-desk/internal/tradelog"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

var istLocation = time.FixedZone("IST", 19800)

// app is everything one command invocation needs.
type app struct {
	cfg     *store.Config
	desk    interfaces.Desk
	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := initializeSystem(ctx)
	if err != nil {
		return nil, err
	}
	initializeEOD(cfg.Journal.Dir)
	compressOldLogs(ctx, cfg)

	a := &app{cfg: cfg}
	journal, err := initializeJournal(ctx, cfg, a)
	if err != nil {
		a.close(ctx)
		return nil, err
	}
	m := initializeMetrics(ctx, metricsAddr, a)
	a.desk = initializeDesk(cfg, journal, m)
	return a, nil
}

func (a *app) close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn(ctx, "Shutdown step failed", "error", err)
		}
	}
	shutdownTracing(ctx)
}

// initializeSystem loads .env, starts logging and tracing and loads config.
func initializeSystem(ctx context.Context) (*store.Config, error) {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(version); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	cfg, err := store.LoadOrDefault(configPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", configPath)
		return nil, err
	}
	return cfg, nil
}

func shutdownTracing(ctx context.Context) {
	if err := trace.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to shut down tracer: %v\n", err)
	}
}

// initializeEOD wraps the journal-dir summarizer with observability and
// makes it the package default.
func initializeEOD(dir string) {
	eod.SetDefaultSummarizer(eodobs.Wrap(eod.NewSummarizer(dir)))
}

func compressOldLogs(ctx context.Context, cfg *store.Config) {
	if cfg.Journal.RetentionDays <= 0 {
		return
	}
	dir := tradelog.NewFileJournal(cfg.Journal.Dir).Dir()
	if err := tradelog.CompressOlder(dir, cfg.Journal.RetentionDays); err != nil {
		logger.Warn(ctx, "Failed to compress old logs", "error", err, "dir", dir)
	}
}

// initializeJournal returns the daily file journal, fanned out to SQLite
// when journal.sqlite_path is set.
func initializeJournal(ctx context.Context, cfg *store.Config, a *app) (interfaces.TradeJournal, error) {
	files := tradelog.NewFileJournal(cfg.Journal.Dir)
	if cfg.Journal.SQLitePath == "" {
		return files, nil
	}

	db, err := tradelog.OpenSQLite(cfg.Journal.SQLitePath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to open SQLite journal", err, "path", cfg.Journal.SQLitePath)
		return nil, err
	}
	a.closers = append(a.closers, db.Close)
	logger.Info(ctx, "SQLite journal enabled", "path", cfg.Journal.SQLitePath)
	return tradelog.Multi{files, db}, nil
}

// initializeMetrics serves a fresh registry on addr. It returns nil when
// addr is empty.
func initializeMetrics(ctx context.Context, addr string, a *app) *metrics.Metrics {
	if addr == "" {
		return nil
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithErr(ctx, "Metrics server stopped", err, "addr", addr)
		}
	}()
	a.closers = append(a.closers, func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	logger.Info(ctx, "Serving metrics", "addr", addr, "path", "/metrics")
	return m
}

func initializeDesk(cfg *store.Config, journal interfaces.TradeJournal, m *metrics.Metrics) interfaces.Desk {
	d := engine.New(cfg, randsrc.New(cfg.Seed), journal)
	return engineobs.Wrap(d, m)
}
