// Command benchmarks-report fetches the row source once and prints the dashboard to the terminal
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"benchmarks/internal/modkit"
	"benchmarks/internal/modkit/repokit"
	"benchmarks/internal/platform/config"
	"benchmarks/internal/platform/logger"
	"benchmarks/internal/platform/net/http/bind"
	"benchmarks/internal/platform/store"
	"benchmarks/internal/services/api/dashboard/domain"
	dashmod "benchmarks/internal/services/api/dashboard/module"
	dashsvc "benchmarks/internal/services/api/dashboard/service"
	"benchmarks/internal/services/report"
)

func main() {
	if err := run(); err != nil {
		logger.Named("report").Error().Err(err).Msg("report failed")
		os.Exit(1)
	}
}

func run() error {
	// stdout carries the report
	lo := logger.FromEnv()
	lo.Output = "stderr"
	logger.Init(lo)

	cfg := config.New().Prefix("BENCH_")
	dash := dashmod.FromConfig(cfg)

	period := flag.String("period", domain.DefaultPeriod.String(), "current_week, current_month, current_year or all_time")
	source := flag.String("source", dash.Kind, "row source: csv, pg or clickhouse")
	limit := flag.Int("limit", 10, "popular objects to list")
	days := flag.Int("days", 7, "trailing daily totals to list, 0 for the whole period")
	csvURL := flag.String("url", dash.CSV.URL, "published csv export, csv source only")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}
	dash.Kind = *source
	dash.CSV.URL = *csvURL

	domain.RegisterValidators()
	q := domain.Query{Period: *period, Limit: *limit}
	if err := bind.Validate(q); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := logger.Named("report")
	st, err := store.Open(ctx, store.FromEnv("report", dash.Kind, cfg), store.WithLogger(*l))
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	if err := repokit.Guard(ctx, st); err != nil {
		return err
	}

	src, err := dashmod.NewSource(modkit.FromStore(*l, cfg, st), dash)
	if err != nil {
		return err
	}
	rep, err := dashsvc.New(src, dash.Service).Report(ctx, q)
	if err != nil {
		return err
	}

	report.New(os.Stdout, report.Options{
		TrackedPath: dash.Service.TrackedPath,
		Days:        *days,
	}).Render(rep)
	return nil
}
