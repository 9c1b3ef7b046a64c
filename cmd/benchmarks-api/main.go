// @title         Benchmarks API
// @version       0.1.0
// @description   Read only endpoints for daily request totals and popular objects

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"benchmarks/internal/modkit/httpkit"
	"benchmarks/internal/modkit/repokit"
	"benchmarks/internal/platform/config"
	"benchmarks/internal/platform/logger"
	phttp "benchmarks/internal/platform/net/http"
	"benchmarks/internal/platform/net/middleware"
	"benchmarks/internal/platform/store"

	"benchmarks/internal/services/api"
	dashmod "benchmarks/internal/services/api/dashboard/module"

	"github.com/go-chi/chi/v5"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// everything lives under BENCH_*
	cfg := config.New().Prefix("BENCH_")
	l := logger.Named("api")

	dash := dashmod.FromConfig(cfg)

	// SQL backends only open when the row source needs them
	st, err := store.Open(ctx, store.FromEnv("api", dash.Kind, cfg), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Str("source", dash.Kind).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// heartbeat answers before the versioned stack
	srv := phttp.NewServer(cfg, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/health"))
	})

	mods := api.Mount(srv.Router(), api.Options{
		Config: cfg,
		Store:  st,
		Logger: l,
		Stack: httpkit.StackOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
			SlowRequest:    cfg.MayDuration("SLOW_REQUEST", 2*time.Second),
			Timeout:        cfg.MayDuration("HANDLER_TIMEOUT", 30*time.Second),
		},
		EnableSwagger:  cfg.MayBool("SWAGGER", true),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		EnableMetrics:  cfg.MayBool("METRICS", true),
		Dashboard:      &dash,
	})

	// background reloads keep request paths off the upstream fetch
	for _, m := range mods {
		if dm, ok := m.(*dashmod.Module); ok && dash.Service.RefreshEvery > 0 {
			go func() {
				if err := dm.Service().Warm(ctx); err != nil && ctx.Err() == nil {
					l.Error().Err(err).Msg("snapshot warmer stopped")
				}
			}()
		}
	}

	l.Info().Str("addr", srv.Addr()).Str("source", dash.Kind).Msg("benchmarks api listening")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
