// Package api provides the HTTP API for the application
package api

import (
	"benchmarks/internal/core/version"
	"benchmarks/internal/platform/config"
	"benchmarks/internal/platform/logger"
	"benchmarks/internal/platform/metrics"
	phttp "benchmarks/internal/platform/net/http"
	"benchmarks/internal/platform/store"

	"benchmarks/internal/modkit"
	"benchmarks/internal/modkit/httpkit"
	"benchmarks/internal/modkit/module"
	"benchmarks/internal/modkit/swaggerkit"

	admindomain "benchmarks/internal/services/api/admin/domain"
	adminmod "benchmarks/internal/services/api/admin/module"
	dashdomain "benchmarks/internal/services/api/dashboard/domain"
	dashmod "benchmarks/internal/services/api/dashboard/module"
	metamod "benchmarks/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Stack          httpkit.StackOptions
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool

	// Dashboard and Embeds default to what Config says when nil
	Dashboard *dashmod.Options
	Embeds    []admindomain.Embed
}

// Mount mounts the API service onto the given router and returns its modules
func Mount(r phttp.Router, opt Options) []module.Module {
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}
	deps := modkit.FromStore(*log, opt.Config, opt.Store)

	dash := dashmod.FromConfig(deps.Cfg)
	if opt.Dashboard != nil {
		dash = *opt.Dashboard
	}
	embeds := opt.Embeds
	if embeds == nil {
		embeds = adminmod.EmbedsFromConfig(deps.Cfg)
	}

	dashboard := dashmod.New(deps, dash)
	snaps, _ := module.PortsOf[dashdomain.SnapshotPort](dashboard)
	mods := []module.Module{
		metamod.New(deps, dash.Kind, snaps),
		dashboard,
		adminmod.New(embeds),
	}

	// docs, profiler and metrics sit outside the versioned stack
	swaggerkit.Mount(r, swaggerkit.Info{
		Title:       "Benchmarks API",
		Version:     version.Info().Version,
		Description: "Daily request totals, week over week cards and popular objects",
	}, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", metrics.Handler())
	}

	stack := opt.Stack
	stack.Metrics = opt.EnableMetrics
	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
	return mods
}
