// Package module wires admin embeds into the API using modkit
package module

import (
	modkit "benchmarks/internal/modkit"
	"benchmarks/internal/modkit/httpkit"
	"benchmarks/internal/modkit/swaggerkit"
	"benchmarks/internal/platform/config"
	"benchmarks/internal/platform/logger"
	str "benchmarks/internal/platform/strings"
	"benchmarks/internal/services/api/admin/domain"
	adminhttp "benchmarks/internal/services/api/admin/http"
	adminsvc "benchmarks/internal/services/api/admin/service"
)

// EmbedsFromConfig reads BENCH_ADMIN_EMBEDS and falls back to the defaults
// An invalid entry panics through the logger like any other bad config
func EmbedsFromConfig(cfg config.Conf) []domain.Embed {
	entries := cfg.MayCSV("ADMIN_EMBEDS", nil)
	if len(entries) == 0 {
		return domain.Defaults()
	}
	embeds, err := domain.Parse(entries)
	if err != nil {
		logger.Get().Panic().Err(err).Str("key", cfg.Key("ADMIN_EMBEDS")).Msg("invalid admin embeds")
	}
	return embeds
}

// Module implements the admin module
type Module struct {
	b   modkit.Built
	svc adminsvc.Service
}

// New constructs the admin module over embeds
func New(embeds []domain.Embed, opts ...modkit.Option) modkit.Module {
	m := &Module{
		b:   modkit.Build(modkit.Built{Name: "admin", Prefix: "/admin"}, opts...),
		svc: adminsvc.New(embeds),
	}
	swaggerkit.Register(adminhttp.Docs(m.Prefix()))
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { adminhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.ModuleName() }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports exposes the embed registry
func (m *Module) Ports() any { return m.svc }
