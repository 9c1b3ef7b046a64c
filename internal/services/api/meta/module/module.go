// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"benchmarks/internal/core/version"
	modkit "benchmarks/internal/modkit"
	"benchmarks/internal/modkit/httpkit"
	"benchmarks/internal/modkit/swaggerkit"
	str "benchmarks/internal/platform/strings"
	dashdomain "benchmarks/internal/services/api/dashboard/domain"

	metahttp "benchmarks/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module; source names the configured row source and
// snaps, when set, reports the snapshot the dashboard is serving
func New(deps modkit.Deps, source string, snaps dashdomain.SnapshotPort, opts ...modkit.Option) modkit.Module {
	m := &Module{
		b: modkit.Build(modkit.Built{Name: "meta", Prefix: "/meta"}, opts...),
		deps: metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   time.Now(),
			Source:      source,
			PG:          deps.PG,
			CH:          deps.CH,
			Snapshots:   snaps,
		},
	}
	swaggerkit.Register(metahttp.Docs(m.Prefix()))
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.ModuleName() }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
