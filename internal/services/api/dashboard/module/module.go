// Package module wires the dashboard into the API using modkit
package module

import (
	"fmt"

	"benchmarks/internal/adapters/sheets"
	"benchmarks/internal/core/requests"
	modkit "benchmarks/internal/modkit"
	"benchmarks/internal/modkit/httpkit"
	"benchmarks/internal/modkit/repokit"
	"benchmarks/internal/modkit/swaggerkit"
	"benchmarks/internal/platform/config"
	str "benchmarks/internal/platform/strings"
	"benchmarks/internal/services/api/dashboard/domain"
	dashhttp "benchmarks/internal/services/api/dashboard/http"
	dashrepo "benchmarks/internal/services/api/dashboard/repo"
	dashsvc "benchmarks/internal/services/api/dashboard/service"
)

// DefaultCSVURL is the published export of the benchmark sheet
const DefaultCSVURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vTVHwv5X6-u3M7f8HJNih14hSnVpBlNKFUe_O76bTUJ2PaaOAfrqIrwjWsyc9DNFKxcYoEsWutl1_K6/pub?output=csv"

// Options select the row source and tune the snapshot cache
type Options struct {
	Kind    string
	Table   string
	CSV     sheets.Options
	Columns sheets.Columns
	Service dashsvc.Options

	// Source overrides Kind when set
	Source dashrepo.Source
}

// FromConfig reads dashboard options from BENCH_ prefixed env
func FromConfig(cfg config.Conf) Options {
	return Options{
		Kind:  cfg.MayEnum("SOURCE_KIND", dashrepo.KindCSV, dashrepo.KindCSV, dashrepo.KindPG, dashrepo.KindClickhouse),
		Table: cfg.MayString("SOURCE_TABLE", dashrepo.DefaultTable),
		CSV: sheets.Options{
			URL:         cfg.MayURL("CSV_URL", DefaultCSVURL),
			Timeout:     cfg.MayDuration("CSV_TIMEOUT", sheets.DefaultTimeout),
			MinInterval: cfg.MayDuration("CSV_MIN_INTERVAL", sheets.DefaultMinInterval),
		},
		Columns: sheets.Columns{
			Date:   cfg.MayString("CSV_DATE_COLUMN", sheets.DefaultColumns.Date),
			Object: cfg.MayString("CSV_OBJECT_COLUMN", sheets.DefaultColumns.Object),
			Count:  cfg.MayString("CSV_COUNT_COLUMN", sheets.DefaultColumns.Count),
		},
		Service: dashsvc.Options{
			TrackedPath: cfg.MayString("TRACKED_PATH", requests.DefaultTrackedPath),
			TTL:         cfg.MayDuration("SNAPSHOT_TTL", dashsvc.DefaultTTL),
			CacheSize:   cfg.MayPositiveInt("SNAPSHOT_CACHE_SIZE", dashsvc.DefaultCacheSize),

			RefreshEvery: cfg.MayDuration("SNAPSHOT_REFRESH", 0),
		},
	}
}

// Ports are what the dashboard exposes to other modules
type Ports struct {
	Dashboard domain.ServicePort
	Snapshots domain.SnapshotPort
}

// Module implements the dashboard module
type Module struct {
	b     modkit.Built
	svc   dashsvc.Service
	ports Ports
}

// NewSource builds the row source o names; SQL kinds need the matching backend on deps
func NewSource(deps modkit.Deps, o Options) (dashrepo.Source, error) {
	if o.Source != nil {
		return o.Source, nil
	}
	switch o.Kind {
	case "", dashrepo.KindCSV:
		return dashrepo.NewCSV(sheets.NewClient(o.CSV), o.Columns), nil
	case dashrepo.KindPG, dashrepo.KindClickhouse:
		q := deps.PG
		if o.Kind == dashrepo.KindClickhouse {
			q = deps.CH
		}
		if q == nil {
			return nil, fmt.Errorf("dashboard: source %s is not configured", o.Kind)
		}
		b, err := dashrepo.NewSQL(o.Kind, o.Table)
		if err != nil {
			return nil, err
		}
		return repokit.MustBind(b, q), nil
	}
	return nil, fmt.Errorf("dashboard: unknown source kind %q", o.Kind)
}

// New constructs the dashboard module; a misconfigured source panics
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	domain.RegisterValidators()

	src, err := NewSource(deps, o)
	if err != nil {
		panic(err)
	}
	svc := dashsvc.New(src, o.Service)

	m := &Module{
		b:     modkit.Build(modkit.Built{Name: "dashboard", Prefix: "/dashboard"}, opts...),
		svc:   svc,
		ports: Ports{Dashboard: svc, Snapshots: svc},
	}
	swaggerkit.Register(dashhttp.Docs(m.Prefix()))
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { dashhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.ModuleName() }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service returns the underlying service for callers outside HTTP
func (m *Module) Service() dashsvc.Service { return m.svc }
