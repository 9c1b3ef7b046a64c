// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"benchmarks/internal/core/version"
	"benchmarks/internal/modkit/httpkit"
	dashdomain "benchmarks/internal/services/api/dashboard/domain"
)

// Pinger is satisfied by backends that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Readiness states
const (
	StatusOK      = "ok"
	StatusFail    = "fail"
	StatusSkipped = "skipped" // backend not used by the row source
	StatusCold    = "cold"    // no snapshot loaded yet; the next read loads one
)

// Deps are the handler dependencies
// PG and CH stay nil when the row source does not use them
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Source      string
	PG          Pinger
	CH          Pinger
	Snapshots   dashdomain.SnapshotPort

	now func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.now == nil {
		d.now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"benchmarks-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness; only a failed check fails it
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Source string       `json:"source" example:"csv"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info and the snapshot being served
type ServiceResponse struct {
	Name     string                   `json:"name"    example:"benchmarks-api"`
	Source   string                   `json:"source"  example:"csv"`
	Started  string                   `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime   int64                    `json:"uptime"  example:"300"`
	Snapshot *dashdomain.SnapshotInfo `json:"snapshot"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: stamp(h.deps.StartedAt),
		Now:     stamp(h.deps.now()),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with backend and snapshot checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := ReadyResponse{
		Status: StatusOK,
		Source: h.deps.Source,
		Checks: []ReadyCheck{
			ping(ctx, "pg", h.deps.PG),
			ping(ctx, "ch", h.deps.CH),
			h.snapshotCheck(),
		},
		Now: stamp(h.deps.now()),
	}
	for _, c := range resp.Checks {
		if c.Status == StatusFail {
			resp.Status = StatusFail
		}
	}
	return resp, nil
}

func ping(ctx stdctx.Context, name string, p Pinger) ReadyCheck {
	c := ReadyCheck{Name: name, Status: StatusSkipped}
	if p == nil {
		return c
	}
	c.Status = StatusOK
	if err := p.Ping(ctx); err != nil {
		c.Status, c.Error = StatusFail, err.Error()
	}
	return c
}

func (h *handlers) snapshotCheck() ReadyCheck {
	c := ReadyCheck{Name: "snapshot", Status: StatusSkipped}
	if h.deps.Snapshots == nil {
		return c
	}
	c.Status = StatusCold
	if _, ok := h.deps.Snapshots.Cached(); ok {
		c.Status = StatusOK
	}
	return c
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info, uptime and the cached snapshot
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	out := ServiceResponse{
		Name:    h.deps.ServiceName,
		Source:  h.deps.Source,
		Started: stamp(h.deps.StartedAt),
		Uptime:  int64(h.deps.now().Sub(h.deps.StartedAt) / time.Second),
	}
	if h.deps.Snapshots != nil {
		if info, ok := h.deps.Snapshots.Cached(); ok {
			out.Snapshot = &info
		}
	}
	return out, nil
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }
