// Package http provides http transport for the dashboard
package http

import (
	stdhttp "net/http"
	"strconv"

	"benchmarks/internal/modkit/httpkit"
	perr "benchmarks/internal/platform/errors"
	"benchmarks/internal/services/api/dashboard/domain"
	svc "benchmarks/internal/services/api/dashboard/service"
)

// Register mounts dashboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// cards and averages
	httpkit.Get(r, "/summary", h.summary)

	// chart series
	httpkit.Get(r, "/daily", h.daily)

	// popular objects table
	httpkit.Get(r, "/objects", h.objects)

	// rows dropped by ingestion
	httpkit.Get(r, "/skipped", h.skipped)

	// every view of one period
	httpkit.Get(r, "/report", h.report)
	httpkit.PostJSON[domain.Query](r, "/query", h.query)

	// forced reload
	httpkit.Post(r, "/refresh", h.refresh)
}

type handlers struct{ svc svc.Service }

// queryFrom binds ?period= and ?limit= onto a Query and validates it
func queryFrom(r *stdhttp.Request) (domain.Query, error) {
	v := r.URL.Query()
	q := domain.Query{Period: v.Get("period")}
	if s := v.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return q, perr.WithField(perr.Validationf("limit must be an integer"), "limit")
		}
		q.Limit = n
	}
	return q, httpkit.Validate(q)
}

// swagger:route GET /dashboard/summary Dashboard dashboardSummary
// @Summary Week over week cards and period averages
// @Tags Dashboard
// @Produce json
// @Param period query string false "current_week, current_month, current_year or all_time"
// @Success 200 {object} domain.SummaryOut "ok"
// @Router /dashboard/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	q, err := queryFrom(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Summary(r.Context(), q)
}

// swagger:route GET /dashboard/daily Dashboard dashboardDaily
// @Summary Daily totals inside the period window
// @Tags Dashboard
// @Produce json
// @Param period query string false "period name"
// @Success 200 {object} domain.DailyOut "ok"
// @Router /dashboard/daily [get]
func (h *handlers) daily(r *stdhttp.Request) (any, error) {
	q, err := queryFrom(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Daily(r.Context(), q)
}

// swagger:route GET /dashboard/objects Dashboard dashboardObjects
// @Summary Popular objects inside the period window
// @Tags Dashboard
// @Produce json
// @Param period query string false "period name"
// @Param limit query int false "rows to return, 1 to 500"
// @Success 200 {object} domain.ObjectsOut "ok"
// @Router /dashboard/objects [get]
func (h *handlers) objects(r *stdhttp.Request) (any, error) {
	q, err := queryFrom(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Objects(r.Context(), q)
}

// swagger:route GET /dashboard/skipped Dashboard dashboardSkipped
// @Summary Rows dropped while ingesting the current snapshot
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.SkippedOut "ok"
// @Router /dashboard/skipped [get]
func (h *handlers) skipped(r *stdhttp.Request) (any, error) {
	return h.svc.Skipped(r.Context())
}

// swagger:route GET /dashboard/report Dashboard dashboardReport
// @Summary Summary, series and table for one period
// @Tags Dashboard
// @Produce json
// @Param period query string false "period name"
// @Param limit query int false "rows to return, 1 to 500"
// @Success 200 {object} domain.ReportOut "ok"
// @Router /dashboard/report [get]
func (h *handlers) report(r *stdhttp.Request) (any, error) {
	q, err := queryFrom(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Report(r.Context(), q)
}

// swagger:route POST /dashboard/query Dashboard dashboardQuery
// @Summary Same as report with a JSON body
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.Query true "Query"
// @Success 200 {object} domain.ReportOut "ok"
// @Router /dashboard/query [post]
func (h *handlers) query(r *stdhttp.Request, in domain.Query) (any, error) {
	return h.svc.Report(r.Context(), in)
}

// swagger:route POST /dashboard/refresh Dashboard dashboardRefresh
// @Summary Drop the cached snapshot and reload the source
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.SnapshotInfo "ok"
// @Router /dashboard/refresh [post]
func (h *handlers) refresh(r *stdhttp.Request) (any, error) {
	return h.svc.Refresh(r.Context())
}
