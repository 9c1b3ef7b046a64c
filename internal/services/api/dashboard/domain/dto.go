// Package domain holds DTOs for dashboard http and service contracts
package domain

import (
	"time"

	"benchmarks/internal/core/requests"
)

// DefaultPeriod is used when a query names no period
const DefaultPeriod = requests.CurrentMonth

// DefaultLimit caps the popular objects table when a query names no limit
const DefaultLimit = 25

// Query selects a period and, for tables, a row limit
// Period accepts wire names (current_week) or labels (Current Week)
type Query struct {
	Period string `json:"period,omitempty" validate:"omitempty,period" example:"current_month"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"25"`
}

// Resolve returns the parsed period and limit with defaults applied
// Query must have passed validation
func (q Query) Resolve() (requests.Period, int) {
	p := DefaultPeriod
	if q.Period != "" {
		if parsed, err := requests.ParsePeriod(q.Period); err == nil {
			p = parsed
		}
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return p, limit
}

// SnapshotInfo describes the snapshot a response was computed from
type SnapshotInfo struct {
	ID        string         `json:"id" example:"0b7d4c1e-7f0e-4c59-9d0e-3f4f1b1f2a10"`
	Source    string         `json:"source" example:"csv"`
	FetchedAt time.Time      `json:"fetched_at" example:"2025-09-03T13:00:00Z"`
	Rows      int            `json:"rows" example:"1250"`
	Skipped   int            `json:"skipped" example:"3"`
	Days      int            `json:"days" example:"240"`
	Anchor    *requests.Date `json:"anchor,omitempty" swaggertype:"string" example:"2025-09-02"`
}

// SummaryOut feeds the two daily cards and the averages
type SummaryOut struct {
	Snapshot SnapshotInfo     `json:"snapshot"`
	Label    string           `json:"label" example:"Current Month"`
	Viewing  string           `json:"viewing,omitempty" example:"Tuesday, September 2, 2025"`
	Summary  requests.Summary `json:"summary"`
}

// DailyOut is the chart series for a period
type DailyOut struct {
	Snapshot SnapshotInfo          `json:"snapshot"`
	Period   requests.Period       `json:"period" swaggertype:"string" example:"current_week"`
	Window   requests.Window       `json:"window"`
	Days     []requests.DailyTotal `json:"days"`
}

// ObjectsOut is the popular objects table for a period
type ObjectsOut struct {
	Snapshot SnapshotInfo           `json:"snapshot"`
	Period   requests.Period        `json:"period" swaggertype:"string" example:"current_week"`
	Objects  []requests.ObjectTotal `json:"objects"`
}

// SkippedOut lists the rows ingestion dropped
type SkippedOut struct {
	Snapshot SnapshotInfo    `json:"snapshot"`
	Rows     []requests.Skip `json:"rows"`
}

// ReportOut bundles every view of one period for a single round trip
type ReportOut struct {
	Snapshot SnapshotInfo           `json:"snapshot"`
	Label    string                 `json:"label" example:"Current Week"`
	Viewing  string                 `json:"viewing,omitempty" example:"Tuesday, September 2, 2025"`
	Summary  requests.Summary       `json:"summary"`
	Days     []requests.DailyTotal  `json:"days"`
	Objects  []requests.ObjectTotal `json:"objects"`
}

// ViewingLayout formats the anchor the way the dashboard header shows it
const ViewingLayout = "Monday, January 2, 2006"

// Viewing returns the dashboard header text for anchor
func Viewing(anchor requests.Date, ok bool) string {
	if !ok {
		return ""
	}
	return anchor.Time().Format(ViewingLayout)
}
