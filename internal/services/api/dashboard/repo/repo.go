// Package repo provides the row sources behind the dashboard
package repo

import (
	"context"

	"benchmarks/internal/core/requests"
)

// Source kinds accepted by BENCH_SOURCE_KIND
const (
	KindCSV        = "csv"
	KindPG         = "pg"
	KindClickhouse = "clickhouse"
)

// Source delivers raw rows in sheet order
type Source interface {
	Name() string
	Rows(ctx context.Context) ([]requests.RawRow, error)
}

// SourceFunc adapts a function to Source
type SourceFunc struct {
	Kind string
	Fn   func(ctx context.Context) ([]requests.RawRow, error)
}

// Name returns the source kind
func (f SourceFunc) Name() string { return f.Kind }

// Rows calls the function
func (f SourceFunc) Rows(ctx context.Context) ([]requests.RawRow, error) { return f.Fn(ctx) }
