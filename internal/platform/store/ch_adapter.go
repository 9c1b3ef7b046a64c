package store

import (
	"context"
	"time"

	"benchmarks/internal/platform/metrics"
	"benchmarks/internal/platform/store/ch"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// chAdapter serves Querier over the native connection
type chAdapter struct {
	c *ch.CH
}

var _ Querier = (*chAdapter)(nil)

func (a *chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	r, err := a.c.Query(ctx, sql, args...)
	metrics.RecordQuery("clickhouse", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	return chRows{r}, nil
}

func (a *chAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return chRow{row: a.c.QueryRow(ctx, sql, args...), start: time.Now()}
}

func (a *chAdapter) Ping(ctx context.Context) error { return a.c.Ping(ctx) }

func (a *chAdapter) Close() error { return a.c.Close() }

type chRow struct {
	row   driver.Row
	start time.Time
}

func (x chRow) Scan(dst ...any) error {
	err := x.row.Scan(dst...)
	metrics.RecordQuery("clickhouse", err, time.Since(x.start))
	return err
}

// chRows swallows the Close error, Err reports anything that matters
type chRows struct{ driver.Rows }

func (x chRows) Close() { _ = x.Rows.Close() }
