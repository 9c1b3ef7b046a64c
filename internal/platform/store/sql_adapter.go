package store

import (
	"context"
	"errors"
	"time"

	"benchmarks/internal/platform/metrics"
	"benchmarks/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
)

// pgAdapter serves Querier over the pool, tracing and counting each query
type pgAdapter struct {
	p *pg.PG
}

var _ Querier = (*pgAdapter)(nil)

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.p == nil || a.p.Pool == nil {
		return errors.New("pg: not open")
	}
	return a.p.Pool.Ping(ctx)
}

func (a *pgAdapter) Close() error {
	a.p.Close()
	return nil
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	done := a.observe(ctx, sql, args)
	rs, err := a.p.Pool.Query(ctx, sql, args...)
	done(err)
	if err != nil {
		return nil, err
	}
	return pgRows{rs}, nil
}

// QueryRow observes at Scan, the point pgx surfaces the error
func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	done := a.observe(ctx, sql, args)
	return pgRow{row: a.p.Pool.QueryRow(ctx, sql, args...), done: done}
}

func (a *pgAdapter) observe(ctx context.Context, sql string, args []any) func(error) {
	start := time.Now()
	return func(err error) {
		elapsed := time.Since(start)
		metrics.RecordQuery("pg", err, elapsed)
		if a.p.Tracer != nil {
			a.p.Tracer.OnQuery(ctx, pg.NewEvent(sql, args, elapsed, a.p.SlowMs, err))
		}
	}
}

type pgRow struct {
	row  pgx.Row
	done func(error)
}

func (x pgRow) Scan(dst ...any) error {
	err := x.row.Scan(dst...)
	x.done(err)
	return err
}

type pgRows struct{ pgx.Rows }

func (x pgRows) Columns() []string {
	fds := x.FieldDescriptions()
	out := make([]string, len(fds))
	for i, fd := range fds {
		out[i] = fd.Name
	}
	return out
}
