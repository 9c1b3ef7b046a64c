package repo

import (
	"context"
	"fmt"

	"benchmarks/internal/core/requests"
	"benchmarks/internal/modkit/repokit"
	perr "benchmarks/internal/platform/errors"
	"benchmarks/internal/platform/store"
	str "benchmarks/internal/platform/strings"
)

// DefaultTable holds one row per date and object
const DefaultTable = "request_counts"

type (
	// SQL is a binder that reads rows from a table over a Queryer
	SQL struct {
		kind  string
		table string
	}
	// table implements Source over a bound Queryer
	table struct {
		kind  string
		query string
		q     repokit.Queryer
	}
)

// NewSQL returns a binder for kind (pg or clickhouse) reading from tbl
// tbl must be a plain or schema qualified identifier
func NewSQL(kind, tbl string) (repokit.Binder[Source], error) {
	if kind != KindPG && kind != KindClickhouse {
		return nil, perr.InvalidArgf("unsupported sql source %q", kind)
	}
	if tbl == "" {
		tbl = DefaultTable
	}
	if !str.IsIdent(tbl) {
		return nil, perr.WithField(perr.InvalidArgf("invalid table name %q", tbl), "table")
	}
	return SQL{kind: kind, table: tbl}, nil
}

// Bind wires a Queryer to the source
func (b SQL) Bind(q repokit.Queryer) Source {
	return &table{kind: b.kind, query: selectRows(b.kind, b.table), q: q}
}

// every column comes back as text so ingestion validates it like a sheet cell
func selectRows(kind, tbl string) string {
	if kind == KindClickhouse {
		return fmt.Sprintf(`
select toString(date), toString(object), toString(request_count)
from %s
order by date, object`, tbl)
	}
	return fmt.Sprintf(`
select coalesce(date::text, ''), coalesce(object::text, ''), coalesce(request_count::text, '')
from %s
order by date, object`, tbl)
}

func (t *table) Name() string { return t.kind }

func (t *table) Rows(ctx context.Context) ([]requests.RawRow, error) {
	out, err := store.Many(ctx, t.q, scanRaw, t.query)
	if err != nil {
		return nil, t.wrap(err)
	}
	return out, nil
}

func (t *table) wrap(err error) error {
	if _, ok := perr.As(err); ok {
		return err
	}
	if t.kind == KindPG {
		return perr.FromPostgres(err, "read request counts")
	}
	return perr.Wrap(err, perr.ErrorCodeUnavailable, "read request counts")
}

func scanRaw(r store.Row) (requests.RawRow, error) {
	var raw requests.RawRow
	if err := r.Scan(&raw.Date, &raw.Object, &raw.Count); err != nil {
		return raw, err
	}
	return raw, nil
}
