package repo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"benchmarks/internal/adapters/sheets"
	"benchmarks/internal/core/requests"
	"benchmarks/internal/modkit/repokit"
	perr "benchmarks/internal/platform/errors"
	"benchmarks/internal/platform/store"
	kit "benchmarks/internal/platform/testkit"
)

type fakeRows struct {
	data [][3]string
	i    int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	for i := range dest {
		*(dest[i].(*string)) = row[i]
	}
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return []string{"date", "object", "request_count"} }

type fakeQ struct {
	sql  string
	rows [][3]string
	err  error
}

func (q *fakeQ) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	q.sql = sql
	if q.err != nil {
		return nil, q.err
	}
	return &fakeRows{data: q.rows}, nil
}

func (q *fakeQ) QueryRow(context.Context, string, ...any) store.Row { return nil }
func (q *fakeQ) Ping(context.Context) error                         { return nil }

func TestNewSQL_Validates(t *testing.T) {
	if _, err := NewSQL("mysql", "t"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("kind: %v", err)
	}
	_, err := NewSQL(KindPG, "counts; drop table x")
	e, ok := perr.As(err)
	if !ok || e.Field() != "table" {
		t.Fatalf("table: %v", err)
	}
	if _, err := NewSQL(KindClickhouse, "analytics.request_counts"); err != nil {
		t.Fatalf("qualified: %v", err)
	}
}

func TestSQLSource_Rows(t *testing.T) {
	for _, kind := range []string{KindPG, KindClickhouse} {
		b, err := NewSQL(kind, "")
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		q := &fakeQ{rows: [][3]string{
			{"2024-03-04", "/envivo/query", "5"},
			{"2024-03-05", "/other", "x"},
		}}
		src := repokit.MustBind(b, q)
		if src.Name() != kind {
			t.Fatalf("name %q", src.Name())
		}
		rows, err := src.Rows(context.Background())
		if err != nil {
			t.Fatalf("%s rows: %v", kind, err)
		}
		want := []requests.RawRow{
			{Date: "2024-03-04", Object: "/envivo/query", Count: "5"},
			{Date: "2024-03-05", Object: "/other", Count: "x"},
		}
		if len(rows) != 2 || rows[0] != want[0] || rows[1] != want[1] {
			t.Fatalf("%s rows %+v", kind, rows)
		}
		kit.MustContain(t, q.sql, "from "+DefaultTable)
	}
}

func TestSQLSource_QueryText(t *testing.T) {
	kit.MustContain(t, selectRows(KindPG, "t"), "request_count::text")
	kit.MustContain(t, selectRows(KindClickhouse, "t"), "toString(request_count)")
}

func TestSQLSource_Errors(t *testing.T) {
	b, _ := NewSQL(KindClickhouse, "")
	_, err := b.Bind(&fakeQ{err: errors.New("connection reset")}).Rows(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("clickhouse: %v", err)
	}

	b, _ = NewSQL(KindPG, "")
	_, err = b.Bind(&fakeQ{err: errors.New("boom")}).Rows(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("pg: %v", err)
	}

	coded := perr.Upstreamf("bad")
	_, err = b.Bind(&fakeQ{err: coded}).Rows(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("passthrough: %v", err)
	}
}

type fetchFunc func(context.Context) (*sheets.Result, error)

func (f fetchFunc) Fetch(ctx context.Context) (*sheets.Result, error) { return f(ctx) }

func TestCSVSource_DefaultsAndErrors(t *testing.T) {
	kit.MustPanic(t, func() { NewCSV(nil, sheets.Columns{}) })

	src := NewCSV(fetchFunc(func(context.Context) (*sheets.Result, error) {
		return &sheets.Result{Body: []byte("Date,Object,Request Count\n2024-03-04,/a,1\n")}, nil
	}), sheets.Columns{})
	if src.Name() != KindCSV {
		t.Fatalf("name %q", src.Name())
	}
	rows, err := src.Rows(context.Background())
	if err != nil || len(rows) != 1 || rows[0].Object != "/a" {
		t.Fatalf("rows %+v %v", rows, err)
	}

	failing := NewCSV(fetchFunc(func(context.Context) (*sheets.Result, error) {
		return nil, perr.Unavailablef("down")
	}), sheets.Columns{})
	if _, err := failing.Rows(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("got %v", err)
	}
}

func TestCSVSource_OverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(strings.Join([]string{
			"day,path,hits",
			"2024-03-04,/envivo/query,5",
			"2024-03-04,/other,2",
		}, "\n")))
	}))
	defer srv.Close()

	c := sheets.NewClient(sheets.Options{URL: srv.URL, MaxRetries: -1})
	src := NewCSV(c, sheets.Columns{Date: "day", Object: "path", Count: "hits"})
	rows, err := src.Rows(context.Background())
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 || rows[1].Count != "2" {
		t.Fatalf("rows %+v", rows)
	}
}

func TestSourceFunc(t *testing.T) {
	s := SourceFunc{Kind: "static", Fn: func(context.Context) ([]requests.RawRow, error) {
		return []requests.RawRow{{Date: "2024-03-04"}}, nil
	}}
	rows, err := s.Rows(context.Background())
	if s.Name() != "static" || err != nil || len(rows) != 1 {
		t.Fatalf("got %v %v", rows, err)
	}
}
