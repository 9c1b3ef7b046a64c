package store

import (
	"context"
	"errors"
	"testing"
)

type fakeRows struct {
	data [][]any
	i    int
	err  error
}

func (r *fakeRows) Next() bool { r.i++; return r.i <= len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	for j, d := range dest {
		*(d.(*string)) = r.data[r.i-1][j].(string)
	}
	return nil
}
func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return []string{"a", "b"} }

type fakeRow struct{ v string }

func (r fakeRow) Scan(dest ...any) error { *(dest[0].(*string)) = r.v; return nil }

type fakeQ struct {
	rows    *fakeRows
	pingErr error
	closed  bool
	sql     string
}

func (f *fakeQ) Query(_ context.Context, sql string, _ ...any) (Rows, error) {
	f.sql = sql
	if f.rows == nil {
		return nil, errors.New("query failed")
	}
	return f.rows, nil
}
func (f *fakeQ) QueryRow(context.Context, string, ...any) Row { return fakeRow{v: "16.2"} }
func (f *fakeQ) Ping(context.Context) error                   { return f.pingErr }
func (f *fakeQ) Close() error                                 { f.closed = true; return nil }

func TestOpen_NoBackends(t *testing.T) {
	s, err := Open(context.Background(), Config{AppName: "test"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("expected no backends")
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("guard: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpen_OptionError(t *testing.T) {
	bad := func(*Store) error { return errors.New("bad option") }
	if _, err := Open(context.Background(), Config{}, bad); err == nil {
		t.Fatal("expected option error")
	}
}

func TestGuardAndClose(t *testing.T) {
	pgq := &fakeQ{pingErr: errors.New("down")}
	chq := &fakeQ{}
	s := &Store{PG: pgq, CH: chq}

	err := s.Guard(context.Background())
	if err == nil || err.Error() != "pg: down" {
		t.Fatalf("guard = %v", err)
	}
	if err := s.Close(); err != nil || !pgq.closed || !chq.closed {
		t.Fatalf("close err=%v pg=%v ch=%v", err, pgq.closed, chq.closed)
	}

	var nilStore *Store
	if nilStore.Guard(context.Background()) == nil {
		t.Fatal("nil store should fail guard")
	}
}

func TestMany(t *testing.T) {
	q := &fakeQ{rows: &fakeRows{data: [][]any{{"2024-01-01", "/a"}, {"2024-01-02", "/b"}}}}
	got, err := Many(context.Background(), q, func(r Row) ([2]string, error) {
		var out [2]string
		err := r.Scan(&out[0], &out[1])
		return out, err
	}, "select date, object from t")
	if err != nil {
		t.Fatalf("many: %v", err)
	}
	if len(got) != 2 || got[1][1] != "/b" {
		t.Fatalf("got %v", got)
	}

	if _, err := Many(context.Background(), &fakeQ{}, func(Row) (int, error) { return 0, nil }, "x"); err == nil {
		t.Fatal("expected query error")
	}

	iterErr := &fakeQ{rows: &fakeRows{err: errors.New("broken stream")}}
	if _, err := Many(context.Background(), iterErr, func(Row) (int, error) { return 0, nil }, "x"); err == nil {
		t.Fatal("expected iteration error")
	}
}

func TestScalar(t *testing.T) {
	v, err := Scalar[string](context.Background(), &fakeQ{}, "show server_version")
	if err != nil || v != "16.2" {
		t.Fatalf("scalar = %q %v", v, err)
	}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestPGRow_ObservesAtScan(t *testing.T) {
	boom := errors.New("no rows")
	var seen []error
	row := pgRow{row: errRow{err: boom}, done: func(err error) { seen = append(seen, err) }}
	if len(seen) != 0 {
		t.Fatalf("observed before Scan")
	}
	if err := row.Scan(); !errors.Is(err, boom) {
		t.Fatalf("Scan err = %v", err)
	}
	if len(seen) != 1 || !errors.Is(seen[0], boom) {
		t.Fatalf("seen = %v", seen)
	}
}
