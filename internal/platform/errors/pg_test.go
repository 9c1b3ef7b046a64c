package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code string) *pgconn.PgError { return &pgconn.PgError{Code: code} }

func TestDBErrorCode(t *testing.T) {
	cases := map[string]ErrorCode{
		"42P01": ErrorCodeUpstream,
		"42703": ErrorCodeUpstream,
		"42501": ErrorCodeUpstream,
		"22P02": ErrorCodeInvalidArgument,
		"57P03": ErrorCodeUnavailable,
		"57P01": ErrorCodeUnavailable,
		"57014": ErrorCodeUnavailable,
		"40001": ErrorCodeDB,
		"XXXXX": ErrorCodeDB,
	}
	for state, want := range cases {
		got, ok := DBErrorCode(fmt.Errorf("select: %w", pg(state)))
		if !ok || got != want {
			t.Fatalf("DBErrorCode(%s) = %v %v, want %v", state, got, ok, want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("plain error mapped as PgError")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("FromPostgres(nil) should be nil")
	}
	err := FromPostgres(pg("42P01"), "select rows")
	if CodeOf(err) != ErrorCodeUpstream {
		t.Fatalf("code = %v", CodeOf(err))
	}
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		t.Fatalf("cause lost")
	}
	if err := FromPostgres(stderrs.New("eof"), "select rows"); CodeOf(err) != ErrorCodeDB {
		t.Fatalf("code = %v", CodeOf(err))
	}
}

func TestIsRetryable(t *testing.T) {
	for _, state := range []string{"40001", "40P01", "57P03", "57P01"} {
		if !IsRetryable(pg(state)) {
			t.Fatalf("%s should be retryable", state)
		}
	}
	for _, err := range []error{nil, pg("42P01"), pg("57014"), stderrs.New("nope"), context.Canceled} {
		if IsRetryable(err) {
			t.Fatalf("%v should not be retryable", err)
		}
	}
	if !IsRetryable(stderrs.New("read: Connection reset by peer")) {
		t.Fatalf("reset should be retryable")
	}
}
