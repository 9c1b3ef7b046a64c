package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

type sqlState struct {
	code  ErrorCode
	retry bool
}

// SQLSTATEs a read-only select against the source table can hit
var sqlStates = map[string]sqlState{
	"42P01": {ErrorCodeUpstream, false},        // undefined_table
	"42703": {ErrorCodeUpstream, false},        // undefined_column
	"42501": {ErrorCodeUpstream, false},        // insufficient_privilege
	"22P02": {ErrorCodeInvalidArgument, false}, // invalid_text_representation
	"57014": {ErrorCodeUnavailable, false},     // query_canceled
	"57P01": {ErrorCodeUnavailable, true},      // admin_shutdown
	"57P03": {ErrorCodeUnavailable, true},      // cannot_connect_now
	"40001": {ErrorCodeDB, true},               // serialization_failure
	"40P01": {ErrorCodeDB, true},               // deadlock_detected
}

// messages pgx surfaces without a PgError when the server drops us
var transientText = []string{
	"terminating connection due to administrator command",
	"canceling statement due to statement timeout",
	"connection reset by peer",
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := stderrs.As(err, &pgErr)
	return pgErr, ok
}

// DBErrorCode maps a Postgres error to an ErrorCode; !ok means err is not a PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := pgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if st, known := sqlStates[pgErr.Code]; known {
		return st.code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its mapped ErrorCode; nil stays nil
// A dial that never reached the server is Unavailable
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	var connErr *pgconn.ConnectError
	if stderrs.As(err, &connErr) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// IsRetryable reports whether a database error is transient
// Local cancellation is never retryable
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := pgError(err); ok {
		return sqlStates[pgErr.Code].retry
	}
	s := strings.ToLower(err.Error())
	for _, t := range transientText {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
