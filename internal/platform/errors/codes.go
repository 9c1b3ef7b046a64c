package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode classifies failures for callers and the wire
// Values are stable for wire compatibility; append only
type ErrorCode uint16

const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified
	ErrorCodePanic                            // recovered by middleware
	ErrorCodeUnavailable                      // row source or backend unreachable
	ErrorCodeInvalidArgument                  // bad query parameter
	ErrorCodeValidation                       // body or query failed validation
	ErrorCodeJSON                             // undecodable body
	ErrorCodeNotFound                         // missing resource
	ErrorCodeUpstream                         // row source answered with something unusable
	ErrorCodeDB                               // SQL row source query failed
)

type codeInfo struct {
	name   string
	status int
	// a reload may succeed later without operator action
	transient bool
}

var codes = [...]codeInfo{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError, false},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError, false},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable, true},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity, false},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest, false},
	ErrorCodeJSON:            {"json", http.StatusBadRequest, false},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound, false},
	ErrorCodeUpstream:        {"upstream", http.StatusBadGateway, false},
	ErrorCodeDB:              {"db", http.StatusInternalServerError, false},
}

func (c ErrorCode) info() (codeInfo, bool) {
	if int(c) < len(codes) {
		return codes[c], true
	}
	return codes[ErrorCodeUnknown], false
}

// String names the code, used on the wire and as a metrics label
func (c ErrorCode) String() string {
	if ci, ok := c.info(); ok {
		return ci.name
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	ci, _ := c.info()
	return ci.status
}
