package middleware

import (
	"net/http"

	pnet "benchmarks/internal/platform/net"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id both ways
const RequestIDHeader = "X-Request-ID"

// maxRequestID caps ids accepted from clients before they reach the logs
const maxRequestID = 128

var newRequestID = uuid.NewString

// RequestID keeps a sane incoming X-Request-ID or mints a uuid, echoes it on
// the response and puts it where chi, the envelope and the logger read it
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestID {
				id = newRequestID()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id)))
		})
	}
}
