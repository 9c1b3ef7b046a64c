package middleware

import (
	"net/http"
	"time"

	"benchmarks/internal/platform/logger"
	"benchmarks/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow marks requests taking >= Slow as warn level, 0 disables slow marking
	Slow time.Duration
}

type served struct {
	status  int
	bytes   int
	elapsed time.Duration
}

// serve runs next behind chi's wrap writer and reports what it wrote
func serve(next http.Handler, w http.ResponseWriter, r *http.Request) served {
	ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
	start := time.Now()
	next.ServeHTTP(ww, r)
	s := served{status: ww.Status(), bytes: ww.BytesWritten(), elapsed: time.Since(start)}
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s
}

// routePattern returns the matched chi pattern, or "unmatched" so unknown
// paths cannot blow up metric cardinality
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// AccessLogZerolog logs one line per request with the request scoped logger
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := serve(next, w, r)

			log := logger.C(r.Context())
			evt := log.Info()
			if opt.Slow > 0 && s.elapsed >= opt.Slow {
				evt = log.Warn().Bool("slow", true)
			}
			evt.Int("status", s.status).
				Dur("elapsed", s.elapsed).
				Str("method", r.Method).
				Str("route", routePattern(r)).
				Str("query", r.URL.RawQuery).
				Int("bytes", s.bytes).
				Msg("request done")
		})
	}
}

// Metrics records request count and latency per route pattern
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := serve(next, w, r)
		metrics.RecordRequest(routePattern(r), r.Method, s.status, s.elapsed)
	})
}
