package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"benchmarks/internal/platform/config"
	perr "benchmarks/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

type periodReq struct {
	Period string `json:"period" validate:"required,oneof=week month"`
	Limit  int    `json:"limit" validate:"min=0,max=50"`
}

func newRouter() (Router, *chi.Mux) {
	m := chi.NewRouter()
	return AdaptChi(m), m
}

func TestRouter_GroupRouteAndParams(t *testing.T) {
	r, m := newRouter()
	var hit []string
	r.Route("/api", func(api Router) {
		api.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				hit = append(hit, "mw")
				next.ServeHTTP(w, req)
			})
		})
		api.Group(func(g Router) {
			g.Get("/embeds/{slug}", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				hit = append(hit, URLParam(req, "slug"))
				w.WriteHeader(stdhttp.StatusTeapot)
			})
		})
		api.Head("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(204) })
	})

	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/api/embeds/popular-objects", nil))
	if rr.Code != stdhttp.StatusTeapot {
		t.Fatalf("status = %d", rr.Code)
	}
	if strings.Join(hit, ",") != "mw,popular-objects" {
		t.Fatalf("hit = %v", hit)
	}

	rr = httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodHead, "/api/ping", nil))
	if rr.Code != 204 {
		t.Fatalf("head status = %d", rr.Code)
	}
	if r.Mux() != m {
		t.Fatalf("Mux should expose the chi mux")
	}
}

func TestPostJSON_BindsAndValidates(t *testing.T) {
	r, m := newRouter()
	PostJSON(r, "/q", func(_ *stdhttp.Request, in periodReq) (any, error) {
		return map[string]any{"period": in.Period, "limit": in.Limit}, nil
	})

	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodPost, "/q", strings.NewReader(`{"period":"week","limit":5}`)))
	if rr.Code != 200 {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodPost, "/q", strings.NewReader(`{"period":"decade"}`)))
	if rr.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	env := decode(t, rr)
	if env.Code != "validation" || env.Field != "period" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestGetJSON_PassesResponseThrough(t *testing.T) {
	r, m := newRouter()
	GetJSON(r, "/none", func(*stdhttp.Request) (any, error) { return NoContent(), nil })
	GetJSON(r, "/fail", func(*stdhttp.Request) (any, error) { return nil, perr.NotFoundf("gone") })

	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/none", nil))
	if rr.Code != 204 {
		t.Fatalf("status = %d", rr.Code)
	}
	rr = httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/fail", nil))
	if rr.Code != 404 {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestMountProfiler(t *testing.T) {
	r, m := newRouter()
	MountProfiler(r, "/debug", false)
	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rr.Code != 404 {
		t.Fatalf("disabled profiler status = %d", rr.Code)
	}

	MountProfiler(r, "/debug", true)
	rr = httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rr.Code != 200 {
		t.Fatalf("profiler status = %d", rr.Code)
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
	_ = l.Close()
	t.Setenv("BENCH_TEST_API_PORT", port)
	t.Setenv("BENCH_TEST_SHUTDOWN_TIMEOUT", "1s")
	cfg := config.New().Prefix("BENCH_TEST_")

	applied := false
	s := NewServer(cfg, func(*chi.Mux) { applied = true })
	if !applied {
		t.Fatalf("option not applied")
	}
	if s.Addr() != ":"+port {
		t.Fatalf("addr = %q", s.Addr())
	}
	s.Router().Get("/", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(200) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("server did not stop")
	}
}
