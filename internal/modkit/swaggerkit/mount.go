package swaggerkit

import (
	"net/http"

	phttp "benchmarks/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves Swagger UI under /api/docs/ when enabled
func Mount(r phttp.Router, info Info, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(info))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
