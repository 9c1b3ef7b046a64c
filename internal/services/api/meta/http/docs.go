package http

import "benchmarks/internal/modkit/swaggerkit"

// Docs adds the meta routes under prefix to the generated document
func Docs(prefix string) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		for path, summary := range map[string]string{
			"/health":  "Health check",
			"/ready":   "Readiness probe with backend and snapshot checks",
			"/version": "Build and version info",
			"/service": "Service info, uptime and the cached snapshot",
		} {
			swaggerkit.AddPath(spec, "get", prefix+path, map[string]any{
				"tags":      []string{"Meta"},
				"summary":   summary,
				"responses": map[string]any{"200": map[string]any{"description": "ok"}},
			})
		}
	}
}
