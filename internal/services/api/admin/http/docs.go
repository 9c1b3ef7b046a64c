package http

import "benchmarks/internal/modkit/swaggerkit"

// Docs adds the admin routes under prefix to the generated document
func Docs(prefix string) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		ok := map[string]any{"200": map[string]any{"description": "ok"}}
		swaggerkit.AddPath(spec, "get", prefix+"/embeds", map[string]any{
			"tags":      []string{"Admin"},
			"summary":   "Spreadsheets shown on the admin pages",
			"responses": ok,
		})
		swaggerkit.AddPath(spec, "get", prefix+"/embeds/{slug}", map[string]any{
			"tags":    []string{"Admin"},
			"summary": "One admin spreadsheet by slug",
			"parameters": []map[string]any{{
				"name": "slug", "in": "path", "required": true,
				"schema": map[string]any{"type": "string"},
			}},
			"responses": map[string]any{
				"200": map[string]any{"description": "ok"},
				"404": map[string]any{"description": "not found"},
			},
		})
	}
}
