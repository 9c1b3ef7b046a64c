package http

import "benchmarks/internal/modkit/swaggerkit"

func periodParam() map[string]any {
	return map[string]any{
		"name": "period", "in": "query", "required": false,
		"schema": map[string]any{
			"type": "string",
			"enum": []string{"current_week", "current_month", "current_year", "all_time"},
		},
	}
}

func limitParam() map[string]any {
	return map[string]any{
		"name": "limit", "in": "query", "required": false,
		"schema": map[string]any{"type": "integer", "minimum": 1, "maximum": 500},
	}
}

func op(summary string, params ...map[string]any) map[string]any {
	o := map[string]any{
		"tags":    []string{"Dashboard"},
		"summary": summary,
		"responses": map[string]any{
			"200": map[string]any{"description": "ok"},
		},
	}
	if len(params) > 0 {
		o["parameters"] = params
	}
	return o
}

// Docs adds the dashboard routes under prefix to the generated document
func Docs(prefix string) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		swaggerkit.AddPath(spec, "get", prefix+"/summary", op("Week over week cards and period averages", periodParam()))
		swaggerkit.AddPath(spec, "get", prefix+"/daily", op("Daily totals inside the period window", periodParam()))
		swaggerkit.AddPath(spec, "get", prefix+"/objects", op("Popular objects inside the period window", periodParam(), limitParam()))
		swaggerkit.AddPath(spec, "get", prefix+"/skipped", op("Rows dropped while ingesting the current snapshot"))
		swaggerkit.AddPath(spec, "get", prefix+"/report", op("Summary, series and table for one period", periodParam(), limitParam()))

		q := op("Same as report with a JSON body")
		q["requestBody"] = map[string]any{
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{"$ref": "#/components/schemas/DashboardQuery"},
				},
			},
		}
		swaggerkit.AddPath(spec, "post", prefix+"/query", q)
		swaggerkit.AddPath(spec, "post", prefix+"/refresh", op("Drop the cached snapshot and reload the source"))

		swaggerkit.AddSchema(spec, "DashboardQuery", map[string]any{
			"type": "object",
			"properties": map[string]any{
				"period": periodParam()["schema"],
				"limit":  limitParam()["schema"],
			},
		})
	}
}
