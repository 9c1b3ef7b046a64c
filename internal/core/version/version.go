// Package version reports build metadata stamped in at link time
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Set with -ldflags "-X 'benchmarks/internal/core/version.version=v0.1.0'
// -X 'benchmarks/internal/core/version.commit=abcd' -X 'benchmarks/internal/core/version.date=2025-09-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Service is the name the API reports about itself
const Service = "benchmarks-api"

// Info returns the build information
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
