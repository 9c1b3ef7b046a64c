package modkit

import (
	"net/http"
	"slices"

	"benchmarks/internal/modkit/httpkit"
	str "benchmarks/internal/platform/strings"
)

// Built is a module's resolved mount settings
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
}

// Build applies opts over a module's defaults
func Build(defaults Built, opts ...Option) Built {
	b := defaults
	b.Mw = slices.Clone(defaults.Mw)
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Mount registers routes under b.Prefix behind b.Mw; an empty prefix panics
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	httpkit.MountUnder(r, str.MustPrefix(b.Prefix), b.Mw, register)
}

// ModuleName is b.Name, panicking when a module was built without one
func (b Built) ModuleName() string { return str.MustString(b.Name, "module name") }
