// Package modkit provides module wiring and core deps
package modkit

import (
	"benchmarks/internal/platform/config"
	"benchmarks/internal/platform/logger"
	"benchmarks/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil unless the configured row source needs them
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  store.Querier
	CH  store.Querier
}

// FromStore copies the opened backends of s onto a Deps
func FromStore(log logger.Logger, cfg config.Conf, s *store.Store) Deps {
	d := Deps{Log: log, Cfg: cfg}
	if s != nil {
		d.PG, d.CH = s.PG, s.CH
	}
	return d
}
