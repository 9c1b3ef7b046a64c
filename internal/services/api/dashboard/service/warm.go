package service

import (
	"context"
	"time"

	"benchmarks/internal/core/requests"
	perr "benchmarks/internal/platform/errors"
	"benchmarks/internal/platform/logger"
)

// Warm reloads the snapshot every opts.RefreshEvery until ctx ends
// A failed reload keeps serving the previous snapshot until its TTL runs out
func (s *Svc) Warm(ctx context.Context) error {
	every := s.opts.RefreshEvery
	if every <= 0 {
		return nil
	}
	log := logger.Named("dashboard.warm")

	if _, err := s.Snapshot(ctx); err != nil {
		log.Warn().Err(err).Str("source", s.src.Name()).Msg("initial snapshot load failed")
	}

	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			_, err := s.reload(ctx)
			switch {
			case err == nil:
			case perr.Retryable(err):
				log.Warn().Err(err).Str("source", s.src.Name()).Dur("every", every).Msg("snapshot refresh failed, retrying next tick")
			default:
				log.Error().Err(err).Str("source", s.src.Name()).Str("code", perr.CodeOf(err).String()).Msg("snapshot refresh failed")
			}
		}
	}
}

// reload swaps in a fresh snapshot only once it loaded
func (s *Svc) reload(ctx context.Context) (*requests.Snapshot, error) {
	v, err, _ := s.group.Do(s.src.Name(), func() (any, error) {
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*requests.Snapshot), nil
}
