// Package service contains dashboard workflows over cached snapshots
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"benchmarks/internal/core/requests"
	"benchmarks/internal/platform/logger"
	"benchmarks/internal/platform/metrics"
	"benchmarks/internal/services/api/dashboard/domain"
	"benchmarks/internal/services/api/dashboard/repo"
)

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
	domain.SnapshotPort
	Snapshot(ctx context.Context) (*requests.Snapshot, error)
	Warm(ctx context.Context) error
}

// Cache defaults
const (
	DefaultTTL       = 5 * time.Minute
	DefaultCacheSize = 8
)

// Options tune snapshot caching and aggregation
type Options struct {
	TrackedPath string
	TTL         time.Duration // zero keeps snapshots until Refresh
	CacheSize   int
	LoadTimeout time.Duration

	// RefreshEvery drives Warm; zero disables background reloads
	RefreshEvery time.Duration
}

func (o Options) withDefaults() Options {
	if o.TrackedPath == "" {
		o.TrackedPath = requests.DefaultTrackedPath
	}
	if o.CacheSize <= 0 {
		o.CacheSize = DefaultCacheSize
	}
	if o.LoadTimeout <= 0 {
		o.LoadTimeout = time.Minute
	}
	return o
}

// Svc implements the dashboard service
type Svc struct {
	src   repo.Source
	opts  Options
	cache *expirable.LRU[string, *requests.Snapshot]
	group singleflight.Group

	now   func() time.Time
	newID func() string
}

// New constructs a dashboard service reading from src
func New(src repo.Source, opts Options) *Svc {
	if src == nil {
		panic("dashboard.Service requires a non nil Source")
	}
	opts = opts.withDefaults()
	return &Svc{
		src:   src,
		opts:  opts,
		cache: expirable.NewLRU[string, *requests.Snapshot](opts.CacheSize, nil, opts.TTL),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Snapshot returns the cached snapshot for the source, loading it on a miss
// Concurrent misses share one load
func (s *Svc) Snapshot(ctx context.Context) (*requests.Snapshot, error) {
	key := s.src.Name()
	if snap, ok := s.cache.Get(key); ok {
		metrics.RecordCache(key, true)
		return snap, nil
	}
	metrics.RecordCache(key, false)

	v, err, _ := s.group.Do(key, func() (any, error) {
		// a load that finished between the miss and Do already cached its result
		if snap, ok := s.cache.Peek(key); ok {
			return snap, nil
		}
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*requests.Snapshot), nil
}

// load runs detached from the caller so one cancelled request does not fail
// every caller sharing the flight
func (s *Svc) load(ctx context.Context) (*requests.Snapshot, error) {
	name := s.src.Name()
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.LoadTimeout)
	defer cancel()

	start := time.Now()
	rows, err := s.src.Rows(logger.WithSource(ctx, name, ""))
	if err != nil {
		metrics.RecordLoad(name, false, time.Since(start))
		logger.C(logger.WithSource(ctx, name, "")).Error().Err(err).Msg("snapshot load failed")
		return nil, err
	}

	snap := requests.Build(s.newID(), name, s.now(), rows, s.opts.TrackedPath)
	sctx := logger.WithSource(ctx, name, snap.ID)
	for _, sk := range snap.Skipped {
		metrics.RowsSkipped.WithLabelValues(name, string(sk.Reason)).Inc()
		logger.SampledC(sctx).Warn().
			Int("row", sk.Row).
			Str("reason", string(sk.Reason)).
			Str("date", sk.Raw.Date).
			Str("count", sk.Raw.Count).
			Msg("skipped row")
	}
	metrics.RowsIngested.WithLabelValues(name).Add(float64(snap.Rows - len(snap.Skipped)))
	metrics.RecordLoad(name, true, time.Since(start))

	logger.C(sctx).Info().
		Int("rows", snap.Rows).
		Int("skipped", len(snap.Skipped)).
		Int("days", len(snap.Totals)).
		Dur("elapsed", time.Since(start)).
		Msg("snapshot built")

	s.cache.Add(name, snap)
	return snap, nil
}

// Cached describes the snapshot currently held for the source, if any
func (s *Svc) Cached() (domain.SnapshotInfo, bool) {
	snap, ok := s.cache.Peek(s.src.Name())
	if !ok {
		return domain.SnapshotInfo{}, false
	}
	return Info(snap), true
}

// Refresh loads a new snapshot and swaps it in
// A failed refresh leaves the cached snapshot in place
func (s *Svc) Refresh(ctx context.Context) (domain.SnapshotInfo, error) {
	snap, err := s.reload(ctx)
	if err != nil {
		return domain.SnapshotInfo{}, err
	}
	return Info(snap), nil
}

// Summary returns the cards and averages for a period
func (s *Svc) Summary(ctx context.Context, in domain.Query) (domain.SummaryOut, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return domain.SummaryOut{}, err
	}
	p, _ := in.Resolve()
	anchor, ok := snap.Anchor()
	return domain.SummaryOut{
		Snapshot: Info(snap),
		Label:    p.Label(),
		Viewing:  domain.Viewing(anchor, ok),
		Summary:  snap.Summarize(p),
	}, nil
}

// Daily returns the chart series for a period
func (s *Svc) Daily(ctx context.Context, in domain.Query) (domain.DailyOut, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return domain.DailyOut{}, err
	}
	p, _ := in.Resolve()
	out := domain.DailyOut{Snapshot: Info(snap), Period: p, Days: snap.Daily(p)}
	if anchor, ok := snap.Anchor(); ok {
		out.Window = requests.WindowFor(p, anchor)
	}
	return out, nil
}

// Objects returns the popular objects table for a period
func (s *Svc) Objects(ctx context.Context, in domain.Query) (domain.ObjectsOut, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return domain.ObjectsOut{}, err
	}
	p, limit := in.Resolve()
	return domain.ObjectsOut{Snapshot: Info(snap), Period: p, Objects: snap.TopObjects(p, limit)}, nil
}

// Skipped lists the rows ingestion dropped from the current snapshot
func (s *Svc) Skipped(ctx context.Context) (domain.SkippedOut, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return domain.SkippedOut{}, err
	}
	rows := snap.Skipped
	if rows == nil {
		rows = []requests.Skip{}
	}
	return domain.SkippedOut{Snapshot: Info(snap), Rows: rows}, nil
}

// Report bundles summary, series and table for one period
func (s *Svc) Report(ctx context.Context, in domain.Query) (domain.ReportOut, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return domain.ReportOut{}, err
	}
	p, limit := in.Resolve()
	anchor, ok := snap.Anchor()
	return domain.ReportOut{
		Snapshot: Info(snap),
		Label:    p.Label(),
		Viewing:  domain.Viewing(anchor, ok),
		Summary:  snap.Summarize(p),
		Days:     snap.Daily(p),
		Objects:  snap.TopObjects(p, limit),
	}, nil
}

// Info describes snap for responses
func Info(snap *requests.Snapshot) domain.SnapshotInfo {
	out := domain.SnapshotInfo{
		ID:        snap.ID,
		Source:    snap.Source,
		FetchedAt: snap.FetchedAt.UTC(),
		Rows:      snap.Rows,
		Skipped:   len(snap.Skipped),
		Days:      len(snap.Totals),
	}
	if anchor, ok := snap.Anchor(); ok {
		out.Anchor = &anchor
	}
	return out
}
