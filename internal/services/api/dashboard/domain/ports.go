package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summary(ctx context.Context, in Query) (SummaryOut, error)
	Daily(ctx context.Context, in Query) (DailyOut, error)
	Objects(ctx context.Context, in Query) (ObjectsOut, error)
	Skipped(ctx context.Context) (SkippedOut, error)
	Report(ctx context.Context, in Query) (ReportOut, error)
	Refresh(ctx context.Context) (SnapshotInfo, error)
}

// SnapshotPort reports the cached snapshot without loading one
type SnapshotPort interface {
	Cached() (SnapshotInfo, bool)
}
