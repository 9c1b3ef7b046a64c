package requests

import "time"

// Snapshot is the immutable result of one ingestion pass
// Callers own it; nothing in this package keeps a reference after Build
type Snapshot struct {
	ID        string
	Source    string
	FetchedAt time.Time
	Rows      int
	Skipped   []Skip
	Totals    []DailyTotal
	Objects   []ObjectDay
}

// Build ingests rows and aggregates them for trackedPath
func Build(id, source string, fetchedAt time.Time, rows []RawRow, trackedPath string) *Snapshot {
	res := Ingest(rows)
	return &Snapshot{
		ID:        id,
		Source:    source,
		FetchedAt: fetchedAt,
		Rows:      len(rows),
		Skipped:   res.Skipped,
		Totals:    Aggregate(res.Records, trackedPath),
		Objects:   AggregateObjects(res.Records),
	}
}

// Anchor returns the latest date in the snapshot
func (s *Snapshot) Anchor() (Date, bool) { return Anchor(s.Totals) }

// Daily returns the totals inside p's window
func (s *Snapshot) Daily(p Period) []DailyTotal { return FilterByPeriod(s.Totals, p) }

// TopObjects returns the busiest objects inside p's window
func (s *Snapshot) TopObjects(p Period, limit int) []ObjectTotal {
	anchor, ok := s.Anchor()
	if !ok {
		return []ObjectTotal{}
	}
	return TopObjects(FilterObjectsByPeriod(s.Objects, p, anchor), limit)
}

// Summary is the card and average view of one period
type Summary struct {
	Anchor       Date     `json:"anchor"`
	HasData      bool     `json:"has_data"`
	Period       Period   `json:"period"`
	Window       Window   `json:"window"`
	Days         int      `json:"days"`
	TotalDelta   Delta    `json:"total_delta"`
	TrackedDelta Delta    `json:"tracked_delta"`
	Averages     Averages `json:"averages"`
}

// Summarize computes the week over week cards over every day and the
// averages over p's window
func (s *Snapshot) Summarize(p Period) Summary {
	out := Summary{
		Period:       p,
		TotalDelta:   WeekOverWeek(s.Totals, FieldTotal),
		TrackedDelta: WeekOverWeek(s.Totals, FieldTracked),
	}
	window := s.Daily(p)
	out.Days = len(window)
	out.Averages = Average(window)
	if anchor, ok := s.Anchor(); ok {
		out.Anchor = anchor
		out.HasData = true
		out.Window = WindowFor(p, anchor)
	}
	return out
}
