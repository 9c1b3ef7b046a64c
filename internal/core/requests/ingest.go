// Package requests turns raw request count rows into daily totals and the
// period figures shown on the popular objects dashboard
// Every function here is pure; malformed input degrades to skipped rows or
// not available values, never to an error
package requests

import (
	"strconv"
	"strings"
)

// DefaultTrackedPath is the object whose traffic is reported on its own
const DefaultTrackedPath = "/envivo/query"

// headerLines is the number of lines before the first data row in a sheet export
const headerLines = 1

// RawRow is one untyped row as delivered by a source
type RawRow struct {
	Date   string `json:"date"`
	Object string `json:"object"`
	Count  string `json:"count"`
}

// CleanRecord is a validated row
type CleanRecord struct {
	Date   Date   `json:"date"`
	Object string `json:"object"`
	Count  int64  `json:"count"`
}

// SkipReason says why a row was dropped
type SkipReason string

const (
	// SkipMissingDate is an empty date cell
	SkipMissingDate SkipReason = "missing_date"
	// SkipBadDate is a date that is not a calendar date
	SkipBadDate SkipReason = "bad_date"
	// SkipBadCount is a count that is not a base 10 integer
	SkipBadCount SkipReason = "bad_count"
	// SkipNegativeCount is a count below zero
	SkipNegativeCount SkipReason = "negative_count"
)

// Skip identifies a dropped row by its line in the source sheet
type Skip struct {
	Row    int        `json:"row"`
	Reason SkipReason `json:"reason"`
	Raw    RawRow     `json:"raw"`
}

// IngestResult holds the clean records and the diagnostics for the rest
type IngestResult struct {
	Records []CleanRecord
	Skipped []Skip
}

// Ingest validates rows; len(Records)+len(Skipped) == len(rows)
func Ingest(rows []RawRow) IngestResult {
	res := IngestResult{Records: make([]CleanRecord, 0, len(rows))}
	for i, raw := range rows {
		rec, reason, ok := clean(raw)
		if !ok {
			res.Skipped = append(res.Skipped, Skip{Row: i + 1 + headerLines, Reason: reason, Raw: raw})
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

func clean(raw RawRow) (CleanRecord, SkipReason, bool) {
	ds := strings.TrimSpace(raw.Date)
	if ds == "" {
		return CleanRecord{}, SkipMissingDate, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw.Count), 10, 64)
	if err != nil {
		return CleanRecord{}, SkipBadCount, false
	}
	if n < 0 {
		return CleanRecord{}, SkipNegativeCount, false
	}
	d, err := ParseDate(ds)
	if err != nil {
		return CleanRecord{}, SkipBadDate, false
	}
	return CleanRecord{Date: d, Object: NormalizeObject(raw.Object), Count: n}, "", true
}

// NormalizeObject trims and lowercases an object path
func NormalizeObject(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// IsTracked reports an exact case-insensitive match after trimming
func IsTracked(object, trackedPath string) bool {
	return NormalizeObject(object) == NormalizeObject(trackedPath)
}
