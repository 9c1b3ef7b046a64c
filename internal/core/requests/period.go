package requests

import (
	"fmt"
	"strings"
	"time"
)

// Period selects the window of days a view covers
type Period int

const (
	// CurrentWeek is Monday through Sunday around the anchor
	CurrentWeek Period = iota
	// CurrentMonth is the anchor's calendar month
	CurrentMonth
	// CurrentYear is the anchor's calendar year
	CurrentYear
	// AllTime is every day
	AllTime
)

var periodNames = [...]string{"current_week", "current_month", "current_year", "all_time"}

var periodLabels = [...]string{"Current Week", "Current Month", "Current Year", "All Time"}

// Periods lists every period in display order
func Periods() []Period { return []Period{CurrentWeek, CurrentMonth, CurrentYear, AllTime} }

// String returns the wire name
func (p Period) String() string {
	if p < CurrentWeek || p > AllTime {
		return fmt.Sprintf("period(%d)", int(p))
	}
	return periodNames[p]
}

// Label returns the display name
func (p Period) Label() string {
	if p < CurrentWeek || p > AllTime {
		return p.String()
	}
	return periodLabels[p]
}

// ParsePeriod accepts a wire name or a display label, case-insensitively
// Labels may be hyphenated, as in "All-Time"
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	label := strings.ReplaceAll(s, "-", " ")
	for _, p := range Periods() {
		if strings.EqualFold(s, periodNames[p]) || strings.EqualFold(label, periodLabels[p]) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown period %q", s)
}

// MarshalText encodes the wire name
func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText decodes a wire name or label
func (p *Period) UnmarshalText(b []byte) error {
	v, err := ParsePeriod(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Window is an inclusive date range; All means unbounded
type Window struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
	All   bool `json:"all"`
}

// Contains reports whether d falls inside the window
func (w Window) Contains(d Date) bool {
	if w.All {
		return true
	}
	return !d.Before(w.Start) && !d.After(w.End)
}

// WindowFor returns the window of p around anchor
// The week starts on the Monday on or before anchor, so a Sunday anchor
// belongs to the week that began six days earlier
func WindowFor(p Period, anchor Date) Window {
	switch p {
	case CurrentWeek:
		idx := int(anchor.Weekday())
		start := anchor.AddDays(-((idx + 6) % 7))
		return Window{Start: start, End: start.AddDays(6)}
	case CurrentMonth:
		start := NewDate(anchor.Year, anchor.Month, 1)
		return Window{Start: start, End: NewDate(anchor.Year, anchor.Month+1, 0)}
	case CurrentYear:
		return Window{Start: NewDate(anchor.Year, time.January, 1), End: NewDate(anchor.Year, time.December, 31)}
	default:
		return Window{All: true}
	}
}

// FilterByPeriod keeps the totals inside p's window around the latest date
// The input slice is never modified
func FilterByPeriod(totals []DailyTotal, p Period) []DailyTotal {
	anchor, ok := Anchor(totals)
	if !ok {
		return []DailyTotal{}
	}
	if p == AllTime {
		return totals
	}
	w := WindowFor(p, anchor)
	out := make([]DailyTotal, 0, len(totals))
	for _, t := range totals {
		if w.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}
