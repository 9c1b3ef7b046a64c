package requests

import "sort"

// DailyTotal is the sum of all requests and of tracked requests on one date
type DailyTotal struct {
	Date    Date  `json:"date"`
	Total   int64 `json:"total"`
	Tracked int64 `json:"tracked"`
}

// Aggregate sums records per date in ascending calendar order
// Tracked counts only records whose object matches trackedPath
func Aggregate(records []CleanRecord, trackedPath string) []DailyTotal {
	if len(records) == 0 {
		return []DailyTotal{}
	}
	tracked := NormalizeObject(trackedPath)
	byDate := make(map[Date]*DailyTotal, len(records))
	for _, r := range records {
		dt, ok := byDate[r.Date]
		if !ok {
			dt = &DailyTotal{Date: r.Date}
			byDate[r.Date] = dt
		}
		dt.Total += r.Count
		if NormalizeObject(r.Object) == tracked {
			dt.Tracked += r.Count
		}
	}
	out := make([]DailyTotal, 0, len(byDate))
	for _, dt := range byDate {
		out = append(out, *dt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Anchor is the latest date in totals; ok is false when totals is empty
func Anchor(totals []DailyTotal) (Date, bool) {
	if len(totals) == 0 {
		return Date{}, false
	}
	return totals[len(totals)-1].Date, true
}

// lookup finds the total for d by date, never by position
func lookup(totals []DailyTotal, d Date) (DailyTotal, bool) {
	i := sort.Search(len(totals), func(i int) bool { return !totals[i].Date.Before(d) })
	if i < len(totals) && totals[i].Date == d {
		return totals[i], true
	}
	return DailyTotal{}, false
}
