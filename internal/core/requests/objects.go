package requests

import "sort"

// ObjectDay is the request count of one object on one date
type ObjectDay struct {
	Date   Date   `json:"date"`
	Object string `json:"object"`
	Count  int64  `json:"count"`
}

// ObjectTotal is the request count of one object over a window
type ObjectTotal struct {
	Object string `json:"object"`
	Count  int64  `json:"count"`
	Days   int    `json:"days"`
}

type objectKey struct {
	date   Date
	object string
}

// AggregateObjects sums records per (date, object) sorted by date then object
func AggregateObjects(records []CleanRecord) []ObjectDay {
	idx := make(map[objectKey]int, len(records))
	out := make([]ObjectDay, 0, len(records))
	for _, r := range records {
		k := objectKey{r.Date, NormalizeObject(r.Object)}
		if i, ok := idx[k]; ok {
			out[i].Count += r.Count
			continue
		}
		idx[k] = len(out)
		out = append(out, ObjectDay{Date: k.date, Object: k.object, Count: r.Count})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Date.Compare(out[j].Date); c != 0 {
			return c < 0
		}
		return out[i].Object < out[j].Object
	})
	return out
}

// FilterObjectsByPeriod keeps the days inside p's window around anchor
func FilterObjectsByPeriod(days []ObjectDay, p Period, anchor Date) []ObjectDay {
	w := WindowFor(p, anchor)
	out := make([]ObjectDay, 0, len(days))
	for _, d := range days {
		if w.Contains(d.Date) {
			out = append(out, d)
		}
	}
	return out
}

// TopObjects sums days per object, highest count first, ties by object name
// A limit of zero or less returns every object
func TopObjects(days []ObjectDay, limit int) []ObjectTotal {
	idx := make(map[string]int)
	out := make([]ObjectTotal, 0)
	for _, d := range days {
		i, ok := idx[d.Object]
		if !ok {
			i = len(out)
			idx[d.Object] = i
			out = append(out, ObjectTotal{Object: d.Object})
		}
		out[i].Count += d.Count
		out[i].Days++
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Object < out[j].Object
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
