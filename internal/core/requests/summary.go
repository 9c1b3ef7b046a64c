package requests

// Field picks which column of a DailyTotal a computation reads
type Field int

const (
	// FieldTotal reads DailyTotal.Total
	FieldTotal Field = iota
	// FieldTracked reads DailyTotal.Tracked
	FieldTracked
)

func (f Field) of(t DailyTotal) int64 {
	if f == FieldTracked {
		return t.Tracked
	}
	return t.Total
}

// String names the field
func (f Field) String() string {
	if f == FieldTracked {
		return "tracked"
	}
	return "total"
}

// Averages holds the rounded daily means of a window
type Averages struct {
	TotalAvg   Value `json:"total_avg"`
	TrackedAvg Value `json:"tracked_avg"`
}

// Average returns the daily means of totals, not available when empty
func Average(totals []DailyTotal) Averages {
	if len(totals) == 0 {
		return Averages{TotalAvg: None(), TrackedAvg: None()}
	}
	var sumTotal, sumTracked int64
	for _, t := range totals {
		sumTotal += t.Total
		sumTracked += t.Tracked
	}
	n := int64(len(totals))
	return Averages{
		TotalAvg:   Some(roundDiv(sumTotal, n)),
		TrackedAvg: Some(roundDiv(sumTracked, n)),
	}
}

// Delta compares the latest day with the same weekday one week earlier
type Delta struct {
	Current  Value `json:"current"`
	Previous Value `json:"previous"`
	Absolute Value `json:"absolute"`
	Percent  Value `json:"percent"`
}

// WeekOverWeek compares field at the latest date with the date exactly seven
// days before it, located by date
func WeekOverWeek(totals []DailyTotal, f Field) Delta {
	d := Delta{Current: None(), Previous: None(), Absolute: None(), Percent: None()}
	anchor, ok := Anchor(totals)
	if !ok {
		return d
	}
	cur := f.of(totals[len(totals)-1])
	d.Current = Some(cur)
	prevDay, ok := lookup(totals, anchor.AddDays(-7))
	if !ok {
		return d
	}
	prev := f.of(prevDay)
	d.Previous = Some(prev)
	d.Absolute = Some(cur - prev)
	if prev != 0 {
		d.Percent = Some(roundDiv((cur-prev)*100, prev))
	}
	return d
}

// roundDiv divides num by den rounding half away from zero; den must not be 0
func roundDiv(num, den int64) int64 {
	if den < 0 {
		num, den = -num, -den
	}
	q, r := num/den, num%den
	if r < 0 {
		r = -r
	}
	if 2*r >= den {
		if num < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}
