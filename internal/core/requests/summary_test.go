package requests

import (
	"encoding/json"
	"testing"
	"time"
)

func TestWeekOverWeek_Scenario(t *testing.T) {
	totals := Aggregate(scenario(), DefaultTrackedPath)
	d := WeekOverWeek(totals, FieldTotal)
	if d.Current != Some(20) || d.Previous != Some(15) || d.Absolute != Some(5) || d.Percent != Some(33) {
		t.Fatalf("got %+v", d)
	}
	tr := WeekOverWeek(totals, FieldTracked)
	if tr.Current != Some(20) || tr.Previous != Some(10) || tr.Absolute != Some(10) || tr.Percent != Some(100) {
		t.Fatalf("tracked got %+v", tr)
	}
}

func TestWeekOverWeek_MissingPrevious(t *testing.T) {
	totals := []DailyTotal{
		{Date: NewDate(2024, time.January, 2), Total: 9},
		{Date: NewDate(2024, time.January, 8), Total: 20},
	}
	d := WeekOverWeek(totals, FieldTotal)
	if d.Current != Some(20) {
		t.Fatalf("current got %v", d.Current)
	}
	if d.Previous.OK || d.Absolute.OK || d.Percent.OK {
		t.Fatalf("expected not available, got %+v", d)
	}
}

func TestWeekOverWeek_LooksUpByDateNotIndex(t *testing.T) {
	// seven entries before the latest but with a gap, so index-7 would be wrong
	totals := []DailyTotal{
		{Date: NewDate(2024, time.January, 1), Total: 100},
		{Date: NewDate(2024, time.January, 3), Total: 1},
		{Date: NewDate(2024, time.January, 4), Total: 1},
		{Date: NewDate(2024, time.January, 5), Total: 1},
		{Date: NewDate(2024, time.January, 6), Total: 1},
		{Date: NewDate(2024, time.January, 7), Total: 1},
		{Date: NewDate(2024, time.January, 8), Total: 50},
	}
	d := WeekOverWeek(totals, FieldTotal)
	if d.Previous != Some(100) || d.Absolute != Some(-50) || d.Percent != Some(-50) {
		t.Fatalf("got %+v", d)
	}
}

func TestWeekOverWeek_PreviousZero(t *testing.T) {
	totals := []DailyTotal{
		{Date: NewDate(2024, time.January, 1), Total: 0},
		{Date: NewDate(2024, time.January, 8), Total: 5},
	}
	d := WeekOverWeek(totals, FieldTotal)
	if d.Absolute != Some(5) || d.Previous != Some(0) {
		t.Fatalf("got %+v", d)
	}
	if d.Percent.OK {
		t.Fatalf("percent must be not available, got %v", d.Percent)
	}
}

func TestWeekOverWeek_Empty(t *testing.T) {
	d := WeekOverWeek(nil, FieldTracked)
	if d.Current.OK || d.Previous.OK || d.Absolute.OK || d.Percent.OK {
		t.Fatalf("expected all not available, got %+v", d)
	}
}

func TestAverage(t *testing.T) {
	if a := Average(nil); a.TotalAvg.OK || a.TrackedAvg.OK {
		t.Fatalf("empty average must be not available")
	}
	one := []DailyTotal{{Date: NewDate(2024, time.June, 1), Total: 7, Tracked: 3}}
	if a := Average(one); a.TotalAvg != Some(7) || a.TrackedAvg != Some(3) {
		t.Fatalf("single got %+v", a)
	}
	two := []DailyTotal{
		{Date: NewDate(2024, time.June, 1), Total: 1, Tracked: 1},
		{Date: NewDate(2024, time.June, 2), Total: 2, Tracked: 1},
	}
	// 1.5 rounds up, 1.0 stays
	if a := Average(two); a.TotalAvg != Some(2) || a.TrackedAvg != Some(1) {
		t.Fatalf("pair got %+v", a)
	}
}

func TestRoundDiv(t *testing.T) {
	cases := []struct{ num, den, want int64 }{
		{500, 15, 33},
		{5, 2, 3},
		{-5, 2, -3},
		{7, 3, 2},
		{-7, 3, -2},
		{-500, 15, -33},
		{1, -2, -1},
		{0, 9, 0},
	}
	for _, c := range cases {
		if got := roundDiv(c.num, c.den); got != c.want {
			t.Errorf("roundDiv(%d,%d) = %d want %d", c.num, c.den, got, c.want)
		}
	}
}

func TestValue_JSON(t *testing.T) {
	b, err := json.Marshal(Delta{Current: Some(0), Previous: None(), Absolute: None(), Percent: Some(-4)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"current":0,"previous":null,"absolute":null,"percent":-4}`
	if string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}
	var back Delta
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Current != Some(0) || back.Previous.OK {
		t.Fatalf("round trip got %+v", back)
	}
}
