package requests

import (
	"testing"
	"time"
)

func TestAggregateObjects_SumsAndSorts(t *testing.T) {
	records := []CleanRecord{
		rec("2024-01-02", "/b", 1),
		rec("2024-01-01", "/B", 2),
		rec("2024-01-01", "/a", 3),
		rec("2024-01-01", "/b", 4),
	}
	got := AggregateObjects(records)
	want := []ObjectDay{
		{Date: NewDate(2024, time.January, 1), Object: "/a", Count: 3},
		{Date: NewDate(2024, time.January, 1), Object: "/b", Count: 6},
		{Date: NewDate(2024, time.January, 2), Object: "/b", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("len got %d want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("[%d] got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestTopObjects_WindowAndLimit(t *testing.T) {
	days := AggregateObjects([]CleanRecord{
		rec("2024-01-01", "/old", 1000),
		rec("2024-01-08", "/a", 5),
		rec("2024-01-09", "/a", 5),
		rec("2024-01-09", "/c", 10),
		rec("2024-01-10", "/b", 10),
	})
	anchor := NewDate(2024, time.January, 10)
	top := TopObjects(FilterObjectsByPeriod(days, CurrentWeek, anchor), 0)
	if len(top) != 3 {
		t.Fatalf("expected 3 objects, got %+v", top)
	}
	if top[0].Object != "/a" || top[0].Count != 10 || top[0].Days != 2 {
		t.Fatalf("first got %+v", top[0])
	}
	// tie on 10 broken by name
	if top[1].Object != "/b" || top[2].Object != "/c" {
		t.Fatalf("tie order got %s,%s", top[1].Object, top[2].Object)
	}
	if got := TopObjects(days, 1); len(got) != 1 || got[0].Object != "/old" {
		t.Fatalf("limit got %+v", got)
	}
}

func TestSnapshot_Summarize(t *testing.T) {
	rows := []RawRow{
		{Date: "2024-01-01", Object: "/envivo/query", Count: "10"},
		{Date: "2024-01-01", Object: "/other", Count: "5"},
		{Date: "2024-01-08", Object: "/envivo/query", Count: "20"},
		{Date: "2024-01-08", Object: "/other", Count: "0"},
		{Date: "", Object: "/other", Count: "1"},
	}
	s := Build("id-1", "test", time.Unix(0, 0).UTC(), rows, DefaultTrackedPath)
	if s.Rows != 5 || len(s.Skipped) != 1 {
		t.Fatalf("rows=%d skipped=%d", s.Rows, len(s.Skipped))
	}

	sum := s.Summarize(CurrentWeek)
	if !sum.HasData || sum.Anchor != NewDate(2024, time.January, 8) {
		t.Fatalf("anchor got %+v", sum)
	}
	if sum.Days != 1 || sum.Averages.TotalAvg != Some(20) {
		t.Fatalf("week window got days=%d avg=%v", sum.Days, sum.Averages.TotalAvg)
	}
	if sum.TotalDelta.Percent != Some(33) {
		t.Fatalf("delta got %+v", sum.TotalDelta)
	}

	all := s.Summarize(AllTime)
	if all.Days != 2 || all.Averages.TotalAvg != Some(18) || all.Averages.TrackedAvg != Some(15) {
		t.Fatalf("all time got %+v", all)
	}
}

func TestSnapshot_EmptyIsNotAnError(t *testing.T) {
	s := Build("id", "test", time.Now(), nil, DefaultTrackedPath)
	sum := s.Summarize(CurrentMonth)
	if sum.HasData || sum.Averages.TotalAvg.OK || sum.TotalDelta.Current.OK {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
	if got := s.TopObjects(AllTime, 5); len(got) != 0 {
		t.Fatalf("expected no objects, got %+v", got)
	}
}
