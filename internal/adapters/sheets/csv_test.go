package sheets

import (
	"strings"
	"testing"

	perr "benchmarks/internal/platform/errors"
)

func TestParseCSV_HeaderLookupAndPadding(t *testing.T) {
	body := "\ufeff Request Count ,OBJECT,Date,Notes\n" +
		"5,/envivo/query,2024-03-04,x\n" +
		"\n" +
		"7,/home\n" +
		"\"1,000\",/a,2024-03-05,\n"

	rows, err := ParseCSV(strings.NewReader(body), DefaultColumns)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d %+v", len(rows), rows)
	}
	if rows[0].Date != "2024-03-04" || rows[0].Object != "/envivo/query" || rows[0].Count != "5" {
		t.Fatalf("row0 = %+v", rows[0])
	}
	if rows[1].Date != "" || rows[1].Object != "/home" || rows[1].Count != "7" {
		t.Fatalf("short row should be padded, got %+v", rows[1])
	}
	if rows[2].Count != "1,000" {
		t.Fatalf("quoted field = %q", rows[2].Count)
	}
}

func TestParseCSV_MissingColumn(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Date,Object\n2024-01-01,/a\n"), DefaultColumns)
	if perr.CodeOf(err) != perr.ErrorCodeUpstream {
		t.Fatalf("err = %v", err)
	}
	if e, _ := perr.As(err); e.Field() != "Request Count" {
		t.Fatalf("field = %q", e.Field())
	}
}

func TestParseCSV_EmptyAndCustomColumns(t *testing.T) {
	rows, err := ParseCSVBytes(nil, DefaultColumns)
	if err != nil || rows != nil {
		t.Fatalf("empty = %v %v", rows, err)
	}

	cols := Columns{Date: "day", Object: "path", Count: "hits"}
	rows, err = ParseCSVBytes([]byte("day,path,hits\n2024-01-01,/x,3\n"), cols)
	if err != nil || len(rows) != 1 || rows[0].Object != "/x" {
		t.Fatalf("custom = %v %v", rows, err)
	}
}
