package sheets

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"benchmarks/internal/core/requests"
	perr "benchmarks/internal/platform/errors"
)

// Columns names the header cells holding each field
type Columns struct {
	Date   string
	Object string
	Count  string
}

// DefaultColumns matches the published benchmark sheet
var DefaultColumns = Columns{Date: "Date", Object: "Object", Count: "Request Count"}

// ParseCSV maps a header-first CSV onto raw rows
// header lookup is trimmed and case-insensitive; short records are padded with empty fields
// blank lines are skipped, extra columns are ignored
func ParseCSV(r io.Reader, cols Columns) ([]requests.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUpstream, "csv header")
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	pos := [3]int{}
	for i, name := range []string{cols.Date, cols.Object, cols.Count} {
		p, ok := idx[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, perr.WithField(perr.Upstreamf("csv is missing column %q", name), name)
		}
		pos[i] = p
	}

	var out []requests.RawRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUpstream, "csv record")
		}
		out = append(out, requests.RawRow{
			Date:   field(rec, pos[0]),
			Object: field(rec, pos[1]),
			Count:  field(rec, pos[2]),
		})
	}
}

// ParseCSVBytes is ParseCSV over an in-memory body
func ParseCSVBytes(b []byte, cols Columns) ([]requests.RawRow, error) {
	return ParseCSV(bytes.NewReader(b), cols)
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}
