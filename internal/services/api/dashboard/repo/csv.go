package repo

import (
	"context"

	"benchmarks/internal/adapters/sheets"
	"benchmarks/internal/core/requests"
)

// Fetcher is the slice of the sheets client the csv source needs
type Fetcher interface {
	Fetch(ctx context.Context) (*sheets.Result, error)
}

// CSV reads rows from a published spreadsheet export
type CSV struct {
	f    Fetcher
	cols sheets.Columns
}

// NewCSV returns a csv source over f; zero cols fall back to the sheet defaults
func NewCSV(f Fetcher, cols sheets.Columns) *CSV {
	if f == nil {
		panic("repo.CSV requires a non nil Fetcher")
	}
	def := sheets.DefaultColumns
	if cols.Date == "" {
		cols.Date = def.Date
	}
	if cols.Object == "" {
		cols.Object = def.Object
	}
	if cols.Count == "" {
		cols.Count = def.Count
	}
	return &CSV{f: f, cols: cols}
}

// Name returns the source kind
func (*CSV) Name() string { return KindCSV }

// Rows fetches the export and decodes it
func (s *CSV) Rows(ctx context.Context) ([]requests.RawRow, error) {
	res, err := s.f.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return sheets.ParseCSVBytes(res.Body, s.cols)
}
