// Package report renders a dashboard report for terminals
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"benchmarks/internal/core/requests"
	"benchmarks/internal/services/api/dashboard/domain"
)

// Options shape the rendered report
type Options struct {
	TrackedPath string
	Days        int // trailing daily rows to print, 0 prints the whole window
}

// Printer writes reports with grouped numbers and colored deltas
type Printer struct {
	w    io.Writer
	opts Options
	num  *message.Printer

	up, down, head, faint *color.Color
}

// New returns a Printer writing to w
func New(w io.Writer, opts Options) *Printer {
	if opts.TrackedPath == "" {
		opts.TrackedPath = requests.DefaultTrackedPath
	}
	return &Printer{
		w:     w,
		opts:  opts,
		num:   message.NewPrinter(language.English),
		up:    color.New(color.FgGreen),
		down:  color.New(color.FgRed),
		head:  color.New(color.Bold),
		faint: color.New(color.Faint),
	}
}

// Render prints the header, both cards, the averages and the two tables
func (p *Printer) Render(rep domain.ReportOut) {
	sum := rep.Summary
	if !sum.HasData {
		_, _ = fmt.Fprintln(p.w, "No data available")
		return
	}

	_, _ = p.head.Fprintf(p.w, "Viewing data for %s\n", rep.Viewing)
	_, _ = p.faint.Fprintf(p.w, "%s, snapshot %s from %s\n\n", rep.Label, rep.Snapshot.ID, rep.Snapshot.Source)

	p.card("Total Requests", sum.TotalDelta)
	p.card(p.opts.TrackedPath, sum.TrackedDelta)

	_, _ = fmt.Fprintf(p.w, "\nAverages for %s: %s requests/day, %s %s/day\n\n",
		rep.Label, p.value(sum.Averages.TotalAvg), p.value(sum.Averages.TrackedAvg), p.opts.TrackedPath)

	p.daily(rep.Days)
	p.objects(rep.Objects)

	if rep.Snapshot.Skipped > 0 {
		_, _ = p.faint.Fprintf(p.w, "\n%d rows skipped during ingestion\n", rep.Snapshot.Skipped)
	}
}

// card prints the latest value with its change against the same weekday a week earlier
func (p *Printer) card(title string, d requests.Delta) {
	_, _ = fmt.Fprintf(p.w, "%-20s %12s   %s\n", title, p.value(d.Current), p.change(d))
}

func (p *Printer) change(d requests.Delta) string {
	pct, okPct := d.Percent.Get()
	abs, okAbs := d.Absolute.Get()
	if !okAbs {
		return p.faint.Sprint("no comparison a week earlier")
	}
	text := fmt.Sprintf("%s (%s) vs last week", p.percent(pct, okPct), p.signed(abs))
	switch {
	case abs > 0:
		return p.up.Sprint("▲ " + text)
	case abs < 0:
		return p.down.Sprint("▼ " + text)
	}
	return "= " + text
}

func (p *Printer) percent(n int64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return p.num.Sprintf("%d%%", n)
}

func (p *Printer) signed(n int64) string {
	if n > 0 {
		return "+" + p.num.Sprintf("%d", n)
	}
	return p.num.Sprintf("%d", n)
}

func (p *Printer) value(v requests.Value) string {
	n, ok := v.Get()
	if !ok {
		return "n/a"
	}
	return p.num.Sprintf("%d", n)
}

func (p *Printer) table() *tablewriter.Table {
	return tablewriter.NewTable(p.w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignRight},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
	)
}

func (p *Printer) daily(days []requests.DailyTotal) {
	if n := p.opts.Days; n > 0 && len(days) > n {
		days = days[len(days)-n:]
	}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			d.Date.Time().Format("Mon Jan 2 2006"),
			p.num.Sprintf("%d", d.Total),
			p.num.Sprintf("%d", d.Tracked),
		})
	}
	_, _ = p.head.Fprintln(p.w, "Daily totals")
	t := p.table()
	t.Header([]string{"Date", "Total", "Tracked"})
	t.Bulk(rows)
	t.Render()
}

func (p *Printer) objects(objs []requests.ObjectTotal) {
	rows := make([][]string, 0, len(objs))
	for i, o := range objs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			o.Object,
			p.num.Sprintf("%d", o.Count),
			strconv.Itoa(o.Days),
		})
	}
	_, _ = fmt.Fprintln(p.w)
	_, _ = p.head.Fprintln(p.w, "Popular objects")
	t := p.table()
	t.Header([]string{"#", "Object", "Requests", "Days"})
	t.Bulk(rows)
	t.Render()
}
