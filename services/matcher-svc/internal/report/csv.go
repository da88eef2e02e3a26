package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

// CSVGenerator renders a matching run as sectioned CSV rows.
type CSVGenerator struct {
	BaseGenerator
}

// NewCSVGenerator creates a new generator.
func NewCSVGenerator() *CSVGenerator {
	return &CSVGenerator{}
}

// Format returns the generator's format.
func (g *CSVGenerator) Format() Format {
	return FormatCSV
}

// csvWriter wraps csv.Writer and keeps the first write error, so the
// row-emitting code stays free of error plumbing.
type csvWriter struct {
	w   *csv.Writer
	err error
}

func newCSVWriter(buf *bytes.Buffer) *csvWriter {
	return &csvWriter{w: csv.NewWriter(buf)}
}

func (cw *csvWriter) Write(record []string) {
	if cw.err != nil {
		return
	}
	cw.err = cw.w.Write(record)
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	if cw.err != nil {
		return cw.err
	}
	return cw.w.Error()
}

// Generate renders the CSV report.
func (g *CSVGenerator) Generate(ctx context.Context, data *ReportData) ([]byte, error) {
	var buf bytes.Buffer
	w := newCSVWriter(&buf)

	w.Write([]string{g.GetTitle(data)})
	w.Write([]string{"Generated", g.FormatTimestamp(time.Now())})
	w.Write([]string{"Author", g.GetAuthor(data)})
	if desc := g.GetDescription(data); desc != "" {
		w.Write([]string{"Description", desc})
	}
	w.Write(nil)

	g.writeRunStats(w, data)

	if data.Summary != nil {
		g.writeSummary(w, data)
	} else {
		w.Write([]string{"No matching data available"})
	}

	if data.Roster != nil && g.ShouldIncludeRoster(data) {
		g.writeRoster(w, data)
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *CSVGenerator) writeRunStats(w *csvWriter, data *ReportData) {
	w.Write([]string{"Run Statistics"})
	w.Write([]string{"Employees", fmt.Sprintf("%d", rosterLen(data))})
	w.Write([]string{"Customers", fmt.Sprintf("%d", len(data.Customers))})
	w.Write([]string{"Network Nodes", fmt.Sprintf("%d", data.Nodes)})
	w.Write([]string{"Network Edges", fmt.Sprintf("%d", data.Edges)})
	w.Write([]string{"Iterations", fmt.Sprintf("%d", data.Iterations)})
	w.Write([]string{"Computation Time", g.FormatDuration(data.DurationMs)})
	w.Write([]string{"Cache Hit", fmt.Sprintf("%v", data.CacheHit)})
	w.Write(nil)
}

func (g *CSVGenerator) writeSummary(w *csvWriter, data *ReportData) {
	s := data.Summary

	w.Write([]string{"Matching Results"})
	w.Write([]string{"Successful Matches", fmt.Sprintf("%d", s.SuccessfulMatches)})
	w.Write([]string{"Unmatched Customers", fmt.Sprintf("%d", len(s.UnmatchedCustomers))})
	w.Write([]string{"Match Rate", g.FormatPercent(g.MatchRate(data))})
	w.Write(nil)

	w.Write([]string{"Assignments"})
	w.Write([]string{"Customer", "Employee"})
	for _, pair := range orderedMatches(data) {
		w.Write([]string{pair[0], pair[1]})
	}
	w.Write(nil)

	if len(s.UnmatchedCustomers) > 0 {
		w.Write([]string{"Unmatched Customers"})
		for _, c := range s.UnmatchedCustomers {
			w.Write([]string{c})
		}
		w.Write(nil)
	}

	if len(s.AvailableEmployees) > 0 {
		w.Write([]string{"Idle Available Employees"})
		for _, e := range s.AvailableEmployees {
			w.Write([]string{e})
		}
		w.Write(nil)
	}

	if len(s.UnavailableEmployees) > 0 {
		w.Write([]string{"Unavailable Employees"})
		for _, e := range s.UnavailableEmployees {
			w.Write([]string{e})
		}
		w.Write(nil)
	}
}

func (g *CSVGenerator) writeRoster(w *csvWriter, data *ReportData) {
	w.Write([]string{"Roster"})
	w.Write([]string{"Employee", "Available", "Eligible Customers", "Assigned"})
	for _, e := range data.Roster.Employees {
		w.Write([]string{
			e.Name,
			fmt.Sprintf("%v", e.Available),
			strings.Join(e.AllowedList(), "; "),
			e.AssignedCustomer,
		})
	}
	w.Write(nil)
}

func rosterLen(data *ReportData) int {
	if data.Roster == nil {
		return 0
	}
	return len(data.Roster.Employees)
}
