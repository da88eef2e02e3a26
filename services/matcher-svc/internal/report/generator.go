// Package report renders the outcome of a matching run into the
// distributable formats: CSV, JSON, Markdown, Excel and PDF. Generators
// are stateless and safe to share.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rostering/pkg/apperror"
	"rostering/pkg/domain"
)

// Format identifies an output format. The string values match the
// report.formats configuration keys.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatExcel    Format = "excel"
	FormatPDF      Format = "pdf"
)

// ParseFormat resolves a configuration string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatExcel:
		return FormatExcel, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", apperror.NewWithField(apperror.CodeUnsupportedFormat,
			fmt.Sprintf("unsupported report format %q", s), "format")
	}
}

// Extension returns the file extension for the format, with leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	case FormatExcel:
		return ".xlsx"
	case FormatPDF:
		return ".pdf"
	default:
		return ".txt"
	}
}

// Options controls presentation details shared by all generators.
type Options struct {
	Title       string
	Author      string
	Description string

	// IncludeRoster adds per-employee eligibility tables to the output.
	IncludeRoster bool
}

// ReportData carries everything a generator needs to render one run.
type ReportData struct {
	Options *Options

	Summary   *domain.MatchSummary
	Roster    *domain.Roster
	Customers []string

	// Run statistics from the engine.
	Iterations int
	Nodes      int
	Edges      int
	DurationMs float64
	CacheHit   bool
}

// Generator renders a ReportData into a byte payload of its format.
type Generator interface {
	Generate(ctx context.Context, data *ReportData) ([]byte, error)
	Format() Format
}

// NewGenerator returns the generator for the format.
func NewGenerator(f Format) (Generator, error) {
	switch f {
	case FormatCSV:
		return NewCSVGenerator(), nil
	case FormatJSON:
		return NewJSONGenerator(), nil
	case FormatMarkdown:
		return NewMarkdownGenerator(), nil
	case FormatExcel:
		return NewExcelGenerator(), nil
	case FormatPDF:
		return NewPDFGenerator(), nil
	default:
		return nil, apperror.NewWithField(apperror.CodeUnsupportedFormat,
			fmt.Sprintf("unsupported report format %q", f), "format")
	}
}

// BaseGenerator provides shared helpers for the concrete generators.
type BaseGenerator struct{}

// GetTitle returns the report title, falling back to a default.
func (b *BaseGenerator) GetTitle(data *ReportData) string {
	if data.Options != nil && data.Options.Title != "" {
		return data.Options.Title
	}
	return "Staff Matching Report"
}

// GetAuthor returns the report author, falling back to a default.
func (b *BaseGenerator) GetAuthor(data *ReportData) string {
	if data.Options != nil && data.Options.Author != "" {
		return data.Options.Author
	}
	return "Rostering System"
}

// GetDescription returns the optional description.
func (b *BaseGenerator) GetDescription(data *ReportData) string {
	if data.Options != nil {
		return data.Options.Description
	}
	return ""
}

// ShouldIncludeRoster reports whether per-employee tables go into the output.
func (b *BaseGenerator) ShouldIncludeRoster(data *ReportData) bool {
	if data.Options == nil {
		return true
	}
	return data.Options.IncludeRoster
}

// MatchRate returns the fraction of customers that received an assignment.
func (b *BaseGenerator) MatchRate(data *ReportData) float64 {
	if data.Summary == nil || len(data.Customers) == 0 {
		return 0
	}
	return float64(data.Summary.SuccessfulMatches) / float64(len(data.Customers))
}

// FormatPercent formats a ratio as a percentage.
func (b *BaseGenerator) FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// FormatDuration formats a millisecond duration for display.
func (b *BaseGenerator) FormatDuration(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.2f ms", ms)
	}
	return fmt.Sprintf("%.2f s", ms/1000)
}

// FormatTimestamp formats a time for display.
func (b *BaseGenerator) FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// orderedMatches returns customer/employee pairs in customer input order,
// so every format lists matches identically run to run.
func orderedMatches(data *ReportData) [][2]string {
	if data.Summary == nil {
		return nil
	}
	out := make([][2]string, 0, len(data.Summary.Matches))
	for _, customer := range data.Customers {
		if emp, ok := data.Summary.Matches[customer]; ok {
			out = append(out, [2]string{customer, emp})
		}
	}
	return out
}

// ColName converts a column index to its letter form (0 -> A, 26 -> AA).
func ColName(index int) string {
	result := ""
	for {
		result = string(rune('A'+index%26)) + result
		index = index/26 - 1
		if index < 0 {
			break
		}
	}
	return result
}

// Cell returns a cell address from a column letter and row number.
func Cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// CellByIndex returns a cell address from zero-based column and one-based row.
func CellByIndex(colIndex, rowIndex int) string {
	return fmt.Sprintf("%s%d", ColName(colIndex), rowIndex)
}
