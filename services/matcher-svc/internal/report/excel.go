package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExcelGenerator renders a matching run as an Excel workbook.
type ExcelGenerator struct {
	BaseGenerator
}

// NewExcelGenerator creates a new generator.
func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

// Format returns the generator's format.
func (g *ExcelGenerator) Format() Format {
	return FormatExcel
}

// Generate renders the Excel report.
func (g *ExcelGenerator) Generate(ctx context.Context, data *ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	g.writeSummarySheet(f, data)

	if data.Roster != nil && g.ShouldIncludeRoster(data) {
		g.writeRosterSheet(f, data)
	}

	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ExcelGenerator) headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	return style
}

func (g *ExcelGenerator) writeSummarySheet(f *excelize.File, data *ReportData) {
	sheet := "Matching Results"
	f.NewSheet(sheet)

	header := g.headerStyle(f)
	row := 1

	f.SetCellValue(sheet, Cell("A", row), g.GetTitle(data))
	f.MergeCell(sheet, Cell("A", row), Cell("B", row))
	row++

	f.SetCellValue(sheet, Cell("A", row), "Generated")
	f.SetCellValue(sheet, Cell("B", row), g.FormatTimestamp(time.Now()))
	row++

	f.SetCellValue(sheet, Cell("A", row), "Author")
	f.SetCellValue(sheet, Cell("B", row), g.GetAuthor(data))
	row += 2

	f.SetCellValue(sheet, Cell("A", row), "Run Statistics")
	f.SetCellStyle(sheet, Cell("A", row), Cell("B", row), header)
	row++

	stats := []struct {
		key   string
		value interface{}
	}{
		{"Employees", rosterLen(data)},
		{"Customers", len(data.Customers)},
		{"Network Nodes", data.Nodes},
		{"Network Edges", data.Edges},
		{"Iterations", data.Iterations},
		{"Computation Time (ms)", data.DurationMs},
		{"Cache Hit", data.CacheHit},
	}
	for _, st := range stats {
		f.SetCellValue(sheet, Cell("A", row), st.key)
		f.SetCellValue(sheet, Cell("B", row), st.value)
		row++
	}
	row++

	if data.Summary == nil {
		f.SetCellValue(sheet, Cell("A", row), "No matching data available")
		f.SetColWidth(sheet, "A", "B", 24)
		return
	}
	s := data.Summary

	f.SetCellValue(sheet, Cell("A", row), "Matching Results")
	f.SetCellStyle(sheet, Cell("A", row), Cell("B", row), header)
	row++

	f.SetCellValue(sheet, Cell("A", row), "Successful Matches")
	f.SetCellValue(sheet, Cell("B", row), s.SuccessfulMatches)
	row++

	f.SetCellValue(sheet, Cell("A", row), "Unmatched Customers")
	f.SetCellValue(sheet, Cell("B", row), len(s.UnmatchedCustomers))
	row++

	f.SetCellValue(sheet, Cell("A", row), "Match Rate")
	f.SetCellValue(sheet, Cell("B", row), g.FormatPercent(g.MatchRate(data)))
	row += 2

	f.SetCellValue(sheet, Cell("A", row), "Customer")
	f.SetCellValue(sheet, Cell("B", row), "Employee")
	f.SetCellStyle(sheet, Cell("A", row), Cell("B", row), header)
	row++

	for _, pair := range orderedMatches(data) {
		f.SetCellValue(sheet, Cell("A", row), pair[0])
		f.SetCellValue(sheet, Cell("B", row), pair[1])
		row++
	}
	for _, c := range s.UnmatchedCustomers {
		f.SetCellValue(sheet, Cell("A", row), c)
		f.SetCellValue(sheet, Cell("B", row), "(unmatched)")
		row++
	}

	f.SetColWidth(sheet, "A", "B", 24)
}

func (g *ExcelGenerator) writeRosterSheet(f *excelize.File, data *ReportData) {
	sheet := "Roster"
	f.NewSheet(sheet)

	header := g.headerStyle(f)

	headers := []string{"Employee", "Available", "Eligible Customers", "Assigned"}
	for i, h := range headers {
		f.SetCellValue(sheet, CellByIndex(i, 1), h)
	}
	f.SetCellStyle(sheet, "A1", "D1", header)

	for i, e := range data.Roster.Employees {
		row := i + 2
		f.SetCellValue(sheet, Cell("A", row), e.Name)
		f.SetCellValue(sheet, Cell("B", row), e.Available)
		f.SetCellValue(sheet, Cell("C", row), strings.Join(e.AllowedList(), ", "))
		f.SetCellValue(sheet, Cell("D", row), e.AssignedCustomer)
	}

	f.SetColWidth(sheet, "A", "D", 22)
}
