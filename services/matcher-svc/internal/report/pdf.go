package report

import (
	"context"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFGenerator renders a matching run as a PDF document.
type PDFGenerator struct {
	BaseGenerator
}

// NewPDFGenerator creates a new generator.
func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

// Format returns the generator's format.
func (g *PDFGenerator) Format() Format {
	return FormatPDF
}

var (
	primaryColor   = &props.Color{Red: 52, Green: 152, Blue: 219}
	headerBgColor  = &props.Color{Red: 44, Green: 62, Blue: 80}
	lightGrayColor = &props.Color{Red: 236, Green: 240, Blue: 241}
	darkGrayColor  = &props.Color{Red: 127, Green: 140, Blue: 141}

	titleStyle = props.Text{
		Size:  24,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: headerBgColor,
	}

	h2Style = props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Color: headerBgColor,
		Top:   5,
	}

	normalStyle = props.Text{
		Size: 10,
	}

	boldStyle = props.Text{
		Size:  10,
		Style: fontstyle.Bold,
	}

	smallStyle = props.Text{
		Size:  8,
		Color: darkGrayColor,
	}

	metricValueStyle = props.Text{
		Size:  20,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: primaryColor,
	}

	metricLabelStyle = props.Text{
		Size:  9,
		Align: align.Center,
		Color: darkGrayColor,
	}

	tableHeaderStyle = &props.Cell{
		BackgroundColor: primaryColor,
	}

	tableHeaderTextStyle = props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
		Align: align.Center,
	}

	tableCellStyle = &props.Cell{
		BorderType:  border.Bottom,
		BorderColor: lightGrayColor,
	}

	tableCellTextStyle = props.Text{
		Size:  9,
		Align: align.Center,
	}
)

// Generate renders the PDF report.
func (g *PDFGenerator) Generate(ctx context.Context, data *ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	g.addHeader(m, data)
	g.addRunStats(m, data)

	if data.Summary != nil {
		g.addMatchingContent(m, data)
	} else {
		g.addSection(m, "No Matching Data")
	}

	if data.Roster != nil && g.ShouldIncludeRoster(data) {
		g.addRosterTable(m, data)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *PDFGenerator) addHeader(m core.Maroto, data *ReportData) {
	m.AddRow(15,
		text.NewCol(12, g.GetTitle(data), titleStyle),
	)

	m.AddRow(5,
		line.NewCol(12),
	)

	m.AddRow(6,
		text.NewCol(6, fmt.Sprintf("Author: %s", g.GetAuthor(data)), smallStyle),
		text.NewCol(6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")),
			props.Text{Size: 8, Color: darkGrayColor, Align: align.Right}),
	)

	if desc := g.GetDescription(data); desc != "" {
		m.AddRow(5,
			text.NewCol(12, desc, smallStyle),
		)
	}

	m.AddRow(8)
}

func (g *PDFGenerator) addRunStats(m core.Maroto, data *ReportData) {
	g.addSection(m, "Run Statistics")
	g.addMetricCards(m, []metricCard{
		{Label: "Employees", Value: fmt.Sprintf("%d", rosterLen(data))},
		{Label: "Customers", Value: fmt.Sprintf("%d", len(data.Customers))},
		{Label: "Iterations", Value: fmt.Sprintf("%d", data.Iterations)},
		{Label: "Time", Value: g.FormatDuration(data.DurationMs)},
	})

	m.AddRow(5)
	g.addKeyValueTable(m, []keyValue{
		{"Network Nodes", fmt.Sprintf("%d", data.Nodes)},
		{"Network Edges", fmt.Sprintf("%d", data.Edges)},
		{"Cache Hit", fmt.Sprintf("%v", data.CacheHit)},
	})
}

func (g *PDFGenerator) addMatchingContent(m core.Maroto, data *ReportData) {
	s := data.Summary

	g.addSection(m, "Matching Results")
	g.addMetricCards(m, []metricCard{
		{Label: "Successful Matches", Value: fmt.Sprintf("%d", s.SuccessfulMatches), Highlight: true},
		{Label: "Unmatched Customers", Value: fmt.Sprintf("%d", len(s.UnmatchedCustomers))},
		{Label: "Match Rate", Value: g.FormatPercent(g.MatchRate(data)), Highlight: true},
	})

	g.addSection(m, "Assignments")
	m.AddRow(8,
		text.NewCol(6, "Customer", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
		text.NewCol(6, "Employee", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
	)
	for _, pair := range orderedMatches(data) {
		m.AddRow(6,
			text.NewCol(6, pair[0], tableCellTextStyle).WithStyle(tableCellStyle),
			text.NewCol(6, pair[1], tableCellTextStyle).WithStyle(tableCellStyle),
		)
	}

	if len(s.UnmatchedCustomers) > 0 {
		g.addSection(m, "Unmatched Customers")
		for _, c := range s.UnmatchedCustomers {
			m.AddRow(6,
				text.NewCol(12, c, normalStyle),
			)
		}
	}

	if len(s.AvailableEmployees) > 0 || len(s.UnavailableEmployees) > 0 {
		g.addSection(m, "Employee Status")
		g.addKeyValueTable(m, []keyValue{
			{"Idle Available", fmt.Sprintf("%d", len(s.AvailableEmployees))},
			{"Unavailable", fmt.Sprintf("%d", len(s.UnavailableEmployees))},
		})
	}
}

func (g *PDFGenerator) addRosterTable(m core.Maroto, data *ReportData) {
	g.addSection(m, "Roster")

	m.AddRow(8,
		text.NewCol(3, "Employee", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
		text.NewCol(2, "Available", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
		text.NewCol(4, "Eligible Customers", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
		text.NewCol(3, "Assigned", tableHeaderTextStyle).WithStyle(tableHeaderStyle),
	)

	maxRows := 40
	for i, e := range data.Roster.Employees {
		if i >= maxRows {
			m.AddRow(6,
				text.NewCol(12, fmt.Sprintf("... and %d more rows", len(data.Roster.Employees)-maxRows), smallStyle),
			)
			break
		}
		eligible := ""
		for j, c := range e.AllowedList() {
			if j > 0 {
				eligible += ", "
			}
			eligible += c
		}
		m.AddRow(6,
			text.NewCol(3, e.Name, tableCellTextStyle).WithStyle(tableCellStyle),
			text.NewCol(2, fmt.Sprintf("%v", e.Available), tableCellTextStyle).WithStyle(tableCellStyle),
			text.NewCol(4, eligible, tableCellTextStyle).WithStyle(tableCellStyle),
			text.NewCol(3, e.AssignedCustomer, tableCellTextStyle).WithStyle(tableCellStyle),
		)
	}
}

type metricCard struct {
	Label     string
	Value     string
	Highlight bool
}

func (g *PDFGenerator) addMetricCards(m core.Maroto, cards []metricCard) {
	if len(cards) == 0 {
		return
	}

	colSize := 12 / len(cards)
	if colSize < 2 {
		colSize = 2
	}

	var cols []core.Col
	for _, card := range cards {
		valueStyle := metricValueStyle
		if !card.Highlight {
			valueStyle.Size = 14
		}

		cols = append(cols,
			col.New(colSize).Add(
				text.New(card.Value, valueStyle),
				text.New(card.Label, metricLabelStyle),
			),
		)
	}

	m.AddRow(20, cols...)
}

type keyValue struct {
	Key   string
	Value string
}

func (g *PDFGenerator) addKeyValueTable(m core.Maroto, items []keyValue) {
	for _, item := range items {
		m.AddRow(6,
			text.NewCol(6, item.Key, boldStyle),
			text.NewCol(6, item.Value, normalStyle),
		)
	}
}

func (g *PDFGenerator) addSection(m core.Maroto, title string) {
	m.AddRow(10,
		text.NewCol(12, title, h2Style),
	)
	m.AddRow(2,
		line.NewCol(12, props.Line{Color: primaryColor}),
	)
	m.AddRow(5)
}
