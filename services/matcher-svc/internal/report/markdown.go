package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"
)

// MarkdownGenerator renders a matching run as a Markdown document.
type MarkdownGenerator struct {
	BaseGenerator
}

// NewMarkdownGenerator creates a new generator.
func NewMarkdownGenerator() *MarkdownGenerator {
	return &MarkdownGenerator{}
}

// Format returns the generator's format.
func (g *MarkdownGenerator) Format() Format {
	return FormatMarkdown
}

// Generate renders the Markdown report.
func (g *MarkdownGenerator) Generate(ctx context.Context, data *ReportData) ([]byte, error) {
	var buf bytes.Buffer

	g.writeHeader(&buf, data)
	g.writeRunStats(&buf, data)

	if data.Summary != nil {
		g.writeSummary(&buf, data)
	} else {
		buf.WriteString("*No matching data available*\n\n")
	}

	if data.Roster != nil && g.ShouldIncludeRoster(data) {
		g.writeRoster(&buf, data)
	}

	buf.WriteString("---\n\n")
	buf.WriteString("*Generated by the rostering matcher*\n")

	return buf.Bytes(), nil
}

func (g *MarkdownGenerator) writeHeader(buf *bytes.Buffer, data *ReportData) {
	buf.WriteString(fmt.Sprintf("# %s\n\n", g.GetTitle(data)))

	buf.WriteString("## Report Information\n\n")
	buf.WriteString(fmt.Sprintf("- **Generated:** %s\n", time.Now().Format("2006-01-02 15:04:05")))
	buf.WriteString(fmt.Sprintf("- **Author:** %s\n", g.GetAuthor(data)))
	if desc := g.GetDescription(data); desc != "" {
		buf.WriteString(fmt.Sprintf("- **Description:** %s\n", desc))
	}
	buf.WriteString("\n---\n\n")
}

func (g *MarkdownGenerator) writeRunStats(buf *bytes.Buffer, data *ReportData) {
	buf.WriteString("## Run Statistics\n\n")
	buf.WriteString(fmt.Sprintf("- **Employees:** %d\n", rosterLen(data)))
	buf.WriteString(fmt.Sprintf("- **Customers:** %d\n", len(data.Customers)))
	buf.WriteString(fmt.Sprintf("- **Network Nodes:** %d\n", data.Nodes))
	buf.WriteString(fmt.Sprintf("- **Network Edges:** %d\n", data.Edges))
	buf.WriteString(fmt.Sprintf("- **Iterations:** %d\n", data.Iterations))
	buf.WriteString(fmt.Sprintf("- **Computation Time:** %s\n", g.FormatDuration(data.DurationMs)))
	if data.CacheHit {
		buf.WriteString("- **Served from cache**\n")
	}
	buf.WriteString("\n")
}

func (g *MarkdownGenerator) writeSummary(buf *bytes.Buffer, data *ReportData) {
	s := data.Summary

	buf.WriteString("## Matching Results\n\n")
	buf.WriteString(fmt.Sprintf("- **Successful Matches:** %d\n", s.SuccessfulMatches))
	buf.WriteString(fmt.Sprintf("- **Unmatched Customers:** %d\n", len(s.UnmatchedCustomers)))
	buf.WriteString(fmt.Sprintf("- **Match Rate:** %s\n\n", g.FormatPercent(g.MatchRate(data))))

	buf.WriteString("### Assignments\n\n")
	buf.WriteString("| Customer | Employee |\n")
	buf.WriteString("|----------|----------|\n")
	for _, pair := range orderedMatches(data) {
		buf.WriteString(fmt.Sprintf("| %s | %s |\n", pair[0], pair[1]))
	}
	buf.WriteString("\n")

	if len(s.UnmatchedCustomers) > 0 {
		buf.WriteString("### Unmatched Customers\n\n")
		for _, c := range s.UnmatchedCustomers {
			buf.WriteString(fmt.Sprintf("- %s\n", c))
		}
		buf.WriteString("\n")
	}

	if len(s.AvailableEmployees) > 0 {
		buf.WriteString("### Idle Available Employees\n\n")
		for _, e := range s.AvailableEmployees {
			buf.WriteString(fmt.Sprintf("- %s\n", e))
		}
		buf.WriteString("\n")
	}

	if len(s.UnavailableEmployees) > 0 {
		buf.WriteString("### Unavailable Employees\n\n")
		for _, e := range s.UnavailableEmployees {
			buf.WriteString(fmt.Sprintf("- %s\n", e))
		}
		buf.WriteString("\n")
	}
}

func (g *MarkdownGenerator) writeRoster(buf *bytes.Buffer, data *ReportData) {
	buf.WriteString("## Roster\n\n")
	buf.WriteString("| Employee | Available | Eligible Customers | Assigned |\n")
	buf.WriteString("|----------|-----------|--------------------|----------|\n")
	for _, e := range data.Roster.Employees {
		assigned := e.AssignedCustomer
		if assigned == "" {
			assigned = "-"
		}
		buf.WriteString(fmt.Sprintf("| %s | %v | %s | %s |\n",
			e.Name, e.Available, strings.Join(e.AllowedList(), ", "), assigned))
	}
	buf.WriteString("\n")
}
