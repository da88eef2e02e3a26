package report

import (
	"context"
	"encoding/json"
	"time"
)

// JSONGenerator renders a matching run as indented JSON.
type JSONGenerator struct {
	BaseGenerator
}

// NewJSONGenerator creates a new generator.
func NewJSONGenerator() *JSONGenerator {
	return &JSONGenerator{}
}

// Format returns the generator's format.
func (g *JSONGenerator) Format() Format {
	return FormatJSON
}

// JSONReport is the top-level JSON payload.
type JSONReport struct {
	Metadata JSONMetadata   `json:"metadata"`
	Run      JSONRunStats   `json:"run"`
	Matching *JSONMatching  `json:"matching,omitempty"`
	Roster   []JSONEmployee `json:"roster,omitempty"`
}

type JSONMetadata struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	GeneratedAt string `json:"generatedAt"`
	Version     string `json:"version"`
}

type JSONRunStats struct {
	Employees         int     `json:"employees"`
	Customers         int     `json:"customers"`
	Nodes             int     `json:"nodes"`
	Edges             int     `json:"edges"`
	Iterations        int     `json:"iterations"`
	ComputationTimeMs float64 `json:"computationTimeMs"`
	CacheHit          bool    `json:"cacheHit"`
}

type JSONMatching struct {
	SuccessfulMatches    int              `json:"successfulMatches"`
	MatchRate            float64          `json:"matchRate"`
	Assignments          []JSONAssignment `json:"assignments"`
	UnmatchedCustomers   []string         `json:"unmatchedCustomers,omitempty"`
	AvailableEmployees   []string         `json:"availableEmployees,omitempty"`
	UnavailableEmployees []string         `json:"unavailableEmployees,omitempty"`
}

type JSONAssignment struct {
	Customer string `json:"customer"`
	Employee string `json:"employee"`
}

type JSONEmployee struct {
	Name      string   `json:"name"`
	Available bool     `json:"available"`
	Eligible  []string `json:"eligible"`
	Assigned  string   `json:"assigned,omitempty"`
}

// Generate renders the JSON report.
func (g *JSONGenerator) Generate(ctx context.Context, data *ReportData) ([]byte, error) {
	report := JSONReport{
		Metadata: JSONMetadata{
			Title:       g.GetTitle(data),
			Author:      g.GetAuthor(data),
			Description: g.GetDescription(data),
			GeneratedAt: time.Now().Format(time.RFC3339),
			Version:     "1.0",
		},
		Run: JSONRunStats{
			Employees:         rosterLen(data),
			Customers:         len(data.Customers),
			Nodes:             data.Nodes,
			Edges:             data.Edges,
			Iterations:        data.Iterations,
			ComputationTimeMs: data.DurationMs,
			CacheHit:          data.CacheHit,
		},
	}

	if s := data.Summary; s != nil {
		matching := &JSONMatching{
			SuccessfulMatches:    s.SuccessfulMatches,
			MatchRate:            g.MatchRate(data),
			Assignments:          make([]JSONAssignment, 0, len(s.Matches)),
			UnmatchedCustomers:   s.UnmatchedCustomers,
			AvailableEmployees:   s.AvailableEmployees,
			UnavailableEmployees: s.UnavailableEmployees,
		}
		for _, pair := range orderedMatches(data) {
			matching.Assignments = append(matching.Assignments, JSONAssignment{
				Customer: pair[0],
				Employee: pair[1],
			})
		}
		report.Matching = matching
	}

	if data.Roster != nil && g.ShouldIncludeRoster(data) {
		for _, e := range data.Roster.Employees {
			report.Roster = append(report.Roster, JSONEmployee{
				Name:      e.Name,
				Available: e.Available,
				Eligible:  e.AllowedList(),
				Assigned:  e.AssignedCustomer,
			})
		}
	}

	return json.MarshalIndent(report, "", "  ")
}
