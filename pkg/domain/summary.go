package domain

// MatchSummary aggregates the outcome of one matching run. It is a pure
// value: producing it has no side effects and it can be consumed any
// number of times (reports, history, caching).
type MatchSummary struct {
	// Matches maps customer name to the employee serving it.
	// At most one entry per customer, each employee appears at most once.
	Matches map[string]string `json:"matches"`

	// UnmatchedCustomers lists customers with no assignment, in input order.
	UnmatchedCustomers []string `json:"unmatched_customers"`

	// AvailableEmployees lists employees that are available but ended the
	// run without an assignment, in roster order.
	AvailableEmployees []string `json:"available_employees"`

	// UnavailableEmployees lists employees excluded by the availability
	// flag, in roster order.
	UnavailableEmployees []string `json:"unavailable_employees"`

	// SuccessfulMatches equals len(Matches) and equals the flow magnitude
	// pushed through the network.
	SuccessfulMatches int `json:"successful_matches"`
}

// EmployeeFor returns the employee matched to the customer, if any.
func (s *MatchSummary) EmployeeFor(customer string) (string, bool) {
	name, ok := s.Matches[customer]
	return name, ok
}

// IsMatched reports whether the customer received an assignment.
func (s *MatchSummary) IsMatched(customer string) bool {
	_, ok := s.Matches[customer]
	return ok
}

// MatchedEmployees returns the set of employees that received an
// assignment this run.
func (s *MatchSummary) MatchedEmployees() map[string]bool {
	out := make(map[string]bool, len(s.Matches))
	for _, emp := range s.Matches {
		out[emp] = true
	}
	return out
}
