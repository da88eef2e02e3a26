package domain

// RosterStatistics describes the shape of a matching input.
type RosterStatistics struct {
	EmployeeCount        int
	CustomerCount        int
	AvailableEmployees   int
	UnavailableEmployees int

	// EligibilityPairs counts (available employee, requested customer)
	// pairs, the eligibility edges of the matching network.
	EligibilityPairs int

	// AverageEligibility is EligibilityPairs divided by the number of
	// available employees.
	AverageEligibility float64

	// Density is EligibilityPairs divided by the maximum possible number
	// of pairs (available employees times customers).
	Density float64
}

// CalculateRosterStatistics computes input statistics for a roster and
// customer list.
func CalculateRosterStatistics(roster *Roster, customers []string) *RosterStatistics {
	stats := &RosterStatistics{
		CustomerCount: len(customers),
	}
	if roster == nil {
		return stats
	}
	stats.EmployeeCount = len(roster.Employees)

	requested := make(map[string]bool, len(customers))
	for _, c := range customers {
		requested[c] = true
	}

	for _, e := range roster.Employees {
		if !e.Available {
			stats.UnavailableEmployees++
			continue
		}
		stats.AvailableEmployees++
		for c := range e.AllowedCustomers {
			if requested[c] {
				stats.EligibilityPairs++
			}
		}
	}

	if stats.AvailableEmployees > 0 {
		stats.AverageEligibility = float64(stats.EligibilityPairs) / float64(stats.AvailableEmployees)
		if len(customers) > 0 {
			stats.Density = float64(stats.EligibilityPairs) /
				float64(stats.AvailableEmployees*len(customers))
		}
	}

	return stats
}

// CoverageGap is a customer no available employee can serve. Such a
// customer is unmatched in every matching, regardless of how the rest
// of the roster is assigned.
type CoverageGap struct {
	Customer string

	// EligibleUnavailable lists employees that could serve the customer
	// but are flagged unavailable, in roster order.
	EligibleUnavailable []string
}

// FindCoverageGaps returns customers without any available eligible
// employee, in customer input order.
func FindCoverageGaps(roster *Roster, customers []string) []*CoverageGap {
	var gaps []*CoverageGap

	for _, customer := range customers {
		covered := false
		var unavailable []string

		if roster != nil {
			for _, e := range roster.Employees {
				if !e.AllowedCustomers[customer] {
					continue
				}
				if e.Available {
					covered = true
					break
				}
				unavailable = append(unavailable, e.Name)
			}
		}

		if !covered {
			gaps = append(gaps, &CoverageGap{
				Customer:            customer,
				EligibleUnavailable: unavailable,
			})
		}
	}

	return gaps
}
