package matching

import (
	"rostering/pkg/domain"
)

// buildSummary applies the recorded assignments to the roster and builds
// the reported summary.
//
// Ordering rules: unmatched customers appear in customer input order,
// employee lists in roster order. The matches map is keyed by customer name.
func buildSummary(net *Network, assignedTo map[int64]int64, customers []string) *domain.MatchSummary {
	matches := make(map[string]string, len(assignedTo))
	matchedCustomers := make(map[string]bool, len(assignedTo))

	for employeeNode, customerNode := range assignedTo {
		employee := net.Employee(employeeNode)
		customer := net.Customer(customerNode)
		if employee == nil || customer == "" {
			continue
		}
		employee.Assign(customer)
		matches[customer] = employee.Name
		matchedCustomers[customer] = true
	}

	unmatched := make([]string, 0, len(customers)-len(matchedCustomers))
	for _, c := range customers {
		if !matchedCustomers[c] {
			unmatched = append(unmatched, c)
		}
	}

	available := make([]string, 0)
	unavailable := make([]string, 0)
	for _, e := range net.employees {
		if !e.Available {
			unavailable = append(unavailable, e.Name)
			continue
		}
		if e.AssignedCustomer == "" {
			available = append(available, e.Name)
		}
	}

	return &domain.MatchSummary{
		SuccessfulMatches:    len(matches),
		Matches:              matches,
		UnmatchedCustomers:   unmatched,
		AvailableEmployees:   available,
		UnavailableEmployees: unavailable,
	}
}
