package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsRoster() *Roster {
	r := NewRoster(
		NewEmployee("Alice", "Customer1", "Customer2"),
		NewEmployee("Bob", "Customer2"),
		NewEmployee("Carol", "Customer3"),
	)
	r.Employees[2].Available = false
	return r
}

func TestCalculateRosterStatistics(t *testing.T) {
	stats := CalculateRosterStatistics(statsRoster(), []string{"Customer1", "Customer2", "Customer3"})

	assert.Equal(t, 3, stats.EmployeeCount)
	assert.Equal(t, 3, stats.CustomerCount)
	assert.Equal(t, 2, stats.AvailableEmployees)
	assert.Equal(t, 1, stats.UnavailableEmployees)
	// Alice covers two requested customers, Bob one; Carol is unavailable.
	assert.Equal(t, 3, stats.EligibilityPairs)
	assert.InDelta(t, 1.5, stats.AverageEligibility, 1e-9)
	assert.InDelta(t, 0.5, stats.Density, 1e-9)
}

func TestCalculateRosterStatistics_IgnoresUnrequestedCustomers(t *testing.T) {
	stats := CalculateRosterStatistics(statsRoster(), []string{"Customer2"})

	assert.Equal(t, 1, stats.CustomerCount)
	assert.Equal(t, 2, stats.EligibilityPairs)
}

func TestCalculateRosterStatistics_NilRoster(t *testing.T) {
	stats := CalculateRosterStatistics(nil, []string{"Customer1"})

	assert.Equal(t, 0, stats.EmployeeCount)
	assert.Equal(t, 1, stats.CustomerCount)
	assert.Zero(t, stats.Density)
}

func TestFindCoverageGaps(t *testing.T) {
	gaps := FindCoverageGaps(statsRoster(), []string{"Customer1", "Customer3", "Customer4"})

	require.Len(t, gaps, 2)

	// Customer3 is only covered by the unavailable Carol.
	assert.Equal(t, "Customer3", gaps[0].Customer)
	assert.Equal(t, []string{"Carol"}, gaps[0].EligibleUnavailable)

	// Customer4 has no eligible employee at all.
	assert.Equal(t, "Customer4", gaps[1].Customer)
	assert.Empty(t, gaps[1].EligibleUnavailable)
}

func TestFindCoverageGaps_FullCoverage(t *testing.T) {
	gaps := FindCoverageGaps(statsRoster(), []string{"Customer1", "Customer2"})
	assert.Empty(t, gaps)
}
