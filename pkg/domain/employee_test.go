package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_CanServe(t *testing.T) {
	tests := []struct {
		name      string
		setup     func() *Employee
		customer  string
		canServe  bool
	}{
		{
			name: "available_and_allowed",
			setup: func() *Employee {
				return NewEmployee("Alice", "Customer1", "Customer2")
			},
			customer: "Customer1",
			canServe: true,
		},
		{
			name: "not_allowed",
			setup: func() *Employee {
				return NewEmployee("Alice", "Customer1")
			},
			customer: "Customer3",
			canServe: false,
		},
		{
			name: "unavailable",
			setup: func() *Employee {
				e := NewEmployee("Alice", "Customer1")
				e.Available = false
				return e
			},
			customer: "Customer1",
			canServe: false,
		},
		{
			name: "already_assigned",
			setup: func() *Employee {
				e := NewEmployee("Alice", "Customer1", "Customer2")
				e.AssignedCustomer = "Customer2"
				return e
			},
			customer: "Customer1",
			canServe: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.setup()
			assert.Equal(t, tt.canServe, e.CanServe(tt.customer))
		})
	}
}

func TestEmployee_Assign(t *testing.T) {
	e := NewEmployee("Bob", "Customer2", "Customer3")

	require.True(t, e.Assign("Customer2"))
	assert.Equal(t, "Customer2", e.AssignedCustomer)

	// Second assignment must be rejected while the first one holds.
	assert.False(t, e.Assign("Customer3"))
	assert.Equal(t, "Customer2", e.AssignedCustomer)

	e.ClearAssignment()
	assert.True(t, e.Assign("Customer3"))
}

func TestEmployee_AllowedList_Sorted(t *testing.T) {
	e := NewEmployee("Grace", "Customer3", "Customer1", "Customer2")
	assert.Equal(t, []string{"Customer1", "Customer2", "Customer3"}, e.AllowedList())
}

func TestRoster_ResetAssignments(t *testing.T) {
	r := NewRoster()
	a := NewEmployee("Alice", "Customer1")
	b := NewEmployee("Bob", "Customer2")
	a.AssignedCustomer = "Customer1"
	b.AssignedCustomer = "Customer2"
	r.Add(a)
	r.Add(b)

	r.ResetAssignments()

	for _, e := range r.Employees {
		assert.Empty(t, e.AssignedCustomer)
	}
}

func TestRoster_Clone_Independent(t *testing.T) {
	r := NewRoster()
	r.Add(NewEmployee("Alice", "Customer1"))

	clone := r.Clone()
	clone.Employees[0].Available = false
	clone.Employees[0].AllowedCustomers["Customer9"] = true

	assert.True(t, r.Employees[0].Available)
	assert.False(t, r.Employees[0].AllowedCustomers["Customer9"])
}

func TestMatchSummary_Accessors(t *testing.T) {
	s := &MatchSummary{
		Matches:           map[string]string{"Customer1": "Alice", "Customer2": "Bob"},
		SuccessfulMatches: 2,
	}

	emp, ok := s.EmployeeFor("Customer1")
	require.True(t, ok)
	assert.Equal(t, "Alice", emp)

	assert.True(t, s.IsMatched("Customer2"))
	assert.False(t, s.IsMatched("Customer3"))

	matched := s.MatchedEmployees()
	assert.True(t, matched["Alice"])
	assert.True(t, matched["Bob"])
	assert.Len(t, matched, 2)
}
