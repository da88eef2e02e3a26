// Package domain defines the entities of the staff/customer matching
// problem: employees with eligibility and availability constraints,
// customers requesting service, and the summary produced by a matching run.
package domain

import "sort"

// Employee represents a staff member that can serve at most one customer
// at a time.
type Employee struct {
	// Name uniquely identifies the employee within a roster.
	Name string

	// Available marks whether the employee can be considered at all.
	// Unavailable employees never receive an assignment.
	Available bool

	// AllowedCustomers is the set of customer names this employee is
	// eligible to serve.
	AllowedCustomers map[string]bool

	// AssignedCustomer is the name of the customer currently assigned,
	// or empty. Only the matching engine writes this field.
	AssignedCustomer string
}

// NewEmployee creates an available employee eligible for the given customers.
func NewEmployee(name string, allowed ...string) *Employee {
	e := &Employee{
		Name:             name,
		Available:        true,
		AllowedCustomers: make(map[string]bool, len(allowed)),
	}
	for _, c := range allowed {
		e.AllowedCustomers[c] = true
	}
	return e
}

// CanServe reports whether the employee may be matched to the customer:
// it must be available, eligible, and not already assigned.
func (e *Employee) CanServe(customer string) bool {
	return e.Available && e.AllowedCustomers[customer] && e.AssignedCustomer == ""
}

// Assign records the assignment if CanServe holds.
func (e *Employee) Assign(customer string) bool {
	if !e.CanServe(customer) {
		return false
	}
	e.AssignedCustomer = customer
	return true
}

// ClearAssignment resets the employee to the unassigned state.
func (e *Employee) ClearAssignment() {
	e.AssignedCustomer = ""
}

// AllowedList returns the eligible customer names in sorted order.
// Useful for deterministic logging and reports.
func (e *Employee) AllowedList() []string {
	out := make([]string, 0, len(e.AllowedCustomers))
	for c := range e.AllowedCustomers {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Clone creates a deep copy of the employee.
func (e *Employee) Clone() *Employee {
	clone := &Employee{
		Name:             e.Name,
		Available:        e.Available,
		AssignedCustomer: e.AssignedCustomer,
		AllowedCustomers: make(map[string]bool, len(e.AllowedCustomers)),
	}
	for c, ok := range e.AllowedCustomers {
		clone.AllowedCustomers[c] = ok
	}
	return clone
}

// Customer represents a service request. Customers carry no mutable state
// in the matching engine; appointment details belong to the scheduling
// heuristic, not here.
type Customer struct {
	Name string
}

// Roster is an ordered collection of employees. Order matters: it defines
// the deterministic tie-break between equally good matchings.
type Roster struct {
	Employees []*Employee
}

// NewRoster creates a roster with the given employees, preserving order.
func NewRoster(employees ...*Employee) *Roster {
	return &Roster{Employees: employees}
}

// Add appends an employee to the roster.
func (r *Roster) Add(e *Employee) {
	r.Employees = append(r.Employees, e)
}

// ResetAssignments clears every employee's assignment. The matching engine
// calls this at the start of each run.
func (r *Roster) ResetAssignments() {
	for _, e := range r.Employees {
		e.ClearAssignment()
	}
}

// Clone creates a deep copy of the roster, preserving order.
func (r *Roster) Clone() *Roster {
	clone := &Roster{Employees: make([]*Employee, len(r.Employees))}
	for i, e := range r.Employees {
		clone.Employees[i] = e.Clone()
	}
	return clone
}

// Len returns the number of employees.
func (r *Roster) Len() int {
	return len(r.Employees)
}
