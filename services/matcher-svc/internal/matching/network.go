// Package matching implements maximum bipartite matching between employees
// and customers via augmenting paths on a unit-capacity flow network.
//
// # Network Layout
//
// The network has four layers:
//
//	source (0) → employees (1..N) → customers (N+1..N+M) → sink (N+M+1)
//
// Every edge has capacity 1, so one unit of flow through an employee node
// commits that employee to exactly one customer.
//
// # Determinism
//
// Edges are inserted in the input order of employees and customers, and the
// search iterates edges in insertion order. Identical inputs therefore
// always produce the identical matching.
package matching

import (
	"rostering/pkg/apperror"
	"rostering/pkg/domain"
	"rostering/services/matcher-svc/internal/graph"
)

// SourceNode is the node ID of the flow source.
const SourceNode int64 = 0

// Network is the flow network built from a roster and a customer list.
//
// The node numbering is fixed: 0 is the source, 1..N are employees in
// roster order, N+1..N+M are customers in input order, N+M+1 is the sink.
type Network struct {
	// Graph is the residual network the search runs on.
	Graph *graph.ResidualGraph

	// Source and Sink node IDs.
	Source int64
	Sink   int64

	// employees holds the roster entries indexed by node ID offset.
	employees []*domain.Employee

	// customers holds the customer names indexed by node ID offset.
	customers []string
}

// BuildNetwork constructs the flow network for one matching run.
//
// Construction is total except for one check: duplicate employee names or
// duplicate customer names are rejected, because node identity is keyed by
// name and silent overwrites would corrupt the result. Empty rosters and
// empty customer lists build valid degenerate networks.
//
// Edges:
//   - source → employee, capacity 1, only for available employees
//   - employee → customer, capacity 1, when the employee is available and
//     the customer is in their allowed set
//   - customer → sink, capacity 1, for every customer
func BuildNetwork(roster *domain.Roster, customers []string, pool *graph.GraphPool) (*Network, error) {
	if roster == nil {
		return nil, apperror.ErrNilRoster
	}

	if err := checkDuplicates(roster, customers); err != nil {
		return nil, err
	}

	var g *graph.ResidualGraph
	if pool != nil {
		g = pool.AcquireGraph()
	} else {
		g = graph.NewResidualGraph()
	}

	n := int64(roster.Len())
	m := int64(len(customers))
	sink := n + m + 1

	g.AddNode(SourceNode)
	g.AddNode(sink)

	// source → employees
	for i, e := range roster.Employees {
		node := int64(i) + 1
		g.AddNode(node)
		if e.Available {
			g.AddEdgeWithReverse(SourceNode, node, 1)
		}
	}

	// employees → customers
	for i, e := range roster.Employees {
		if !e.Available {
			continue
		}
		node := int64(i) + 1
		for j, customer := range customers {
			if e.AllowedCustomers[customer] {
				g.AddEdgeWithReverse(node, n+int64(j)+1, 1)
			}
		}
	}

	// customers → sink
	for j := range customers {
		node := n + int64(j) + 1
		g.AddNode(node)
		g.AddEdgeWithReverse(node, sink, 1)
	}

	return &Network{
		Graph:     g,
		Source:    SourceNode,
		Sink:      sink,
		employees: roster.Employees,
		customers: customers,
	}, nil
}

func checkDuplicates(roster *domain.Roster, customers []string) error {
	seen := make(map[string]bool, roster.Len())
	for _, e := range roster.Employees {
		if seen[e.Name] {
			return apperror.NewWithField(
				apperror.CodeDuplicateIdentifier,
				"duplicate employee name: "+e.Name,
				"employee",
			)
		}
		seen[e.Name] = true
	}

	seenCustomers := make(map[string]bool, len(customers))
	for _, c := range customers {
		if seenCustomers[c] {
			return apperror.NewWithField(
				apperror.CodeDuplicateIdentifier,
				"duplicate customer name: "+c,
				"customer",
			)
		}
		seenCustomers[c] = true
	}

	return nil
}

// EmployeeCount returns the number of employee nodes.
func (net *Network) EmployeeCount() int {
	return len(net.employees)
}

// CustomerCount returns the number of customer nodes.
func (net *Network) CustomerCount() int {
	return len(net.customers)
}

// IsEmployeeNode reports whether the node ID addresses an employee.
func (net *Network) IsEmployeeNode(node int64) bool {
	return node >= 1 && node <= int64(len(net.employees))
}

// IsCustomerNode reports whether the node ID addresses a customer.
func (net *Network) IsCustomerNode(node int64) bool {
	n := int64(len(net.employees))
	return node > n && node <= n+int64(len(net.customers))
}

// Employee returns the employee behind a node ID, or nil.
func (net *Network) Employee(node int64) *domain.Employee {
	if !net.IsEmployeeNode(node) {
		return nil
	}
	return net.employees[node-1]
}

// Customer returns the customer name behind a node ID, or "".
func (net *Network) Customer(node int64) string {
	if !net.IsCustomerNode(node) {
		return ""
	}
	return net.customers[node-int64(len(net.employees))-1]
}

// Release returns the underlying graph to the pool.
// The network must not be used afterwards.
func (net *Network) Release(pool *graph.GraphPool) {
	if pool != nil && net.Graph != nil {
		pool.ReleaseGraph(net.Graph)
		net.Graph = nil
	}
}
