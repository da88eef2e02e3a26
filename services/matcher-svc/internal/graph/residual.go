// Package graph provides the residual network used by the matching engine.
package graph

import (
	"sort"
)

// =============================================================================
// Residual Edge
// =============================================================================

// ResidualEdge represents an edge in the residual network.
//
// Every original edge (u, v) with capacity c is represented by two edges:
//   - Forward edge (u, v) with capacity c
//   - Backward edge (v, u) with capacity 0
//
// When flow f is pushed along (u, v):
//   - Forward edge capacity becomes c - f
//   - Backward edge capacity becomes f
//
// The backward edge lets the algorithm undo earlier flow decisions, which
// is what allows an augmenting path to reroute an assignment.
type ResidualEdge struct {
	// To is the destination node ID.
	To int64

	// Capacity is the current residual capacity.
	// All edges in the matching network start at capacity 1 or 0.
	Capacity int

	// Flow is the amount of flow currently on this edge.
	// Only meaningful for forward edges.
	Flow int

	// OriginalCapacity is the initial capacity, used by Reset.
	OriginalCapacity int

	// IsReverse marks automatically created backward edges.
	IsReverse bool

	// Index is the position of this edge in the EdgesList slice.
	Index int
}

// HasCapacity returns true if the edge has positive residual capacity.
func (e *ResidualEdge) HasCapacity() bool {
	return e.Capacity > 0
}

// =============================================================================
// Residual Network
// =============================================================================

// ResidualGraph is the core data structure for the augmenting-path search.
//
// Edges are stored in two complementary structures:
//   - Edges: map for O(1) lookup by (from, to)
//   - EdgesList: slice per node for deterministic iteration order
//
// Both point to the same ResidualEdge objects. Algorithms must iterate with
// GetNeighborsList so results do not depend on Go's map iteration order:
// edges appear in insertion order, which the network builder derives from
// the input order of employees and customers.
//
// ResidualGraph is not safe for concurrent writes. Clone the graph or build
// a fresh one per goroutine.
type ResidualGraph struct {
	// Nodes contains all node IDs (used as a set).
	Nodes map[int64]bool

	// Edges provides O(1) edge lookup: Edges[from][to].
	Edges map[int64]map[int64]*ResidualEdge

	// EdgesList provides deterministic edge iteration per node,
	// in insertion order.
	EdgesList map[int64][]*ResidualEdge

	sortedNodes      []int64
	sortedNodesDirty bool
}

// NewResidualGraph creates an empty residual network.
func NewResidualGraph() *ResidualGraph {
	return &ResidualGraph{
		Nodes:            make(map[int64]bool),
		Edges:            make(map[int64]map[int64]*ResidualEdge),
		EdgesList:        make(map[int64][]*ResidualEdge),
		sortedNodesDirty: true,
	}
}

// Clear removes all nodes and edges so the graph can be reused.
func (rg *ResidualGraph) Clear() {
	clear(rg.Nodes)
	for k := range rg.Edges {
		clear(rg.Edges[k])
		delete(rg.Edges, k)
	}
	for k := range rg.EdgesList {
		rg.EdgesList[k] = rg.EdgesList[k][:0]
		delete(rg.EdgesList, k)
	}
	rg.sortedNodes = rg.sortedNodes[:0]
	rg.sortedNodesDirty = true
}

// AddNode adds a node to the graph. Adding an existing node is a no-op.
func (rg *ResidualGraph) AddNode(id int64) {
	if !rg.Nodes[id] {
		rg.Nodes[id] = true
		rg.sortedNodesDirty = true
	}
}

// AddEdge adds a forward edge with the given capacity.
//
// If an edge between the same nodes already exists:
//   - a reverse edge is promoted to a forward edge with the new capacity
//   - a forward edge accumulates the capacity
func (rg *ResidualGraph) AddEdge(from, to int64, capacity int) {
	rg.AddNode(from)
	rg.AddNode(to)

	if rg.Edges[from] == nil {
		rg.Edges[from] = make(map[int64]*ResidualEdge)
	}

	if existing := rg.Edges[from][to]; existing != nil {
		if existing.IsReverse {
			existing.OriginalCapacity = capacity
			existing.Capacity = capacity
			existing.IsReverse = false
			return
		}
		existing.Capacity += capacity
		existing.OriginalCapacity += capacity
		return
	}

	edge := &ResidualEdge{
		To:               to,
		Capacity:         capacity,
		OriginalCapacity: capacity,
		Index:            len(rg.EdgesList[from]),
	}

	rg.Edges[from][to] = edge
	rg.EdgesList[from] = append(rg.EdgesList[from], edge)
}

// AddReverseEdge adds a zero-capacity backward edge.
// Existing edges are never overwritten.
func (rg *ResidualGraph) AddReverseEdge(from, to int64) {
	rg.AddNode(from)
	rg.AddNode(to)

	if rg.Edges[from] == nil {
		rg.Edges[from] = make(map[int64]*ResidualEdge)
	}
	if rg.Edges[from][to] != nil {
		return
	}

	edge := &ResidualEdge{
		To:        to,
		Capacity:  0,
		IsReverse: true,
		Index:     len(rg.EdgesList[from]),
	}

	rg.Edges[from][to] = edge
	rg.EdgesList[from] = append(rg.EdgesList[from], edge)
}

// AddEdgeWithReverse adds a forward edge and its backward counterpart.
// This is the standard way to add an edge to the flow network.
func (rg *ResidualGraph) AddEdgeWithReverse(from, to int64, capacity int) {
	rg.AddEdge(from, to, capacity)
	rg.AddReverseEdge(to, from)
}

// GetEdge returns the edge from 'from' to 'to', or nil if not found.
func (rg *ResidualGraph) GetEdge(from, to int64) *ResidualEdge {
	if rg.Edges[from] == nil {
		return nil
	}
	return rg.Edges[from][to]
}

// GetNeighborsList returns all outgoing edges of a node in insertion order.
// Algorithms must use this accessor to stay deterministic.
func (rg *ResidualGraph) GetNeighborsList(node int64) []*ResidualEdge {
	return rg.EdgesList[node]
}

// GetSortedNodes returns node IDs sorted in ascending order.
// The result is cached until the node set changes.
func (rg *ResidualGraph) GetSortedNodes() []int64 {
	if rg.sortedNodesDirty || len(rg.sortedNodes) != len(rg.Nodes) {
		rg.sortedNodes = rg.sortedNodes[:0]
		for node := range rg.Nodes {
			rg.sortedNodes = append(rg.sortedNodes, node)
		}
		sort.Slice(rg.sortedNodes, func(i, j int) bool {
			return rg.sortedNodes[i] < rg.sortedNodes[j]
		})
		rg.sortedNodesDirty = false
	}
	return rg.sortedNodes
}

// NodeCount returns the number of nodes.
func (rg *ResidualGraph) NodeCount() int {
	return len(rg.Nodes)
}

// EdgeCount returns the total number of edges, reverse edges included.
func (rg *ResidualGraph) EdgeCount() int {
	count := 0
	for _, edges := range rg.EdgesList {
		count += len(edges)
	}
	return count
}

// =============================================================================
// Flow Operations
// =============================================================================

// UpdateFlow pushes flow along an edge and updates both residual directions:
// the forward capacity drops by 'flow' and the backward capacity grows by it.
// A missing backward edge is created on demand.
func (rg *ResidualGraph) UpdateFlow(from, to int64, flow int) {
	if edge := rg.GetEdge(from, to); edge != nil {
		edge.Flow += flow
		edge.Capacity -= flow
	}

	if backEdge := rg.GetEdge(to, from); backEdge != nil {
		backEdge.Capacity += flow
	} else {
		if rg.Edges[to] == nil {
			rg.Edges[to] = make(map[int64]*ResidualEdge)
		}
		newEdge := &ResidualEdge{
			To:        from,
			Capacity:  flow,
			IsReverse: true,
			Index:     len(rg.EdgesList[to]),
		}
		rg.Edges[to][from] = newEdge
		rg.EdgesList[to] = append(rg.EdgesList[to], newEdge)
	}
}

// GetFlowOnEdge returns the current flow on an edge, 0 if it does not exist.
func (rg *ResidualGraph) GetFlowOnEdge(from, to int64) int {
	if edge := rg.GetEdge(from, to); edge != nil {
		return edge.Flow
	}
	return 0
}

// GetTotalFlow computes the total flow leaving the source node.
func (rg *ResidualGraph) GetTotalFlow(source int64) int {
	total := 0
	for _, edge := range rg.EdgesList[source] {
		if !edge.IsReverse && edge.Flow > 0 {
			total += edge.Flow
		}
	}
	return total
}

// Reset clears all flow and restores original capacities.
func (rg *ResidualGraph) Reset() {
	for _, edges := range rg.EdgesList {
		for _, edge := range edges {
			if edge.IsReverse {
				edge.Capacity = 0
			} else {
				edge.Capacity = edge.OriginalCapacity
			}
			edge.Flow = 0
		}
	}
}

// Clone creates a deep copy of the graph.
func (rg *ResidualGraph) Clone() *ResidualGraph {
	clone := NewResidualGraph()

	for node := range rg.Nodes {
		clone.Nodes[node] = true
	}

	for from, edges := range rg.EdgesList {
		clone.Edges[from] = make(map[int64]*ResidualEdge, len(edges))
		clone.EdgesList[from] = make([]*ResidualEdge, len(edges))

		for i, edge := range edges {
			clonedEdge := &ResidualEdge{
				To:               edge.To,
				Capacity:         edge.Capacity,
				Flow:             edge.Flow,
				OriginalCapacity: edge.OriginalCapacity,
				IsReverse:        edge.IsReverse,
				Index:            edge.Index,
			}
			clone.Edges[from][edge.To] = clonedEdge
			clone.EdgesList[from][i] = clonedEdge
		}
	}

	clone.sortedNodesDirty = true
	return clone
}

// GetAllEdges returns all forward edges in deterministic order.
func (rg *ResidualGraph) GetAllEdges() []*ResidualEdge {
	var result []*ResidualEdge
	for _, from := range rg.GetSortedNodes() {
		for _, edge := range rg.EdgesList[from] {
			if !edge.IsReverse {
				result = append(result, edge)
			}
		}
	}
	return result
}
