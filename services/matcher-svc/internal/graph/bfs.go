package graph

// =============================================================================
// Queue
// =============================================================================

// Queue is a FIFO queue for BFS traversal. It uses a slice with a head
// pointer so repeated pops do not reallocate.
type Queue struct {
	data []int64
	head int
}

// NewQueue creates a queue with the given initial capacity, typically the
// number of nodes in the graph.
func NewQueue(capacity int) *Queue {
	return &Queue{
		data: make([]int64, 0, capacity),
	}
}

// Push adds an element to the end of the queue.
func (q *Queue) Push(v int64) {
	q.data = append(q.data, v)
}

// Pop removes and returns the front element.
// Panics on an empty queue; check Empty() first.
func (q *Queue) Pop() int64 {
	v := q.data[q.head]
	q.head++
	return v
}

// Empty returns true if the queue contains no elements.
func (q *Queue) Empty() bool {
	return q.head >= len(q.data)
}

// Len returns the number of elements currently in the queue.
func (q *Queue) Len() int {
	return len(q.data) - q.head
}

// Reset clears the queue for reuse, keeping the underlying capacity.
func (q *Queue) Reset() {
	q.data = q.data[:0]
	q.head = 0
}

// =============================================================================
// BFS
// =============================================================================

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	// Found is true when the sink was reached.
	Found bool

	// Parent maps each discovered node to its predecessor.
	// The source maps to -1.
	Parent map[int64]int64

	// Visited is the set of discovered nodes.
	Visited map[int64]bool
}

// BFS searches for a shortest augmenting path from source to sink.
//
// Only edges with positive residual capacity are traversed. Neighbors are
// iterated via EdgesList, so with identical inputs the same path is found
// on every run. The search stops as soon as the sink is discovered.
//
// Time complexity: O(V + E).
func BFS(g *ResidualGraph, source, sink int64) *BFSResult {
	parent := make(map[int64]int64, len(g.Nodes))
	visited := make(map[int64]bool, len(g.Nodes))

	queue := NewQueue(len(g.Nodes))
	queue.Push(source)
	visited[source] = true
	parent[source] = -1

	for !queue.Empty() {
		u := queue.Pop()

		for _, edge := range g.GetNeighborsList(u) {
			v := edge.To

			if !visited[v] && edge.Capacity > 0 {
				parent[v] = u
				visited[v] = true
				queue.Push(v)

				// Early termination when the sink is found
				if v == sink {
					return &BFSResult{
						Found:   true,
						Parent:  parent,
						Visited: visited,
					}
				}
			}
		}
	}

	return &BFSResult{
		Found:   false,
		Parent:  parent,
		Visited: visited,
	}
}

// BFSWithCallback performs BFS and invokes the callback for each visited
// node with its distance from the source. Returning false stops the search.
func BFSWithCallback(g *ResidualGraph, source int64, callback func(node int64, level int) bool) {
	visited := make(map[int64]bool, len(g.Nodes))
	level := make(map[int64]int, len(g.Nodes))

	queue := NewQueue(len(g.Nodes))
	queue.Push(source)
	visited[source] = true
	level[source] = 0

	for !queue.Empty() {
		u := queue.Pop()

		if !callback(u, level[u]) {
			return
		}

		for _, edge := range g.GetNeighborsList(u) {
			v := edge.To
			if !visited[v] && edge.Capacity > 0 {
				visited[v] = true
				level[v] = level[u] + 1
				queue.Push(v)
			}
		}
	}
}
