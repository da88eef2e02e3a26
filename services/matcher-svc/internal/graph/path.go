package graph

// ReconstructPath rebuilds the source-to-sink path from a BFS parent map.
// Returns nil when the sink was not reached.
func ReconstructPath(parent map[int64]int64, source, sink int64) []int64 {
	if _, exists := parent[sink]; !exists {
		return nil
	}

	var reversed []int64
	current := sink

	for current != source {
		reversed = append(reversed, current)
		p, exists := parent[current]
		if !exists || p == -1 {
			return nil
		}
		current = p
	}
	reversed = append(reversed, source)

	path := make([]int64, len(reversed))
	for i, node := range reversed {
		path[len(reversed)-1-i] = node
	}
	return path
}

// FindMinCapacityOnPath returns the bottleneck residual capacity along the
// path, or 0 when the path is broken. In the unit-capacity matching network
// the bottleneck is always 1 for a valid augmenting path.
func FindMinCapacityOnPath(g *ResidualGraph, path []int64) int {
	if len(path) < 2 {
		return 0
	}

	minCapacity := -1

	for i := 0; i < len(path)-1; i++ {
		edge := g.GetEdge(path[i], path[i+1])
		if edge == nil {
			return 0
		}
		if minCapacity < 0 || edge.Capacity < minCapacity {
			minCapacity = edge.Capacity
		}
	}

	if minCapacity < 0 {
		return 0
	}
	return minCapacity
}

// AugmentPath pushes flow along every edge of the path.
func AugmentPath(g *ResidualGraph, path []int64, flow int) {
	for i := 0; i < len(path)-1; i++ {
		g.UpdateFlow(path[i], path[i+1], flow)
	}
}
