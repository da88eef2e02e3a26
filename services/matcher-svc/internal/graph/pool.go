package graph

import (
	"sync"
)

// GraphPool provides memory pooling for ResidualGraph instances.
//
// The matching engine builds a fresh network per run; pooling the graphs
// reuses their map and slice storage and reduces GC pressure when many
// rosters are matched in sequence. The pool is safe for concurrent use.
type GraphPool struct {
	graphs sync.Pool
}

var globalPool = &GraphPool{
	graphs: sync.Pool{
		New: func() any {
			return &ResidualGraph{
				Nodes:            make(map[int64]bool, 64),
				Edges:            make(map[int64]map[int64]*ResidualEdge, 64),
				EdgesList:        make(map[int64][]*ResidualEdge, 64),
				sortedNodesDirty: true,
			}
		},
	},
}

// GetPool returns the global graph pool.
func GetPool() *GraphPool {
	return globalPool
}

// AcquireGraph obtains a cleared ResidualGraph from the pool.
// Call ReleaseGraph when done.
func (p *GraphPool) AcquireGraph() *ResidualGraph {
	return p.graphs.Get().(*ResidualGraph)
}

// ReleaseGraph clears a graph and returns it to the pool.
// The graph must not be used afterwards. Passing nil is safe.
func (p *GraphPool) ReleaseGraph(g *ResidualGraph) {
	if g == nil {
		return
	}
	g.Clear()
	p.graphs.Put(g)
}
