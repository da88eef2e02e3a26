package matching

import (
	"context"
	"time"

	"rostering/pkg/apperror"
	"rostering/pkg/domain"
	"rostering/services/matcher-svc/internal/graph"
)

// Options configures a matching run.
//
// Zero values are safe: DefaultOptions() is applied where needed.
type Options struct {
	// MaxIterations caps the augmenting loop. Zero or negative means
	// "number of employees", which is always sufficient since every
	// augmentation matches one additional employee.
	MaxIterations int

	// Pool is the graph pool for memory reuse. Nil uses the global pool.
	Pool *graph.GraphPool
}

// DefaultOptions returns the default matching options.
func DefaultOptions() *Options {
	return &Options{
		Pool: graph.GetPool(),
	}
}

// Result holds the outcome of a matching run.
type Result struct {
	// Summary is the reported matching outcome.
	Summary *domain.MatchSummary

	// MaxFlow is the flow value, equal to the number of matched pairs.
	MaxFlow int

	// Iterations is the number of augmenting paths found.
	Iterations int

	// Nodes and Edges describe the size of the network that was searched.
	Nodes int
	Edges int

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Engine computes maximum matchings. It holds no per-run state, so a single
// Engine is safe to share across goroutines.
type Engine struct {
	opts *Options
}

// NewEngine creates a matching engine.
func NewEngine(opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Pool == nil {
		opts.Pool = graph.GetPool()
	}
	return &Engine{opts: opts}
}

// Match computes a maximum matching between the roster and the customers.
//
// All previous assignments on the roster are cleared first, then each
// augmenting path found by BFS commits its assignments immediately. When a
// path reroutes an earlier assignment, the displaced employee is reassigned
// by a later edge of the same path, so recording only the forward
// employee→customer edges keeps the pair table consistent.
//
// Empty rosters and empty customer lists are valid degenerate inputs and
// produce an empty matching. Errors are limited to nil input, duplicate
// identifiers, context cancellation, and the iteration cap.
func (e *Engine) Match(ctx context.Context, roster *domain.Roster, customers []string) (*Result, error) {
	start := time.Now()

	if roster == nil {
		return nil, apperror.ErrNilRoster
	}
	roster.ResetAssignments()

	net, err := BuildNetwork(roster, customers, e.opts.Pool)
	if err != nil {
		return nil, err
	}
	defer net.Release(e.opts.Pool)

	maxIterations := e.opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = roster.Len()
	}

	// assignedTo maps employee node → customer node, rewritten as paths
	// reroute earlier assignments.
	assignedTo := make(map[int64]int64, roster.Len())

	maxFlow := 0
	iterations := 0

	for {
		select {
		case <-ctx.Done():
			return nil, apperror.Wrap(ctx.Err(), apperror.CodeTimeout, "matching canceled")
		default:
		}

		bfsResult := graph.BFS(net.Graph, net.Source, net.Sink)
		if !bfsResult.Found {
			break
		}

		if iterations >= maxIterations {
			return nil, apperror.ErrIterationLimit
		}

		path := graph.ReconstructPath(bfsResult.Parent, net.Source, net.Sink)
		if len(path) == 0 {
			break
		}

		pathFlow := graph.FindMinCapacityOnPath(net.Graph, path)
		if pathFlow <= 0 {
			break
		}

		graph.AugmentPath(net.Graph, path, pathFlow)
		recordAssignments(net, path, assignedTo)

		maxFlow += pathFlow
		iterations++
	}

	summary := buildSummary(net, assignedTo, customers)

	return &Result{
		Summary:    summary,
		MaxFlow:    maxFlow,
		Iterations: iterations,
		Nodes:      net.Graph.NodeCount(),
		Edges:      net.Graph.EdgeCount(),
		Duration:   time.Since(start),
	}, nil
}

// recordAssignments commits the assignments decided by one augmenting path.
//
// Only forward employee→customer edges are recorded. A backward
// customer→employee edge on the path always precedes a new forward edge for
// that same employee, so the overwrite in path order yields the final state.
func recordAssignments(net *Network, path []int64, assignedTo map[int64]int64) {
	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]
		if net.IsEmployeeNode(from) && net.IsCustomerNode(to) {
			assignedTo[from] = to
		}
	}
}
