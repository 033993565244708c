// Package hillclimbing implements hill-climbing search: only the freshly discovered
// neighbors of the expanded node are sorted by the heuristic, and they are prepended to
// the frontier, giving the exploration a depth-first flavor.
package hillclimbing

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/schweizerwilsemann/searchlab/internal/graph"
	"github.com/schweizerwilsemann/searchlab/internal/searchers"
)

// Searcher implements the searchers.Searcher interface.
type Searcher struct {
	heuristic graph.HeuristicFunc
}

var _ searchers.Searcher = (*Searcher)(nil)

// New returns a hill-climbing searchers.Searcher using the given heuristic.
func New(heuristic graph.HeuristicFunc) *Searcher {
	if heuristic == nil {
		exceptions.Panicf("hillclimbing.New: heuristic function is nil")
	}
	return &Searcher{heuristic: heuristic}
}

// String implements the Searcher interface.
func (s *Searcher) String() string { return "hillclimbing" }

// Search implements the Searcher interface.
//
// Termination and path reconstruction are identical to best-first search; only the
// frontier discipline differs: the most promising children of the current node are
// explored before anything queued earlier.
func (s *Searcher) Search(g graph.Graph, start, goal string) *searchers.Result {
	var trace searchers.Trace
	frontier := []string{start}
	cameFrom := map[string]string{start: ""}
	trace.Add(searchers.Step{
		Description: fmt.Sprintf("start at %q, searching for %q", start, goal),
		Frontier:    frontier,
	})

	for len(frontier) > 0 {
		u := frontier[0]
		frontier = frontier[1:]
		neighbors := g.Neighbors(u)
		trace.Add(searchers.Step{
			Description: fmt.Sprintf("expand %q", u),
			Node:        u,
			Neighbors:   neighbors,
			Frontier:    frontier,
		})

		if u == goal {
			path := searchers.ReconstructPath(cameFrom, start, goal)
			trace.Add(searchers.Step{
				Description: fmt.Sprintf("goal %q reached", goal),
				Node:        u,
				Frontier:    frontier,
			})
			return &searchers.Result{Success: true, Path: path, Steps: trace.Steps()}
		}

		var fresh []string
		for _, v := range neighbors {
			if _, seen := cameFrom[v]; seen {
				continue
			}
			cameFrom[v] = u
			fresh = append(fresh, v)
		}
		fresh = searchers.SortByScore(fresh, s.heuristic)
		frontier = append(fresh, frontier...)
		trace.Add(searchers.Step{
			Description: "sorted neighbors prepended to frontier",
			Node:        u,
			Frontier:    frontier,
		})
	}

	trace.Add(searchers.Step{Description: "frontier exhausted without reaching goal"})
	return &searchers.Result{Success: false, Path: []string{}, Steps: trace.Steps()}
}
