// Package bestfirst implements greedy best-first search: the whole frontier is kept
// sorted ascending by the heuristic, so the globally most promising node is expanded next.
package bestfirst

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

// New returns a best-first searchers.Searcher using the given heuristic.
func New(heuristic graph.HeuristicFunc) *Searcher {
	if heuristic == nil {
		exceptions.Panicf("bestfirst.New: heuristic function is nil")
	}
	return &Searcher{heuristic: heuristic}
}

// String implements the Searcher interface.
func (s *Searcher) String() string { return "bestfirst" }

// Search implements the Searcher interface.
//
// Nodes are marked seen by their presence in the parent-pointer map: a node is queued at
// most once and never re-examined, so the first dequeue of the goal ends the search.
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

		for _, v := range neighbors {
			if _, seen := cameFrom[v]; seen {
				continue
			}
			cameFrom[v] = u
			frontier = append(frontier, v)
		}
		frontier = searchers.SortByScore(frontier, s.heuristic)
		trace.Add(searchers.Step{
			Description: "frontier resorted by heuristic",
			Node:        u,
			Frontier:    frontier,
		})
	}

	trace.Add(searchers.Step{Description: "frontier exhausted without reaching goal"})
	return &searchers.Result{Success: false, Path: []string{}, Steps: trace.Steps()}
}
