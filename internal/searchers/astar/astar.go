// Package astar implements A* search over the adjacency-list graph model.
//
// The frontier is a plain list fully re-sorted (stably) by f-score after each expansion
// rather than a priority queue: this matches the observable trace protocol exactly, and
// the externally-visible results (chosen path, optimality with non-negative costs and an
// admissible heuristic) are the same.
package astar

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/schweizerwilsemann/searchlab/internal/graph"
	"github.com/schweizerwilsemann/searchlab/internal/searchers"
)

// Searcher implements the searchers.Searcher interface.
type Searcher struct {
	heuristic graph.HeuristicFunc
	cost      graph.CostFunc
}

var _ searchers.Searcher = (*Searcher)(nil)

// New returns an A* searchers.Searcher using the given heuristic and edge-cost functions.
func New(heuristic graph.HeuristicFunc, cost graph.CostFunc) *Searcher {
	if heuristic == nil {
		exceptions.Panicf("astar.New: heuristic function is nil")
	}
	if cost == nil {
		exceptions.Panicf("astar.New: cost function is nil")
	}
	return &Searcher{heuristic: heuristic, cost: cost}
}

// String implements the Searcher interface.
func (s *Searcher) String() string { return "astar" }

// Search implements the Searcher interface.
//
// A node counts as seen through its presence in gScore; it is reopened only when a
// strictly better tentative cost is found.
func (s *Searcher) Search(g graph.Graph, start, goal string) *searchers.Result {
	var trace searchers.Trace
	frontier := []string{start}
	cameFrom := map[string]string{start: ""}
	gScore := map[string]float32{start: 0}
	fScore := map[string]float32{start: s.heuristic(start)}
	trace.Add(searchers.Step{
		Description: fmt.Sprintf("start at %q, searching for %q", start, goal),
		Frontier:    frontier,
		GScore:      gScore,
		FScore:      fScore,
	})

	for len(frontier) > 0 {
		u := frontier[0]
		frontier = frontier[1:]
		neighbors := g.Neighbors(u)
		trace.Add(searchers.Step{
			Description: fmt.Sprintf("expand %q (g=%g, f=%g)", u, gScore[u], fScore[u]),
			Node:        u,
			Neighbors:   neighbors,
			Frontier:    frontier,
			GScore:      gScore,
			FScore:      fScore,
		})

		if u == goal {
			path := searchers.ReconstructPath(cameFrom, start, goal)
			trace.Add(searchers.Step{
				Description: fmt.Sprintf("goal %q reached with cost %g", goal, gScore[u]),
				Node:        u,
				Frontier:    frontier,
				GScore:      gScore,
				FScore:      fScore,
			})
			return &searchers.Result{Success: true, Path: path, Steps: trace.Steps()}
		}

		for _, v := range neighbors {
			tentative := gScore[u] + s.cost(u, v)
			if old, ok := gScore[v]; ok && tentative >= old {
				continue
			}
			cameFrom[v] = u
			gScore[v] = tentative
			fScore[v] = tentative + s.heuristic(v)
			if !slices.Contains(frontier, v) {
				frontier = append(frontier, v)
			}
		}
		frontier = searchers.SortByScore(frontier, func(node string) float32 { return fScore[node] })
		trace.Add(searchers.Step{
			Description: "frontier resorted by f-score",
			Node:        u,
			Frontier:    frontier,
			GScore:      gScore,
			FScore:      fScore,
		})
	}

	trace.Add(searchers.Step{Description: "frontier exhausted without reaching goal"})
	return &searchers.Result{Success: false, Path: []string{}, Steps: trace.Steps()}
}
