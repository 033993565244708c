// Package branchandbound implements branch-and-bound search: A*'s cost bookkeeping plus
// a running best-cost bound. Reaching the goal does not stop the search -- the engine
// keeps exploring for a cheaper path and prunes nodes whose f-score exceeds the bound,
// terminating only on frontier exhaustion.
package branchandbound

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"
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

// New returns a branch-and-bound searchers.Searcher using the given heuristic and
// edge-cost functions.
func New(heuristic graph.HeuristicFunc, cost graph.CostFunc) *Searcher {
	if heuristic == nil {
		exceptions.Panicf("branchandbound.New: heuristic function is nil")
	}
	if cost == nil {
		exceptions.Panicf("branchandbound.New: cost function is nil")
	}
	return &Searcher{heuristic: heuristic, cost: cost}
}

// String implements the Searcher interface.
func (s *Searcher) String() string { return "branchandbound" }

// Search implements the Searcher interface.
//
// The returned Result carries the best path found even though no early termination
// happened: Success reports whether any path to the goal was found at all.
func (s *Searcher) Search(g graph.Graph, start, goal string) *searchers.Result {
	var trace searchers.Trace
	frontier := []string{start}
	cameFrom := map[string]string{start: ""}
	gScore := map[string]float32{start: 0}
	fScore := map[string]float32{start: s.heuristic(start)}
	bestCost := math32.Inf(1)
	bestPath := []string{}
	trace.Add(searchers.Step{
		Description: fmt.Sprintf("start at %q, searching for %q", start, goal),
		Frontier:    frontier,
		GScore:      gScore,
		FScore:      fScore,
		BestCost:    bestCost,
		HasBestCost: true,
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
			BestCost:    bestCost,
			HasBestCost: true,
		})

		if u == goal {
			// Goal nodes never terminate the search, they only tighten the bound.
			if gScore[u] <= bestCost {
				bestCost = gScore[u]
				bestPath = searchers.ReconstructPath(cameFrom, start, goal)
				trace.Add(searchers.Step{
					Description: fmt.Sprintf("goal %q reached, new best cost %g", goal, bestCost),
					Node:        u,
					Frontier:    frontier,
					GScore:      gScore,
					FScore:      fScore,
					BestCost:    bestCost,
					HasBestCost: true,
				})
			} else {
				trace.Add(searchers.Step{
					Description: fmt.Sprintf("goal %q revisited with cost %g, keeping best cost %g",
						goal, gScore[u], bestCost),
					Node:        u,
					Frontier:    frontier,
					GScore:      gScore,
					FScore:      fScore,
					BestCost:    bestCost,
					HasBestCost: true,
				})
			}
			continue
		}

		if fScore[u] > bestCost {
			trace.Add(searchers.Step{
				Description: fmt.Sprintf("prune %q: f=%g exceeds best cost %g", u, fScore[u], bestCost),
				Node:        u,
				Frontier:    frontier,
				GScore:      gScore,
				FScore:      fScore,
				BestCost:    bestCost,
				HasBestCost: true,
			})
			continue
		}

		var fresh []string
		for _, v := range neighbors {
			tentative := gScore[u] + s.cost(u, v)
			if old, ok := gScore[v]; ok && tentative >= old {
				continue
			}
			cameFrom[v] = u
			gScore[v] = tentative
			fScore[v] = tentative + s.heuristic(v)
			if !slices.Contains(frontier, v) && !slices.Contains(fresh, v) {
				fresh = append(fresh, v)
			}
		}
		fresh = searchers.SortByScore(fresh, func(node string) float32 { return fScore[node] })
		frontier = append(fresh, frontier...)
		trace.Add(searchers.Step{
			Description: "sorted neighbors prepended to frontier",
			Node:        u,
			Frontier:    frontier,
			GScore:      gScore,
			FScore:      fScore,
			BestCost:    bestCost,
			HasBestCost: true,
		})
	}

	trace.Add(searchers.Step{
		Description: "frontier exhausted, search space covered",
		BestCost:    bestCost,
		HasBestCost: true,
	})
	return &searchers.Result{Success: len(bestPath) > 0, Path: bestPath, Steps: trace.Steps()}
}
