// Package graph holds the adjacency-list graph model the frontier searchers operate on.
//
// Graphs are built by the callers (an input layer) and handed in fully validated: the
// searchers never parse or check them beyond what the algorithms need.
package graph

import "slices"

// Graph maps a node id to the ordered list of its neighbors.
//
// Edges are directed and there is no implicit symmetry. A neighbor id does not need to
// exist as a key: it is then a node with no outgoing edges. Self-loops are permitted.
type Graph map[string][]string

// HeuristicFunc estimates the cost-to-goal from a node. It must be pure: the same node
// yields the same estimate for the whole duration of a search run.
type HeuristicFunc func(node string) float32

// CostFunc returns the weight of the edge u->v. It is only evaluated for edges present
// in the adjacency list. A* and Branch-and-Bound assume costs >= 0 for optimality, but
// this is not enforced.
type CostFunc func(u, v string) float32

// Neighbors returns the ordered neighbor list of a node, nil for unknown nodes.
func (g Graph) Neighbors(node string) []string {
	return g[node]
}

// HasEdge reports whether the directed edge u->v exists.
func (g Graph) HasEdge(u, v string) bool {
	return slices.Contains(g[u], v)
}

// PathCost sums the edge costs over the consecutive pairs of path. A path with fewer
// than two nodes has cost zero.
func (g Graph) PathCost(path []string, cost CostFunc) float32 {
	var total float32
	for ii := 1; ii < len(path); ii++ {
		total += cost(path[ii-1], path[ii])
	}
	return total
}
