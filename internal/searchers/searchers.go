// Package searchers defines the interface shared by the frontier search algorithms,
// the step-trace protocol they emit, and the registry the engines register into.
package searchers

import (
	"maps"
	"slices"

	"github.com/schweizerwilsemann/searchlab/internal/generics"
	"github.com/schweizerwilsemann/searchlab/internal/graph"
	"k8s.io/klog/v2"
)

// Step is an immutable snapshot of one search-state transition. The ordered sequence of
// steps is the full trace of a run, consumed read-only by trace viewers.
//
// Descriptions are human-readable summaries only, never used for control flow.
type Step struct {
	// Num is the 0-based position of this step in the trace.
	Num int

	Description string

	// Node being expanded, empty when the step isn't tied to one (initial/terminal steps).
	Node string

	// Neighbors of Node at expansion time, nil when not applicable.
	Neighbors []string

	// Frontier after this transition.
	Frontier []string

	// GScore and FScore snapshots, nil for the algorithms that don't keep them.
	GScore map[string]float32
	FScore map[string]float32

	// BestCost is the running bound of Branch-and-Bound, valid only when HasBestCost.
	BestCost    float32
	HasBestCost bool
}

// Result of one search run. Path is empty when Success is false, except for
// Branch-and-Bound which reports the best path found before frontier exhaustion.
type Result struct {
	Success bool
	Path    []string
	Steps   []Step
}

// Searcher is the interface all frontier search algorithms adhere to.
//
// Search runs synchronously to completion. A missing start node simply has no
// neighbors and fails after one expansion; "no path" is a normal Success=false
// result, not an error.
type Searcher interface {
	Search(g graph.Graph, start, goal string) *Result

	// String returns the engine name, as used in the registry.
	String() string
}

// Trace accumulates the Steps of one search run. The zero value is ready to use.
type Trace struct {
	steps []Step
}

// Add appends a step to the trace. The step's live slices and maps are cloned at
// emission time, so later frontier or score mutations don't leak into the trace.
// Step.Num is assigned here.
func (t *Trace) Add(step Step) {
	step.Num = len(t.steps)
	step.Neighbors = slices.Clone(step.Neighbors)
	step.Frontier = slices.Clone(step.Frontier)
	step.GScore = maps.Clone(step.GScore)
	step.FScore = maps.Clone(step.FScore)
	if klog.V(1).Enabled() {
		klog.Infof("step %d: %s; frontier=%v", step.Num, step.Description, step.Frontier)
	}
	t.steps = append(t.steps, step)
}

// Steps returns the accumulated trace.
func (t *Trace) Steps() []Step {
	return t.steps
}

// SortByScore returns nodes stably sorted ascending by score: nodes with equal scores
// keep the relative order they had, which is what makes traces reproducible.
func SortByScore(nodes []string, score func(node string) float32) []string {
	scores := generics.SliceMap(nodes, score)
	ordering := generics.SliceOrdering(scores, false)
	sorted := make([]string, len(nodes))
	for ii, idx := range ordering {
		sorted[ii] = nodes[idx]
	}
	return sorted
}

// ReconstructPath walks the parent-pointer map from goal back to start.
// The start node must be recorded in cameFrom as its own root (empty parent).
func ReconstructPath(cameFrom map[string]string, start, goal string) []string {
	path := []string{goal}
	for node := goal; node != start; {
		node = cameFrom[node]
		path = append(path, node)
	}
	slices.Reverse(path)
	return path
}
