package searchers_test

import (
	"testing"

	"github.com/schweizerwilsemann/searchlab/internal/searchers"
	_ "github.com/schweizerwilsemann/searchlab/internal/searchers/all"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

func TestSortByScore(t *testing.T) {
	scores := map[string]float32{"a": 2, "b": 1, "c": 2, "d": 0}
	score := func(node string) float32 { return scores[node] }

	got := searchers.SortByScore([]string{"a", "b", "c", "d"}, score)
	assert.Equal(t, []string{"d", "b", "a", "c"}, got)

	// Ties keep the relative order nodes had before sorting.
	got = searchers.SortByScore([]string{"c", "b", "a"}, score)
	assert.Equal(t, []string{"b", "c", "a"}, got)

	assert.Empty(t, searchers.SortByScore(nil, score))
}

func TestReconstructPath(t *testing.T) {
	cameFrom := map[string]string{"A": "", "B": "A", "C": "B"}
	assert.Equal(t, []string{"A", "B", "C"}, searchers.ReconstructPath(cameFrom, "A", "C"))
	assert.Equal(t, []string{"A"}, searchers.ReconstructPath(cameFrom, "A", "A"))
}

func TestTraceSnapshots(t *testing.T) {
	var trace searchers.Trace
	frontier := []string{"A", "B"}
	gScore := map[string]float32{"A": 0}
	trace.Add(searchers.Step{Description: "first", Frontier: frontier, GScore: gScore})

	// Mutating the live structures after emission must not leak into the trace.
	frontier[0] = "X"
	gScore["A"] = 99
	steps := trace.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, 0, steps[0].Num)
	assert.Equal(t, []string{"A", "B"}, steps[0].Frontier)
	assert.Equal(t, map[string]float32{"A": 0}, steps[0].GScore)

	trace.Add(searchers.Step{Description: "second"})
	assert.Equal(t, 1, trace.Steps()[1].Num)
}

func TestRegistry(t *testing.T) {
	heuristic := func(string) float32 { return 0 }
	cost := func(string, string) float32 { return 1 }

	assert.Equal(t, []string{"astar", "bestfirst", "branchandbound", "hillclimbing"},
		searchers.Names())

	for _, name := range searchers.Names() {
		engine, err := searchers.New(name, heuristic, cost)
		require.NoError(t, err)
		assert.Equal(t, name, engine.String())
	}

	_, err := searchers.New("dijkstra", heuristic, cost)
	assert.ErrorContains(t, err, "unknown search engine")

	_, err = searchers.New("astar:bogus=1", heuristic, cost)
	assert.ErrorContains(t, err, "bogus")

	_, err = searchers.New("astar", heuristic, nil)
	assert.ErrorContains(t, err, "cost")

	_, err = searchers.New("branchandbound", heuristic, nil)
	assert.ErrorContains(t, err, "cost")
}
