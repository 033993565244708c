package hillclimbing_test

import (
	"strings"
	"testing"

	"github.com/schweizerwilsemann/searchlab/internal/graph"
	"github.com/schweizerwilsemann/searchlab/internal/searchers"
	"github.com/schweizerwilsemann/searchlab/internal/searchers/hillclimbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var diamond = graph.Graph{
	"A": {"B", "C"},
	"B": {"D"},
	"C": {"D"},
	"D": {},
}

func diamondHeuristic(node string) float32 {
	return map[string]float32{"A": 2, "B": 1, "C": 1, "D": 0}[node]
}

// expansionOrder extracts the sequence of nodes dequeued from the frontier.
func expansionOrder(steps []searchers.Step) (order []string) {
	for _, step := range steps {
		if strings.HasPrefix(step.Description, "expand") {
			order = append(order, step.Node)
		}
	}
	return
}

func TestSearchFindsPath(t *testing.T) {
	result := hillclimbing.New(diamondHeuristic).Search(diamond, "A", "D")
	assert.True(t, result.Success)
	assert.Equal(t, []string{"A", "B", "D"}, result.Path)
}

func TestSearchNoPath(t *testing.T) {
	g := graph.Graph{"A": {"B"}}
	result := hillclimbing.New(func(string) float32 { return 0 }).Search(g, "A", "Z")
	assert.False(t, result.Success)
	assert.Empty(t, result.Path)
}

func TestDepthFirstFlavor(t *testing.T) {
	// The freshly discovered children of the current node are explored before nodes
	// queued earlier, even when those look better by the heuristic.
	g := graph.Graph{
		"S": {"A", "B"},
		"A": {"C"},
		"B": {"G"},
		"C": {},
	}
	h := func(node string) float32 {
		return map[string]float32{"S": 3, "A": 1, "B": 2, "C": 10, "G": 0}[node]
	}

	result := hillclimbing.New(h).Search(g, "S", "G")
	require.True(t, result.Success)
	assert.Equal(t, []string{"S", "A", "C", "B", "G"}, expansionOrder(result.Steps))
	assert.Equal(t, []string{"S", "B", "G"}, result.Path)
}

func TestSortedNeighborsPrepended(t *testing.T) {
	// Neighbors are sorted ascending by heuristic before prepending.
	g := graph.Graph{"S": {"X", "Y", "Z"}}
	h := func(node string) float32 {
		return map[string]float32{"S": 0, "X": 3, "Y": 1, "Z": 2}[node]
	}
	result := hillclimbing.New(h).Search(g, "S", "missing")
	assert.False(t, result.Success)
	assert.Equal(t, []string{"S", "Y", "Z", "X"}, expansionOrder(result.Steps))
}

func TestSearchCyclesTerminate(t *testing.T) {
	g := graph.Graph{"A": {"B"}, "B": {"A"}}
	result := hillclimbing.New(func(string) float32 { return 0 }).Search(g, "A", "Z")
	assert.False(t, result.Success)
	assert.Empty(t, result.Path)
}
