package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighbors(t *testing.T) {
	g := Graph{"A": {"B", "A"}, "B": {}}
	assert.Equal(t, []string{"B", "A"}, g.Neighbors("A"))
	assert.Empty(t, g.Neighbors("B"))
	// Unknown nodes have no outgoing edges.
	assert.Nil(t, g.Neighbors("Z"))
}

func TestHasEdge(t *testing.T) {
	g := Graph{"A": {"B"}}
	assert.True(t, g.HasEdge("A", "B"))
	// Directed: no implicit symmetry.
	assert.False(t, g.HasEdge("B", "A"))
	assert.False(t, g.HasEdge("Z", "A"))
}

func TestPathCost(t *testing.T) {
	g := Graph{"A": {"B"}, "B": {"C"}}
	cost := func(u, v string) float32 { return 2 }
	assert.Equal(t, float32(4), g.PathCost([]string{"A", "B", "C"}, cost))
	assert.Equal(t, float32(0), g.PathCost([]string{"A"}, cost))
	assert.Equal(t, float32(0), g.PathCost(nil, cost))
}
