package hypergraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicExact(t *testing.T) {
	g := sampleGraph(t)
	g.AddVertex(42)

	tests := []struct {
		name   string
		vertex VertexID
		want   float64
	}{
		{"single large edge", 1, 2},
		{"bridge vertex", 3, 1.5},
		{"isolated vertex", 42, 0},
		{"absent vertex", 99, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.HeuristicExact(tt.vertex))
		})
	}
}

func TestHeuristicEstimateIsStableWithoutMutation(t *testing.T) {
	g := sampleGraph(t)

	first := g.HeuristicEstimate(3)
	second := g.HeuristicEstimate(3)
	assert.Equal(t, first, second)
	assert.Equal(t, g.HeuristicExact(3), first)
}

func TestHeuristicEstimateMayGoStale(t *testing.T) {
	g := sampleGraph(t)
	require.Equal(t, 1.5, g.HeuristicEstimate(3))

	// vertex 4 shares edge 12 with vertex 3
	g.DeleteVertex(4)

	assert.Equal(t, 1.0, g.HeuristicExact(3))
	assert.Equal(t, 1.5, g.HeuristicEstimate(3), "cached value is kept after a neighbour is deleted")
}
