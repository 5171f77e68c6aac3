package partitioning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
)

func TestPartitionAddNode(t *testing.T) {
	p := NewPartition(3)
	assert.Equal(t, 3, p.ID())
	assert.Zero(t, p.NumberOfNodes())
	assert.Zero(t, p.NumberOfEdges())

	p.AddNode(5, []hypergraph.EdgeID{1, 2})
	p.AddNode(2, []hypergraph.EdgeID{2, 7})
	p.AddNode(5, nil)

	assert.Equal(t, 2, p.NumberOfNodes())
	assert.Equal(t, 3, p.NumberOfEdges())
	assert.Equal(t, []hypergraph.VertexID{2, 5}, p.Nodes())
	assert.Equal(t, []hypergraph.EdgeID{1, 2, 7}, p.Edges())
	assert.True(t, p.HasNode(2))
	assert.False(t, p.HasNode(1))
	assert.True(t, p.HasEdge(7))
	assert.False(t, p.HasEdge(3))
}

func TestExternalDegree(t *testing.T) {
	a, b, c := NewPartition(0), NewPartition(1), NewPartition(2)
	a.AddNode(1, []hypergraph.EdgeID{10, 11, 12})
	b.AddNode(2, []hypergraph.EdgeID{11, 12})
	c.AddNode(3, []hypergraph.EdgeID{12, 13})
	all := []*Partition{a, b, c}

	assert.Equal(t, 2, a.ExternalDegree(all))
	assert.Equal(t, 2, b.ExternalDegree(all))
	assert.Equal(t, 1, c.ExternalDegree(all))
	assert.Zero(t, a.ExternalDegree([]*Partition{a}))
}

func TestPartitionString(t *testing.T) {
	p := NewPartition(1)
	p.AddNode(9, nil)
	p.AddNode(4, nil)

	assert.Equal(t, "id:1\nnodes:\n4\n9\n", p.String())
	assert.Equal(t, "id:0\nnodes:\n", NewPartition(0).String())
}
