package partitioning

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
)

// spread puts vertex i of a single edge 0 into partition i mod m.
func spread(vertices, m int) []*Partition {
	parts := make([]*Partition, m)
	for i := range parts {
		parts[i] = NewPartition(i)
	}
	for v := 0; v < vertices; v++ {
		parts[v%m].AddNode(hypergraph.VertexID(v), []hypergraph.EdgeID{0})
	}
	return parts
}

func TestKMinus1SingleEdge(t *testing.T) {
	for m := 1; m <= 4; m++ {
		t.Run(fmt.Sprintf("spans_%d", m), func(t *testing.T) {
			parts := spread(4, m)
			assert.Equal(t, m-1, KMinus1(parts, 1))

			wantCut := 0
			if m > 1 {
				wantCut = 1
			}
			assert.Equal(t, wantCut, HyperedgeCut(parts))
		})
	}
}

func TestComputeMetricsScenario(t *testing.T) {
	a, b := NewPartition(0), NewPartition(1)
	for _, v := range []hypergraph.VertexID{1, 2} {
		a.AddNode(v, []hypergraph.EdgeID{0})
	}
	a.AddNode(3, []hypergraph.EdgeID{0, 2})
	b.AddNode(4, []hypergraph.EdgeID{1, 2})
	for _, v := range []hypergraph.VertexID{5, 6} {
		b.AddNode(v, []hypergraph.EdgeID{1})
	}

	m, err := ComputeMetrics(context.Background(), []*Partition{a, b}, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, m.SumOfExternalDegrees)
	assert.Equal(t, 1, m.HyperedgeCut)
	assert.Equal(t, 1, m.KMinus1)
	assert.Zero(t, m.VertexBalancing)
	assert.Zero(t, m.EdgeBalancing)
	assert.Equal(t, 3.0, m.MeanPartitionSize)
	assert.Zero(t, m.StdDevPartitionSize)
}

func TestMetricsEngineWorkerLimit(t *testing.T) {
	parts := spread(12, 5)

	unbounded, err := NewMetricsEngine(-1).Compute(context.Background(), parts, 1)
	require.NoError(t, err)
	single, err := NewMetricsEngine(1).Compute(context.Background(), parts, 1)
	require.NoError(t, err)

	assert.Equal(t, unbounded, single)
	assert.Equal(t, 5, single.SumOfExternalDegrees)
	assert.Equal(t, 4, single.KMinus1)
}

func TestMetricsEmpty(t *testing.T) {
	m, err := ComputeMetrics(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, Metrics{}, *m)

	empty := []*Partition{NewPartition(0), NewPartition(1), NewPartition(2)}
	m, err = ComputeMetrics(context.Background(), empty, 0)
	require.NoError(t, err)
	assert.Equal(t, Metrics{}, *m)
}

func TestBalancing(t *testing.T) {
	a, b := NewPartition(0), NewPartition(1)
	for v := 0; v < 4; v++ {
		a.AddNode(hypergraph.VertexID(v), []hypergraph.EdgeID{hypergraph.EdgeID(v)})
	}
	b.AddNode(10, []hypergraph.EdgeID{10, 11, 12, 13, 14, 15, 16, 17})
	b.AddNode(11, nil)

	parts := []*Partition{a, b}
	assert.InDelta(t, 0.5, VertexBalancing(parts), 1e-12)
	assert.InDelta(t, 0.5, EdgeBalancing(parts), 1e-12)

	c := NewPartition(2)
	assert.InDelta(t, 1.0, VertexBalancing(append(parts, c)), 1e-12)
}

func TestSizeStats(t *testing.T) {
	a, b := NewPartition(0), NewPartition(1)
	a.AddNode(1, nil)
	b.AddNode(2, nil)
	b.AddNode(3, nil)
	b.AddNode(4, nil)

	mean, stddev := SizeStats([]*Partition{a, b})
	assert.InDelta(t, 2.0, mean, 1e-12)
	assert.InDelta(t, math.Sqrt2, stddev, 1e-12)

	mean, stddev = SizeStats([]*Partition{b})
	assert.Equal(t, 3.0, mean)
	assert.Zero(t, stddev)
}

func TestComputeMetricsTaskFailure(t *testing.T) {
	parts := spread(4, 2)
	parts = append(parts, nil)

	m, err := ComputeMetrics(context.Background(), parts, 1)
	assert.ErrorIs(t, err, ErrMetricTaskFailed)
	assert.Nil(t, m)
}

func TestGuardedWrapsOnce(t *testing.T) {
	inner := guarded("external degree of partition 3", func() error {
		panic("boom")
	})
	err := guarded("sum of external degrees", inner)()

	require.ErrorIs(t, err, ErrMetricTaskFailed)
	assert.Equal(t, 1, strings.Count(err.Error(), ErrMetricTaskFailed.Error()))
	assert.Contains(t, err.Error(), "external degree of partition 3: boom")

	err = guarded("k-1", func() error { return io.ErrUnexpectedEOF })()
	assert.ErrorIs(t, err, ErrMetricTaskFailed)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSumOfExternalDegreesFailureWrapsOnce(t *testing.T) {
	parts := append(spread(4, 2), nil)

	_, err := NewMetricsEngine(1).SumOfExternalDegrees(context.Background(), parts)
	require.ErrorIs(t, err, ErrMetricTaskFailed)
	assert.Equal(t, 1, strings.Count(err.Error(), ErrMetricTaskFailed.Error()))
}
