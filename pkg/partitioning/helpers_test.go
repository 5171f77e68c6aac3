package partitioning

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
)

// testConfig returns a quiet config with a fixed seed.
func testConfig(k int) *Config {
	c := NewConfig()
	c.Set("partitioning.num_partitions", k)
	c.Set("algorithm.random_seed", int64(42))
	c.Set("logging.level", "disabled")
	return c
}

// scenarioGraph builds A:{1,2,3}, B:{4,5,6}, C:{3,4} with A=0, B=1, C=2.
func scenarioGraph(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New(hypergraph.WithSeed(42))
	g.AddNodeList(0, []hypergraph.VertexID{1, 2, 3})
	g.AddNodeList(1, []hypergraph.VertexID{4, 5, 6})
	g.AddNodeList(2, []hypergraph.VertexID{3, 4})
	require.NoError(t, g.Validate())
	return g
}
