package parser

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
	"github.com/gilchrisn/hypergraph-partitioner/pkg/stream"
)

func parseString(t *testing.T, input string, format Format) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New(hypergraph.WithSeed(1))
	require.NoError(t, Parse(strings.NewReader(input), format, g))
	require.NoError(t, g.Validate())
	return g
}

func TestParseEdgeList(t *testing.T) {
	g := parseString(t, "1: 10, 12\n2:10\n 3 : 10,11 \n\n7\n", EdgeList)

	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, []hypergraph.VertexID{1, 2, 3}, g.VerticesOf(10))
	assert.Equal(t, []hypergraph.EdgeID{10, 12}, g.EdgesOf(1))
	assert.True(t, g.HasVertex(7))
	assert.Empty(t, g.EdgesOf(7))
}

func TestParseHmetis(t *testing.T) {
	input := "% comment\n3 6\n1 2 3\n4 5 6\n3 4\n"
	g := parseString(t, input, Hmetis)

	assert.Equal(t, 6, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, []hypergraph.VertexID{1, 2, 3}, g.VerticesOf(0))
	assert.Equal(t, []hypergraph.VertexID{4, 5, 6}, g.VerticesOf(1))
	assert.Equal(t, []hypergraph.VertexID{3, 4}, g.VerticesOf(2))
}

func TestParseBipartite(t *testing.T) {
	g := parseString(t, "1 100\n2 100\n2 200\n", Bipartite)

	assert.Equal(t, []hypergraph.VertexID{1, 2}, g.VerticesOf(100))
	assert.Equal(t, []hypergraph.EdgeID{100, 200}, g.EdgesOf(2))
}

func TestParseMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"edge list bad vertex", "x: 1\n", EdgeList},
		{"edge list empty tail", "1:\n", EdgeList},
		{"hmetis short header", "3\n1 2\n", Hmetis},
		{"hmetis bad vertex", "1 2\n1 -2\n", Hmetis},
		{"bipartite three columns", "1 2 3\n", Bipartite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := hypergraph.New(hypergraph.WithSeed(1))
			err := Parse(strings.NewReader(tt.input), tt.format, g)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedLine)
			assert.Contains(t, err.Error(), "line ")
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{EdgeList, Hmetis, Bipartite} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("graphml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFileCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.hgr.zst")
	w, err := stream.Create(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, "2 4\n1 2\n3 4\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	g, err := ParseFile(path, Hmetis, hypergraph.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 2, g.NumEdges())
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.hgr"), Hmetis)
	assert.ErrorIs(t, err, stream.ErrFileNotFound)
}
