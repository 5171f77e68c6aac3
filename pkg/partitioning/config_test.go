package partitioning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()

	assert.Equal(t, 0, c.NumPartitions())
	assert.Equal(t, 10, c.SSetSize())
	assert.Equal(t, 2, c.Candidates())
	assert.Zero(t, c.IgnorePercent())
	assert.Equal(t, -1, c.MaxWorkers())
	assert.Equal(t, "info", c.LogLevel())
	assert.False(t, c.TrackSelections())

	heuristic, err := c.HeuristicMode()
	require.NoError(t, err)
	assert.Equal(t, Cached, heuristic)

	selection, err := c.SelectionMode()
	require.NoError(t, err)
	assert.Equal(t, TrulyRandom, selection)

	// no partition count yet
	assert.ErrorIs(t, c.Validate(), ErrInvalidPartitionCount)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
		want  error
	}{
		{"negative sset size", "partitioning.sset_size", -1, ErrInvalidSSetSize},
		{"negative candidates", "partitioning.candidates", -3, ErrInvalidCandidates},
		{"negative percent", "partitioning.ignore_percent", -0.5, ErrInvalidIgnorePercent},
		{"full percent", "partitioning.ignore_percent", 100.0, ErrInvalidIgnorePercent},
		{"unknown heuristic", "partitioning.heuristic", "perfect", ErrUnknownHeuristicMode},
		{"unknown selection", "partitioning.selection", "greedy", ErrUnknownSelectionMode},
		{"zero partitions", "partitioning.num_partitions", 0, ErrInvalidPartitionCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testConfig(2)
			require.NoError(t, c.Validate())

			c.Set(tt.key, tt.value)
			assert.ErrorIs(t, c.Validate(), tt.want)
		})
	}
}

func TestConfigFromViper(t *testing.T) {
	v := viper.New()
	v.Set("partitioning.num_partitions", 4)
	v.Set("partitioning.selection", "next-best")

	c := NewConfigFrom(v)
	require.NoError(t, c.Validate())
	assert.Equal(t, 4, c.NumPartitions())
	assert.Equal(t, 10, c.SSetSize(), "defaults fill unset keys")

	selection, err := c.SelectionMode()
	require.NoError(t, err)
	assert.Equal(t, NextBest, selection)
}

func TestConfigLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partitioner.yaml")
	content := "partitioning:\n  num_partitions: 8\n  heuristic: exact\n  sset_size: 25\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c := NewConfig()
	require.NoError(t, c.LoadFromFile(path))

	assert.Equal(t, 8, c.NumPartitions())
	assert.Equal(t, 25, c.SSetSize())
	assert.Equal(t, 2, c.Candidates())

	heuristic, err := c.HeuristicMode()
	require.NoError(t, err)
	assert.Equal(t, Exact, heuristic)
}

func TestParseModes(t *testing.T) {
	for _, mode := range []HeuristicMode{Cached, Exact} {
		parsed, err := ParseHeuristicMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	for _, mode := range []SelectionMode{TrulyRandom, NextBest} {
		parsed, err := ParseSelectionMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	selection, err := ParseSelectionMode(" NextBest ")
	require.NoError(t, err)
	assert.Equal(t, NextBest, selection)

	_, err = ParseHeuristicMode("")
	assert.ErrorIs(t, err, ErrUnknownHeuristicMode)

	assert.Equal(t, "heuristic", PickHeuristic.String())
	assert.Equal(t, "Pick(9)", Pick(9).String())
}
