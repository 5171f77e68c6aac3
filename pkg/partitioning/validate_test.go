package partitioning

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResult(t *testing.T) {
	result, err := Run(randomGraph(30, 20, 11), testConfig(4))
	require.NoError(t, err)
	assert.NoError(t, ValidateResult(result))

	sparse, err := Run(scenarioGraph(t), testConfig(10))
	require.NoError(t, err)
	assert.NoError(t, ValidateResult(sparse))
}

func TestValidateResultReportsProblems(t *testing.T) {
	a, b := NewPartition(0), NewPartition(1)
	a.AddNode(1, nil)
	a.AddNode(2, nil)
	b.AddNode(2, nil)

	result := &Result{
		Partitions:  []*Partition{a, b},
		TargetSizes: []int{1, 1},
		NumNodes:    3,
	}

	err := ValidateResult(result)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	// oversized partition 0, vertex 2 twice, vertex count mismatch
	assert.Len(t, verrs, 3)
	assert.Contains(t, err.Error(), "3 validation errors")
}
