package partitioning

import "errors"

// Sentinel errors for partitioning operations.
var (
	// ErrNilGraph indicates Run was called without a hypergraph.
	ErrNilGraph = errors.New("partitioning: graph is nil")

	// ErrInvalidPartitionCount indicates a partition count below 1.
	ErrInvalidPartitionCount = errors.New("partitioning: number of partitions must be positive")

	// ErrInvalidSSetSize indicates a negative secondary set capacity.
	ErrInvalidSSetSize = errors.New("partitioning: secondary set size must not be negative")

	// ErrInvalidCandidates indicates a negative candidate expansion width.
	ErrInvalidCandidates = errors.New("partitioning: number of expansion candidates must not be negative")

	// ErrInvalidIgnorePercent indicates an ignore percentage outside [0, 100).
	ErrInvalidIgnorePercent = errors.New("partitioning: percent of ignored edges must be in [0, 100)")

	// ErrUnknownHeuristicMode indicates an unparsable heuristic mode name.
	ErrUnknownHeuristicMode = errors.New("partitioning: unknown heuristic mode")

	// ErrUnknownSelectionMode indicates an unparsable selection mode name.
	ErrUnknownSelectionMode = errors.New("partitioning: unknown selection mode")

	// ErrMetricTaskFailed indicates a metric task panicked or failed. No
	// partial metrics are returned alongside it.
	ErrMetricTaskFailed = errors.New("partitioning: metric computation failed")
)
