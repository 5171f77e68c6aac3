package partitioning

import (
	"fmt"
	"runtime"
	"time"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
)

// TargetSizes splits n vertices into k near-equal parts. The first n mod k
// parts receive one extra vertex.
func TargetSizes(n, k int) []int {
	if k <= 0 {
		return nil
	}
	delta := n / k
	remainder := n - k*delta

	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = delta
		if i < remainder {
			sizes[i]++
		}
	}
	return sizes
}

// Run partitions graph greedily into config.NumPartitions() parts.
//
// The graph is consumed: every assigned vertex is deleted from it, so callers
// must not use it afterwards. Partitions are filled one after another; each
// gets a fresh secondary set. If the graph runs out early the remaining
// partitions stay smaller than their target, possibly empty.
//
// The graph's random generator is reseeded with algorithm.random_seed, so a
// fixed seed reproduces the run regardless of how the graph was built.
func Run(graph *hypergraph.Hypergraph, config *Config) (*Result, error) {
	startTime := time.Now()

	if graph == nil {
		return nil, ErrNilGraph
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := config.CreateLogger()
	graph.SetSeed(config.RandomSeed())
	heuristic, _ := config.HeuristicMode()
	selection, _ := config.SelectionMode()
	k := config.NumPartitions()

	var tracker *SelectionTracker
	if config.TrackSelections() {
		var err error
		tracker, err = NewSelectionTracker(config.TrackingOutputFile())
		if err != nil {
			return nil, err
		}
	}

	result := &Result{
		Partitions:  make([]*Partition, 0, k),
		TargetSizes: TargetSizes(graph.NumVertices(), k),
		NumNodes:    graph.NumVertices(),
		NumEdges:    graph.NumEdges(),
	}

	// fixed for the whole run, taken from the untouched graph
	result.MaxEdgeSize = graph.EdgeSizeAtPercentile(config.IgnorePercent())

	logger.Info().
		Int("nodes", result.NumNodes).
		Int("edges", result.NumEdges).
		Int("partitions", k).
		Int("sset_size", config.SSetSize()).
		Int("candidates", config.Candidates()).
		Float64("ignore_percent", config.IgnorePercent()).
		Int("max_edge_size", result.MaxEdgeSize).
		Str("heuristic", heuristic.String()).
		Str("selection", selection.String()).
		Int64("seed", config.RandomSeed()).
		Msg("Starting partitioning")

	stats := &result.Statistics
	progressInterval := config.ProgressInterval()

	for i := 0; i < k; i++ {
		part := NewPartition(i)
		sset := NewSecondarySet(config.SSetSize(), heuristic, selection)
		target := result.TargetSizes[i]

		for part.NumberOfNodes() < target && !graph.IsEmpty() {
			node, pick := sset.NextNode(graph)

			var score float64
			if tracker != nil {
				score = sset.score(graph, node)
			}

			part.AddNode(node, graph.EdgesOf(node))
			sset.RemoveNode(node)

			// candidates must be looked up before the node leaves the graph
			candidates := graph.SSetCandidates(node, config.Candidates(), result.MaxEdgeSize)
			graph.DeleteVertex(node)
			sset.AddNodes(graph, candidates)

			stats.Assignments++
			switch pick {
			case PickHeuristic:
				stats.HeuristicPicks++
			case PickRandom:
				stats.RandomFallbacks++
			case PickNextBest:
				stats.NextBestFallbacks++
			}

			tracker.LogSelection(SelectionEvent{
				Step:       stats.Assignments,
				Partition:  i,
				Node:       node,
				Pick:       pick.String(),
				Heuristic:  score,
				Candidates: len(candidates),
				SSetSize:   sset.Len(),
			})

			if config.EnableProgress() && progressInterval > 0 && stats.Assignments%progressInterval == 0 {
				logger.Info().
					Int("assigned", stats.Assignments).
					Int("remaining", graph.NumVertices()).
					Int("partition", i).
					Msg("Partitioning progress")
			}
		}

		if part.NumberOfNodes() < target {
			logger.Warn().
				Int("partition", i).
				Int("nodes", part.NumberOfNodes()).
				Int("target", target).
				Msg("Graph exhausted before partition reached its target size")
		}

		logger.Debug().
			Int("partition", i).
			Int("nodes", part.NumberOfNodes()).
			Int("edges", part.NumberOfEdges()).
			Msg("Partition filled")

		result.Partitions = append(result.Partitions, part)
	}

	if err := tracker.Close(); err != nil {
		return nil, fmt.Errorf("failed to write selection tracking: %w", err)
	}

	stats.RuntimeMS = time.Since(startTime).Milliseconds()
	stats.MemoryPeakMB = getMemoryUsage()

	logger.Info().
		Int("assignments", stats.Assignments).
		Int("random_fallbacks", stats.RandomFallbacks).
		Int("next_best_fallbacks", stats.NextBestFallbacks).
		Int64("runtime_ms", stats.RuntimeMS).
		Msg("Partitioning completed")

	return result, nil
}

// getMemoryUsage returns current memory usage in MB
func getMemoryUsage() int64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return int64(m.Alloc / 1024 / 1024)
}
