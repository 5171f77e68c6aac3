package partitioning

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MetricsEngine computes partition quality metrics concurrently. Every metric
// runs as its own task over read-only partitions; the per-partition external
// degrees fan out once more.
type MetricsEngine struct {
	maxWorkers int
}

// NewMetricsEngine creates an engine. maxWorkers bounds the number of
// concurrently running tasks per group; values below 1 mean no limit.
func NewMetricsEngine(maxWorkers int) *MetricsEngine {
	return &MetricsEngine{maxWorkers: maxWorkers}
}

// ComputeMetrics runs every metric with no worker limit.
func ComputeMetrics(ctx context.Context, partitions []*Partition, edgesInGraph int) (*Metrics, error) {
	return NewMetricsEngine(-1).Compute(ctx, partitions, edgesInGraph)
}

func (e *MetricsEngine) newGroup(ctx context.Context) *errgroup.Group {
	g, _ := errgroup.WithContext(ctx)
	if e.maxWorkers > 0 {
		g.SetLimit(e.maxWorkers)
	}
	return g
}

// guarded turns a panic or error inside a task into ErrMetricTaskFailed.
// Errors of nested guarded tasks pass through unchanged.
func guarded(name string, task func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %s: %v", ErrMetricTaskFailed, name, r)
			}
		}()
		if err := task(); err != nil {
			if errors.Is(err, ErrMetricTaskFailed) {
				return err
			}
			return fmt.Errorf("%w: %s: %w", ErrMetricTaskFailed, name, err)
		}
		return nil
	}
}

// Compute waits for every metric task. If any task fails no metrics are
// returned.
func (e *MetricsEngine) Compute(ctx context.Context, partitions []*Partition, edgesInGraph int) (*Metrics, error) {
	var m Metrics
	g := e.newGroup(ctx)

	g.Go(guarded("sum of external degrees", func() error {
		soed, err := e.SumOfExternalDegrees(ctx, partitions)
		m.SumOfExternalDegrees = soed
		return err
	}))
	g.Go(guarded("hyperedge cut", func() error {
		m.HyperedgeCut = HyperedgeCut(partitions)
		return nil
	}))
	g.Go(guarded("edge balancing", func() error {
		m.EdgeBalancing = EdgeBalancing(partitions)
		return nil
	}))
	g.Go(guarded("vertex balancing", func() error {
		m.VertexBalancing = VertexBalancing(partitions)
		return nil
	}))
	g.Go(guarded("k-1", func() error {
		m.KMinus1 = KMinus1(partitions, edgesInGraph)
		return nil
	}))
	g.Go(guarded("size statistics", func() error {
		m.MeanPartitionSize, m.StdDevPartitionSize = SizeStats(partitions)
		return nil
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &m, nil
}

// SumOfExternalDegrees adds up the external degree of every partition, one
// task per partition.
func (e *MetricsEngine) SumOfExternalDegrees(ctx context.Context, partitions []*Partition) (int, error) {
	degrees := make([]int, len(partitions))
	g := e.newGroup(ctx)

	for i, part := range partitions {
		g.Go(guarded(fmt.Sprintf("external degree of partition %d", i), func() error {
			degrees[i] = part.ExternalDegree(partitions)
			return nil
		}))
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, d := range degrees {
		total += d
	}
	return total, nil
}

// HyperedgeCut counts the distinct edges present in more than one partition.
func HyperedgeCut(partitions []*Partition) int {
	cut := roaring64.New()
	for _, part := range partitions {
		it := part.edges.Iterator()
		for it.HasNext() {
			edge := it.Next()
			if cut.Contains(edge) {
				continue
			}
			for _, other := range partitions {
				if other == part {
					continue
				}
				if other.HasEdge(edge) {
					cut.Add(edge)
					break
				}
			}
		}
	}
	return int(cut.GetCardinality())
}

// EdgeBalancing returns (max - min) / max over the partition edge counts.
func EdgeBalancing(partitions []*Partition) float64 {
	sizes := make([]float64, len(partitions))
	for i, p := range partitions {
		sizes[i] = float64(p.NumberOfEdges())
	}
	return balancing(sizes)
}

// VertexBalancing returns (max - min) / max over the partition node counts.
func VertexBalancing(partitions []*Partition) float64 {
	return balancing(nodeCounts(partitions))
}

// balancing is 0 for no partitions or when every partition is empty.
func balancing(sizes []float64) float64 {
	if len(sizes) == 0 {
		return 0
	}
	biggest := floats.Max(sizes)
	if biggest == 0 {
		return 0
	}
	return (biggest - floats.Min(sizes)) / biggest
}

// KMinus1 returns the summed partition edge counts minus the number of edges
// of the original graph, i.e. the sum over edges of (spanned partitions - 1).
func KMinus1(partitions []*Partition, edgesInGraph int) int {
	total := 0
	for _, p := range partitions {
		total += p.NumberOfEdges()
	}
	return total - edgesInGraph
}

// SizeStats returns mean and standard deviation of the partition node counts.
func SizeStats(partitions []*Partition) (mean, stddev float64) {
	sizes := nodeCounts(partitions)
	switch len(sizes) {
	case 0:
		return 0, 0
	case 1:
		return sizes[0], 0
	}
	return stat.MeanStdDev(sizes, nil)
}

func nodeCounts(partitions []*Partition) []float64 {
	sizes := make([]float64, len(partitions))
	for i, p := range partitions {
		sizes[i] = float64(p.NumberOfNodes())
	}
	return sizes
}
