package partitioning

// Result represents the partitioner output
type Result struct {
	Partitions  []*Partition `json:"-"`
	TargetSizes []int        `json:"target_sizes"`
	NumNodes    int          `json:"num_nodes"`     // vertices of the input graph
	NumEdges    int          `json:"num_edges"`     // edges of the input graph
	MaxEdgeSize int          `json:"max_edge_size"` // expansion threshold used for the whole run
	Statistics  Statistics   `json:"statistics"`
}

// Statistics contains partitioner performance counters
type Statistics struct {
	Assignments       int   `json:"assignments"`
	HeuristicPicks    int   `json:"heuristic_picks"`
	RandomFallbacks   int   `json:"random_fallbacks"`
	NextBestFallbacks int   `json:"next_best_fallbacks"`
	RuntimeMS         int64 `json:"runtime_ms"`
	MemoryPeakMB      int64 `json:"memory_peak_mb"`
}

// PartitionSizes returns the node count of every partition in id order.
func (r *Result) PartitionSizes() []int {
	sizes := make([]int, len(r.Partitions))
	for i, p := range r.Partitions {
		sizes[i] = p.NumberOfNodes()
	}
	return sizes
}

// Metrics holds the quality measures of a finished partitioning.
type Metrics struct {
	SumOfExternalDegrees int     `json:"sum_of_external_degrees"`
	HyperedgeCut         int     `json:"hyperedge_cut"`
	KMinus1              int     `json:"k_minus_1"`
	VertexBalancing      float64 `json:"vertex_balancing"`
	EdgeBalancing        float64 `json:"edge_balancing"`
	MeanPartitionSize    float64 `json:"mean_partition_size"`
	StdDevPartitionSize  float64 `json:"stddev_partition_size"`
}
