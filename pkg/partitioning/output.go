package partitioning

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
	"github.com/gilchrisn/hypergraph-partitioner/pkg/stream"
)

// Summary is the machine readable record of one run.
type Summary struct {
	RunID      string           `json:"run_id"`
	Input      string           `json:"input,omitempty"`
	Format     string           `json:"format,omitempty"`
	Parameters Parameters       `json:"parameters"`
	Graph      hypergraph.Stats `json:"graph"`
	Result     *Result          `json:"result"`
	Sizes      []int            `json:"partition_sizes"`
	Metrics    *Metrics         `json:"metrics"`
	ParseMS    int64            `json:"parse_ms"`
}

// Parameters echoes the configuration a run used.
type Parameters struct {
	NumPartitions int     `json:"num_partitions"`
	SSetSize      int     `json:"sset_size"`
	Candidates    int     `json:"candidates"`
	IgnorePercent float64 `json:"ignore_percent"`
	Heuristic     string  `json:"heuristic"`
	Selection     string  `json:"selection"`
	RandomSeed    int64   `json:"random_seed"`
}

// NewSummary assembles a summary with a fresh run id.
func NewSummary(config *Config, graph hypergraph.Stats, result *Result, metrics *Metrics) *Summary {
	heuristic, _ := config.HeuristicMode()
	selection, _ := config.SelectionMode()

	return &Summary{
		RunID: uuid.New().String(),
		Parameters: Parameters{
			NumPartitions: config.NumPartitions(),
			SSetSize:      config.SSetSize(),
			Candidates:    config.Candidates(),
			IgnorePercent: config.IgnorePercent(),
			Heuristic:     heuristic.String(),
			Selection:     selection.String(),
			RandomSeed:    config.RandomSeed(),
		},
		Graph:   graph,
		Result:  result,
		Sizes:   result.PartitionSizes(),
		Metrics: metrics,
	}
}

// WriteSummary writes s as indented JSON to path.
func WriteSummary(s *Summary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		file.Close()
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return file.Close()
}

// WriteAssignments writes one "vertex<TAB>partition" line per assigned
// vertex, partitions in id order and vertices ascending. The file is
// compressed according to its extension.
func WriteAssignments(result *Result, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w, err := stream.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeAssignments(result, w); err != nil {
		w.Close()
		return fmt.Errorf("failed to write assignments: %w", err)
	}
	return w.Close()
}

// EncodeAssignments writes the assignment lines to w.
func EncodeAssignments(result *Result, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, part := range result.Partitions {
		it := part.nodes.Iterator()
		for it.HasNext() {
			if _, err := fmt.Fprintf(bw, "%d\t%d\n", it.Next(), part.ID()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
