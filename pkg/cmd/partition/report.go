package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/parser"
	"github.com/gilchrisn/hypergraph-partitioner/pkg/partitioning"
)

const rule = "----------------------------------------------------------------------------\n"

// report prints the progress block of a run, or only the final raw line.
type report struct {
	Input  string
	Format parser.Format
	Config *partitioning.Config
	Raw    bool

	NumNodes    int
	NumEdges    int
	ParseMS     int64
	PartitionMS int64
	Metrics     *partitioning.Metrics
}

func (r *report) writeHeader(w io.Writer) {
	if r.Raw {
		return
	}
	heuristic, _ := r.Config.HeuristicMode()
	method := "estimated"
	if heuristic == partitioning.Exact {
		method = "exact"
	}

	fmt.Fprint(w, rule)
	fmt.Fprintf(w, "Partitioning Graph: %s\n", r.Input)
	fmt.Fprintf(w, "into %d partitions\n", r.Config.NumPartitions())
	fmt.Fprintf(w, "max secondary set size: %d\n", r.Config.SSetSize())
	fmt.Fprintf(w, "while the secondary set expansion, the biggest %s%% of edges will be ignored\n", formatFloat(r.Config.IgnorePercent()))
	fmt.Fprintf(w, "the neighbourhood heuristic of a node will be %s\n", method)
	fmt.Fprint(w, rule)
	fmt.Fprint(w, "parsing graph ...\n")
}

func (r *report) writeParsed(w io.Writer) {
	if r.Raw {
		return
	}
	fmt.Fprintf(w, "graph parsed in %d milliseconds\n", r.ParseMS)
	fmt.Fprintf(w, "#Nodes:\t%d\n", r.NumNodes)
	fmt.Fprintf(w, "#HyperEdges:\t%d\n", r.NumEdges)
	fmt.Fprint(w, rule)
	fmt.Fprint(w, "partitioning graph\n")
}

func (r *report) writeResult(w io.Writer) {
	m := r.Metrics
	total := r.ParseMS + r.PartitionMS

	if r.Raw {
		fmt.Fprintf(w, "%d\t\t%d\t\t%s\t\t%s\t\t%d\t\t%d\t\t%d\n",
			r.Config.NumPartitions(), m.SumOfExternalDegrees,
			formatFloat(m.VertexBalancing), formatFloat(m.EdgeBalancing),
			m.HyperedgeCut, m.KMinus1, total)
		return
	}

	fmt.Fprintf(w, "partitioning done in %d milliseconds\n", r.PartitionMS)
	fmt.Fprint(w, rule)
	fmt.Fprintf(w, "sum of external degrees: %d\n", m.SumOfExternalDegrees)
	fmt.Fprintf(w, "Hyperedges cut: %d\n", m.HyperedgeCut)
	fmt.Fprintf(w, "K-1: %d\n", m.KMinus1)
	fmt.Fprintf(w, "node balancing: %s\n", formatFloat(m.VertexBalancing))
	fmt.Fprintf(w, "edge balancing: %s\n", formatFloat(m.EdgeBalancing))
	fmt.Fprintf(w, "parsing time: %d\n", r.ParseMS)
	fmt.Fprintf(w, "partition time: %d\n", r.PartitionMS)
	fmt.Fprintf(w, "total time: %d\n", total)
}

// formatFloat prints six significant digits without trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
