package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gilchrisn/hypergraph-partitioner/pkg/hypergraph"
	"github.com/gilchrisn/hypergraph-partitioner/pkg/parser"
	"github.com/gilchrisn/hypergraph-partitioner/pkg/partitioning"
)

// flag name -> config key
var flagKeys = map[string]string{
	"input":                    "io.input",
	"format":                   "io.format",
	"output":                   "io.output",
	"summary":                  "io.summary",
	"raw":                      "io.raw",
	"partitions":               "partitioning.num_partitions",
	"sset-size":                "partitioning.sset_size",
	"nh-expand-candidates":     "partitioning.candidates",
	"percent-of-edges-ignored": "partitioning.ignore_percent",
	"heuristic-calc-method":    "partitioning.heuristic",
	"selection":                "partitioning.selection",
	"seed":                     "algorithm.random_seed",
	"workers":                  "performance.max_workers",
	"log-level":                "logging.level",
	"track-selections":         "analysis.track_selections",
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("partition", pflag.ContinueOnError)
	flags.StringP("input", "i", "", "input hypergraph file (.gz, .zst and .lz4 are decompressed)")
	flags.StringP("format", "f", parser.EdgeList.String(), "input format: hyperedgelist, hmetis or bipartite")
	flags.IntP("partitions", "p", 0, "number of partitions")
	flags.IntP("sset-size", "s", 10, "maximum size of the secondary set")
	flags.IntP("nh-expand-candidates", "n", 2, "neighbours added to the secondary set per assigned node")
	flags.Float64P("percent-of-edges-ignored", "e", 0, "percentage of the largest edges ignored while expanding the secondary set")
	flags.StringP("heuristic-calc-method", "c", partitioning.Cached.String(), "neighbourhood heuristic: cached or exact")
	flags.StringP("selection", "m", partitioning.TrulyRandom.String(), "fallback when the secondary set is empty: random or next-best")
	flags.Int64("seed", 0, "random seed (default: clock)")
	flags.Int("workers", -1, "concurrent metric tasks, below 1 means unbounded")
	flags.BoolP("raw", "r", false, "print raw tab separated numbers only")
	flags.StringP("output", "o", "", "write vertex/partition assignments to this file")
	flags.String("summary", "", "write a JSON run summary to this file")
	flags.String("log-level", "info", "log level: debug, info, warn, error or disabled")
	flags.String("track-selections", "", "write one JSON line per assigned node to this file")
	flags.String("config", "", "configuration file (yaml, json or toml)")
	flags.Lookup("track-selections").NoOptDefVal = "selections.jsonl"
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: partition --input <file> --partitions <k> [options]\n")
		flags.PrintDefaults()
	}
	return flags
}

// loadConfig layers defaults, an optional config file, PARTITIONER_* env
// vars and explicitly set flags, in increasing precedence.
func loadConfig(flags *pflag.FlagSet, args []string) (*partitioning.Config, *viper.Viper, error) {
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	for name, key := range flagKeys {
		if name == "track-selections" {
			continue
		}
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, nil, err
		}
	}
	v.SetEnvPrefix("PARTITIONER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config := partitioning.NewConfigFrom(v)
	if path, _ := flags.GetString("config"); path != "" {
		if err := config.LoadFromFile(path); err != nil {
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	if track := flags.Lookup("track-selections"); track.Changed {
		config.Set("analysis.track_selections", true)
		config.Set("analysis.output_file", track.Value.String())
	}
	return config, v, nil
}

func main() {
	flags := newFlagSet()
	config, v, err := loadConfig(flags, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flags.Usage()
		os.Exit(2)
	}

	logger := config.CreateLogger()

	input := v.GetString("io.input")
	if input == "" {
		flags.Usage()
		logger.Fatal().Msg("No input file given")
	}
	if err := config.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}
	format, err := parser.ParseFormat(v.GetString("io.format"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid input format")
	}

	rep := &report{
		Input:  input,
		Format: format,
		Config: config,
		Raw:    v.GetBool("io.raw"),
	}
	rep.writeHeader(os.Stdout)

	start := time.Now()
	graph, err := parser.ParseFile(input, format, hypergraph.WithSeed(config.RandomSeed()))
	if err != nil {
		logger.Fatal().Err(err).Str("input", input).Msg("Failed to parse hypergraph")
	}
	rep.ParseMS = time.Since(start).Milliseconds()

	// Run consumes the graph
	graphStats := graph.Stats()
	rep.NumNodes, rep.NumEdges = graphStats.NumVertices, graphStats.NumEdges
	rep.writeParsed(os.Stdout)

	start = time.Now()
	result, err := partitioning.Run(graph, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("Partitioning failed")
	}
	rep.PartitionMS = time.Since(start).Milliseconds()

	if err := partitioning.ValidateResult(result); err != nil {
		logger.Fatal().Err(err).Msg("Partitioning produced an invalid result")
	}

	engine := partitioning.NewMetricsEngine(config.MaxWorkers())
	metrics, err := engine.Compute(context.Background(), result.Partitions, result.NumEdges)
	if err != nil {
		logger.Fatal().Err(err).Msg("Metric computation failed")
	}
	rep.Metrics = metrics
	rep.writeResult(os.Stdout)

	if path := v.GetString("io.output"); path != "" {
		if err := partitioning.WriteAssignments(result, path); err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("Failed to write assignments")
		}
		logger.Info().Str("path", path).Msg("Assignments written")
	}

	if path := v.GetString("io.summary"); path != "" {
		summary := partitioning.NewSummary(config, graphStats, result, metrics)
		summary.Input = input
		summary.Format = format.String()
		summary.ParseMS = rep.ParseMS
		if err := partitioning.WriteSummary(summary, path); err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("Failed to write summary")
		}
		logger.Info().Str("path", path).Str("run_id", summary.RunID).Msg("Summary written")
	}
}
