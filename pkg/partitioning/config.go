package partitioning

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages partitioner configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Partitioning parameters
	v.SetDefault("partitioning.num_partitions", 0)
	v.SetDefault("partitioning.sset_size", 10)
	v.SetDefault("partitioning.candidates", 2)
	v.SetDefault("partitioning.ignore_percent", 0.0)
	v.SetDefault("partitioning.heuristic", Cached.String())
	v.SetDefault("partitioning.selection", TrulyRandom.String())
	v.SetDefault("algorithm.random_seed", time.Now().UnixNano())

	// Metrics parameters; a negative limit runs every task at once
	v.SetDefault("performance.max_workers", -1)

	// Logging parameters
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.enable_progress", true)
	v.SetDefault("logging.progress_interval", 100000)

	v.SetDefault("analysis.track_selections", false)
	v.SetDefault("analysis.output_file", "selections.jsonl")

	return &Config{v: v}
}

// NewConfigFrom wraps an existing viper instance, e.g. one with bound CLI
// flags. Defaults are applied for keys that are not set.
func NewConfigFrom(v *viper.Viper) *Config {
	defaults := NewConfig().v
	for _, key := range defaults.AllKeys() {
		v.SetDefault(key, defaults.Get(key))
	}
	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Getters for partitioning parameters
func (c *Config) NumPartitions() int { return c.v.GetInt("partitioning.num_partitions") }
func (c *Config) SSetSize() int { return c.v.GetInt("partitioning.sset_size") }
func (c *Config) Candidates() int { return c.v.GetInt("partitioning.candidates") }
func (c *Config) IgnorePercent() float64 { return c.v.GetFloat64("partitioning.ignore_percent") }
func (c *Config) RandomSeed() int64 { return c.v.GetInt64("algorithm.random_seed") }
func (c *Config) MaxWorkers() int { return c.v.GetInt("performance.max_workers") }
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) EnableProgress() bool { return c.v.GetBool("logging.enable_progress") }
func (c *Config) ProgressInterval() int { return c.v.GetInt("logging.progress_interval") }
func (c *Config) TrackSelections() bool { return c.v.GetBool("analysis.track_selections") }
func (c *Config) TrackingOutputFile() string { return c.v.GetString("analysis.output_file") }

// HeuristicMode parses partitioning.heuristic.
func (c *Config) HeuristicMode() (HeuristicMode, error) {
	return ParseHeuristicMode(c.v.GetString("partitioning.heuristic"))
}

// SelectionMode parses partitioning.selection.
func (c *Config) SelectionMode() (SelectionMode, error) {
	return ParseSelectionMode(c.v.GetString("partitioning.selection"))
}

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Validate checks the partitioning parameters.
func (c *Config) Validate() error {
	if c.NumPartitions() < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPartitionCount, c.NumPartitions())
	}
	if c.SSetSize() < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSSetSize, c.SSetSize())
	}
	if c.Candidates() < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCandidates, c.Candidates())
	}
	if p := c.IgnorePercent(); p < 0 || p >= 100 {
		return fmt.Errorf("%w: got %g", ErrInvalidIgnorePercent, p)
	}
	if _, err := c.HeuristicMode(); err != nil {
		return err
	}
	if _, err := c.SelectionMode(); err != nil {
		return err
	}
	return nil
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "partitioner").Logger()
}
