package solver

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mwpf/parity"
	"github.com/katalvlaran/mwpf/primal"
)

// ErrBadConfig indicates a malformed configuration value or file.
var ErrBadConfig = errors.New("solver: bad configuration")

// Config is the full solver configuration. Zero value == DefaultConfig().
type Config struct {
	// GrowingStrategy: SingleCluster (default) or MultipleClusters.
	GrowingStrategy primal.GrowingStrategy

	// Strategy selects the relaxer variant (default StrategySingleHair).
	Strategy parity.Strategy

	// Timeout is the per-cluster wall-time cap; zero means none.
	Timeout time.Duration

	// ClusterNodeLimit caps dual nodes per cluster; nil means none.
	ClusterNodeLimit *int

	// EnableParallelExecution is observed only when an external partitioner
	// drives multiple solver instances; the core ignores it.
	EnableParallelExecution bool

	// ThreadPoolSize and PinThreadsToCores are external-partitioner hints,
	// ignored by the core.
	ThreadPoolSize    int
	PinThreadsToCores bool

	// Logger receives structured solve logging. Nil disables logging.
	Logger logrus.FieldLogger
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config { return Config{} }

// Option mutates a Config before the solver is created.
type Option func(*Config)

// WithGrowingStrategy selects SingleCluster or MultipleClusters growth.
func WithGrowingStrategy(s primal.GrowingStrategy) Option {
	return func(c *Config) { c.GrowingStrategy = s }
}

// WithStrategy selects the relaxer-construction variant.
func WithStrategy(s parity.Strategy) Option {
	return func(c *Config) { c.Strategy = s }
}

// WithTimeout caps wall time per cluster.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithClusterNodeLimit caps dual nodes per cluster.
func WithClusterNodeLimit(n int) Option {
	return func(c *Config) { c.ClusterNodeLimit = &n }
}

// WithParallelExecution records the external-partitioner hint.
func WithParallelExecution(enabled bool) Option {
	return func(c *Config) { c.EnableParallelExecution = enabled }
}

// WithThreadPoolSize records the external-partitioner hint.
func WithThreadPoolSize(n int) Option {
	return func(c *Config) { c.ThreadPoolSize = n }
}

// WithPinThreadsToCores records the external-partitioner hint.
func WithPinThreadsToCores(pin bool) Option {
	return func(c *Config) { c.PinThreadsToCores = pin }
}

// WithLogger attaches a structured logger to the solve loop.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Config) { c.Logger = log }
}

// yamlConfig is the on-disk layout, mirroring the documented option names.
type yamlConfig struct {
	GrowingStrategy string `yaml:"growing_strategy"`
	Strategy        string `yaml:"strategy"`
	Primal          struct {
		Timeout           float64 `yaml:"timeout"` // seconds
		ClusterNodeLimit  *int    `yaml:"cluster_node_limit"`
		ThreadPoolSize    int     `yaml:"thread_pool_size"`
		PinThreadsToCores bool    `yaml:"pin_threads_to_cores"`
	} `yaml:"primal"`
	Dual struct {
		EnableParallelExecution bool `yaml:"enable_parallel_execution"`
	} `yaml:"dual"`
}

// LoadConfig reads a YAML configuration file.
//
// Errors: ErrBadConfig (wrapping the parse error or naming the bad field);
// file-system errors pass through.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return parseConfig(raw)
}

func parseConfig(raw []byte) (Config, error) {
	var yc yamlConfig
	if err := yaml.Unmarshal(raw, &yc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	cfg := DefaultConfig()
	switch yc.GrowingStrategy {
	case "", "single-cluster":
		cfg.GrowingStrategy = primal.SingleCluster
	case "multiple-clusters":
		cfg.GrowingStrategy = primal.MultipleClusters
	default:
		return Config{}, fmt.Errorf("%w: growing_strategy %q", ErrBadConfig, yc.GrowingStrategy)
	}
	switch yc.Strategy {
	case "", "single-hair":
		cfg.Strategy = parity.StrategySingleHair
	case "union-find":
		cfg.Strategy = parity.StrategyUnionFind
	default:
		return Config{}, fmt.Errorf("%w: strategy %q", ErrBadConfig, yc.Strategy)
	}
	if yc.Primal.Timeout < 0 {
		return Config{}, fmt.Errorf("%w: primal.timeout must be non-negative", ErrBadConfig)
	}
	cfg.Timeout = time.Duration(yc.Primal.Timeout * float64(time.Second))
	if yc.Primal.ClusterNodeLimit != nil && *yc.Primal.ClusterNodeLimit < 0 {
		return Config{}, fmt.Errorf("%w: primal.cluster_node_limit must be non-negative", ErrBadConfig)
	}
	cfg.ClusterNodeLimit = yc.Primal.ClusterNodeLimit
	cfg.ThreadPoolSize = yc.Primal.ThreadPoolSize
	cfg.PinThreadsToCores = yc.Primal.PinThreadsToCores
	cfg.EnableParallelExecution = yc.Dual.EnableParallelExecution

	return cfg, nil
}
