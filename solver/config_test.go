package solver_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwpf/parity"
	"github.com/katalvlaran/mwpf/primal"
	"github.com/katalvlaran/mwpf/solver"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mwpf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestLoadConfig_Full parses every documented field.
func TestLoadConfig_Full(t *testing.T) {
	cfg, err := solver.LoadConfig(writeConfig(t, `
growing_strategy: multiple-clusters
strategy: union-find
primal:
  timeout: 1.5
  cluster_node_limit: 50
  thread_pool_size: 4
  pin_threads_to_cores: true
dual:
  enable_parallel_execution: true
`))
	require.NoError(t, err)

	assert.Equal(t, primal.MultipleClusters, cfg.GrowingStrategy)
	assert.Equal(t, parity.StrategyUnionFind, cfg.Strategy)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	require.NotNil(t, cfg.ClusterNodeLimit)
	assert.Equal(t, 50, *cfg.ClusterNodeLimit)
	assert.Equal(t, 4, cfg.ThreadPoolSize)
	assert.True(t, cfg.PinThreadsToCores)
	assert.True(t, cfg.EnableParallelExecution)
}

// TestLoadConfig_Defaults: an empty file yields the documented defaults.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := solver.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, primal.SingleCluster, cfg.GrowingStrategy)
	assert.Equal(t, parity.StrategySingleHair, cfg.Strategy)
	assert.Zero(t, cfg.Timeout, "default timeout is infinite")
	assert.Nil(t, cfg.ClusterNodeLimit, "default node limit is infinite")
}

// TestLoadConfig_Invalid covers the ErrBadConfig refusals.
func TestLoadConfig_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown growing strategy", "growing_strategy: fastest"},
		{"unknown relaxer strategy", "strategy: blossom"},
		{"negative timeout", "primal:\n  timeout: -1"},
		{"negative node limit", "primal:\n  cluster_node_limit: -3"},
		{"not yaml", ": ["},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := solver.LoadConfig(writeConfig(t, tc.body))
			assert.ErrorIs(t, err, solver.ErrBadConfig)
		})
	}
}
