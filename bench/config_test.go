package bench_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steliosot/multiprocessing-threads/bench"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
workers = 4

[[scenario]]
name = "cpu"
task = "sumsquares"
`)

	cfg, err := bench.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Scenarios, 1)

	s := cfg.Scenarios[0]
	assert.Equal(t, bench.DefaultCount, s.Count)
	assert.Equal(t, int64(bench.DefaultSumBound), s.SumBound)
	assert.Equal(t, 4, s.Workers, "scenario inherits top-level workers")
	assert.Equal(t, []string{"serial", "pertask", "pool"}, s.Strategies)
}

func TestLoad_ScenarioOverrides(t *testing.T) {
	path := writeConfig(t, `
[[scenario]]
name = "io"
task = "sleep"
count = 3
sleep_ms = 10
strategies = ["serial", "pool"]
workers = 2
`)

	cfg, err := bench.Load(path)
	require.NoError(t, err)

	s := cfg.Scenarios[0]
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 10, s.SleepMs)
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, []string{"serial", "pool"}, s.Strategies)
}

func TestLoad_Rejections(t *testing.T) {
	cases := map[string]string{
		"no scenarios": ``,
		"unnamed scenario": `
[[scenario]]
task = "sleep"
`,
		"unknown task": `
[[scenario]]
name = "x"
task = "forkbomb"
`,
		"fetch without url": `
[[scenario]]
name = "x"
task = "fetch"
`,
		"unknown strategy": `
[[scenario]]
name = "x"
task = "sleep"
strategies = ["threads"]
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := bench.Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := bench.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
