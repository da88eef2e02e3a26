package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := NewLoader(WithConfigPaths("does-not-exist.yaml")).Load()
	require.NoError(t, err)

	assert.Equal(t, "matcher-svc", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 0, cfg.Matcher.MaxIterations)
	assert.Equal(t, []string{"json"}, cfg.Report.Formats)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
app:
  name: test-matcher
  environment: production
log:
  level: debug
matcher:
  max_iterations: 50
report:
  formats: [csv, markdown]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := NewLoader(WithConfigPaths(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, "test-matcher", cfg.App.Name)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Matcher.MaxIterations)
	assert.Equal(t, []string{"csv", "markdown"}, cfg.Report.Formats)
	// Untouched sections keep defaults.
	assert.Equal(t, 9090, cfg.Metrics.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ROSTERING_LOG_LEVEL", "warn")
	t.Setenv("ROSTERING_CACHE_DRIVER", "redis")
	t.Setenv("ROSTERING_MATCHER_MAX_ITERATIONS", "25")
	t.Setenv("ROSTERING_REPORT_FORMATS", "json, excel")

	cfg, err := NewLoader(WithConfigPaths("does-not-exist.yaml")).Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, 25, cfg.Matcher.MaxIterations)
	assert.Equal(t, []string{"json", "excel"}, cfg.Report.Formats)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "bad log level",
			env:  map[string]string{"ROSTERING_LOG_LEVEL": "verbose"},
		},
		{
			name: "bad cache driver",
			env: map[string]string{
				"ROSTERING_CACHE_ENABLED": "true",
				"ROSTERING_CACHE_DRIVER":  "memcached",
			},
		},
		{
			name: "bad report format",
			env:  map[string]string{"ROSTERING_REPORT_FORMATS": "docx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := NewLoader(WithConfigPaths("does-not-exist.yaml")).Load()
			assert.Error(t, err)
		})
	}
}

func TestCacheConfig_Address(t *testing.T) {
	c := CacheConfig{Host: "redis.local", Port: 6380}
	assert.Equal(t, "redis.local:6380", c.Address())
}
