package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const defaultEnvPrefix = "ROSTERING_"

// Loader assembles a Config from defaults, an optional YAML file, and
// environment variables, in that order of precedence.
type Loader struct {
	k           *koanf.Koanf
	envPrefix   string
	configPaths []string
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithEnvPrefix overrides the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigPaths overrides the list of candidate config file paths.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// NewLoader creates a Loader with default search paths.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: defaultEnvPrefix,
		configPaths: []string{
			"config.yaml",
			"config/config.yaml",
			"/etc/rostering/config.yaml",
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := l.loadConfigFile(); err != nil {
		return nil, fmt.Errorf("load config file: %w", err)
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// MustLoad is like Load but panics on error. Intended for main().
func MustLoad(opts ...LoaderOption) *Config {
	cfg, err := NewLoader(opts...).Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]interface{}{
		"app.name":        "matcher-svc",
		"app.version":     "dev",
		"app.environment": "development",
		"app.debug":       false,

		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stdout",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     28,
		"log.compress":    true,

		"metrics.enabled":   true,
		"metrics.port":      9090,
		"metrics.path":      "/metrics",
		"metrics.namespace": "rostering",
		"metrics.subsystem": "matcher",

		"tracing.enabled":      false,
		"tracing.endpoint":     "localhost:4317",
		"tracing.service_name": "matcher-svc",
		"tracing.sample_rate":  1.0,

		"database.enabled":            false,
		"database.host":               "localhost",
		"database.port":               5432,
		"database.database":           "rostering",
		"database.username":           "rostering",
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "30m",
		"database.conn_max_idle_time": "5m",
		"database.auto_migrate":       true,

		"cache.enabled":     false,
		"cache.driver":      "memory",
		"cache.host":        "localhost",
		"cache.port":        6379,
		"cache.db":          0,
		"cache.default_ttl": "10m",
		"cache.max_entries": 1024,

		"matcher.max_iterations": 0,
		"matcher.roster_path":    "roster.yaml",

		"report.output_dir": "reports",
		"report.formats":    []string{"json"},
		"report.title":      "Matching Report",
	}
	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func (l *Loader) loadConfigFile() error {
	paths := l.configPaths
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		paths = append([]string{p}, paths...)
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}
	// No config file found is fine, defaults and env still apply.
	return nil
}

// envKeyMappings maps flattened env keys whose section or field names
// contain underscores back to their dotted koanf paths.
var envKeyMappings = map[string]string{
	"log.file.path":               "log.file_path",
	"log.max.size":                "log.max_size",
	"log.max.backups":             "log.max_backups",
	"log.max.age":                 "log.max_age",
	"tracing.service.name":        "tracing.service_name",
	"tracing.sample.rate":         "tracing.sample_rate",
	"database.ssl.mode":           "database.ssl_mode",
	"database.max.open.conns":     "database.max_open_conns",
	"database.max.idle.conns":     "database.max_idle_conns",
	"database.conn.max.lifetime":  "database.conn_max_lifetime",
	"database.conn.max.idle.time": "database.conn_max_idle_time",
	"database.auto.migrate":       "database.auto_migrate",
	"cache.default.ttl":           "cache.default_ttl",
	"cache.max.entries":           "cache.max_entries",
	"matcher.max.iterations":      "matcher.max_iterations",
	"matcher.roster.path":         "matcher.roster_path",
	"report.output.dir":           "report.output_dir",
}

// sliceFields holds keys whose env values are comma-separated lists.
var sliceFields = map[string]bool{
	"report.formats": true,
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(key, value string) (string, interface{}) {
		k := strings.ToLower(strings.TrimPrefix(key, l.envPrefix))
		k = strings.ReplaceAll(k, "_", ".")
		if mapped, ok := envKeyMappings[k]; ok {
			k = mapped
		}
		if sliceFields[k] {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return k, parts
		}
		return k, value
	}), nil)
}
