// Package main is the entry point for the matcher service.
//
// matcher-svc computes a maximum bipartite matching between employees
// and customers. It models the roster as a unit-capacity flow network
// and runs breadth-first augmenting paths until no customer can be
// served by an additional employee.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                       Service Layer                         │
//	│  (internal/service/matcher.go - MatcherService)             │
//	│  - Cache lookup and storage                                 │
//	│  - Metrics and tracing                                      │
//	│  - Run-history persistence                                  │
//	├─────────────────────────────────────────────────────────────┤
//	│                       Matching Layer                        │
//	│  (internal/matching/*.go)                                   │
//	│  - Network construction (source, employees, customers, sink)│
//	│  - Augmenting-path engine, assignment recording             │
//	├─────────────────────────────────────────────────────────────┤
//	│                        Graph Layer                          │
//	│  (internal/graph/*.go)                                      │
//	│  - ResidualGraph: core data structure                       │
//	│  - GraphPool: memory pooling                                │
//	│  - BFS, path reconstruction utilities                       │
//	├─────────────────────────────────────────────────────────────┤
//	│                        Report Layer                         │
//	│  (internal/report/*.go)                                     │
//	│  - CSV, JSON, Markdown, Excel, PDF generators               │
//	└─────────────────────────────────────────────────────────────┘
//
// # Configuration
//
// Configuration is loaded with the following priority (highest to lowest):
//  1. Environment variables (prefix: ROSTERING_)
//  2. Config files (config.yaml, config/config.yaml, /etc/rostering/config.yaml)
//  3. Default values
//
// Key configuration options (environment variable format):
//
//	ROSTERING_LOG_LEVEL           - Log level: debug, info, warn, error
//	ROSTERING_MATCHER_ROSTER_PATH - Path to the YAML roster file
//	ROSTERING_REPORT_OUTPUT_DIR   - Directory for generated reports
//	ROSTERING_REPORT_FORMATS      - Formats: csv, json, markdown, excel, pdf
//	ROSTERING_CACHE_ENABLED       - Enable match-result caching
//	ROSTERING_DATABASE_ENABLED    - Persist run history to PostgreSQL
//	ROSTERING_TRACING_ENABLED     - Enable OpenTelemetry tracing
//	ROSTERING_METRICS_ENABLED     - Serve Prometheus metrics
//
// # Run
//
//	go run services/matcher-svc/cmd/main.go
//
// With a custom config:
//
//	CONFIG_PATH=./config/local.yaml go run services/matcher-svc/cmd/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rostering/migrations"
	"rostering/pkg/cache"
	"rostering/pkg/config"
	"rostering/pkg/database"
	"rostering/pkg/domain"
	"rostering/pkg/logger"
	"rostering/pkg/metrics"
	"rostering/pkg/telemetry"
	"rostering/services/matcher-svc/internal/matching"
	"rostering/services/matcher-svc/internal/report"
	"rostering/services/matcher-svc/internal/repository"
	"rostering/services/matcher-svc/internal/roster"
	"rostering/services/matcher-svc/internal/service"
)

func main() {
	// =========================================================================
	// Configuration Loading
	// =========================================================================
	cfg, err := config.NewLoader().Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitWithConfig(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// Telemetry Initialization (OpenTelemetry)
	// =========================================================================
	//
	// Traces are exported to the configured OTLP endpoint. Shutdown flushes
	// pending spans before the process exits.
	if cfg.Tracing.Enabled {
		tp, err := telemetry.Init(ctx, telemetry.Config{
			Enabled:     cfg.Tracing.Enabled,
			Endpoint:    cfg.Tracing.Endpoint,
			ServiceName: cfg.App.Name,
			Version:     cfg.App.Version,
			Environment: cfg.App.Environment,
			SampleRate:  cfg.Tracing.SampleRate,
		})
		if err != nil {
			logger.Log.Warn("Failed to init telemetry", "error", err)
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tp.Shutdown(shutdownCtx); err != nil {
					logger.Log.Warn("Failed to shutdown telemetry", "error", err)
				}
			}()
			logger.Log.Info("Telemetry initialized", "endpoint", cfg.Tracing.Endpoint)
		}
	}

	// =========================================================================
	// Metrics Initialization (Prometheus)
	// =========================================================================
	m := metrics.InitMetrics(cfg.Metrics.Namespace, cfg.Metrics.Subsystem)
	m.SetServiceInfo(cfg.App.Version, cfg.App.Environment)

	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.StartMetricsServer(cfg.Metrics.Port); err != nil {
				logger.Log.Warn("metrics server stopped", "error", err)
			}
		}()
		logger.Log.Info("Metrics server started", "port", cfg.Metrics.Port)
	}

	// =========================================================================
	// Database Initialization (optional run history)
	// =========================================================================
	var repo repository.MatchRunRepository
	if cfg.Database.Enabled {
		db, err := database.NewPostgresDB(ctx, &cfg.Database)
		if err != nil {
			logger.Log.Warn("Failed to connect to database, continuing without history", "error", err)
		} else {
			defer db.Close()

			if err := database.RunMigrations(ctx, db.Pool(), &cfg.Database,
				migrations.PostgresMigrations, migrations.PostgresDir); err != nil {
				logger.Fatal("failed to run migrations", "error", err)
			}

			repo = repository.NewPostgresMatchRunRepository(db)
			logger.Log.Info("Run history enabled",
				"host", cfg.Database.Host,
				"database", cfg.Database.Database,
			)
		}
	}

	// =========================================================================
	// Cache Initialization
	// =========================================================================
	//
	// The match cache stores summaries keyed by a hash of the roster and
	// customer list. Identical inputs skip the engine entirely. The cache
	// is optional and the service continues if initialization fails.
	var matchCache *cache.MatchCache
	if cfg.Cache.Enabled {
		baseCache, err := cache.New(cache.FromConfig(&cfg.Cache))
		if err != nil {
			logger.Log.Warn("Failed to create cache, continuing without cache", "error", err)
		} else {
			defer baseCache.Close()
			matchCache = cache.NewMatchCache(baseCache, cfg.Cache.DefaultTTL)
			logger.Log.Info("Match cache initialized",
				"driver", cfg.Cache.Driver,
				"ttl", cfg.Cache.DefaultTTL,
			)
		}
	}

	// =========================================================================
	// Roster Loading
	// =========================================================================
	if cfg.Matcher.RosterPath == "" {
		logger.Fatal("matcher.roster_path is not configured")
	}

	r, customers, err := roster.Load(cfg.Matcher.RosterPath)
	if err != nil {
		logger.Fatal("failed to load roster", "path", cfg.Matcher.RosterPath, "error", err)
	}

	stats := domain.CalculateRosterStatistics(r, customers)
	logger.Info("Roster loaded",
		"path", cfg.Matcher.RosterPath,
		"employees", stats.EmployeeCount,
		"customers", stats.CustomerCount,
		"available", stats.AvailableEmployees,
		"eligibility_pairs", stats.EligibilityPairs,
		"density", stats.Density,
	)

	for _, gap := range domain.FindCoverageGaps(r, customers) {
		logger.Warn("Customer cannot be matched by any available employee",
			"customer", gap.Customer,
			"eligible_unavailable", gap.EligibleUnavailable,
		)
	}

	// =========================================================================
	// Matching
	// =========================================================================
	engine := matching.NewEngine(&matching.Options{
		MaxIterations: cfg.Matcher.MaxIterations,
	})
	svc := service.NewMatcherService(engine, matchCache, repo)

	outcome, err := svc.Match(ctx, r, customers)
	if err != nil {
		logger.Fatal("matching failed", "error", err)
	}

	logger.Info("Matching completed",
		"matched", outcome.Summary.SuccessfulMatches,
		"unmatched", len(outcome.Summary.UnmatchedCustomers),
		"iterations", outcome.Iterations,
		"duration_ms", outcome.DurationMs,
		"cache_hit", outcome.CacheHit,
		"run_id", outcome.RunID,
	)

	for customer, employee := range outcome.Summary.Matches {
		logger.Debug("assignment", "customer", customer, "employee", employee)
	}

	// =========================================================================
	// Report Generation
	// =========================================================================
	if len(cfg.Report.Formats) > 0 {
		writer := report.NewWriter(cfg.Report.OutputDir, logger.Log)
		data := &report.ReportData{
			Options: &report.Options{
				Title:         cfg.Report.Title,
				Author:        cfg.Report.Author,
				IncludeRoster: true,
			},
			Summary:    outcome.Summary,
			Roster:     r,
			Customers:  customers,
			Iterations: outcome.Iterations,
			Nodes:      outcome.Nodes,
			Edges:      outcome.Edges,
			DurationMs: outcome.DurationMs,
			CacheHit:   outcome.CacheHit,
		}

		baseName := report.DefaultBaseName(time.Now())
		paths, err := writer.Write(ctx, baseName, cfg.Report.Formats, data)
		if err != nil {
			logger.Log.Warn("some reports failed", "error", err)
		}
		for _, p := range paths {
			logger.Info("Report written", "path", p)
		}
	}

	if ctx.Err() != nil {
		os.Exit(1)
	}
}
