package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/config"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/engine"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/logger"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/metrics"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/repositories"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func main() {
	cli := NewCLI(connect, os.Stdout)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// connect opens the entity store described by the config file and builds
// a report service over it. Reports are not cached or published.
func connect(ctx context.Context, configPath string) (ReportService, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Initialize(cfg.LogLevel, "kpictl"); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		logger.Sync()
		return nil, nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)

	registry, err := metrics.NewBuiltinRegistry()
	if err != nil {
		db.Close()
		logger.Sync()
		return nil, nil, err
	}

	store := repositories.NewEntityStore(db)
	svc := services.NewReportService(
		registry,
		engine.NewEngine(store),
		store,
		nil,
		nil,
		cfg.ReportWorkers,
		cfg.ReportMetricTimeout,
	)

	closeFn := func() {
		db.Close()
		logger.Sync()
	}
	return svc, closeFn, nil
}
