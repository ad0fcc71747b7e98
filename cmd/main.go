package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/Aquib2609/marketplace-kpi-dashboard/docs"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/config"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/engine"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/handlers"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/logger"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/metrics"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/middlewares"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/repositories"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "marketplace-kpi-dashboard"

// storeCheckInterval is how often the health server re-checks the store.
const storeCheckInterval = 15 * time.Second

// @title marketplace-kpi-dashboard API
// @version 1.0.0
// @description KPI computation and reporting over marketplace users, listings, leads and transactions
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads the env file at path and returns the service configuration.
func parseConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

// run initializes the logger, database, cache, broker, gRPC health and HTTP servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, serviceName); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	store := repositories.NewEntityStore(db)

	// Connect to Redis
	var cache services.ResultCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis is not reachable, result cache disabled", "addr", cfg.RedisAddr(), "error", err)
		} else {
			cache = repositories.NewResultCacheRepository(rdb, cfg.RedisExp)
		}
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	registry, err := metrics.NewBuiltinRegistry()
	if err != nil {
		return fmt.Errorf("metric registry: %w", err)
	}

	reportService := services.NewReportService(
		registry,
		engine.NewEngine(store),
		store,
		cache,
		kafkaWriter,
		cfg.ReportWorkers,
		cfg.ReportMetricTimeout,
	)
	entityService := services.NewEntityService(store)

	router := newRouter(reportService, entityService, fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr()))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: router,
	}

	// gRPC health server
	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}
	grpcSrv, healthSrv := newHealthServer()

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go watchStore(ctxShutdown, store, healthSrv, storeCheckInterval)

	errChan := make(chan error, 2)

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", cfg.GRPCAddr())
		if err := grpcSrv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcSrv.Stop()
		return serveErr
	}

	healthSrv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return nil
}

// newRouter mounts the API under /api/v1 and the swagger UI under /swagger.
func newRouter(reportService *services.ReportService, entityService *services.EntityService, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/metrics", handlers.NewListMetricsHandler(reportService))
		r.Get("/metrics/{name}", handlers.NewGetMetricHandler(reportService))
		r.Get("/reports/{name}", handlers.NewGetReportHandler(reportService, metrics.DefaultReport))

		r.Get("/users/{id}", handlers.NewGetUserHandler(entityService))
		r.Get("/listings/{id}", handlers.NewGetListingHandler(entityService))
		r.Get("/leads/{id}", handlers.NewGetLeadHandler(entityService))
		r.Get("/transactions/{id}", handlers.NewGetTransactionHandler(entityService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// newHealthServer returns a gRPC server exposing the standard health service.
func newHealthServer() (*grpc.Server, *health.Server) {
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	return grpcSrv, healthSrv
}

// watchStore reports NOT_SERVING while the entity store cannot be reached.
func watchStore(ctx context.Context, store services.StorePinger, healthSrv *health.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		checkStore(ctx, store, healthSrv)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func checkStore(ctx context.Context, store services.StorePinger, healthSrv *health.Server) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := store.Ping(pingCtx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	healthSrv.SetServingStatus(serviceName, status)
}
