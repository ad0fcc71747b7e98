package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/logger"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/metrics"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=report.go -destination=report_mock.go -package=services

// MetricRegistry resolves metric names to definitions.
type MetricRegistry interface {
	Lookup(name string) (metrics.Definition, bool) // Returns the definition registered under name
	Definitions() []metrics.Definition             // Returns all definitions ordered by name
}

// MetricEvaluator computes the result set of a definition.
type MetricEvaluator interface {
	Evaluate(ctx context.Context, def metrics.Definition) (models.ResultSet, error)
}

// StorePinger checks entity store connectivity.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// ResultCache caches computed result sets by metric name.
type ResultCache interface {
	GetResult(ctx context.Context, metric string) (*models.ResultSet, error)   // Returns a cached result set
	SetResult(ctx context.Context, metric string, rs models.ResultSet) error // Caches a result set
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ReportService resolves, evaluates and assembles metric reports.
type ReportService struct {
	registry    MetricRegistry
	evaluator   MetricEvaluator
	store       StorePinger
	cache       ResultCache
	kafkaWriter KafkaWriter

	workers int
	timeout time.Duration
}

// NewReportService creates a new ReportService.
// workers bounds the metrics evaluated in parallel, timeout bounds each metric.
// cache and kafkaWriter are optional.
func NewReportService(
	registry MetricRegistry,
	evaluator MetricEvaluator,
	store StorePinger,
	cache ResultCache,
	kafkaWriter KafkaWriter,
	workers int,
	timeout time.Duration,
) *ReportService {
	if workers <= 0 {
		workers = 1
	}
	return &ReportService{
		registry:    registry,
		evaluator:   evaluator,
		store:       store,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		workers:     workers,
		timeout:     timeout,
	}
}

// Definitions returns the registered metric definitions.
func (s *ReportService) Definitions() []metrics.Definition {
	return s.registry.Definitions()
}

// Metric computes a single metric.
func (s *ReportService) Metric(ctx context.Context, name string) (models.ResultSet, error) {
	return s.compute(ctx, name)
}

// Build computes the named report. Unknown metrics and evaluation failures
// become error entries; only a store connectivity failure fails the report.
// Entries keep the order of metricNames.
func (s *ReportService) Build(ctx context.Context, name string, metricNames []string) (*models.Report, error) {
	if err := s.store.Ping(ctx); err != nil {
		logger.Log.Errorw("report aborted, store is not reachable", "report", name, "error", err)
		return nil, err
	}

	entries := make([]models.ReportEntry, len(metricNames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, metric := range metricNames {
		i, metric := i, metric
		g.Go(func() error {
			rs, err := s.compute(gctx, metric)
			if err != nil {
				if errors.Is(err, models.ErrStoreUnavailable) {
					return err
				}
				entries[i] = models.ReportEntry{Metric: metric, Error: err.Error(), Err: err}
				return nil
			}
			entries[i] = models.ReportEntry{Metric: metric, Rows: rs.Rows}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Log.Errorw("report aborted", "report", name, "error", err)
		return nil, err
	}

	report := &models.Report{
		ID:          uuid.NewString(),
		Name:        name,
		GeneratedAt: time.Now().UTC(),
		Entries:     entries,
	}

	if failed := report.Failed(); len(failed) > 0 {
		logger.Log.Warnw("report has failed metrics", "report", name, "report_id", report.ID, "failed", len(failed))
	}

	s.publishReport(ctx, report)
	return report, nil
}

// compute resolves name and evaluates it, consulting the result cache first.
func (s *ReportService) compute(ctx context.Context, name string) (models.ResultSet, error) {
	def, ok := s.registry.Lookup(name)
	if !ok {
		return models.ResultSet{}, &models.UnknownMetricError{Name: name}
	}

	if s.cache != nil {
		rs, err := s.cache.GetResult(ctx, name)
		if err == nil {
			return *rs, nil
		}
		logger.Log.Debugw("result cache miss", "metric", name, "error", err)
	}

	evalCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		evalCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	rs, err := s.evaluator.Evaluate(evalCtx, def)
	if err != nil {
		logger.Log.Errorw("failed to evaluate metric", "metric", name, "error", err)
		return models.ResultSet{}, err
	}

	if s.cache != nil {
		if err := s.cache.SetResult(ctx, name, rs); err != nil {
			logger.Log.Errorw("failed to cache metric result", "metric", name, "error", err)
		}
	}

	return rs, nil
}

// publishReport publishes a finished report to Kafka.
func (s *ReportService) publishReport(ctx context.Context, report *models.Report) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "report_id", report.ID)
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		logger.Log.Errorw("Failed to marshal report for Kafka", "report_id", report.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(report.Name),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish report to Kafka", "report_id", report.ID, "error", err)
	} else {
		logger.Log.Infow("Report published to Kafka", "report_id", report.ID, "entries", len(report.Entries))
	}
}
