package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/metrics"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countDef(name string) metrics.Definition {
	return metrics.Definition{
		Name:        name,
		Aggregation: metrics.AggregationCount,
		Source:      metrics.Source{Entity: models.EntityUsers},
	}
}

func scalarResult(name string, v float64) models.ResultSet {
	return models.ResultSet{Metric: name, Rows: []models.Row{{Value: models.Defined(v)}}}
}

func TestReportService_Build(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewMockMetricRegistry(ctrl)
	evaluator := NewMockMetricEvaluator(ctrl)
	store := NewMockStorePinger(ctrl)
	kw := NewMockKafkaWriter(ctrl)

	def := countDef(metrics.TotalUsers)

	store.EXPECT().Ping(ctx).Return(nil)
	registry.EXPECT().Lookup(metrics.TotalUsers).Return(def, true)
	registry.EXPECT().Lookup("foo").Return(metrics.Definition{}, false)
	evaluator.EXPECT().Evaluate(gomock.Any(), def).Return(scalarResult(metrics.TotalUsers, 3), nil)

	var published kafka.Message
	kw.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		require.Len(t, msgs, 1)
		published = msgs[0]
		return nil
	})

	svc := NewReportService(registry, evaluator, store, nil, kw, 4, time.Second)
	report, err := svc.Build(ctx, "overview", []string{metrics.TotalUsers, "foo"})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "overview", report.Name)
	require.Len(t, report.Entries, 2)

	assert.Equal(t, metrics.TotalUsers, report.Entries[0].Metric)
	assert.Equal(t, []models.Row{{Value: models.Defined(3)}}, report.Entries[0].Rows)
	assert.NoError(t, report.Entries[0].Err)

	var unknown *models.UnknownMetricError
	assert.Equal(t, "foo", report.Entries[1].Metric)
	require.ErrorAs(t, report.Entries[1].Err, &unknown)
	assert.Equal(t, "foo", unknown.Name)
	assert.Equal(t, `unknown metric "foo"`, report.Entries[1].Error)

	assert.Len(t, report.Failed(), 1)

	assert.Equal(t, []byte("overview"), published.Key)
	var decoded models.Report
	require.NoError(t, json.Unmarshal(published.Value, &decoded))
	assert.Equal(t, report.ID, decoded.ID)
	assert.Len(t, decoded.Entries, 2)
}

func TestReportService_Build_StoreUnavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("ping_fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockStorePinger(ctrl)
		store.EXPECT().Ping(ctx).Return(fmt.Errorf("ping: %w", models.ErrStoreUnavailable))

		svc := NewReportService(NewMockMetricRegistry(ctrl), NewMockMetricEvaluator(ctrl), store, nil, nil, 2, 0)
		report, err := svc.Build(ctx, "overview", []string{metrics.TotalUsers})

		assert.Nil(t, report)
		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	})

	t.Run("connection_lost_during_evaluation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		registry := NewMockMetricRegistry(ctrl)
		evaluator := NewMockMetricEvaluator(ctrl)
		store := NewMockStorePinger(ctrl)

		store.EXPECT().Ping(ctx).Return(nil)
		registry.EXPECT().Lookup(metrics.TotalUsers).Return(countDef(metrics.TotalUsers), true)
		evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			Return(models.ResultSet{}, fmt.Errorf("scan users: %w", models.ErrStoreUnavailable))

		svc := NewReportService(registry, evaluator, store, nil, nil, 1, 0)
		report, err := svc.Build(ctx, "overview", []string{metrics.TotalUsers})

		assert.Nil(t, report)
		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	})
}

func TestReportService_Build_PerMetricTimeout(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, err := metrics.NewRegistry(countDef("slow"), countDef("fast"))
	require.NoError(t, err)

	evaluator := NewMockMetricEvaluator(ctrl)
	store := NewMockStorePinger(ctrl)

	store.EXPECT().Ping(ctx).Return(nil)
	evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, def metrics.Definition) (models.ResultSet, error) {
			if def.Name == "slow" {
				<-ctx.Done()
				return models.ResultSet{}, fmt.Errorf("evaluate slow: %w", ctx.Err())
			}
			return scalarResult(def.Name, 1), nil
		}).Times(2)

	svc := NewReportService(registry, evaluator, store, nil, nil, 2, 20*time.Millisecond)
	report, err := svc.Build(ctx, "overview", []string{"slow", "fast"})
	require.NoError(t, err)
	require.Len(t, report.Entries, 2)

	assert.ErrorIs(t, report.Entries[0].Err, context.DeadlineExceeded)
	assert.Nil(t, report.Entries[0].Rows)
	assert.NoError(t, report.Entries[1].Err)
	assert.Equal(t, []models.Row{{Value: models.Defined(1)}}, report.Entries[1].Rows)
}

func TestReportService_Build_KeepsRequestedOrder(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	names := []string{"m1", "m2", "m3", "m4", "m5", "m6"}
	defs := make([]metrics.Definition, 0, len(names))
	for _, n := range names {
		defs = append(defs, countDef(n))
	}
	registry, err := metrics.NewRegistry(defs...)
	require.NoError(t, err)

	evaluator := NewMockMetricEvaluator(ctrl)
	store := NewMockStorePinger(ctrl)

	store.EXPECT().Ping(ctx).Return(nil)
	evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, def metrics.Definition) (models.ResultSet, error) {
			// Earlier metrics finish last.
			idx := int(def.Name[1] - '0')
			time.Sleep(time.Duration(len(names)-idx) * 5 * time.Millisecond)
			return scalarResult(def.Name, float64(idx)), nil
		}).Times(len(names))

	svc := NewReportService(registry, evaluator, store, nil, nil, 3, time.Second)

	requested := []string{"m4", "m1", "m6", "m2", "m5", "m3"}
	report, err := svc.Build(ctx, "ordered", requested)
	require.NoError(t, err)

	got := make([]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		got = append(got, e.Metric)
	}
	assert.Equal(t, requested, got)
	assert.Equal(t, models.Defined(4), report.Entries[0].Rows[0].Value)
}

func TestReportService_Metric_Cache(t *testing.T) {
	ctx := context.Background()
	def := countDef(metrics.TotalUsers)

	tests := []struct {
		name      string
		mockSetup func(ctrl *gomock.Controller) *ReportService
		expected  models.ResultSet
		expectErr bool
	}{
		{
			name: "cache_hit",
			mockSetup: func(ctrl *gomock.Controller) *ReportService {
				registry := NewMockMetricRegistry(ctrl)
				cache := NewMockResultCache(ctrl)

				cached := scalarResult(metrics.TotalUsers, 7)
				registry.EXPECT().Lookup(metrics.TotalUsers).Return(def, true)
				cache.EXPECT().GetResult(ctx, metrics.TotalUsers).Return(&cached, nil)

				return NewReportService(registry, NewMockMetricEvaluator(ctrl), nil, cache, nil, 1, 0)
			},
			expected: scalarResult(metrics.TotalUsers, 7),
		},
		{
			name: "cache_miss_fills_cache",
			mockSetup: func(ctrl *gomock.Controller) *ReportService {
				registry := NewMockMetricRegistry(ctrl)
				evaluator := NewMockMetricEvaluator(ctrl)
				cache := NewMockResultCache(ctrl)

				rs := scalarResult(metrics.TotalUsers, 3)
				registry.EXPECT().Lookup(metrics.TotalUsers).Return(def, true)
				cache.EXPECT().GetResult(ctx, metrics.TotalUsers).Return(nil, errors.New("cache miss"))
				evaluator.EXPECT().Evaluate(ctx, def).Return(rs, nil)
				cache.EXPECT().SetResult(ctx, metrics.TotalUsers, rs).Return(nil)

				return NewReportService(registry, evaluator, nil, cache, nil, 1, 0)
			},
			expected: scalarResult(metrics.TotalUsers, 3),
		},
		{
			name: "cache_write_failure_is_ignored",
			mockSetup: func(ctrl *gomock.Controller) *ReportService {
				registry := NewMockMetricRegistry(ctrl)
				evaluator := NewMockMetricEvaluator(ctrl)
				cache := NewMockResultCache(ctrl)

				rs := scalarResult(metrics.TotalUsers, 3)
				registry.EXPECT().Lookup(metrics.TotalUsers).Return(def, true)
				cache.EXPECT().GetResult(ctx, metrics.TotalUsers).Return(nil, errors.New("redis down"))
				evaluator.EXPECT().Evaluate(ctx, def).Return(rs, nil)
				cache.EXPECT().SetResult(ctx, metrics.TotalUsers, rs).Return(errors.New("redis down"))

				return NewReportService(registry, evaluator, nil, cache, nil, 1, 0)
			},
			expected: scalarResult(metrics.TotalUsers, 3),
		},
		{
			name: "evaluation_failure",
			mockSetup: func(ctrl *gomock.Controller) *ReportService {
				registry := NewMockMetricRegistry(ctrl)
				evaluator := NewMockMetricEvaluator(ctrl)

				registry.EXPECT().Lookup(metrics.TotalUsers).Return(def, true)
				evaluator.EXPECT().Evaluate(ctx, def).Return(models.ResultSet{}, errors.New("syntax error"))

				return NewReportService(registry, evaluator, nil, nil, nil, 1, 0)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := tt.mockSetup(ctrl)
			rs, err := svc.Metric(ctx, metrics.TotalUsers)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, rs)
		})
	}
}

func TestReportService_Metric_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewMockMetricRegistry(ctrl)
	registry.EXPECT().Lookup("nope").Return(metrics.Definition{}, false)

	svc := NewReportService(registry, NewMockMetricEvaluator(ctrl), nil, nil, nil, 1, 0)
	_, err := svc.Metric(context.Background(), "nope")

	var unknown *models.UnknownMetricError
	assert.ErrorAs(t, err, &unknown)
}

func TestReportService_Definitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	defs := []metrics.Definition{countDef("a"), countDef("b")}
	registry := NewMockMetricRegistry(ctrl)
	registry.EXPECT().Definitions().Return(defs)

	svc := NewReportService(registry, nil, nil, nil, nil, 0, 0)
	assert.Equal(t, defs, svc.Definitions())
}
