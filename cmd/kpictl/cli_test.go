package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/metrics"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	defs        []metrics.Definition
	results     map[string]models.ResultSet
	builtName   string
	builtNames  []string
	buildErr    error
	closed      bool
	configPaths []string
}

func (f *fakeService) Definitions() []metrics.Definition { return f.defs }

func (f *fakeService) Metric(_ context.Context, name string) (models.ResultSet, error) {
	rs, ok := f.results[name]
	if !ok {
		return models.ResultSet{}, &models.UnknownMetricError{Name: name}
	}
	return rs, nil
}

func (f *fakeService) Build(ctx context.Context, name string, metricNames []string) (*models.Report, error) {
	f.builtName = name
	f.builtNames = metricNames
	if f.buildErr != nil {
		return nil, f.buildErr
	}

	report := &models.Report{ID: "run-1", Name: name}
	for _, m := range metricNames {
		rs, err := f.Metric(ctx, m)
		if err != nil {
			report.Entries = append(report.Entries, models.ReportEntry{Metric: m, Error: err.Error(), Err: err})
			continue
		}
		report.Entries = append(report.Entries, models.ReportEntry{Metric: m, Rows: rs.Rows})
	}
	return report, nil
}

func (f *fakeService) connector() Connector {
	return func(_ context.Context, configPath string) (ReportService, func(), error) {
		f.configPaths = append(f.configPaths, configPath)
		return f, func() { f.closed = true }, nil
	}
}

func newFakeService() *fakeService {
	return &fakeService{
		defs: []metrics.Definition{
			{Name: metrics.TotalUsers, Description: "Number of registered users", Aggregation: metrics.AggregationCount},
		},
		results: map[string]models.ResultSet{
			metrics.TotalUsers: {Metric: metrics.TotalUsers, Rows: []models.Row{{Value: models.Defined(3)}}},
		},
	}
}

func execute(t *testing.T, connect Connector, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := NewCLI(connect, &out)
	cli.rootCmd.SetArgs(args)
	err := cli.Execute()
	return out.String(), err
}

func TestCLI_Metrics(t *testing.T) {
	svc := newFakeService()

	out, err := execute(t, svc.connector(), "metrics", "--config", "kpi.env")
	require.NoError(t, err)

	assert.Contains(t, out, "total_users")
	assert.Contains(t, out, "count")
	assert.Equal(t, []string{"kpi.env"}, svc.configPaths)
	assert.True(t, svc.closed)
}

func TestCLI_Metric(t *testing.T) {
	svc := newFakeService()

	out, err := execute(t, svc.connector(), "metric", metrics.TotalUsers)
	require.NoError(t, err)

	var rs models.ResultSet
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	assert.Equal(t, models.Defined(3), rs.Rows[0].Value)

	_, err = execute(t, svc.connector(), "metric", "foo")
	var unknown *models.UnknownMetricError
	assert.ErrorAs(t, err, &unknown)

	_, err = execute(t, svc.connector(), "metric")
	assert.Error(t, err)
}

func TestCLI_Report(t *testing.T) {
	t.Run("default metrics", func(t *testing.T) {
		svc := newFakeService()
		for _, name := range metrics.DefaultReport {
			svc.results[name] = models.ResultSet{Metric: name}
		}

		_, err := execute(t, svc.connector(), "report")
		require.NoError(t, err)
		assert.Equal(t, "overview", svc.builtName)
		assert.Equal(t, metrics.DefaultReport, svc.builtNames)
	})

	t.Run("partial failure", func(t *testing.T) {
		svc := newFakeService()

		out, err := execute(t, svc.connector(), "report", "weekly", "--metrics", "total_users,foo")
		assert.EqualError(t, err, "1 metric(s) failed: foo")
		assert.Equal(t, "weekly", svc.builtName)
		assert.Equal(t, []string{metrics.TotalUsers, "foo"}, svc.builtNames)

		var report models.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		require.Len(t, report.Entries, 2)
		assert.Equal(t, `unknown metric "foo"`, report.Entries[1].Error)
	})

	t.Run("store unavailable", func(t *testing.T) {
		svc := newFakeService()
		svc.buildErr = models.ErrStoreUnavailable

		_, err := execute(t, svc.connector(), "report")
		assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	})
}

func TestCLI_ConnectFailure(t *testing.T) {
	connect := func(context.Context, string) (ReportService, func(), error) {
		return nil, nil, errors.New("PostgreSQL connection error")
	}

	_, err := execute(t, connect, "metrics")
	assert.EqualError(t, err, "PostgreSQL connection error")
}
