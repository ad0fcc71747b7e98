package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/logger"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/metrics"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=metrics.go -destination=metrics_mock.go -package=handlers

// MetricLister lists the registered metric definitions.
type MetricLister interface {
	Definitions() []metrics.Definition
}

// MetricComputer computes a single metric by name.
type MetricComputer interface {
	Metric(ctx context.Context, name string) (models.ResultSet, error)
}

// MetricDefinitionResponse describes a registered metric
// swagger:model MetricDefinitionResponse
type MetricDefinitionResponse struct {
	// Metric name
	// example: monthly_new_users
	Name string `json:"name"`

	// Human readable description
	Description string `json:"description"`

	// Aggregation kind: count, sum, average, ratio or average_days_to_sell
	// example: count
	Aggregation string `json:"aggregation"`

	// Source entity collection
	// example: users
	Entity string `json:"entity"`

	// Denominator entity collection of ratio metrics
	// example: leads
	Denominator string `json:"denominator,omitempty"`

	// Time grouping: none, day or month
	// example: month
	Grouping string `json:"grouping"`

	// Categorical dimension of the group key
	// example: emirate
	Dimension string `json:"dimension,omitempty"`

	// Measured field of sum and average metrics
	// example: amount
	Measure string `json:"measure,omitempty"`
}

// MetricListResponse represents the list of registered metrics
// swagger:model MetricListResponse
type MetricListResponse struct {
	Metrics []MetricDefinitionResponse `json:"metrics"`
}

func newMetricDefinitionResponse(d metrics.Definition) MetricDefinitionResponse {
	resp := MetricDefinitionResponse{
		Name:        d.Name,
		Description: d.Description,
		Aggregation: d.Aggregation.String(),
		Entity:      string(d.Source.Entity),
		Grouping:    d.Grouping.String(),
		Dimension:   string(d.Dimension),
		Measure:     string(d.Measure),
	}
	if d.Denominator != nil {
		resp.Denominator = string(d.Denominator.Entity)
	}
	return resp
}

// NewListMetricsHandler returns an HTTP handler listing the registered metrics.
// @Summary List metrics
// @Description Returns every registered KPI definition ordered by name
// @Tags metrics
// @Produce json
// @Success 200 {object} handlers.MetricListResponse "Registered metrics"
// @Router /metrics [get]
func NewListMetricsHandler(svc MetricLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := svc.Definitions()

		resp := MetricListResponse{Metrics: make([]MetricDefinitionResponse, 0, len(defs))}
		for _, d := range defs {
			resp.Metrics = append(resp.Metrics, newMetricDefinitionResponse(d))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetMetricHandler returns an HTTP handler computing one metric.
// @Summary Compute metric
// @Description Computes a single KPI. Undefined values are encoded as null.
// @Tags metrics
// @Produce json
// @Param name path string true "Metric name"
// @Success 200 {object} models.ResultSet "Metric result"
// @Failure 404 {object} handlers.ErrorResponse "Unknown metric"
// @Failure 500 {object} handlers.ErrorResponse "Metric evaluation failed"
// @Failure 503 {object} handlers.ErrorResponse "Entity store unavailable"
// @Router /metrics/{name} [get]
func NewGetMetricHandler(svc MetricComputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		rs, err := svc.Metric(r.Context(), name)
		if err != nil {
			var unknown *models.UnknownMetricError
			switch {
			case errors.As(err, &unknown):
				writeError(w, http.StatusNotFound, unknown.Error())
			case errors.Is(err, models.ErrStoreUnavailable):
				logger.Log.Errorw("metric request failed, store unavailable", "metric", name, "error", err)
				writeError(w, http.StatusServiceUnavailable, "Entity store unavailable")
			default:
				logger.Log.Errorw("metric request failed", "metric", name, "error", err)
				writeError(w, http.StatusInternalServerError, "Metric evaluation failed")
			}
			return
		}

		writeJSON(w, http.StatusOK, rs)
	}
}
