package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/logger"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=report.go -destination=report_mock.go -package=handlers

// ReportBuilder builds named metric reports.
type ReportBuilder interface {
	Build(ctx context.Context, name string, metricNames []string) (*models.Report, error)
}

// NewGetReportHandler returns an HTTP handler building a report.
// Without a metrics query parameter the report holds defaultMetrics.
// @Summary Build report
// @Description Computes the requested metrics in parallel. Unknown or failed metrics are returned as entries with an error.
// @Tags reports
// @Produce json
// @Param name path string true "Report name"
// @Param metrics query string false "Comma separated metric names"
// @Success 200 {object} models.Report "Report"
// @Failure 400 {object} handlers.ErrorResponse "Empty metric list"
// @Failure 503 {object} handlers.ErrorResponse "Entity store unavailable"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reports/{name} [get]
func NewGetReportHandler(builder ReportBuilder, defaultMetrics []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		metricNames := defaultMetrics
		if r.URL.Query().Has("metrics") {
			metricNames = parseMetricNames(r.URL.Query().Get("metrics"))
		}
		if len(metricNames) == 0 {
			writeError(w, http.StatusBadRequest, "No metrics requested")
			return
		}

		report, err := builder.Build(r.Context(), name, metricNames)
		if err != nil {
			logger.Log.Errorw("failed to build report", "report", name, "error", err)
			if errors.Is(err, models.ErrStoreUnavailable) {
				writeError(w, http.StatusServiceUnavailable, "Entity store unavailable")
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func parseMetricNames(raw string) []string {
	var names []string
	for _, n := range strings.Split(raw, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
