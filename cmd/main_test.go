package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/engine"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/metrics"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/repositories"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/services"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_CustomEnv(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_DB", "kpi")
	t.Setenv("REPORT_WORKERS", "6")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr())
	assert.Equal(t, "kpi", cfg.PGDB)
	assert.Equal(t, 6, cfg.ReportWorkers)
}

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	store := repositories.NewEntityStore(sqlx.NewDb(mockDB, "sqlmock"))
	registry, err := metrics.NewBuiltinRegistry()
	require.NoError(t, err)

	reportService := services.NewReportService(registry, engine.NewEngine(store), store, nil, nil, 2, time.Second)
	entityService := services.NewEntityService(store)

	return newRouter(reportService, entityService, "/swagger/doc.json"), mock
}

func TestRouter(t *testing.T) {
	t.Run("list metrics", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Metrics []struct {
				Name string `json:"name"`
			} `json:"metrics"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Metrics, len(metrics.Builtin()))
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("unknown metric", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/metrics/foo", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid entity id", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/users/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("user lookup", func(t *testing.T) {
		router, mock := newTestRouter(t)

		mock.ExpectQuery(`FROM users`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "signup_date", "emirate", "user_type"}).
				AddRow(int64(1), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "Dubai", "buyer"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"user_id":1,"signup_date":"2024-01-05T00:00:00Z","emirate":"Dubai","user_type":"buyer"}`, rr.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("report with unknown metric", func(t *testing.T) {
		router, mock := newTestRouter(t)

		mock.ExpectPing()
		mock.ExpectQuery(`FROM users`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "signup_date", "emirate", "user_type"}).
				AddRow(int64(1), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "Dubai", "buyer").
				AddRow(int64(2), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "Dubai", "seller").
				AddRow(int64(3), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "Ajman", "agent"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/reports/overview?metrics=total_users,foo", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[
			{"metric":"total_users","rows":[{"key":null,"value":3}]},
			{"metric":"foo","rows":null,"error":"unknown metric \"foo\""}
		]`, extractEntries(t, rr.Body.Bytes()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("swagger ui", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "/reports/{name}")
	})
}

func extractEntries(t *testing.T, body []byte) string {
	t.Helper()
	var report struct {
		Entries json.RawMessage `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(body, &report))
	return string(report.Entries)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthServer(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	grpcSrv, healthSrv := newHealthServer()
	go grpcSrv.Serve(lis)
	defer grpcSrv.Stop()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: serviceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	checkStore(ctx, pingerFunc(func(context.Context) error { return errors.New("connection refused") }), healthSrv)

	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: serviceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)

	checkStore(ctx, pingerFunc(func(context.Context) error { return nil }), healthSrv)

	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: serviceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}
