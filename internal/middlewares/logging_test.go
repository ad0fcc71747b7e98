package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		requestID     string
		handlerStatus int
		handlerBody   string
		expectedLevel zapcore.Level
	}{
		{
			name:          "OK response",
			handlerStatus: http.StatusOK,
			handlerBody:   "hello",
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "incoming request id is kept",
			requestID:     "abc-123",
			handlerStatus: http.StatusNotFound,
			handlerBody:   "missing",
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "Internal server error",
			handlerStatus: http.StatusInternalServerError,
			handlerBody:   "error",
			expectedLevel: zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			log := zap.New(core).Sugar()

			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID, _ = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil)
			if tt.requestID != "" {
				req.Header.Set(RequestIDHeader, tt.requestID)
			}
			rr := httptest.NewRecorder()

			LoggingMiddleware(log)(nextHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			body, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.handlerBody, string(body))

			reqID := rr.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, seenID)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, reqID)
			}

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)
			ctx := entry.ContextMap()
			assert.Equal(t, reqID, ctx["request_id"])
			assert.Equal(t, int64(tt.handlerStatus), ctx["status"])
			assert.Equal(t, int64(len(tt.handlerBody)), ctx["response_size"])
		})
	}
}
