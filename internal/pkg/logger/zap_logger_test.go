package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)
	return &ZapLogger{Logger: l, sugar: l.Sugar()}, logs
}

func TestLogHTTPRequest_Levels(t *testing.T) {
	testCases := []struct {
		name          string
		status        int
		expectedLevel zapcore.Level
		expectedMsg   string
	}{
		{name: "success", status: http.StatusOK, expectedLevel: zapcore.InfoLevel, expectedMsg: "Request processed"},
		{name: "client error", status: http.StatusUnprocessableEntity, expectedLevel: zapcore.WarnLevel, expectedMsg: "Client error"},
		{name: "server error", status: http.StatusInternalServerError, expectedLevel: zapcore.ErrorLevel, expectedMsg: "Server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			zl, logs := newObservedLogger()

			zl.LogHTTPRequest(http.MethodPost, "/transaction", "10.0.0.1", "req-1", tc.status, 5*time.Millisecond, nil)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tc.expectedLevel, entry.Level)
			assert.Equal(t, tc.expectedMsg, entry.Message)
			assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
			assert.Equal(t, int64(tc.status), entry.ContextMap()["status"])
		})
	}
}

func TestContextLogging_AddsRequestID(t *testing.T) {
	zl, logs := newObservedLogger()
	SetGlobalLogger(zl)
	defer SetGlobalLogger(nil)

	ctx := ContextWithRequestID(context.Background(), "abc-123")
	InfoCtx(ctx, "hello", String("k", "v"))
	WarnCtx(context.Background(), "no id")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "abc-123", logs.All()[0].ContextMap()["request_id"])
	assert.Equal(t, "v", logs.All()[0].ContextMap()["k"])
	_, ok := logs.All()[1].ContextMap()["request_id"]
	assert.False(t, ok)
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

func TestNewZapLogger_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "verification-service"})
	require.NoError(t, err)

	zl.Info("written to file")
	assert.Equal(t, path, zl.GetFilePath())
	assert.NoError(t, zl.Close())
}

func TestZapEchoMiddleware(t *testing.T) {
	zl, logs := newObservedLogger()
	e := echo.New()

	handler := ZapEchoMiddleware(zl)(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	req := httptest.NewRequest(http.MethodGet, "/transaction/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-9")

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, "req-9", logs.All()[0].ContextMap()["request_id"])
}

func TestLogHTTPRequest_ServerErrorCarriesError(t *testing.T) {
	zl, logs := newObservedLogger()

	zl.LogHTTPRequest(http.MethodGet, "/", "", "", http.StatusInternalServerError, time.Millisecond, errors.New("boom"))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "boom", logs.All()[0].ContextMap()["error"])
}
