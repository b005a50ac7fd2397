package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smartdustbin/internal/pkg/logger"
	"github.com/piresc/smartdustbin/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
		panicType  string
	}{
		{name: "string panic", panicValue: "test panic message", panicType: "string"},
		{name: "error panic", panicValue: errors.New("test error panic"), panicType: "*errors.errorString"},
		{name: "int panic", panicValue: 42, panicType: "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			zl := logger.NewZapLoggerFromCore(core, "dustbin-service")

			e := echo.New()
			e.Use(PanicRecoveryWithZapMiddleware(zl))
			e.GET("/api/stats", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Internal server error", body.Error)
			assert.False(t, body.Success)

			entries := logs.FilterMessage("Panic recovered during request processing").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.panicType, fields["panic_type"])
			assert.Equal(t, "/api/stats", fields["path"])
			assert.NotEmpty(t, fields["stack_trace"])
		})
	}
}

func TestPanicRecoveryWithZapMiddleware_NoPanic(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	zl := logger.NewZapLoggerFromCore(core, "dustbin-service")

	e := echo.New()
	e.Use(PanicRecoveryWithZapMiddleware(zl))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, logs.Len())
}

func TestPanicRecoveryWithZapMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryWithZapMiddleware(nil)
	})
}
