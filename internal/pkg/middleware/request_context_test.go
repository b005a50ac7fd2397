package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smartdustbin/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContextMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestContextMiddleware("dustbin-service"))

	var seenID string
	e.GET("/api/stats", func(c echo.Context) error {
		reqCtx := GetRequestContext(c)
		require.NotNil(t, reqCtx)
		assert.Equal(t, "dustbin-service", reqCtx.ServiceName)
		seenID = requestcontext.GetRequestID(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seenID)
	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
}
