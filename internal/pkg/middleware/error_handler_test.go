package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smartdustbin/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	e.GET("/api/dustbins", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("connection reset")
	})
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})
	e.GET("/gateway", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream detail")
	})

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedError  string
	}{
		{name: "Unknown route", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound, expectedError: "Endpoint not found"},
		{name: "Method not allowed is not found", method: http.MethodDelete, path: "/api/dustbins", expectedStatus: http.StatusNotFound, expectedError: "Endpoint not found"},
		{name: "Plain error is generic 500", method: http.MethodGet, path: "/boom", expectedStatus: http.StatusInternalServerError, expectedError: "Internal server error"},
		{name: "Client HTTP error keeps message", method: http.MethodGet, path: "/teapot", expectedStatus: http.StatusTeapot, expectedError: "short and stout"},
		{name: "Server HTTP error hides message", method: http.MethodGet, path: "/gateway", expectedStatus: http.StatusInternalServerError, expectedError: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedError, body.Error)
		})
	}
}
