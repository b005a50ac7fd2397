package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMessageResponse(t *testing.T) {
	c, rec := newTestContext()

	err := MessageResponse(c, http.StatusOK, "Fill level updated successfully")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Fill level updated successfully", response.Message)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name            string
		respond         func(c echo.Context) error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "Bad request",
			respond:         func(c echo.Context) error { return BadRequestResponse(c, "Missing required fields") },
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Missing required fields",
		},
		{
			name:            "Not found with default message",
			respond:         func(c echo.Context) error { return NotFoundResponse(c, "") },
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Resource not found",
		},
		{
			name:            "Internal server error with default message",
			respond:         func(c echo.Context) error { return InternalServerErrorResponse(c, "") },
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "Service unavailable",
			respond:         func(c echo.Context) error { return ServiceUnavailableResponse(c, "Database not connected") },
			expectedStatus:  http.StatusServiceUnavailable,
			expectedMessage: "Database not connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, tt.respond(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.expectedMessage, response.Error)
			assert.Equal(t, tt.expectedStatus, response.Code)
		})
	}
}
