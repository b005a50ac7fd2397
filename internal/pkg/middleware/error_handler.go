package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smartdustbin/internal/pkg/logger"
	"github.com/piresc/smartdustbin/internal/utils"
)

// HTTPErrorHandler renders errors that escaped the handlers. Unknown routes
// and unsupported methods answer "Endpoint not found", anything that is not
// an echo.HTTPError is a generic 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		logger.ErrorCtx(c.Request().Context(), "Unhandled error",
			logger.String("path", c.Request().URL.Path),
			logger.ErrorField(err))
		_ = utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}

	switch {
	case he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed:
		_ = utils.NotFoundResponse(c, "Endpoint not found")
	case he.Code >= http.StatusInternalServerError:
		_ = utils.InternalServerErrorResponse(c, "Internal server error")
	default:
		message, ok := he.Message.(string)
		if !ok {
			message = http.StatusText(he.Code)
		}
		_ = utils.ErrorResponseHandler(c, he.Code, message)
	}
}
