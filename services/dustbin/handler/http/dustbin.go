package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smartdustbin/internal/pkg/logger"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/internal/utils"
	"github.com/piresc/smartdustbin/services/dustbin"
)

// Client facing error messages
const (
	MsgStoreUnavailable = "Database not connected"
	MsgDustbinNotFound  = "Dustbin not found"
	MsgInvalidBody      = "Invalid request body"

	MsgFillUpdated    = "Fill level updated successfully"
	MsgReportAccepted = "Issue reported successfully"
)

// DustbinHandler handles HTTP requests for dustbin records
type DustbinHandler struct {
	dustbinUC dustbin.DustbinUC
}

// NewDustbinHandler creates a new dustbin HTTP handler
func NewDustbinHandler(dustbinUC dustbin.DustbinUC) *DustbinHandler {
	return &DustbinHandler{
		dustbinUC: dustbinUC,
	}
}

// ListDustbins returns the active records. With ?lat=&lng= every record
// carries its distance and the list is ordered nearest first.
func (h *DustbinHandler) ListDustbins(c echo.Context) error {
	ref := referenceFromQuery(c)

	dustbins, err := h.dustbinUC.ListDustbins(c.Request().Context(), ref)
	if err != nil {
		return h.errorResponse(c, err, "Failed to fetch dustbins")
	}
	return c.JSON(http.StatusOK, dustbins)
}

// GetDustbin returns one record
func (h *DustbinHandler) GetDustbin(c echo.Context) error {
	d, err := h.dustbinUC.GetDustbin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.errorResponse(c, err, "Failed to fetch dustbin")
	}
	return c.JSON(http.StatusOK, d)
}

// FindNearby returns the active records within :radius km of :lat/:lng
func (h *DustbinHandler) FindNearby(c echo.Context) error {
	ref := models.Location{
		Latitude:  parseNumber(c.Param("lat")),
		Longitude: parseNumber(c.Param("lng")),
	}
	radius := parseNumber(c.Param("radius"))

	dustbins, err := h.dustbinUC.FindNearby(c.Request().Context(), ref, radius)
	if err != nil {
		return h.errorResponse(c, err, "Failed to fetch nearby dustbins")
	}
	return c.JSON(http.StatusOK, dustbins)
}

// UpdateFillLevel sets the fill percentage of a record
func (h *DustbinHandler) UpdateFillLevel(c echo.Context) error {
	var req models.UpdateFillLevelRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, MsgInvalidBody)
	}

	if err := h.dustbinUC.UpdateFillLevel(c.Request().Context(), c.Param("id"), &req); err != nil {
		return h.errorResponse(c, err, "Failed to update fill level")
	}
	return utils.MessageResponse(c, http.StatusOK, MsgFillUpdated)
}

// SubmitReport records an issue report for a dustbin
func (h *DustbinHandler) SubmitReport(c echo.Context) error {
	var req models.SubmitReportRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, MsgInvalidBody)
	}

	if _, err := h.dustbinUC.SubmitReport(c.Request().Context(), c.Param("id"), &req); err != nil {
		return h.errorResponse(c, err, "Failed to report issue")
	}
	return utils.MessageResponse(c, http.StatusOK, MsgReportAccepted)
}

// CreateDustbin adds a new record
func (h *DustbinHandler) CreateDustbin(c echo.Context) error {
	var req models.CreateDustbinRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, MsgInvalidBody)
	}

	d, err := h.dustbinUC.CreateDustbin(c.Request().Context(), &req)
	if err != nil {
		return h.errorResponse(c, err, "Failed to add dustbin")
	}
	return c.JSON(http.StatusCreated, d)
}

// GetStats returns the fill bucket statistics
func (h *DustbinHandler) GetStats(c echo.Context) error {
	stats, err := h.dustbinUC.GetStats(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err, "Failed to fetch statistics")
	}
	return c.JSON(http.StatusOK, stats)
}

// errorResponse maps use case errors to status codes. Unexpected errors are
// logged and answered with fallback.
func (h *DustbinHandler) errorResponse(c echo.Context, err error, fallback string) error {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return utils.BadRequestResponse(c, validationErr.Message)
	case errors.Is(err, models.ErrDustbinNotFound):
		return utils.NotFoundResponse(c, MsgDustbinNotFound)
	case errors.Is(err, models.ErrStoreUnavailable):
		return utils.ServiceUnavailableResponse(c, MsgStoreUnavailable)
	}

	logger.ErrorCtx(c.Request().Context(), fallback,
		logger.String("path", c.Path()),
		logger.String("id", c.Param("id")),
		logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, fallback)
}

// referenceFromQuery reads ?lat=&lng=. A missing or unparsable half becomes
// NaN, which the use case rejects once the store has answered.
func referenceFromQuery(c echo.Context) *models.Location {
	latParam, lngParam := c.QueryParam("lat"), c.QueryParam("lng")
	if latParam == "" && lngParam == "" {
		return nil
	}
	return &models.Location{
		Latitude:  parseNumber(latParam),
		Longitude: parseNumber(lngParam),
	}
}

// parseNumber returns NaN for anything that is not a float
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
