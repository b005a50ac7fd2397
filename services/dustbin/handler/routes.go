package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/services/dustbin"
	httpHandler "github.com/piresc/smartdustbin/services/dustbin/handler/http"
)

// Handler combines all handlers for the dustbin service
type Handler struct {
	dustbinHTTP *httpHandler.DustbinHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(dustbinUC dustbin.DustbinUC, cfg *models.Config) *Handler {
	return &Handler{
		dustbinHTTP: httpHandler.NewDustbinHandler(dustbinUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.banner)

	api := e.Group("/api")

	dustbins := api.Group("/dustbins")
	dustbins.GET("", h.dustbinHTTP.ListDustbins)
	dustbins.POST("", h.dustbinHTTP.CreateDustbin)
	dustbins.GET("/nearby/:lat/:lng/:radius", h.dustbinHTTP.FindNearby)
	dustbins.GET("/:id", h.dustbinHTTP.GetDustbin)
	dustbins.PUT("/:id/fill-level", h.dustbinHTTP.UpdateFillLevel)
	dustbins.POST("/:id/report", h.dustbinHTTP.SubmitReport)

	api.GET("/stats", h.dustbinHTTP.GetStats)
}

func (h *Handler) banner(c echo.Context) error {
	name, version := "smart-dustbin-locator", "development"
	if h.cfg != nil {
		if h.cfg.App.Name != "" {
			name = h.cfg.App.Name
		}
		if h.cfg.App.Version != "" {
			version = h.cfg.App.Version
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"service": name,
		"version": version,
		"endpoints": []string{
			"GET /api/dustbins",
			"GET /api/dustbins/:id",
			"GET /api/dustbins/nearby/:lat/:lng/:radius",
			"PUT /api/dustbins/:id/fill-level",
			"POST /api/dustbins/:id/report",
			"POST /api/dustbins",
			"GET /api/stats",
		},
	})
}
