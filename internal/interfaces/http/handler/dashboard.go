package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/storefront/backend/internal/application/report"
)

// DashboardHandler handles admin reporting endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns the store-wide dashboard figures
func (h *DashboardHandler) Summary(c *gin.Context) {
	resp, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
