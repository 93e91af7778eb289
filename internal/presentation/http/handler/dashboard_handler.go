package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/andresproyectosx24/chayotex/internal/application/service"
	"github.com/andresproyectosx24/chayotex/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles the home dashboard request
func (h *DashboardHandler) Get(c *gin.Context) {
	data, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard obtenido", data)
}
