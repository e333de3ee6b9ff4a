package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/migration-tracker/internal/errors"
	"github.com/yukikurage/migration-tracker/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Statistics returns the portfolio statistics
func (h *DashboardHandler) Statistics(c *gin.Context) {
	stats, err := h.dashboardService.Statistics()
	if err != nil {
		respondDashboardError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// TeamLoad returns the team capacity signal
func (h *DashboardHandler) TeamLoad(c *gin.Context) {
	load, err := h.dashboardService.TeamLoad()
	if err != nil {
		respondDashboardError(c, err)
		return
	}
	c.JSON(http.StatusOK, load)
}

// Progress returns schedule progress of the most recent projects
func (h *DashboardHandler) Progress(c *gin.Context) {
	progress, err := h.dashboardService.Progress()
	if err != nil {
		respondDashboardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": progress})
}

// Timeline returns the scheduled spans of the most recent projects
func (h *DashboardHandler) Timeline(c *gin.Context) {
	timeline, err := h.dashboardService.Timeline()
	if err != nil {
		respondDashboardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": timeline})
}

// Summary returns an AI-written narrative of the dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		respondDashboardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func respondDashboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "Internal server error")
	}
}
