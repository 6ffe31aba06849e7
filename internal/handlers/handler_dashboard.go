package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/modules"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &dashboardHandler{dashboardService: services.Dashboard}

	dashboard := rg.Group("/dashboard", middleware.RequireModule(services.Modules, modules.Subscriptions))
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.POST("/renewal-digest",
			middleware.RequireModule(services.Modules, modules.Notifications),
			middleware.RequireRole(domain.RoleManager),
			h.sendRenewalDigest,
		)
	}
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Service counts, monthly cost, this month's renewals, this year's paid total in USD and upcoming renewals.
// @Tags dashboard
// @Produce  json
// @Param   upcomingDays query int false "Upcoming renewal window in days" default(30)
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), params.UpcomingDays)
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// sendRenewalDigest godoc
// @Summary Send the renewal digest
// @Description Sends upcoming renewals to the configured notification channel.
// @Tags dashboard
// @Produce  json
// @Param   upcomingDays query int false "Upcoming renewal window in days" default(30)
// @Success 200 {object} dto.RenewalDigestResponse
// @Failure 502 {object} map[string]string "Notification channel failed"
// @Failure 503 {object} map[string]string "No notification channel configured"
// @Security BearerAuth
// @Router /dashboard/renewal-digest [post]
func (h *dashboardHandler) sendRenewalDigest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.dashboardService.SendRenewalDigest(c.Request.Context(), params.UpcomingDays)
	if err != nil {
		respondError(c, logger, err, "Failed to send renewal digest")
		return
	}
	logger.Info("Renewal digest processed", slog.Bool("sent", resp.Sent), slog.Int("renewals", resp.Renewals))
	c.JSON(http.StatusOK, resp)
}
