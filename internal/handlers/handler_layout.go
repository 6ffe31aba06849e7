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

// layoutHandler serves page-builder layouts and the settings sections.
type layoutHandler struct {
	layoutService   portssvc.LayoutSvcFacade
	settingsService portssvc.SettingsSvcFacade
	exportService   portssvc.ExportSvc
}

func registerLayoutRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &layoutHandler{layoutService: services.Layout, settingsService: services.Settings, exportService: services.Export}
	canWrite := middleware.RequireRole(domain.RoleManager)

	layouts := rg.Group("/layouts", middleware.RequireModule(services.Modules, modules.PageBuilder))
	{
		layouts.GET("", h.listLayouts)
		layouts.POST("", canWrite, h.createLayout)
		layouts.GET("/:id", h.getLayout)
		layouts.PUT("/:id", canWrite, h.updateLayout)
		layouts.DELETE("/:id", canWrite, h.deleteLayout)
		layouts.GET("/:id/export", h.exportLayout)
	}

	settings := rg.Group("/settings")
	{
		settings.GET("/:section", h.getSettings)
		settings.PUT("/:section", middleware.RequireRole(domain.RoleAdmin), h.updateSettings)
	}
}

// createLayout godoc
// @Summary Save a page layout
// @Tags layouts
// @Accept  json
// @Produce  json
// @Param   layout body dto.CreateLayoutRequest true "Layout"
// @Success 201 {object} domain.PageLayout
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /layouts [post]
func (h *layoutHandler) createLayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	layout, err := h.layoutService.CreateLayout(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create layout")
		return
	}
	logger.Info("Layout created", slog.String("layout_id", layout.LayoutID), slog.String("page_key", layout.PageKey))
	c.JSON(http.StatusCreated, layout)
}

// getLayout godoc
// @Summary Get a page layout
// @Tags layouts
// @Produce  json
// @Param   id path string true "Layout ID"
// @Success 200 {object} domain.PageLayout
// @Failure 404 {object} map[string]string "Layout not found"
// @Security BearerAuth
// @Router /layouts/{id} [get]
func (h *layoutHandler) getLayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	layout, err := h.layoutService.GetLayout(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve layout")
		return
	}
	c.JSON(http.StatusOK, layout)
}

// listLayouts godoc
// @Summary List page layouts
// @Tags layouts
// @Produce  json
// @Param   pageKey query string false "Page key filter"
// @Success 200 {object} dto.ListLayoutsResponse
// @Security BearerAuth
// @Router /layouts [get]
func (h *layoutHandler) listLayouts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLayoutsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	layouts, err := h.layoutService.ListLayouts(c.Request.Context(), params.PageKey)
	if err != nil {
		respondError(c, logger, err, "Failed to list layouts")
		return
	}
	c.JSON(http.StatusOK, dto.ListLayoutsResponse{Layouts: layouts})
}

// updateLayout godoc
// @Summary Update a page layout
// @Tags layouts
// @Accept  json
// @Produce  json
// @Param   id path string true "Layout ID"
// @Param   layout body dto.UpdateLayoutRequest true "Fields to update"
// @Success 200 {object} domain.PageLayout
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Layout not found"
// @Security BearerAuth
// @Router /layouts/{id} [put]
func (h *layoutHandler) updateLayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	layout, err := h.layoutService.UpdateLayout(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update layout")
		return
	}
	c.JSON(http.StatusOK, layout)
}

// deleteLayout godoc
// @Summary Delete a page layout
// @Tags layouts
// @Param   id path string true "Layout ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Layout not found"
// @Security BearerAuth
// @Router /layouts/{id} [delete]
func (h *layoutHandler) deleteLayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	if err := h.layoutService.DeleteLayout(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete layout")
		return
	}
	c.Status(http.StatusNoContent)
}

// exportLayout godoc
// @Summary Export a page layout as JSON
// @Tags layouts
// @Produce  json
// @Param   id path string true "Layout ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Layout not found"
// @Security BearerAuth
// @Router /layouts/{id}/export [get]
func (h *layoutHandler) exportLayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	f, err := h.exportService.ExportLayout(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to export layout")
		return
	}
	sendFile(c, f)
}

// getSettings godoc
// @Summary Read a settings section
// @Description Sections never saved read as an empty object.
// @Tags settings
// @Produce  json
// @Param   section path string true "email, sms, whatsapp, company or subscription"
// @Success 200 {object} domain.Settings
// @Failure 404 {object} map[string]string "Unknown section"
// @Security BearerAuth
// @Router /settings/{section} [get]
func (h *layoutHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settings, err := h.settingsService.GetSettings(c.Request.Context(), domain.SettingsSection(c.Param("section")))
	if err != nil {
		respondError(c, logger, err, "Failed to read settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// updateSettings godoc
// @Summary Replace a settings section
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   section path string true "email, sms, whatsapp, company or subscription"
// @Param   settings body dto.UpdateSettingsRequest true "Section values"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} map[string]string "Values must be a JSON object"
// @Failure 404 {object} map[string]string "Unknown section"
// @Security BearerAuth
// @Router /settings/{section} [put]
func (h *layoutHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), domain.SettingsSection(c.Param("section")), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update settings")
		return
	}
	logger.Info("Settings updated", slog.String("section", string(settings.Section)))
	c.JSON(http.StatusOK, settings)
}
