package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/modules"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type moduleHandler struct {
	registry *modules.Registry
}

func registerModuleRoutes(rg *gin.RouterGroup, registry *modules.Registry) {
	h := &moduleHandler{registry: registry}

	rg.GET("/modules", h.listModules)
	rg.PUT("/modules/:moduleID", middleware.RequireRole(domain.RoleAdmin), h.updateModule)
}

// listModules godoc
// @Summary List feature modules
// @Tags modules
// @Produce  json
// @Success 200 {object} dto.ListModulesResponse
// @Security BearerAuth
// @Router /modules [get]
func (h *moduleHandler) listModules(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListModulesResponse{Modules: h.registry.List()})
}

// updateModule godoc
// @Summary Enable or disable a module
// @Description A module can only be enabled after its dependencies and only disabled when no enabled module depends on it.
// @Tags modules
// @Accept  json
// @Produce  json
// @Param   moduleID path string true "Module ID"
// @Param   module body dto.UpdateModuleRequest true "Enabled flag"
// @Success 200 {object} modules.Module
// @Failure 404 {object} map[string]string "Unknown module"
// @Failure 409 {object} map[string]string "Dependency not satisfied"
// @Security BearerAuth
// @Router /modules/{moduleID} [put]
func (h *moduleHandler) updateModule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id := modules.ID(c.Param("moduleID"))
	var err error
	if *req.Enabled {
		err = h.registry.Enable(id)
	} else {
		err = h.registry.Disable(id)
	}
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, modules.ErrUnknownModule):
			status = http.StatusNotFound
		case errors.Is(err, modules.ErrMissingDependency), errors.Is(err, modules.ErrHasDependents):
			status = http.StatusConflict
		}
		logger.Warn("Module update rejected", slog.String("module", string(id)), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	m, _ := h.registry.Get(id)
	logger.Info("Module updated", slog.String("module", string(id)), slog.Bool("enabled", m.Enabled))
	c.JSON(http.StatusOK, m)
}
