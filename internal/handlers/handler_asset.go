package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/modules"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type assetHandler struct {
	assetService        portssvc.AssetSvcFacade
	depreciationService portssvc.DepreciationSvcFacade
	exportService       portssvc.ExportSvc
}

func newAssetHandler(as portssvc.AssetSvcFacade, ds portssvc.DepreciationSvcFacade, es portssvc.ExportSvc) *assetHandler {
	return &assetHandler{assetService: as, depreciationService: ds, exportService: es}
}

// registerAssetRoutes registers the asset register, its lookups and depreciation routes.
func registerAssetRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAssetHandler(services.Asset, services.Depreciation, services.Export)
	canWrite := middleware.RequireRole(domain.RoleManager)
	assetsOn := middleware.RequireModule(services.Modules, modules.Assets)
	depreciationOn := middleware.RequireModule(services.Modules, modules.Depreciation)

	assets := rg.Group("/assets", assetsOn)
	{
		assets.GET("", h.listAssets)
		assets.POST("", canWrite, h.createAsset)
		assets.GET("/export", h.exportAssets)
		assets.GET("/register.pdf", h.assetRegisterPDF)
		assets.GET("/:id", h.getAsset)
		assets.PUT("/:id", canWrite, h.updateAsset)
		assets.DELETE("/:id", canWrite, h.deleteAsset)

		assets.POST("/:id/depreciation", depreciationOn, canWrite, h.createSchedule)
		assets.GET("/:id/depreciation", depreciationOn, h.getDepreciation)
		assets.POST("/:id/depreciation/sync", depreciationOn, canWrite, h.syncBookValue)
	}

	rg.GET("/asset-categories", assetsOn, h.listAssetCategories)
	rg.POST("/asset-categories", assetsOn, canWrite, h.createAssetCategory)
	rg.GET("/asset-locations", assetsOn, h.listAssetLocations)
	rg.POST("/asset-locations", assetsOn, canWrite, h.createAssetLocation)
}

// createAsset godoc
// @Summary Register an asset
// @Description The current book value defaults to the purchase cost.
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} domain.Asset
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create asset"
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create asset")
		return
	}
	logger.Info("Asset created", slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, asset)
}

// getAsset godoc
// @Summary Get an asset by ID
// @Tags assets
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 200 {object} domain.Asset
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asset, err := h.assetService.GetAssetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve asset")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// listAssets godoc
// @Summary List assets
// @Tags assets
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   categoryID query string false "Asset category filter"
// @Param   locationID query string false "Asset location filter"
// @Success 200 {object} dto.ListAssetsResponse
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	assets, err := h.assetService.ListAssets(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list assets")
		return
	}
	c.JSON(http.StatusOK, dto.ListAssetsResponse{Assets: assets})
}

// updateAsset godoc
// @Summary Update an asset
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   asset body dto.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} domain.Asset
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	asset, err := h.assetService.UpdateAsset(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update asset")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// deleteAsset godoc
// @Summary Delete an asset
// @Description Deletes the asset with its depreciation schedule and attachments.
// @Tags assets
// @Param   id path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	assetID := c.Param("id")
	if err := h.assetService.DeleteAsset(c.Request.Context(), assetID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete asset")
		return
	}
	logger.Info("Asset deleted", slog.String("asset_id", assetID))
	c.Status(http.StatusNoContent)
}

// exportAssets godoc
// @Summary Export assets as CSV
// @Tags assets
// @Produce  text/csv
// @Success 200 {file} file
// @Security BearerAuth
// @Router /assets/export [get]
func (h *assetHandler) exportAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	f, err := h.exportService.ExportAssets(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to export assets")
		return
	}
	sendFile(c, f)
}

// assetRegisterPDF godoc
// @Summary Download the asset register as PDF
// @Tags assets
// @Produce  application/pdf
// @Success 200 {file} file
// @Security BearerAuth
// @Router /assets/register.pdf [get]
func (h *assetHandler) assetRegisterPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	f, err := h.exportService.AssetRegisterPDF(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to render asset register")
		return
	}
	sendFile(c, f)
}

// listAssetCategories godoc
// @Summary List asset categories
// @Tags assets
// @Produce  json
// @Success 200 {object} map[string][]domain.AssetCategory
// @Security BearerAuth
// @Router /asset-categories [get]
func (h *assetHandler) listAssetCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categories, err := h.assetService.ListAssetCategories(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list asset categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// createAssetCategory godoc
// @Summary Create an asset category
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateAssetCategoryRequest true "Category details"
// @Success 201 {object} domain.AssetCategory
// @Failure 409 {object} map[string]string "Category name already in use"
// @Security BearerAuth
// @Router /asset-categories [post]
func (h *assetHandler) createAssetCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	category, err := h.assetService.CreateAssetCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create asset category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// listAssetLocations godoc
// @Summary List asset locations
// @Tags assets
// @Produce  json
// @Success 200 {object} map[string][]domain.AssetLocation
// @Security BearerAuth
// @Router /asset-locations [get]
func (h *assetHandler) listAssetLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locations, err := h.assetService.ListAssetLocations(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list asset locations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// createAssetLocation godoc
// @Summary Create an asset location
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   location body dto.CreateAssetLocationRequest true "Location details"
// @Success 201 {object} domain.AssetLocation
// @Failure 409 {object} map[string]string "Location name already in use"
// @Security BearerAuth
// @Router /asset-locations [post]
func (h *assetHandler) createAssetLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	location, err := h.assetService.CreateAssetLocation(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create asset location")
		return
	}
	c.JSON(http.StatusCreated, location)
}

// createSchedule godoc
// @Summary Attach a depreciation schedule
// @Description An asset has at most one schedule.
// @Tags depreciation
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   schedule body dto.CreateDepreciationRequest true "Schedule"
// @Success 201 {object} dto.DepreciationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset already has a schedule"
// @Security BearerAuth
// @Router /assets/{id}/depreciation [post]
func (h *assetHandler) createSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	resp, err := h.depreciationService.CreateSchedule(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create depreciation schedule")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// getDepreciation godoc
// @Summary Compute depreciation
// @Description Returns the schedule, figures as of a date and the yearly table.
// @Tags depreciation
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   asOf query string false "Valuation date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.DepreciationResponse
// @Failure 404 {object} map[string]string "Asset or schedule not found"
// @Security BearerAuth
// @Router /assets/{id}/depreciation [get]
func (h *assetHandler) getDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := bindAsOf(c)
	if !ok {
		return
	}
	resp, err := h.depreciationService.GetDepreciation(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to compute depreciation")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// syncBookValue godoc
// @Summary Store the derived book value
// @Description Writes the book value derived from the schedule into the asset.
// @Tags depreciation
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   asOf query string false "Valuation date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.Asset
// @Failure 404 {object} map[string]string "Asset or schedule not found"
// @Security BearerAuth
// @Router /assets/{id}/depreciation/sync [post]
func (h *assetHandler) syncBookValue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, ok := bindAsOf(c)
	if !ok {
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	asset, err := h.depreciationService.SyncBookValue(c.Request.Context(), c.Param("id"), asOf, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to sync book value")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// bindAsOf returns the zero time when asOf is absent so the service picks today.
func bindAsOf(c *gin.Context) (time.Time, bool) {
	var params dto.GetDepreciationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return time.Time{}, false
	}
	if params.AsOf == nil {
		return time.Time{}, true
	}
	return *params.AsOf, true
}
