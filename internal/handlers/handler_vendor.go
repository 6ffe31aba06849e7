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

type vendorHandler struct {
	vendorService   portssvc.VendorSvcFacade
	categoryService portssvc.CategorySvcFacade
	exportService   portssvc.ExportSvc
}

func newVendorHandler(vs portssvc.VendorSvcFacade, cs portssvc.CategorySvcFacade, es portssvc.ExportSvc) *vendorHandler {
	return &vendorHandler{vendorService: vs, categoryService: cs, exportService: es}
}

// registerVendorRoutes registers vendor and service category routes.
func registerVendorRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newVendorHandler(services.Vendor, services.Category, services.Export)
	canWrite := middleware.RequireRole(domain.RoleManager)
	vendorsOn := middleware.RequireModule(services.Modules, modules.Vendors)

	vendors := rg.Group("/vendors", vendorsOn)
	{
		vendors.GET("", h.listVendors)
		vendors.POST("", canWrite, h.createVendor)
		vendors.GET("/export", h.exportVendors)
		vendors.GET("/:id", h.getVendor)
		vendors.PUT("/:id", canWrite, h.updateVendor)
		vendors.DELETE("/:id", canWrite, h.deleteVendor)
	}

	categories := rg.Group("/categories", vendorsOn)
	{
		categories.GET("", h.listCategories)
		categories.POST("", canWrite, h.createCategory)
		categories.PUT("/:id", canWrite, h.updateCategory)
		categories.DELETE("/:id", canWrite, h.deleteCategory)
	}
}

// createVendor godoc
// @Summary Create a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} domain.Vendor
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Vendor name already in use"
// @Failure 500 {object} map[string]string "Failed to create vendor"
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create vendor")
		return
	}
	logger.Info("Vendor created", slog.String("vendor_id", vendor.VendorID))
	c.JSON(http.StatusCreated, vendor)
}

// getVendor godoc
// @Summary Get a vendor by ID
// @Tags vendors
// @Produce  json
// @Param   id path string true "Vendor ID"
// @Success 200 {object} domain.Vendor
// @Failure 404 {object} map[string]string "Vendor not found"
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve vendor")
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// listVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce  json
// @Param   activeOnly query bool false "Only active vendors"
// @Success 200 {object} dto.ListVendorsResponse
// @Failure 500 {object} map[string]string "Failed to list vendors"
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListVendorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	vendors, err := h.vendorService.ListVendors(c.Request.Context(), params.ActiveOnly)
	if err != nil {
		respondError(c, logger, err, "Failed to list vendors")
		return
	}
	c.JSON(http.StatusOK, dto.ListVendorsResponse{Vendors: vendors})
}

// updateVendor godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   id path string true "Vendor ID"
// @Param   vendor body dto.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} domain.Vendor
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *vendorHandler) updateVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update vendor")
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// deleteVendor godoc
// @Summary Delete a vendor
// @Description Services and assets referencing the vendor keep existing without it.
// @Tags vendors
// @Param   id path string true "Vendor ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *vendorHandler) deleteVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	vendorID := c.Param("id")
	if err := h.vendorService.DeleteVendor(c.Request.Context(), vendorID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete vendor")
		return
	}
	logger.Info("Vendor deleted", slog.String("vendor_id", vendorID))
	c.Status(http.StatusNoContent)
}

// exportVendors godoc
// @Summary Export vendors as CSV
// @Tags vendors
// @Produce  text/csv
// @Success 200 {file} file
// @Security BearerAuth
// @Router /vendors/export [get]
func (h *vendorHandler) exportVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	f, err := h.exportService.ExportVendors(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to export vendors")
		return
	}
	sendFile(c, f)
}

// createCategory godoc
// @Summary Create a service category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} domain.Category
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Category name already in use"
// @Security BearerAuth
// @Router /categories [post]
func (h *vendorHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// listCategories godoc
// @Summary List service categories
// @Tags categories
// @Produce  json
// @Success 200 {object} dto.ListCategoriesResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *vendorHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: categories})
}

// updateCategory godoc
// @Summary Update a service category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} domain.Category
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *vendorHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// deleteCategory godoc
// @Summary Delete a service category
// @Tags categories
// @Param   id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *vendorHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}
