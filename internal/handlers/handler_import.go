package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/modules"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type importHandler struct {
	importService portssvc.ImportSvc
	maxBytes      int64
}

// registerImportRoutes registers the bulk import endpoint. importLimit is applied per user.
func registerImportRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, maxBytes int64, importLimit gin.HandlerFunc) {
	h := &importHandler{importService: services.Import, maxBytes: maxBytes}

	rg.POST("/imports",
		middleware.RequireModule(services.Modules, modules.Imports),
		middleware.RequireRole(domain.RoleManager),
		importLimit,
		h.importFile,
	)
}

// importFile godoc
// @Summary Import a CSV or JSON file
// @Description Detects whether the file holds services, payments or vendors and inserts every valid row. Invalid rows are reported without aborting the import.
// @Tags imports
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "CSV or JSON file"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} map[string]string "File missing or not recognised"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 429 {object} map[string]string "Too many imports"
// @Security BearerAuth
// @Router /imports [post]
func (h *importHandler) importFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}

	if h.maxBytes > 0 {
		// Leave room for the multipart envelope around the file itself.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+64<<10)
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("File exceeds %d bytes", h.maxBytes)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required: " + err.Error()})
		return
	}
	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("File exceeds %d bytes", h.maxBytes)})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	logger = logger.With(slog.String("filename", fileHeader.Filename), slog.Int64("size", fileHeader.Size))
	logger.Info("Received import")

	result, err := h.importService.Import(c.Request.Context(), fileHeader.Filename, data, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to import file")
		return
	}
	c.JSON(http.StatusOK, result)
}
