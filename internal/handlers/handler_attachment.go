package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type attachmentHandler struct {
	attachmentService portssvc.AttachmentSvcFacade
	maxBytes          int64
}

func registerAttachmentRoutes(rg *gin.RouterGroup, attachmentService portssvc.AttachmentSvcFacade, maxBytes int64) {
	h := &attachmentHandler{attachmentService: attachmentService, maxBytes: maxBytes}
	canWrite := middleware.RequireRole(domain.RoleManager)

	attachments := rg.Group("/attachments")
	{
		attachments.POST("/:entityType/:entityID", canWrite, h.upload)
		attachments.GET("/:entityType/:entityID", h.list)
		attachments.GET("/:entityType/:entityID/:attachmentID", h.download)
		attachments.DELETE("/:attachmentID", canWrite, h.delete)
	}
}

// upload godoc
// @Summary Upload an attachment
// @Description Stores a file and links it to a service, payment, asset or vendor.
// @Tags attachments
// @Accept  multipart/form-data
// @Produce  json
// @Param   entityType path string true "service, payment, asset or vendor"
// @Param   entityID path string true "Record ID"
// @Param   file formData file true "File"
// @Success 201 {object} domain.Attachment
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 502 {object} map[string]string "Storage failed"
// @Security BearerAuth
// @Router /attachments/{entityType}/{entityID} [post]
func (h *attachmentHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}

	if h.maxBytes > 0 {
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
	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer f.Close()

	attachment, err := h.attachmentService.Upload(c.Request.Context(), portssvc.UploadAttachmentInput{
		EntityType:  domain.AttachmentEntity(c.Param("entityType")),
		EntityID:    c.Param("entityID"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		Body:        f,
	}, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to upload attachment")
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// list godoc
// @Summary List attachments of a record
// @Tags attachments
// @Produce  json
// @Param   entityType path string true "service, payment, asset or vendor"
// @Param   entityID path string true "Record ID"
// @Success 200 {object} map[string][]domain.Attachment
// @Failure 400 {object} map[string]string "Unsupported entity type"
// @Security BearerAuth
// @Router /attachments/{entityType}/{entityID} [get]
func (h *attachmentHandler) list(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	attachments, err := h.attachmentService.ListAttachments(c.Request.Context(), domain.AttachmentEntity(c.Param("entityType")), c.Param("entityID"))
	if err != nil {
		respondError(c, logger, err, "Failed to list attachments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attachments": attachments})
}

// download godoc
// @Summary Download an attachment
// @Tags attachments
// @Produce  octet-stream
// @Param   entityType path string true "service, payment, asset or vendor"
// @Param   entityID path string true "Record ID"
// @Param   attachmentID path string true "Attachment ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{entityType}/{entityID}/{attachmentID} [get]
func (h *attachmentHandler) download(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	attachment, body, err := h.attachmentService.Open(c.Request.Context(), c.Param("attachmentID"))
	if err != nil {
		respondError(c, logger, err, "Failed to open attachment")
		return
	}
	defer body.Close()

	if string(attachment.EntityType) != c.Param("entityType") || attachment.EntityID != c.Param("entityID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.FileName))
	c.Header("Content-Length", strconv.FormatInt(attachment.SizeBytes, 10))
	c.Header("Content-Type", attachment.ContentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		logger.Error("Failed to stream attachment", slog.String("attachment_id", attachment.AttachmentID), slog.String("error", err.Error()))
	}
}

// delete godoc
// @Summary Delete an attachment
// @Tags attachments
// @Param   attachmentID path string true "Attachment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{attachmentID} [delete]
func (h *attachmentHandler) delete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}
	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), c.Param("attachmentID"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete attachment")
		return
	}
	c.Status(http.StatusNoContent)
}
