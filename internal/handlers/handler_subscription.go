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

// subscriptionHandler handles tracked services and their payments.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
	paymentService      portssvc.PaymentSvcFacade
	exportService       portssvc.ExportSvc
}

func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade, ps portssvc.PaymentSvcFacade, es portssvc.ExportSvc) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss, paymentService: ps, exportService: es}
}

// registerSubscriptionRoutes registers service and payment routes. Payment
// routes are additionally gated by the payments module.
func registerSubscriptionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newSubscriptionHandler(services.Subscription, services.Payment, services.Export)
	canWrite := middleware.RequireRole(domain.RoleManager)
	paymentsOn := middleware.RequireModule(services.Modules, modules.Payments)

	svc := rg.Group("/services", middleware.RequireModule(services.Modules, modules.Subscriptions))
	{
		svc.GET("", h.listServices)
		svc.POST("", canWrite, h.createService)
		svc.GET("/export", h.exportServices)
		svc.GET("/:id", h.getService)
		svc.PUT("/:id", canWrite, h.updateService)
		svc.DELETE("/:id", canWrite, h.deleteService)
		svc.GET("/:id/payments", paymentsOn, h.listServicePayments)
		svc.POST("/:id/payments", paymentsOn, canWrite, h.recordPayment)
	}

	payments := rg.Group("/payments", middleware.RequireModule(services.Modules, modules.Subscriptions), paymentsOn)
	{
		payments.GET("", h.listPayments)
		payments.GET("/export", h.exportPayments)
	}
}

// createService godoc
// @Summary Track a new service
// @Description Creates a subscription. The next renewal date is derived from the start date when omitted.
// @Tags services
// @Accept  json
// @Produce  json
// @Param   service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} domain.Service
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create service"
// @Security BearerAuth
// @Router /services [post]
func (h *subscriptionHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateService", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}

	created, err := h.subscriptionService.CreateService(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create service")
		return
	}

	logger.Info("Service created", slog.String("service_id", created.ServiceID))
	c.JSON(http.StatusCreated, created)
}

// getService godoc
// @Summary Get a service by ID
// @Tags services
// @Produce  json
// @Param   id path string true "Service ID"
// @Success 200 {object} domain.Service
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Failed to retrieve service"
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *subscriptionHandler) getService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	svc, err := h.subscriptionService.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// listServices godoc
// @Summary List services
// @Description Lists services ordered by next renewal date, optionally filtered.
// @Tags services
// @Produce  json
// @Param   status query string false "Status filter (Active, Paused, Cancelled, Expired)"
// @Param   vendorID query string false "Vendor filter"
// @Param   categoryID query string false "Category filter"
// @Param   q query string false "Search in service name and provider"
// @Success 200 {object} dto.ListServicesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list services"
// @Security BearerAuth
// @Router /services [get]
func (h *subscriptionHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListServicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	services, err := h.subscriptionService.ListServices(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, dto.ListServicesResponse{Services: services})
}

// updateService godoc
// @Summary Update a service
// @Tags services
// @Accept  json
// @Produce  json
// @Param   id path string true "Service ID"
// @Param   service body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} domain.Service
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Failed to update service"
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *subscriptionHandler) updateService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("id")
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateService", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("service_id", serviceID))
	updated, err := h.subscriptionService.UpdateService(c.Request.Context(), serviceID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update service")
		return
	}

	logger.Info("Service updated")
	c.JSON(http.StatusOK, updated)
}

// deleteService godoc
// @Summary Delete a service
// @Description Deletes a service together with its payments and attachments.
// @Tags services
// @Param   id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Failed to delete service"
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *subscriptionHandler) deleteService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("id")
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("service_id", serviceID))
	if err := h.subscriptionService.DeleteService(c.Request.Context(), serviceID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete service")
		return
	}

	logger.Info("Service deleted")
	c.Status(http.StatusNoContent)
}

// exportServices godoc
// @Summary Export services as CSV
// @Description The file uses the same column names the importer accepts.
// @Tags services
// @Produce  text/csv
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Failed to export services"
// @Security BearerAuth
// @Router /services/export [get]
func (h *subscriptionHandler) exportServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	f, err := h.exportService.ExportServices(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to export services")
		return
	}
	sendFile(c, f)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment for a service. With advanceRenewal the next renewal date moves forward one billing cycle.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Service ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /services/{id}/payments [post]
func (h *subscriptionHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("id")
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := callerID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("service_id", serviceID))
	payment, err := h.paymentService.RecordPayment(c.Request.Context(), serviceID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, payment)
}

// listServicePayments godoc
// @Summary List payments of a service
// @Tags payments
// @Produce  json
// @Param   id path string true "Service ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /services/{id}/payments [get]
func (h *subscriptionHandler) listServicePayments(c *gin.Context) {
	h.listPaymentsFor(c, c.Param("id"))
}

// listPayments godoc
// @Summary List payments
// @Description Lists payments newest first, one page at a time.
// @Tags payments
// @Produce  json
// @Param   serviceID query string false "Service filter"
// @Param   from query string false "Earliest payment date (YYYY-MM-DD)"
// @Param   to query string false "Latest payment date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *subscriptionHandler) listPayments(c *gin.Context) {
	h.listPaymentsFor(c, "")
}

func (h *subscriptionHandler) listPaymentsFor(c *gin.Context, serviceID string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if serviceID != "" {
		params.ServiceID = serviceID
	}

	resp, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// exportPayments godoc
// @Summary Export payments as CSV
// @Tags payments
// @Produce  text/csv
// @Param   serviceID query string false "Service filter"
// @Param   from query string false "Earliest payment date (YYYY-MM-DD)"
// @Param   to query string false "Latest payment date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Failed to export payments"
// @Security BearerAuth
// @Router /payments/export [get]
func (h *subscriptionHandler) exportPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	f, err := h.exportService.ExportPayments(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to export payments")
		return
	}
	sendFile(c, f)
}
