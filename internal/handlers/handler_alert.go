package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
	"github.com/otecpro/otec_erp_backend/internal/middleware"
)

// alertHandler handles HTTP requests related to dashboard alerts.
type alertHandler struct {
	alertService portssvc.AlertSvcFacade
}

func newAlertHandler(as portssvc.AlertSvcFacade) *alertHandler {
	return &alertHandler{alertService: as}
}

// registerAlertRoutes registers routes related to alerts.
func registerAlertRoutes(rg *gin.RouterGroup, alertService portssvc.AlertSvcFacade) {
	h := newAlertHandler(alertService)

	alerts := rg.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("", h.listAlerts)
		alerts.DELETE("/:alertID", h.dismissAlert)
	}
}

// createAlert godoc
// @Summary Create a dashboard alert
// @Tags alerts
// @Accept  json
// @Produce  json
// @Param   alert body dto.CreateAlertRequest true "Alert details"
// @Success 201 {object} dto.AlertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create alert"
// @Router /alerts [post]
func (h *alertHandler) createAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAlert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator := middleware.GetActorFromContext(c)
	alert, err := h.alertService.CreateAlert(c.Request.Context(), req, creator)
	if err != nil {
		logger.Error("Failed to create alert in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create alert"})
		return
	}

	logger.Info("Alert created successfully", slog.String("alert_id", alert.AlertID))
	c.JSON(http.StatusCreated, dto.ToAlertResponse(alert))
}

// listAlerts godoc
// @Summary List all alerts
// @Description Returns alerts ordered by priority then date
// @Tags alerts
// @Produce  json
// @Success 200 {array} dto.AlertResponse
// @Failure 500 {object} map[string]string "Failed to list alerts"
// @Router /alerts [get]
func (h *alertHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	alerts, err := h.alertService.ListAlerts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list alerts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list alerts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAlertResponses(alerts))
}

// dismissAlert godoc
// @Summary Dismiss an alert
// @Description Deletes the alert; dismissing twice returns not found
// @Tags alerts
// @Produce  json
// @Param   alertID path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Failed to dismiss alert"
// @Router /alerts/{alertID} [delete]
func (h *alertHandler) dismissAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	alertID := c.Param("alertID")

	err := h.alertService.DismissAlert(c.Request.Context(), alertID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		} else {
			logger.Error("Failed to dismiss alert in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dismiss alert"})
		}
		return
	}

	logger.Info("Alert dismissed successfully", slog.String("alert_id", alertID))
	c.Status(http.StatusNoContent)
}
