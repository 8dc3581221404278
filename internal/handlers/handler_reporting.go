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

// defaultCashFlowDays is the projection horizon when the caller omits one.
const defaultCashFlowDays = 30

// reportingHandler handles HTTP requests for derived financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the read-only reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/margins", h.marginByExecution)
		reports.GET("/margins/:executionID", h.marginForExecution)
		reports.GET("/profit-and-loss", h.profitAndLoss)
		reports.GET("/cash-flow", h.cashFlowProjection)
		reports.GET("/dashboard", h.dashboardSummary)
	}
}

// marginForExecution godoc
// @Summary Margin report for one execution
// @Description Income net of credit notes minus direct costs. The percentage is zero when net income is not positive.
// @Tags reports
// @Produce  json
// @Param   executionID path string true "Execution ID"
// @Success 200 {object} dto.ExecutionMarginResponse
// @Failure 404 {object} map[string]string "Execution not found"
// @Failure 500 {object} map[string]string "Failed to compute margin"
// @Router /reports/margins/{executionID} [get]
func (h *reportingHandler) marginForExecution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	executionID := c.Param("executionID")

	margin, err := h.reportingService.MarginForExecution(c.Request.Context(), executionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Execution not found"})
		} else {
			logger.Error("Failed to compute execution margin", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute margin"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExecutionMarginResponse(margin))
}

// marginByExecution godoc
// @Summary Margin report for every execution
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.ExecutionMarginResponse
// @Failure 500 {object} map[string]string "Failed to compute margins"
// @Router /reports/margins [get]
func (h *reportingHandler) marginByExecution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	margins, err := h.reportingService.MarginByExecution(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute margins by execution", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute margins"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExecutionMarginResponses(margins))
}

// profitAndLoss godoc
// @Summary Profit and loss statement
// @Description Aggregates the ledger over [from, to] by issue date, splitting direct and indirect costs
// @Tags reports
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.ProfitAndLoss
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to compute profit and loss"
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ProfitAndLossParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period: " + err.Error()})
		return
	}

	pnl, err := h.reportingService.ProfitAndLoss(c.Request.Context(), params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute profit and loss", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute profit and loss"})
		}
		return
	}

	c.JSON(http.StatusOK, pnl)
}

// cashFlowProjection godoc
// @Summary Cash flow projection
// @Description One row per day starting today: unpaid entries project on their due date, settled entries report on their payment date
// @Tags reports
// @Produce  json
// @Param   days query int false "Projection horizon in days (default 30)"
// @Success 200 {array} domain.CashFlowDay
// @Failure 400 {object} map[string]string "Invalid horizon"
// @Failure 500 {object} map[string]string "Failed to compute cash flow"
// @Router /reports/cash-flow [get]
func (h *reportingHandler) cashFlowProjection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CashFlowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid horizon: " + err.Error()})
		return
	}
	if params.Days == 0 {
		params.Days = defaultCashFlowDays
	}

	flow, err := h.reportingService.CashFlowProjection(c.Request.Context(), params.Days)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute cash flow projection", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cash flow"})
		}
		return
	}

	c.JSON(http.StatusOK, flow)
}

// dashboardSummary godoc
// @Summary Dashboard KPI summary
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.DashboardSummary
// @Failure 500 {object} map[string]string "Failed to compute dashboard summary"
// @Router /reports/dashboard [get]
func (h *reportingHandler) dashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.DashboardSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
