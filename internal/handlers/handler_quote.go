package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
	"github.com/otecpro/otec_erp_backend/internal/middleware"
)

// quoteHandler handles HTTP requests related to commercial quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

// registerQuoteRoutes registers routes related to quotes.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("", h.listQuotes)
		quotes.GET("/:quoteID", h.getQuote)
		quotes.PUT("/:quoteID", h.updateQuote)
		quotes.POST("/:quoteID/items", h.addItem)
		quotes.DELETE("/:quoteID/items/:index", h.removeItem)
		quotes.POST("/:quoteID/transition", h.transitionQuote)
	}
}

// createQuote godoc
// @Summary Create a new quote
// @Description Builds a Draft quote, computing item subtotals, IVA and totals, and allocates the next display number
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.CreateQuoteRequest true "Quote details"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Client or course not found"
// @Failure 500 {object} map[string]string "Failed to create quote"
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator := middleware.GetActorFromContext(c)
	quote, err := h.quoteService.CreateQuote(c.Request.Context(), req, creator)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create quote in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quote"})
		}
		return
	}

	logger.Info("Quote created successfully", slog.String("quote_id", quote.QuoteID), slog.String("number", quote.Number))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// getQuote godoc
// @Summary Get a quote by ID
// @Tags quotes
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 500 {object} map[string]string "Failed to retrieve quote"
// @Router /quotes/{quoteID} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	quote, err := h.quoteService.GetQuoteByID(c.Request.Context(), quoteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		} else {
			logger.Error("Failed to get quote from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quote"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// listQuotes godoc
// @Summary List all quotes
// @Tags quotes
// @Produce  json
// @Success 200 {array} dto.QuoteResponse
// @Failure 500 {object} map[string]string "Failed to list quotes"
// @Router /quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quotes, err := h.quoteService.ListQuotes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list quotes from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponses(quotes))
}

// updateQuote godoc
// @Summary Update a quote's header fields
// @Description Only quotes that are still Draft or Sent can be edited
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Param   quote body dto.UpdateQuoteRequest true "Fields to update"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 409 {object} map[string]string "Quote is no longer editable"
// @Failure 500 {object} map[string]string "Failed to update quote"
// @Router /quotes/{quoteID} [put]
func (h *quoteHandler) updateQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updater := middleware.GetActorFromContext(c)
	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), quoteID, req, updater)
	if err != nil {
		h.respondQuoteError(c, logger, err, "Failed to update quote")
		return
	}

	logger.Info("Quote updated successfully", slog.String("quote_id", quoteID))
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// addItem godoc
// @Summary Add a line to a quote
// @Description Appends a course line and recomputes the quote totals
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Param   item body dto.QuoteItemRequest true "Line details"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Quote or course not found"
// @Failure 409 {object} map[string]string "Quote is no longer editable"
// @Failure 500 {object} map[string]string "Failed to add item"
// @Router /quotes/{quoteID}/items [post]
func (h *quoteHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	var req dto.QuoteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updater := middleware.GetActorFromContext(c)
	quote, err := h.quoteService.AddItem(c.Request.Context(), quoteID, req, updater)
	if err != nil {
		h.respondQuoteError(c, logger, err, "Failed to add item")
		return
	}

	logger.Info("Quote item added successfully", slog.String("quote_id", quoteID))
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// removeItem godoc
// @Summary Remove a line from a quote
// @Description Drops the line at the given zero-based index and recomputes totals. The last remaining line cannot be removed.
// @Tags quotes
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Param   index path int true "Zero-based line index"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid index"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 409 {object} map[string]string "Quote is no longer editable"
// @Failure 500 {object} map[string]string "Failed to remove item"
// @Router /quotes/{quoteID}/items/{index} [delete]
func (h *quoteHandler) removeItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item index must be an integer"})
		return
	}

	updater := middleware.GetActorFromContext(c)
	quote, err := h.quoteService.RemoveItem(c.Request.Context(), quoteID, index, updater)
	if err != nil {
		h.respondQuoteError(c, logger, err, "Failed to remove item")
		return
	}

	logger.Info("Quote item removed successfully", slog.String("quote_id", quoteID), slog.Int("index", index))
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// approvalResponse bundles the approved quote with the execution it spawned.
type approvalResponse struct {
	Quote     dto.QuoteResponse     `json:"quote"`
	Execution dto.ExecutionResponse `json:"execution"`
}

// transitionQuote godoc
// @Summary Change a quote's status
// @Description Applies a guarded status change. A transition to APPROVED also spawns the execution and returns both records.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Param   transition body dto.TransitionQuoteRequest true "Target status"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 409 {object} map[string]string "Quote already approved"
// @Failure 422 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Failed to transition quote"
// @Router /quotes/{quoteID}/transition [post]
func (h *quoteHandler) transitionQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	var req dto.TransitionQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transitionQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updater := middleware.GetActorFromContext(c)
	target := domain.QuoteStatus(req.Status)

	if target == domain.QuoteApproved {
		quote, execution, err := h.quoteService.ApproveQuote(c.Request.Context(), quoteID, updater)
		if err != nil {
			h.respondQuoteError(c, logger, err, "Failed to approve quote")
			return
		}
		logger.Info("Quote approved successfully", slog.String("quote_id", quoteID), slog.String("execution_id", execution.ExecutionID))
		c.JSON(http.StatusOK, approvalResponse{
			Quote:     dto.ToQuoteResponse(quote),
			Execution: dto.ToExecutionResponse(execution),
		})
		return
	}

	quote, err := h.quoteService.TransitionQuote(c.Request.Context(), quoteID, target, updater)
	if err != nil {
		h.respondQuoteError(c, logger, err, "Failed to transition quote")
		return
	}

	logger.Info("Quote transitioned successfully", slog.String("quote_id", quoteID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// respondQuoteError maps service errors to HTTP responses shared by the quote
// mutation endpoints.
func (h *quoteHandler) respondQuoteError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
