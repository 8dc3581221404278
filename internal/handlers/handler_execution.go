package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
	"github.com/otecpro/otec_erp_backend/internal/middleware"
)

// executionHandler handles HTTP requests related to course executions.
type executionHandler struct {
	executionService portssvc.ExecutionSvcFacade
}

func newExecutionHandler(es portssvc.ExecutionSvcFacade) *executionHandler {
	return &executionHandler{executionService: es}
}

// registerExecutionRoutes registers routes related to executions, their
// participants and SAG compliance documents.
func registerExecutionRoutes(rg *gin.RouterGroup, executionService portssvc.ExecutionSvcFacade) {
	h := newExecutionHandler(executionService)

	executions := rg.Group("/executions")
	{
		executions.POST("", h.createExecution)
		executions.GET("", h.listExecutions)
		executions.GET("/:executionID", h.getExecution)
		executions.PUT("/:executionID", h.updateExecution)
		executions.POST("/:executionID/transition", h.transitionExecution)
		executions.POST("/:executionID/participants", h.addParticipant)
		executions.PUT("/:executionID/participants/:participantID", h.updateParticipant)
		executions.PUT("/:executionID/participants/:participantID/sag/:slot", h.updateSAGDocument)
	}
}

// createExecution godoc
// @Summary Create a new execution
// @Description Registers a course delivery directly; delivery config defaults are inherited from the course
// @Tags executions
// @Accept  json
// @Produce  json
// @Param   execution body dto.CreateExecutionRequest true "Execution details"
// @Success 201 {object} dto.ExecutionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Course or client not found"
// @Failure 500 {object} map[string]string "Failed to create execution"
// @Router /executions [post]
func (h *executionHandler) createExecution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExecution", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator := middleware.GetActorFromContext(c)
	execution, err := h.executionService.CreateExecution(c.Request.Context(), req, creator)
	if err != nil {
		h.respondExecutionError(c, logger, err, "Failed to create execution")
		return
	}

	logger.Info("Execution created successfully", slog.String("execution_id", execution.ExecutionID))
	c.JSON(http.StatusCreated, dto.ToExecutionResponse(execution))
}

// getExecution godoc
// @Summary Get an execution by ID
// @Tags executions
// @Produce  json
// @Param   executionID path string true "Execution ID"
// @Success 200 {object} dto.ExecutionResponse
// @Failure 404 {object} map[string]string "Execution not found"
// @Failure 500 {object} map[string]string "Failed to retrieve execution"
// @Router /executions/{executionID} [get]
func (h *executionHandler) getExecution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	executionID := c.Param("executionID")

	execution, err := h.executionService.GetExecutionByID(c.Request.Context(), executionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Execution not found"})
		} else {
			logger.Error("Failed to get execution from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve execution"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExecutionResponse(execution))
}

// listExecutions godoc
// @Summary List all executions
// @Tags executions
// @Produce  json
// @Success 200 {array} dto.ExecutionResponse
// @Failure 500 {object} map[string]string "Failed to list executions"
// @Router /executions [get]
func (h *executionHandler) listExecutions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	executions, err := h.executionService.ListExecutions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list executions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list executions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExecutionResponses(executions))
}

// updateExecution godoc
// @Summary Update an execution
// @Description Applies a partial update. Status changes go through the transition endpoint.
// @Tags executions
// @Accept  json
// @Produce  json
// @Param   executionID path string true "Execution ID"
// @Param   execution body dto.UpdateExecutionRequest true "Fields to update"
// @Success 200 {object} dto.ExecutionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Execution not found"
// @Failure 500 {object} map[string]string "Failed to update execution"
// @Router /executions/{executionID} [put]
func (h *executionHandler) updateExecution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	executionID := c.Param("executionID")

	var req dto.UpdateExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateExecution", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updater := middleware.GetActorFromContext(c)
	execution, err := h.executionService.UpdateExecution(c.Request.Context(), executionID, req, updater)
	if err != nil {
		h.respondExecutionError(c, logger, err, "Failed to update execution")
		return
	}

	logger.Info("Execution updated successfully", slog.String("execution_id", executionID))
	c.JSON(http.StatusOK, dto.ToExecutionResponse(execution))
}

// transitionExecution godoc
// @Summary Change an execution's status
// @Description Applies a guarded status change following the delivery lifecycle
// @Tags executions
// @Accept  json
// @Produce  json
// @Param   executionID path string true "Execution ID"
// @Param   transition body dto.TransitionExecutionRequest true "Target status"
// @Success 200 {object} dto.ExecutionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Execution not found"
// @Failure 422 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Failed to transition execution"
// @Router /executions/{executionID}/transition [post]
func (h *executionHandler) transitionExecution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	executionID := c.Param("executionID")

	var req dto.TransitionExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transitionExecution", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updater := middleware.GetActorFromContext(c)
	execution, err := h.executionService.TransitionExecution(c.Request.Context(), executionID, domain.ExecutionStatus(req.Status), updater)
	if err != nil {
		h.respondExecutionError(c, logger, err, "Failed to transition execution")
		return
	}

	logger.Info("Execution transitioned successfully", slog.String("execution_id", executionID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToExecutionResponse(execution))
}

// addParticipant godoc
// @Summary Enroll a participant
// @Description Adds a trainee to the execution. The SAG status starts at PENDING for SAG courses and NOT_APPLICABLE otherwise.
// @Tags executions
// @Accept  json
// @Produce  json
// @Param   executionID path string true "Execution ID"
// @Param   participant body dto.AddParticipantRequest true "Participant details"
// @Success 201 {object} domain.Participant
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Execution not found"
// @Failure 409 {object} map[string]string "RUT already enrolled"
// @Failure 500 {object} map[string]string "Failed to add participant"
// @Router /executions/{executionID}/participants [post]
func (h *executionHandler) addParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	executionID := c.Param("executionID")

	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addParticipant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator := middleware.GetActorFromContext(c)
	participant, err := h.executionService.AddParticipant(c.Request.Context(), executionID, req, creator)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "A participant with this RUT is already enrolled"})
			return
		}
		h.respondExecutionError(c, logger, err, "Failed to add participant")
		return
	}

	logger.Info("Participant added successfully", slog.String("execution_id", executionID), slog.String("participant_id", participant.ParticipantID))
	c.JSON(http.StatusCreated, participant)
}

// updateParticipant godoc
// @Summary Update a participant
// @Tags executions
// @Accept  json
// @Produce  json
// @Param   executionID path string true "Execution ID"
// @Param   participantID path string true "Participant ID"
// @Param   participant body dto.UpdateParticipantRequest true "Fields to update"
// @Success 200 {object} domain.Participant
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Execution or participant not found"
// @Failure 500 {object} map[string]string "Failed to update participant"
// @Router /executions/{executionID}/participants/{participantID} [put]
func (h *executionHandler) updateParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	executionID := c.Param("executionID")
	participantID := c.Param("participantID")

	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateParticipant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updater := middleware.GetActorFromContext(c)
	participant, err := h.executionService.UpdateParticipant(c.Request.Context(), executionID, participantID, req, updater)
	if err != nil {
		h.respondExecutionError(c, logger, err, "Failed to update participant")
		return
	}

	logger.Info("Participant updated successfully", slog.String("execution_id", executionID), slog.String("participant_id", participantID))
	c.JSON(http.StatusOK, participant)
}

// updateSAGDocument godoc
// @Summary Fill one SAG compliance document slot
// @Description Records a document in the given slot (CHOLINESTERASE, MEDICAL_CERTIFICATE or POWER_OF_ATTORNEY) and recomputes the participant's SAG status. Cholinesterase exams expire 90 days after the exam date.
// @Tags executions
// @Accept  json
// @Produce  json
// @Param   executionID path string true "Execution ID"
// @Param   participantID path string true "Participant ID"
// @Param   slot path string true "Document slot"
// @Param   document body dto.UpdateSAGDocumentRequest true "Document details"
// @Success 200 {object} domain.Participant
// @Failure 400 {object} map[string]string "Invalid input or unknown slot"
// @Failure 404 {object} map[string]string "Execution or participant not found"
// @Failure 500 {object} map[string]string "Failed to update SAG document"
// @Router /executions/{executionID}/participants/{participantID}/sag/{slot} [put]
func (h *executionHandler) updateSAGDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	executionID := c.Param("executionID")
	participantID := c.Param("participantID")
	slot := domain.SAGDocumentSlot(c.Param("slot"))

	var req dto.UpdateSAGDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateSAGDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updater := middleware.GetActorFromContext(c)
	participant, err := h.executionService.UpdateSAGDocument(c.Request.Context(), executionID, participantID, slot, req, updater)
	if err != nil {
		h.respondExecutionError(c, logger, err, "Failed to update SAG document")
		return
	}

	logger.Info("SAG document updated successfully",
		slog.String("execution_id", executionID),
		slog.String("participant_id", participantID),
		slog.String("slot", string(slot)),
		slog.String("sag_status", string(participant.SAGStatus)),
	)
	c.JSON(http.StatusOK, participant)
}

// respondExecutionError maps service errors to HTTP responses shared by the
// execution endpoints.
func (h *executionHandler) respondExecutionError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
