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

// instructorHandler handles HTTP requests related to instructors.
type instructorHandler struct {
	instructorService portssvc.InstructorSvcFacade
}

func newInstructorHandler(is portssvc.InstructorSvcFacade) *instructorHandler {
	return &instructorHandler{instructorService: is}
}

// registerInstructorRoutes registers routes related to instructors.
func registerInstructorRoutes(rg *gin.RouterGroup, instructorService portssvc.InstructorSvcFacade) {
	h := newInstructorHandler(instructorService)

	instructors := rg.Group("/instructors")
	{
		instructors.POST("", h.createInstructor)
		instructors.GET("", h.listInstructors)
		instructors.GET("/:instructorID", h.getInstructor)
		instructors.PUT("/:instructorID", h.updateInstructor)
		instructors.DELETE("/:instructorID", h.deleteInstructor)
	}
}

// createInstructor godoc
// @Summary Create a new instructor
// @Tags instructors
// @Accept  json
// @Produce  json
// @Param   instructor body dto.CreateInstructorRequest true "Instructor details"
// @Success 201 {object} dto.InstructorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create instructor"
// @Router /instructors [post]
func (h *instructorHandler) createInstructor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createInstructor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator := middleware.GetActorFromContext(c)
	instructor, err := h.instructorService.CreateInstructor(c.Request.Context(), req, creator)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create instructor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create instructor"})
		}
		return
	}

	logger.Info("Instructor created successfully", slog.String("instructor_id", instructor.InstructorID))
	c.JSON(http.StatusCreated, dto.ToInstructorResponse(instructor))
}

// getInstructor godoc
// @Summary Get an instructor by ID
// @Tags instructors
// @Produce  json
// @Param   instructorID path string true "Instructor ID"
// @Success 200 {object} dto.InstructorResponse
// @Failure 404 {object} map[string]string "Instructor not found"
// @Failure 500 {object} map[string]string "Failed to retrieve instructor"
// @Router /instructors/{instructorID} [get]
func (h *instructorHandler) getInstructor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	instructorID := c.Param("instructorID")

	instructor, err := h.instructorService.GetInstructorByID(c.Request.Context(), instructorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
		} else {
			logger.Error("Failed to get instructor from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve instructor"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInstructorResponse(instructor))
}

// listInstructors godoc
// @Summary List all instructors
// @Tags instructors
// @Produce  json
// @Success 200 {array} dto.InstructorResponse
// @Failure 500 {object} map[string]string "Failed to list instructors"
// @Router /instructors [get]
func (h *instructorHandler) listInstructors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	instructors, err := h.instructorService.ListInstructors(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list instructors from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list instructors"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInstructorResponses(instructors))
}

// updateInstructor godoc
// @Summary Update an instructor
// @Description Applies a partial update; the RUT is immutable
// @Tags instructors
// @Accept  json
// @Produce  json
// @Param   instructorID path string true "Instructor ID"
// @Param   instructor body dto.UpdateInstructorRequest true "Fields to update"
// @Success 200 {object} dto.InstructorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Instructor not found"
// @Failure 500 {object} map[string]string "Failed to update instructor"
// @Router /instructors/{instructorID} [put]
func (h *instructorHandler) updateInstructor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	instructorID := c.Param("instructorID")

	var req dto.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateInstructor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updater := middleware.GetActorFromContext(c)
	instructor, err := h.instructorService.UpdateInstructor(c.Request.Context(), instructorID, req, updater)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update instructor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update instructor"})
		}
		return
	}

	logger.Info("Instructor updated successfully", slog.String("instructor_id", instructorID))
	c.JSON(http.StatusOK, dto.ToInstructorResponse(instructor))
}

// deleteInstructor godoc
// @Summary Delete an instructor
// @Description Fails while executions still reference the instructor
// @Tags instructors
// @Produce  json
// @Param   instructorID path string true "Instructor ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Instructor not found"
// @Failure 409 {object} map[string]string "Instructor is still referenced"
// @Failure 500 {object} map[string]string "Failed to delete instructor"
// @Router /instructors/{instructorID} [delete]
func (h *instructorHandler) deleteInstructor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	instructorID := c.Param("instructorID")

	err := h.instructorService.DeleteInstructor(c.Request.Context(), instructorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Instructor is still referenced by executions"})
		} else {
			logger.Error("Failed to delete instructor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete instructor"})
		}
		return
	}

	logger.Info("Instructor deleted successfully", slog.String("instructor_id", instructorID))
	c.Status(http.StatusNoContent)
}
