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

// courseHandler handles HTTP requests related to catalog courses.
type courseHandler struct {
	courseService portssvc.CourseSvcFacade
}

func newCourseHandler(cs portssvc.CourseSvcFacade) *courseHandler {
	return &courseHandler{courseService: cs}
}

// registerCourseRoutes registers routes related to courses and their
// attachments.
func registerCourseRoutes(rg *gin.RouterGroup, courseService portssvc.CourseSvcFacade) {
	h := newCourseHandler(courseService)

	courses := rg.Group("/courses")
	{
		courses.POST("", h.createCourse)
		courses.GET("", h.listCourses)
		courses.GET("/:courseID", h.getCourse)
		courses.PUT("/:courseID", h.updateCourse)
		courses.DELETE("/:courseID", h.deleteCourse)
		courses.POST("/:courseID/attachments", h.addAttachment)
		courses.DELETE("/:courseID/attachments/:attachmentID", h.removeAttachment)
	}
}

// createCourse godoc
// @Summary Create a new course
// @Description Adds a course to the training catalog
// @Tags courses
// @Accept  json
// @Produce  json
// @Param   course body dto.CreateCourseRequest true "Course details"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create course"
// @Router /courses [post]
func (h *courseHandler) createCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCourse", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator := middleware.GetActorFromContext(c)
	course, err := h.courseService.CreateCourse(c.Request.Context(), req, creator)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create course in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		}
		return
	}

	logger.Info("Course created successfully", slog.String("course_id", course.CourseID))
	c.JSON(http.StatusCreated, dto.ToCourseResponse(course))
}

// getCourse godoc
// @Summary Get a course by ID
// @Tags courses
// @Produce  json
// @Param   courseID path string true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Failed to retrieve course"
// @Router /courses/{courseID} [get]
func (h *courseHandler) getCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	courseID := c.Param("courseID")

	course, err := h.courseService.GetCourseByID(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		} else {
			logger.Error("Failed to get course from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve course"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

// listCourses godoc
// @Summary List all courses
// @Tags courses
// @Produce  json
// @Success 200 {array} dto.CourseResponse
// @Failure 500 {object} map[string]string "Failed to list courses"
// @Router /courses [get]
func (h *courseHandler) listCourses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	courses, err := h.courseService.ListCourses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list courses from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list courses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseResponses(courses))
}

// updateCourse godoc
// @Summary Update a course
// @Description Applies a partial update; the internal code is immutable
// @Tags courses
// @Accept  json
// @Produce  json
// @Param   courseID path string true "Course ID"
// @Param   course body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Failed to update course"
// @Router /courses/{courseID} [put]
func (h *courseHandler) updateCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	courseID := c.Param("courseID")

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateCourse", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updater := middleware.GetActorFromContext(c)
	course, err := h.courseService.UpdateCourse(c.Request.Context(), courseID, req, updater)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update course in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
		}
		return
	}

	logger.Info("Course updated successfully", slog.String("course_id", courseID))
	c.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Fails while quotes or executions still reference the course
// @Tags courses
// @Produce  json
// @Param   courseID path string true "Course ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 409 {object} map[string]string "Course is still referenced"
// @Failure 500 {object} map[string]string "Failed to delete course"
// @Router /courses/{courseID} [delete]
func (h *courseHandler) deleteCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	courseID := c.Param("courseID")

	err := h.courseService.DeleteCourse(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Course is still referenced by quotes or executions"})
		} else {
			logger.Error("Failed to delete course in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		}
		return
	}

	logger.Info("Course deleted successfully", slog.String("course_id", courseID))
	c.Status(http.StatusNoContent)
}

// addAttachment godoc
// @Summary Attach file metadata to a course
// @Tags courses
// @Accept  json
// @Produce  json
// @Param   courseID path string true "Course ID"
// @Param   attachment body dto.AddAttachmentRequest true "Attachment details"
// @Success 201 {object} domain.Attachment
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Failed to add attachment"
// @Router /courses/{courseID}/attachments [post]
func (h *courseHandler) addAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	courseID := c.Param("courseID")

	var req dto.AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addAttachment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator := middleware.GetActorFromContext(c)
	attachment, err := h.courseService.AddAttachment(c.Request.Context(), courseID, req, creator)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add attachment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add attachment"})
		}
		return
	}

	logger.Info("Attachment added successfully", slog.String("course_id", courseID), slog.String("attachment_id", attachment.AttachmentID))
	c.JSON(http.StatusCreated, attachment)
}

// removeAttachment godoc
// @Summary Remove an attachment from a course
// @Tags courses
// @Produce  json
// @Param   courseID path string true "Course ID"
// @Param   attachmentID path string true "Attachment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Course or attachment not found"
// @Failure 500 {object} map[string]string "Failed to remove attachment"
// @Router /courses/{courseID}/attachments/{attachmentID} [delete]
func (h *courseHandler) removeAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	courseID := c.Param("courseID")
	attachmentID := c.Param("attachmentID")

	updater := middleware.GetActorFromContext(c)
	err := h.courseService.RemoveAttachment(c.Request.Context(), courseID, attachmentID, updater)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course or attachment not found"})
		} else {
			logger.Error("Failed to remove attachment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove attachment"})
		}
		return
	}

	logger.Info("Attachment removed successfully", slog.String("course_id", courseID), slog.String("attachment_id", attachmentID))
	c.Status(http.StatusNoContent)
}
