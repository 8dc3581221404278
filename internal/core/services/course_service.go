package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portsrepo "github.com/otecpro/otec_erp_backend/internal/core/ports/repositories"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
)

// courseService provides course catalog operations.
type courseService struct {
	BaseService
	courseRepo portsrepo.CourseRepository
}

// CourseServiceOption is a functional option for configuring the course service.
type CourseServiceOption func(*courseService)

// WithCourseClock sets the clock used for audit timestamps.
func WithCourseClock(clock Clock) CourseServiceOption {
	return func(s *courseService) {
		s.Clock = clock
	}
}

// NewCourseService creates a new course service.
func NewCourseService(courseRepo portsrepo.CourseRepository, options ...CourseServiceOption) portssvc.CourseSvcFacade {
	svc := &courseService{courseRepo: courseRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CourseSvcFacade = (*courseService)(nil)

// CreateCourse adds a course to the catalog. New courses start active.
func (s *courseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest, creator string) (*domain.Course, error) {
	if req.TotalHours <= 0 {
		return nil, fmt.Errorf("%w: total hours must be positive", apperrors.ErrValidation)
	}

	now := s.Now()
	course := domain.Course{
		CourseID:     uuid.NewString(),
		InternalCode: req.InternalCode,
		SenceCode:    req.SenceCode,
		Name:         req.Name,
		Description:  req.Description,
		TotalHours:   req.TotalHours,
		Modality:     domain.CourseModality(req.Modality),
		RequiresSAG:  req.RequiresSAG,
		SyllabusURL:  req.SyllabusURL,
		IsActive:     true,
		Attachments:  []domain.Attachment{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	if err := s.courseRepo.SaveCourse(ctx, course); err != nil {
		s.LogError(ctx, err, "Failed to save course", slog.String("internal_code", req.InternalCode))
		return nil, fmt.Errorf("failed to save course: %w", err)
	}

	s.LogInfo(ctx, "Course created", slog.String("course_id", course.CourseID))
	return &course, nil
}

// GetCourseByID retrieves a single course.
func (s *courseService) GetCourseByID(ctx context.Context, courseID string) (*domain.Course, error) {
	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course %s: %w", courseID, err)
	}
	return course, nil
}

// ListCourses retrieves all catalog courses.
func (s *courseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list courses")
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse applies a partial update to a course. The internal code is
// immutable once assigned.
func (s *courseService) UpdateCourse(ctx context.Context, courseID string, req dto.UpdateCourseRequest, updater string) (*domain.Course, error) {
	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course %s: %w", courseID, err)
	}

	if req.SenceCode != nil {
		course.SenceCode = *req.SenceCode
	}
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.TotalHours != nil {
		if *req.TotalHours <= 0 {
			return nil, fmt.Errorf("%w: total hours must be positive", apperrors.ErrValidation)
		}
		course.TotalHours = *req.TotalHours
	}
	if req.Modality != nil {
		course.Modality = domain.CourseModality(*req.Modality)
	}
	if req.RequiresSAG != nil {
		course.RequiresSAG = *req.RequiresSAG
	}
	if req.SyllabusURL != nil {
		course.SyllabusURL = *req.SyllabusURL
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	course.LastUpdatedAt = s.Now()
	course.LastUpdatedBy = updater

	if err := s.courseRepo.SaveCourse(ctx, *course); err != nil {
		s.LogError(ctx, err, "Failed to update course", slog.String("course_id", courseID))
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return course, nil
}

// DeleteCourse removes a course unless quotes or executions still reference it.
func (s *courseService) DeleteCourse(ctx context.Context, courseID string) error {
	if _, err := s.courseRepo.FindCourseByID(ctx, courseID); err != nil {
		return fmt.Errorf("failed to find course %s: %w", courseID, err)
	}

	referenced, err := s.courseRepo.IsCourseReferenced(ctx, courseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check course references", slog.String("course_id", courseID))
		return fmt.Errorf("failed to check course references: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: course %s is referenced by quotes or executions", apperrors.ErrConflict, courseID)
	}

	if err := s.courseRepo.DeleteCourse(ctx, courseID); err != nil {
		s.LogError(ctx, err, "Failed to delete course", slog.String("course_id", courseID))
		return fmt.Errorf("failed to delete course: %w", err)
	}

	s.LogInfo(ctx, "Course deleted", slog.String("course_id", courseID))
	return nil
}

// AddAttachment records file metadata against a course.
func (s *courseService) AddAttachment(ctx context.Context, courseID string, req dto.AddAttachmentRequest, creator string) (*domain.Attachment, error) {
	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course %s: %w", courseID, err)
	}

	attachment := domain.Attachment{
		AttachmentID: uuid.NewString(),
		Name:         req.Name,
		Kind:         req.Kind,
		URL:          req.URL,
		SizeBytes:    req.SizeBytes,
		UploadedAt:   s.Today(),
		Description:  req.Description,
	}
	course.Attachments = append(course.Attachments, attachment)
	course.LastUpdatedAt = s.Now()
	course.LastUpdatedBy = creator

	if err := s.courseRepo.SaveCourse(ctx, *course); err != nil {
		s.LogError(ctx, err, "Failed to save attachment", slog.String("course_id", courseID))
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}

	s.LogInfo(ctx, "Attachment added", slog.String("course_id", courseID), slog.String("attachment_id", attachment.AttachmentID))
	return &attachment, nil
}

// RemoveAttachment drops file metadata from a course.
func (s *courseService) RemoveAttachment(ctx context.Context, courseID string, attachmentID string, updater string) error {
	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to find course %s: %w", courseID, err)
	}

	kept := make([]domain.Attachment, 0, len(course.Attachments))
	found := false
	for _, a := range course.Attachments {
		if a.AttachmentID == attachmentID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return fmt.Errorf("%w: attachment %s", apperrors.ErrNotFound, attachmentID)
	}

	course.Attachments = kept
	course.LastUpdatedAt = s.Now()
	course.LastUpdatedBy = updater

	if err := s.courseRepo.SaveCourse(ctx, *course); err != nil {
		s.LogError(ctx, err, "Failed to remove attachment", slog.String("course_id", courseID))
		return fmt.Errorf("failed to remove attachment: %w", err)
	}

	return nil
}
