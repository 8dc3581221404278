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

// instructorService provides instructor catalog operations.
type instructorService struct {
	BaseService
	instructorRepo portsrepo.InstructorRepository
}

// InstructorServiceOption is a functional option for configuring the instructor service.
type InstructorServiceOption func(*instructorService)

// WithInstructorClock sets the clock used for audit timestamps.
func WithInstructorClock(clock Clock) InstructorServiceOption {
	return func(s *instructorService) {
		s.Clock = clock
	}
}

// NewInstructorService creates a new instructor service.
func NewInstructorService(instructorRepo portsrepo.InstructorRepository, options ...InstructorServiceOption) portssvc.InstructorSvcFacade {
	svc := &instructorService{instructorRepo: instructorRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InstructorSvcFacade = (*instructorService)(nil)

// CreateInstructor registers a new instructor.
func (s *instructorService) CreateInstructor(ctx context.Context, req dto.CreateInstructorRequest, creator string) (*domain.Instructor, error) {
	if req.HourlyRate.IsNegative() {
		return nil, fmt.Errorf("%w: hourly rate cannot be negative", apperrors.ErrValidation)
	}

	now := s.Now()
	instructor := domain.Instructor{
		InstructorID:   uuid.NewString(),
		RUT:            req.RUT,
		Name:           req.Name,
		Profession:     req.Profession,
		Specialty:      req.Specialty,
		HourlyRate:     req.HourlyRate,
		ResumeURL:      req.ResumeURL,
		CredentialsURL: req.CredentialsURL,
		Email:          req.Email,
		Phone:          req.Phone,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	if err := s.instructorRepo.SaveInstructor(ctx, instructor); err != nil {
		s.LogError(ctx, err, "Failed to save instructor", slog.String("rut", req.RUT))
		return nil, fmt.Errorf("failed to save instructor: %w", err)
	}

	s.LogInfo(ctx, "Instructor created", slog.String("instructor_id", instructor.InstructorID))
	return &instructor, nil
}

// GetInstructorByID retrieves a single instructor.
func (s *instructorService) GetInstructorByID(ctx context.Context, instructorID string) (*domain.Instructor, error) {
	instructor, err := s.instructorRepo.FindInstructorByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find instructor %s: %w", instructorID, err)
	}
	return instructor, nil
}

// ListInstructors retrieves all instructors.
func (s *instructorService) ListInstructors(ctx context.Context) ([]domain.Instructor, error) {
	instructors, err := s.instructorRepo.ListInstructors(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list instructors")
		return nil, fmt.Errorf("failed to list instructors: %w", err)
	}
	return instructors, nil
}

// UpdateInstructor applies a partial update. The RUT is immutable.
func (s *instructorService) UpdateInstructor(ctx context.Context, instructorID string, req dto.UpdateInstructorRequest, updater string) (*domain.Instructor, error) {
	instructor, err := s.instructorRepo.FindInstructorByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find instructor %s: %w", instructorID, err)
	}

	if req.Name != nil {
		instructor.Name = *req.Name
	}
	if req.Profession != nil {
		instructor.Profession = *req.Profession
	}
	if req.Specialty != nil {
		instructor.Specialty = *req.Specialty
	}
	if req.HourlyRate != nil {
		if req.HourlyRate.IsNegative() {
			return nil, fmt.Errorf("%w: hourly rate cannot be negative", apperrors.ErrValidation)
		}
		instructor.HourlyRate = *req.HourlyRate
	}
	if req.ResumeURL != nil {
		instructor.ResumeURL = *req.ResumeURL
	}
	if req.CredentialsURL != nil {
		instructor.CredentialsURL = *req.CredentialsURL
	}
	if req.Email != nil {
		instructor.Email = *req.Email
	}
	if req.Phone != nil {
		instructor.Phone = *req.Phone
	}
	if req.IsActive != nil {
		instructor.IsActive = *req.IsActive
	}

	instructor.LastUpdatedAt = s.Now()
	instructor.LastUpdatedBy = updater

	if err := s.instructorRepo.SaveInstructor(ctx, *instructor); err != nil {
		s.LogError(ctx, err, "Failed to update instructor", slog.String("instructor_id", instructorID))
		return nil, fmt.Errorf("failed to update instructor: %w", err)
	}

	return instructor, nil
}

// DeleteInstructor removes an instructor unless executions still reference it.
func (s *instructorService) DeleteInstructor(ctx context.Context, instructorID string) error {
	if _, err := s.instructorRepo.FindInstructorByID(ctx, instructorID); err != nil {
		return fmt.Errorf("failed to find instructor %s: %w", instructorID, err)
	}

	referenced, err := s.instructorRepo.IsInstructorReferenced(ctx, instructorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check instructor references", slog.String("instructor_id", instructorID))
		return fmt.Errorf("failed to check instructor references: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: instructor %s is assigned to executions", apperrors.ErrConflict, instructorID)
	}

	if err := s.instructorRepo.DeleteInstructor(ctx, instructorID); err != nil {
		s.LogError(ctx, err, "Failed to delete instructor", slog.String("instructor_id", instructorID))
		return fmt.Errorf("failed to delete instructor: %w", err)
	}

	s.LogInfo(ctx, "Instructor deleted", slog.String("instructor_id", instructorID))
	return nil
}
