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

// executionService provides course execution and participant operations.
type executionService struct {
	BaseService
	executionRepo portsrepo.ExecutionRepository
	courseRepo    portsrepo.CourseRepository
	clientRepo    portsrepo.ClientRepository
}

// ExecutionServiceOption is a functional option for configuring the execution service.
type ExecutionServiceOption func(*executionService)

// WithExecutionClock sets the clock used for audit timestamps.
func WithExecutionClock(clock Clock) ExecutionServiceOption {
	return func(s *executionService) {
		s.Clock = clock
	}
}

// NewExecutionService creates a new execution service.
func NewExecutionService(
	executionRepo portsrepo.ExecutionRepository,
	courseRepo portsrepo.CourseRepository,
	clientRepo portsrepo.ClientRepository,
	options ...ExecutionServiceOption,
) portssvc.ExecutionSvcFacade {
	svc := &executionService{
		executionRepo: executionRepo,
		courseRepo:    courseRepo,
		clientRepo:    clientRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExecutionSvcFacade = (*executionService)(nil)

// CreateExecution registers a delivery directly, without an originating quote.
func (s *executionService) CreateExecution(ctx context.Context, req dto.CreateExecutionRequest, creator string) (*domain.Execution, error) {
	course, err := s.courseRepo.FindCourseByID(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course %s: %w", req.CourseID, err)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", req.ClientID, err)
	}

	config := dto.ToDomainExecutionConfig(req.Config)
	if req.Config == nil {
		config.Modality = course.Modality
		config.TotalHours = course.TotalHours
	}

	senceCode := req.SenceCode
	if senceCode == "" {
		senceCode = course.SenceCode
	}

	now := s.Now()
	execution := domain.Execution{
		ExecutionID:      uuid.NewString(),
		CourseID:         req.CourseID,
		ClientID:         req.ClientID,
		SenceCode:        senceCode,
		ActionIDs:        []string{},
		Status:           domain.ExecutionPlanned,
		Config:           config,
		InstructorID:     req.InstructorID,
		Participants:     []domain.Participant{},
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Schedule:         req.Schedule,
		DirectCostTxnIDs: []string{},
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	if err := s.executionRepo.SaveExecution(ctx, execution); err != nil {
		s.LogError(ctx, err, "Failed to save execution", slog.String("course_id", req.CourseID))
		return nil, fmt.Errorf("failed to save execution: %w", err)
	}

	s.LogInfo(ctx, "Execution created", slog.String("execution_id", execution.ExecutionID))
	return &execution, nil
}

// GetExecutionByID retrieves a single execution with its participants.
func (s *executionService) GetExecutionByID(ctx context.Context, executionID string) (*domain.Execution, error) {
	execution, err := s.executionRepo.FindExecutionByID(ctx, executionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find execution %s: %w", executionID, err)
	}
	return execution, nil
}

// ListExecutions retrieves all executions.
func (s *executionService) ListExecutions(ctx context.Context) ([]domain.Execution, error) {
	executions, err := s.executionRepo.ListExecutions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list executions")
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return executions, nil
}

// UpdateExecution applies a partial update to the operational fields. Status
// changes are excluded; they go through TransitionExecution.
func (s *executionService) UpdateExecution(ctx context.Context, executionID string, req dto.UpdateExecutionRequest, updater string) (*domain.Execution, error) {
	execution, err := s.executionRepo.FindExecutionByID(ctx, executionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find execution %s: %w", executionID, err)
	}

	if req.SenceCode != nil {
		execution.SenceCode = *req.SenceCode
	}
	if req.ActionIDs != nil {
		execution.ActionIDs = *req.ActionIDs
	}
	if req.Config != nil {
		execution.Config = dto.ToDomainExecutionConfig(req.Config)
	}
	if req.InstructorID != nil {
		execution.InstructorID = *req.InstructorID
	}
	if req.StartDate != nil {
		execution.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		execution.EndDate = req.EndDate
	}
	if req.Schedule != nil {
		execution.Schedule = *req.Schedule
	}
	if req.Notes != nil {
		execution.Notes = *req.Notes
	}

	execution.LastUpdatedAt = s.Now()
	execution.LastUpdatedBy = updater

	if err := s.executionRepo.UpdateExecution(ctx, *execution); err != nil {
		s.LogError(ctx, err, "Failed to update execution", slog.String("execution_id", executionID))
		return nil, fmt.Errorf("failed to update execution: %w", err)
	}

	return execution, nil
}

// TransitionExecution applies a guarded lifecycle change.
func (s *executionService) TransitionExecution(ctx context.Context, executionID string, target domain.ExecutionStatus, updater string) (*domain.Execution, error) {
	execution, err := s.executionRepo.FindExecutionByID(ctx, executionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find execution %s: %w", executionID, err)
	}
	if !execution.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: execution cannot go from %s to %s", apperrors.ErrInvalidTransition, execution.Status, target)
	}

	execution.Status = target
	execution.LastUpdatedAt = s.Now()
	execution.LastUpdatedBy = updater

	if err := s.executionRepo.UpdateExecution(ctx, *execution); err != nil {
		s.LogError(ctx, err, "Failed to transition execution", slog.String("execution_id", executionID))
		return nil, fmt.Errorf("failed to transition execution: %w", err)
	}

	s.LogInfo(ctx, "Execution transitioned",
		slog.String("execution_id", executionID),
		slog.String("status", string(target)))
	return execution, nil
}

// AddParticipant enrolls a trainee. The initial SAG status depends on whether
// the execution's course carries the SAG requirement.
func (s *executionService) AddParticipant(ctx context.Context, executionID string, req dto.AddParticipantRequest, creator string) (*domain.Participant, error) {
	execution, err := s.executionRepo.FindExecutionByID(ctx, executionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find execution %s: %w", executionID, err)
	}
	course, err := s.courseRepo.FindCourseByID(ctx, execution.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course %s: %w", execution.CourseID, err)
	}

	for _, p := range execution.Participants {
		if p.RUT == req.RUT {
			return nil, fmt.Errorf("%w: participant with RUT %s already enrolled", apperrors.ErrDuplicate, req.RUT)
		}
	}

	participant := domain.Participant{
		ParticipantID:  uuid.NewString(),
		RUT:            req.RUT,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		EducationLevel: req.EducationLevel,
		SAGDocuments:   domain.SAGRecord{},
		SAGStatus:      domain.DeriveSAGStatus(domain.SAGRecord{}, course.RequiresSAG),
	}

	if err := s.executionRepo.SaveParticipant(ctx, executionID, participant); err != nil {
		s.LogError(ctx, err, "Failed to save participant", slog.String("execution_id", executionID))
		return nil, fmt.Errorf("failed to save participant: %w", err)
	}

	s.LogInfo(ctx, "Participant enrolled",
		slog.String("execution_id", executionID),
		slog.String("participant_id", participant.ParticipantID))
	return &participant, nil
}

// findParticipant locates a participant on an execution.
func findParticipant(execution *domain.Execution, participantID string) (*domain.Participant, error) {
	for i := range execution.Participants {
		if execution.Participants[i].ParticipantID == participantID {
			return &execution.Participants[i], nil
		}
	}
	return nil, fmt.Errorf("%w: participant %s", apperrors.ErrNotFound, participantID)
}

// UpdateParticipant applies a partial update to contact and academic fields.
func (s *executionService) UpdateParticipant(ctx context.Context, executionID string, participantID string, req dto.UpdateParticipantRequest, updater string) (*domain.Participant, error) {
	execution, err := s.executionRepo.FindExecutionByID(ctx, executionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find execution %s: %w", executionID, err)
	}
	participant, err := findParticipant(execution, participantID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		participant.Email = *req.Email
	}
	if req.Phone != nil {
		participant.Phone = *req.Phone
	}
	if req.EducationLevel != nil {
		participant.EducationLevel = *req.EducationLevel
	}
	if req.AttendancePct != nil {
		if *req.AttendancePct < 0 || *req.AttendancePct > 100 {
			return nil, fmt.Errorf("%w: attendance must be between 0 and 100", apperrors.ErrValidation)
		}
		participant.AttendancePct = *req.AttendancePct
	}
	if req.FinalGrade != nil {
		participant.FinalGrade = req.FinalGrade
	}

	if err := s.executionRepo.UpdateParticipant(ctx, executionID, *participant); err != nil {
		s.LogError(ctx, err, "Failed to update participant", slog.String("participant_id", participantID))
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return participant, nil
}

// UpdateSAGDocument fills one compliance slot and recomputes the overall
// status, so the stored status never drifts from the slots.
func (s *executionService) UpdateSAGDocument(ctx context.Context, executionID string, participantID string, slot domain.SAGDocumentSlot, req dto.UpdateSAGDocumentRequest, updater string) (*domain.Participant, error) {
	execution, err := s.executionRepo.FindExecutionByID(ctx, executionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find execution %s: %w", executionID, err)
	}
	course, err := s.courseRepo.FindCourseByID(ctx, execution.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find course %s: %w", execution.CourseID, err)
	}
	participant, err := findParticipant(execution, participantID)
	if err != nil {
		return nil, err
	}

	doc := participant.SAGDocuments.Slot(slot)
	if doc == nil {
		return nil, fmt.Errorf("%w: unknown document slot %s", apperrors.ErrValidation, slot)
	}
	doc.URL = req.URL
	doc.ExamDate = req.ExamDate
	doc.Valid = req.Valid
	if req.ExamDate != nil {
		// Cholinesterase exams expire 90 days after they are taken.
		if slot == domain.SlotCholinesterase {
			expiry := req.ExamDate.AddDate(0, 0, 90)
			doc.ExpiryDate = &expiry
		}
	} else {
		doc.ExpiryDate = nil
	}

	participant.SAGStatus = domain.DeriveSAGStatus(participant.SAGDocuments, course.RequiresSAG)

	if err := s.executionRepo.UpdateParticipant(ctx, executionID, *participant); err != nil {
		s.LogError(ctx, err, "Failed to update SAG document", slog.String("participant_id", participantID))
		return nil, fmt.Errorf("failed to update SAG document: %w", err)
	}

	s.LogInfo(ctx, "SAG document updated",
		slog.String("participant_id", participantID),
		slog.String("slot", string(slot)),
		slog.String("sag_status", string(participant.SAGStatus)))
	return participant, nil
}
