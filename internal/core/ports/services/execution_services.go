package services

import (
	"context"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/dto"
)

// ExecutionSvcFacade defines the business operations for course executions.
type ExecutionSvcFacade interface {
	CreateExecution(ctx context.Context, req dto.CreateExecutionRequest, creator string) (*domain.Execution, error)
	GetExecutionByID(ctx context.Context, executionID string) (*domain.Execution, error)
	ListExecutions(ctx context.Context) ([]domain.Execution, error)
	UpdateExecution(ctx context.Context, executionID string, req dto.UpdateExecutionRequest, updater string) (*domain.Execution, error)
	// TransitionExecution applies a guarded status change.
	TransitionExecution(ctx context.Context, executionID string, target domain.ExecutionStatus, updater string) (*domain.Execution, error)
	AddParticipant(ctx context.Context, executionID string, req dto.AddParticipantRequest, creator string) (*domain.Participant, error)
	UpdateParticipant(ctx context.Context, executionID string, participantID string, req dto.UpdateParticipantRequest, updater string) (*domain.Participant, error)
	// UpdateSAGDocument fills one compliance slot and recomputes the
	// participant's overall SAG status.
	UpdateSAGDocument(ctx context.Context, executionID string, participantID string, slot domain.SAGDocumentSlot, req dto.UpdateSAGDocumentRequest, updater string) (*domain.Participant, error)
}
