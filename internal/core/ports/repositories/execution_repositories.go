package repositories

import (
	"context"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
)

// ExecutionRepository defines persistence operations for course executions
// and their participants.
type ExecutionRepository interface {
	// SaveExecution inserts a new execution.
	SaveExecution(ctx context.Context, execution domain.Execution) error
	// UpdateExecution replaces an execution row (not its participants).
	UpdateExecution(ctx context.Context, execution domain.Execution) error
	// FindExecutionByID retrieves an execution with its participants.
	// Returns apperrors.ErrNotFound when missing.
	FindExecutionByID(ctx context.Context, executionID string) (*domain.Execution, error)
	// ListExecutions retrieves all executions ordered by start date descending.
	ListExecutions(ctx context.Context) ([]domain.Execution, error)
	// SaveParticipant inserts a participant under an execution.
	SaveParticipant(ctx context.Context, executionID string, participant domain.Participant) error
	// UpdateParticipant replaces a participant row.
	UpdateParticipant(ctx context.Context, executionID string, participant domain.Participant) error
}
