package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portsrepo "github.com/otecpro/otec_erp_backend/internal/core/ports/repositories"
	"github.com/otecpro/otec_erp_backend/internal/models"
	"github.com/otecpro/otec_erp_backend/internal/utils/mapping"
)

type PgxExecutionRepository struct {
	BaseRepository
}

// newPgxExecutionRepository creates a new repository for execution data.
func newPgxExecutionRepository(pool *pgxpool.Pool) portsrepo.ExecutionRepository {
	return &PgxExecutionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExecutionRepository = (*PgxExecutionRepository)(nil)

// upsertExecution writes the execution row inside the given transaction.
// Participants live in their own table and are not touched here.
func upsertExecution(ctx context.Context, tx pgx.Tx, execution domain.Execution) error {
	model, err := mapping.ToModelExecution(execution)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO executions (execution_id, course_id, client_id, sence_code, action_ids, status, modality, total_hours, sessions, location, platform_url, instructor_id, start_date, end_date, schedule, direct_cost_txn_ids, quote_id, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (execution_id) DO UPDATE SET
			sence_code = EXCLUDED.sence_code,
			action_ids = EXCLUDED.action_ids,
			status = EXCLUDED.status,
			modality = EXCLUDED.modality,
			total_hours = EXCLUDED.total_hours,
			sessions = EXCLUDED.sessions,
			location = EXCLUDED.location,
			platform_url = EXCLUDED.platform_url,
			instructor_id = EXCLUDED.instructor_id,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			schedule = EXCLUDED.schedule,
			direct_cost_txn_ids = EXCLUDED.direct_cost_txn_ids,
			quote_id = EXCLUDED.quote_id,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = tx.Exec(ctx, query,
		model.ExecutionID,
		model.CourseID,
		model.ClientID,
		model.SenceCode,
		model.ActionIDs,
		model.Status,
		model.Modality,
		model.TotalHours,
		model.Sessions,
		model.Location,
		model.PlatformURL,
		model.InstructorID,
		model.StartDate,
		model.EndDate,
		model.Schedule,
		model.DirectCostTxnIDs,
		model.QuoteID,
		model.Notes,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save execution %s: %w", model.ExecutionID, err)
	}
	return nil
}

// SaveExecution inserts a new execution.
func (r *PgxExecutionRepository) SaveExecution(ctx context.Context, execution domain.Execution) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := upsertExecution(ctx, tx, execution); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateExecution replaces an execution row. Participant rows are managed
// through SaveParticipant and UpdateParticipant.
func (r *PgxExecutionRepository) UpdateExecution(ctx context.Context, execution domain.Execution) error {
	return r.SaveExecution(ctx, execution)
}

// FindExecutionByID retrieves an execution with its participants.
func (r *PgxExecutionRepository) FindExecutionByID(ctx context.Context, executionID string) (*domain.Execution, error) {
	query := `
		SELECT execution_id, course_id, client_id, sence_code, action_ids, status, modality, total_hours, sessions, location, platform_url, instructor_id, start_date, end_date, schedule, direct_cost_txn_ids, quote_id, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM executions
		WHERE execution_id = $1;
	`
	var model models.Execution
	err := r.Pool.QueryRow(ctx, query, executionID).Scan(
		&model.ExecutionID,
		&model.CourseID,
		&model.ClientID,
		&model.SenceCode,
		&model.ActionIDs,
		&model.Status,
		&model.Modality,
		&model.TotalHours,
		&model.Sessions,
		&model.Location,
		&model.PlatformURL,
		&model.InstructorID,
		&model.StartDate,
		&model.EndDate,
		&model.Schedule,
		&model.DirectCostTxnIDs,
		&model.QuoteID,
		&model.Notes,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find execution by id %s: %w", executionID, err)
	}

	participants, err := r.findParticipants(ctx, executionID)
	if err != nil {
		return nil, err
	}

	execution, err := mapping.ToDomainExecution(model, participants)
	if err != nil {
		return nil, err
	}
	return &execution, nil
}

func (r *PgxExecutionRepository) findParticipants(ctx context.Context, executionID string) ([]models.Participant, error) {
	query := `
		SELECT participant_id, execution_id, rut, first_name, last_name, email, phone, education_level, attendance_pct, final_grade, sag_documents, sag_status
		FROM execution_participants
		WHERE execution_id = $1
		ORDER BY last_name, first_name;
	`
	rows, err := r.Pool.Query(ctx, query, executionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants for execution %s: %w", executionID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Participant, error) {
		var p models.Participant
		err := row.Scan(
			&p.ParticipantID,
			&p.ExecutionID,
			&p.RUT,
			&p.FirstName,
			&p.LastName,
			&p.Email,
			&p.Phone,
			&p.EducationLevel,
			&p.AttendancePct,
			&p.FinalGrade,
			&p.SAGDocuments,
			&p.SAGStatus,
		)
		return p, err
	})
}

// ListExecutions retrieves all executions with their participants, newest
// start date first.
func (r *PgxExecutionRepository) ListExecutions(ctx context.Context) ([]domain.Execution, error) {
	query := `
		SELECT execution_id, course_id, client_id, sence_code, action_ids, status, modality, total_hours, sessions, location, platform_url, instructor_id, start_date, end_date, schedule, direct_cost_txn_ids, quote_id, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM executions
		ORDER BY start_date DESC NULLS LAST, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query executions: %w", err)
	}
	defer rows.Close()

	modelExecutions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Execution, error) {
		var model models.Execution
		err := row.Scan(
			&model.ExecutionID,
			&model.CourseID,
			&model.ClientID,
			&model.SenceCode,
			&model.ActionIDs,
			&model.Status,
			&model.Modality,
			&model.TotalHours,
			&model.Sessions,
			&model.Location,
			&model.PlatformURL,
			&model.InstructorID,
			&model.StartDate,
			&model.EndDate,
			&model.Schedule,
			&model.DirectCostTxnIDs,
			&model.QuoteID,
			&model.Notes,
			&model.CreatedAt,
			&model.CreatedBy,
			&model.LastUpdatedAt,
			&model.LastUpdatedBy,
		)
		return model, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan executions: %w", err)
	}

	executions := make([]domain.Execution, 0, len(modelExecutions))
	for _, m := range modelExecutions {
		participants, err := r.findParticipants(ctx, m.ExecutionID)
		if err != nil {
			return nil, err
		}
		execution, err := mapping.ToDomainExecution(m, participants)
		if err != nil {
			return nil, err
		}
		executions = append(executions, execution)
	}
	return executions, nil
}

func (r *PgxExecutionRepository) writeParticipant(ctx context.Context, executionID string, participant domain.Participant) error {
	model, err := mapping.ToModelParticipant(participant, executionID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO execution_participants (participant_id, execution_id, rut, first_name, last_name, email, phone, education_level, attendance_pct, final_grade, sag_documents, sag_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (participant_id) DO UPDATE SET
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			education_level = EXCLUDED.education_level,
			attendance_pct = EXCLUDED.attendance_pct,
			final_grade = EXCLUDED.final_grade,
			sag_documents = EXCLUDED.sag_documents,
			sag_status = EXCLUDED.sag_status;
	`
	_, err = r.Pool.Exec(ctx, query,
		model.ParticipantID,
		model.ExecutionID,
		model.RUT,
		model.FirstName,
		model.LastName,
		model.Email,
		model.Phone,
		model.EducationLevel,
		model.AttendancePct,
		model.FinalGrade,
		model.SAGDocuments,
		model.SAGStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to save participant %s: %w", model.ParticipantID, err)
	}
	return nil
}

// SaveParticipant inserts a participant under an execution.
func (r *PgxExecutionRepository) SaveParticipant(ctx context.Context, executionID string, participant domain.Participant) error {
	return r.writeParticipant(ctx, executionID, participant)
}

// UpdateParticipant replaces a participant row.
func (r *PgxExecutionRepository) UpdateParticipant(ctx context.Context, executionID string, participant domain.Participant) error {
	return r.writeParticipant(ctx, executionID, participant)
}
