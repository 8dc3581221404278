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

type PgxInstructorRepository struct {
	BaseRepository
}

// newPgxInstructorRepository creates a new repository for instructor data.
func newPgxInstructorRepository(pool *pgxpool.Pool) portsrepo.InstructorRepository {
	return &PgxInstructorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InstructorRepository = (*PgxInstructorRepository)(nil)

// SaveInstructor upserts the instructor row.
func (r *PgxInstructorRepository) SaveInstructor(ctx context.Context, instructor domain.Instructor) error {
	model := mapping.ToModelInstructor(instructor)

	query := `
		INSERT INTO instructors (instructor_id, rut, name, profession, specialty, hourly_rate, resume_url, credentials_url, email, phone, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (instructor_id) DO UPDATE SET
			name = EXCLUDED.name,
			profession = EXCLUDED.profession,
			specialty = EXCLUDED.specialty,
			hourly_rate = EXCLUDED.hourly_rate,
			resume_url = EXCLUDED.resume_url,
			credentials_url = EXCLUDED.credentials_url,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		model.InstructorID,
		model.RUT,
		model.Name,
		model.Profession,
		model.Specialty,
		model.HourlyRate,
		model.ResumeURL,
		model.CredentialsURL,
		model.Email,
		model.Phone,
		model.IsActive,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save instructor %s: %w", model.InstructorID, err)
	}
	return nil
}

// FindInstructorByID retrieves a single instructor.
func (r *PgxInstructorRepository) FindInstructorByID(ctx context.Context, instructorID string) (*domain.Instructor, error) {
	query := `
		SELECT instructor_id, rut, name, profession, specialty, hourly_rate, resume_url, credentials_url, email, phone, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM instructors
		WHERE instructor_id = $1;
	`
	var model models.Instructor
	err := r.Pool.QueryRow(ctx, query, instructorID).Scan(
		&model.InstructorID,
		&model.RUT,
		&model.Name,
		&model.Profession,
		&model.Specialty,
		&model.HourlyRate,
		&model.ResumeURL,
		&model.CredentialsURL,
		&model.Email,
		&model.Phone,
		&model.IsActive,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find instructor by id %s: %w", instructorID, err)
	}

	instructor := mapping.ToDomainInstructor(model)
	return &instructor, nil
}

// ListInstructors retrieves all instructors.
func (r *PgxInstructorRepository) ListInstructors(ctx context.Context) ([]domain.Instructor, error) {
	query := `
		SELECT instructor_id, rut, name, profession, specialty, hourly_rate, resume_url, credentials_url, email, phone, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM instructors
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query instructors: %w", err)
	}
	defer rows.Close()

	modelInstructors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Instructor, error) {
		var model models.Instructor
		err := row.Scan(
			&model.InstructorID,
			&model.RUT,
			&model.Name,
			&model.Profession,
			&model.Specialty,
			&model.HourlyRate,
			&model.ResumeURL,
			&model.CredentialsURL,
			&model.Email,
			&model.Phone,
			&model.IsActive,
			&model.CreatedAt,
			&model.CreatedBy,
			&model.LastUpdatedAt,
			&model.LastUpdatedBy,
		)
		return model, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan instructors: %w", err)
	}

	return mapping.ToDomainInstructorSlice(modelInstructors), nil
}

// DeleteInstructor removes an instructor.
func (r *PgxInstructorRepository) DeleteInstructor(ctx context.Context, instructorID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM instructors WHERE instructor_id = $1;`, instructorID)
	if err != nil {
		return fmt.Errorf("failed to delete instructor %s: %w", instructorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IsInstructorReferenced reports whether executions still point at the
// instructor.
func (r *PgxInstructorRepository) IsInstructorReferenced(ctx context.Context, instructorID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM executions WHERE instructor_id = $1);`
	var referenced bool
	if err := r.Pool.QueryRow(ctx, query, instructorID).Scan(&referenced); err != nil {
		return false, fmt.Errorf("failed to check references for instructor %s: %w", instructorID, err)
	}
	return referenced, nil
}
