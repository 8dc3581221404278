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

type PgxCourseRepository struct {
	BaseRepository
}

// newPgxCourseRepository creates a new repository for course catalog data.
func newPgxCourseRepository(pool *pgxpool.Pool) portsrepo.CourseRepository {
	return &PgxCourseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CourseRepository = (*PgxCourseRepository)(nil)

// SaveCourse upserts the course row and replaces its attachment rows in one
// database transaction.
func (r *PgxCourseRepository) SaveCourse(ctx context.Context, course domain.Course) error {
	modelCourse := mapping.ToModelCourse(course)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO courses (course_id, internal_code, sence_code, name, description, total_hours, modality, requires_sag, syllabus_url, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (course_id) DO UPDATE SET
			sence_code = EXCLUDED.sence_code,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			total_hours = EXCLUDED.total_hours,
			modality = EXCLUDED.modality,
			requires_sag = EXCLUDED.requires_sag,
			syllabus_url = EXCLUDED.syllabus_url,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = tx.Exec(ctx, query,
		modelCourse.CourseID,
		modelCourse.InternalCode,
		modelCourse.SenceCode,
		modelCourse.Name,
		modelCourse.Description,
		modelCourse.TotalHours,
		modelCourse.Modality,
		modelCourse.RequiresSAG,
		modelCourse.SyllabusURL,
		modelCourse.IsActive,
		modelCourse.CreatedAt,
		modelCourse.CreatedBy,
		modelCourse.LastUpdatedAt,
		modelCourse.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save course %s: %w", modelCourse.CourseID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM course_attachments WHERE course_id = $1;`, modelCourse.CourseID); err != nil {
		return fmt.Errorf("failed to clear attachments for course %s: %w", modelCourse.CourseID, err)
	}

	batch := &pgx.Batch{}
	attachmentQuery := `
		INSERT INTO course_attachments (attachment_id, course_id, name, kind, url, size_bytes, uploaded_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, attachment := range course.Attachments {
		modelAttachment := mapping.ToModelAttachment(attachment, course.CourseID)
		batch.Queue(attachmentQuery,
			modelAttachment.AttachmentID,
			modelAttachment.CourseID,
			modelAttachment.Name,
			modelAttachment.Kind,
			modelAttachment.URL,
			modelAttachment.SizeBytes,
			modelAttachment.UploadedAt,
			modelAttachment.Description,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save attachments for course %s: %w", modelCourse.CourseID, err)
	}

	return r.Commit(ctx, tx)
}

// FindCourseByID retrieves a course with its attachments.
func (r *PgxCourseRepository) FindCourseByID(ctx context.Context, courseID string) (*domain.Course, error) {
	query := `
		SELECT course_id, internal_code, sence_code, name, description, total_hours, modality, requires_sag, syllabus_url, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM courses
		WHERE course_id = $1;
	`
	var modelCourse models.Course
	err := r.Pool.QueryRow(ctx, query, courseID).Scan(
		&modelCourse.CourseID,
		&modelCourse.InternalCode,
		&modelCourse.SenceCode,
		&modelCourse.Name,
		&modelCourse.Description,
		&modelCourse.TotalHours,
		&modelCourse.Modality,
		&modelCourse.RequiresSAG,
		&modelCourse.SyllabusURL,
		&modelCourse.IsActive,
		&modelCourse.CreatedAt,
		&modelCourse.CreatedBy,
		&modelCourse.LastUpdatedAt,
		&modelCourse.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find course by id %s: %w", courseID, err)
	}

	attachments, err := r.findAttachments(ctx, courseID)
	if err != nil {
		return nil, err
	}

	domainCourse := mapping.ToDomainCourse(modelCourse, attachments)
	return &domainCourse, nil
}

func (r *PgxCourseRepository) findAttachments(ctx context.Context, courseID string) ([]models.Attachment, error) {
	query := `
		SELECT attachment_id, course_id, name, kind, url, size_bytes, uploaded_at, description
		FROM course_attachments
		WHERE course_id = $1
		ORDER BY uploaded_at;
	`
	rows, err := r.Pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments for course %s: %w", courseID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Attachment, error) {
		var attachment models.Attachment
		err := row.Scan(
			&attachment.AttachmentID,
			&attachment.CourseID,
			&attachment.Name,
			&attachment.Kind,
			&attachment.URL,
			&attachment.SizeBytes,
			&attachment.UploadedAt,
			&attachment.Description,
		)
		return attachment, err
	})
}

// ListCourses retrieves all courses with their attachments.
func (r *PgxCourseRepository) ListCourses(ctx context.Context) ([]domain.Course, error) {
	query := `
		SELECT course_id, internal_code, sence_code, name, description, total_hours, modality, requires_sag, syllabus_url, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM courses
		ORDER BY internal_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	modelCourses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Course, error) {
		var course models.Course
		err := row.Scan(
			&course.CourseID,
			&course.InternalCode,
			&course.SenceCode,
			&course.Name,
			&course.Description,
			&course.TotalHours,
			&course.Modality,
			&course.RequiresSAG,
			&course.SyllabusURL,
			&course.IsActive,
			&course.CreatedAt,
			&course.CreatedBy,
			&course.LastUpdatedAt,
			&course.LastUpdatedBy,
		)
		return course, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan courses: %w", err)
	}

	courses := make([]domain.Course, 0, len(modelCourses))
	for _, m := range modelCourses {
		attachments, err := r.findAttachments(ctx, m.CourseID)
		if err != nil {
			return nil, err
		}
		courses = append(courses, mapping.ToDomainCourse(m, attachments))
	}
	return courses, nil
}

// DeleteCourse removes a course and its attachments.
func (r *PgxCourseRepository) DeleteCourse(ctx context.Context, courseID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM course_attachments WHERE course_id = $1;`, courseID); err != nil {
		return fmt.Errorf("failed to delete attachments for course %s: %w", courseID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM courses WHERE course_id = $1;`, courseID)
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", courseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// IsCourseReferenced reports whether quotes or executions still point at the
// course.
func (r *PgxCourseRepository) IsCourseReferenced(ctx context.Context, courseID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM quote_items WHERE course_id = $1)
			OR EXISTS (SELECT 1 FROM executions WHERE course_id = $1);
	`
	var referenced bool
	if err := r.Pool.QueryRow(ctx, query, courseID).Scan(&referenced); err != nil {
		return false, fmt.Errorf("failed to check references for course %s: %w", courseID, err)
	}
	return referenced, nil
}
