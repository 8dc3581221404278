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

type PgxAlertRepository struct {
	BaseRepository
}

// newPgxAlertRepository creates a new repository for dashboard alerts.
func newPgxAlertRepository(pool *pgxpool.Pool) portsrepo.AlertRepository {
	return &PgxAlertRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AlertRepository = (*PgxAlertRepository)(nil)

// SaveAlert upserts an alert row.
func (r *PgxAlertRepository) SaveAlert(ctx context.Context, alert domain.Alert) error {
	model := mapping.ToModelAlert(alert)

	query := `
		INSERT INTO alerts (alert_id, kind, message, date, priority, entity_id, entity_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (alert_id) DO UPDATE SET
			message = EXCLUDED.message,
			priority = EXCLUDED.priority,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		model.AlertID,
		model.Kind,
		model.Message,
		model.Date,
		model.Priority,
		model.EntityID,
		model.EntityType,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save alert %s: %w", model.AlertID, err)
	}
	return nil
}

// FindAlertByID retrieves a single alert.
func (r *PgxAlertRepository) FindAlertByID(ctx context.Context, alertID string) (*domain.Alert, error) {
	query := `
		SELECT alert_id, kind, message, date, priority, entity_id, entity_type, created_at, created_by, last_updated_at, last_updated_by
		FROM alerts
		WHERE alert_id = $1;
	`
	var model models.Alert
	err := r.Pool.QueryRow(ctx, query, alertID).Scan(
		&model.AlertID,
		&model.Kind,
		&model.Message,
		&model.Date,
		&model.Priority,
		&model.EntityID,
		&model.EntityType,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find alert by id %s: %w", alertID, err)
	}

	alert := mapping.ToDomainAlert(model)
	return &alert, nil
}

// ListAlerts retrieves all alerts, highest priority first, then newest.
func (r *PgxAlertRepository) ListAlerts(ctx context.Context) ([]domain.Alert, error) {
	query := `
		SELECT alert_id, kind, message, date, priority, entity_id, entity_type, created_at, created_by, last_updated_at, last_updated_by
		FROM alerts
		ORDER BY CASE priority WHEN 'HIGH' THEN 0 WHEN 'MEDIUM' THEN 1 ELSE 2 END, date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	modelAlerts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Alert, error) {
		var model models.Alert
		err := row.Scan(
			&model.AlertID,
			&model.Kind,
			&model.Message,
			&model.Date,
			&model.Priority,
			&model.EntityID,
			&model.EntityType,
			&model.CreatedAt,
			&model.CreatedBy,
			&model.LastUpdatedAt,
			&model.LastUpdatedBy,
		)
		return model, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan alerts: %w", err)
	}

	return mapping.ToDomainAlertSlice(modelAlerts), nil
}

// DeleteAlert removes (dismisses) an alert.
func (r *PgxAlertRepository) DeleteAlert(ctx context.Context, alertID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM alerts WHERE alert_id = $1;`, alertID)
	if err != nil {
		return fmt.Errorf("failed to delete alert %s: %w", alertID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
