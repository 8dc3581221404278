package repositories

import (
	"context"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
)

// AlertRepository defines persistence operations for dashboard alerts.
type AlertRepository interface {
	SaveAlert(ctx context.Context, alert domain.Alert) error
	FindAlertByID(ctx context.Context, alertID string) (*domain.Alert, error)
	// ListAlerts retrieves all alerts ordered by priority then date.
	ListAlerts(ctx context.Context) ([]domain.Alert, error)
	// DeleteAlert removes (dismisses) an alert.
	DeleteAlert(ctx context.Context, alertID string) error
}
