package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portsrepo "github.com/otecpro/otec_erp_backend/internal/core/ports/repositories"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
)

// alertService provides dashboard alert operations.
type alertService struct {
	BaseService
	alertRepo portsrepo.AlertRepository
}

// AlertServiceOption is a functional option for configuring the alert service.
type AlertServiceOption func(*alertService)

// WithAlertClock sets the clock used for audit timestamps.
func WithAlertClock(clock Clock) AlertServiceOption {
	return func(s *alertService) {
		s.Clock = clock
	}
}

// NewAlertService creates a new alert service.
func NewAlertService(alertRepo portsrepo.AlertRepository, options ...AlertServiceOption) portssvc.AlertSvcFacade {
	svc := &alertService{alertRepo: alertRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AlertSvcFacade = (*alertService)(nil)

// CreateAlert records a dashboard alert.
func (s *alertService) CreateAlert(ctx context.Context, req dto.CreateAlertRequest, creator string) (*domain.Alert, error) {
	now := s.Now()
	alert := domain.Alert{
		AlertID:    uuid.NewString(),
		Kind:       domain.AlertKind(req.Kind),
		Message:    req.Message,
		Date:       req.Date,
		Priority:   domain.AlertPriority(req.Priority),
		EntityID:   req.EntityID,
		EntityType: req.EntityType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	if err := s.alertRepo.SaveAlert(ctx, alert); err != nil {
		s.LogError(ctx, err, "Failed to save alert", slog.String("kind", req.Kind))
		return nil, fmt.Errorf("failed to save alert: %w", err)
	}

	return &alert, nil
}

// ListAlerts retrieves all alerts.
func (s *alertService) ListAlerts(ctx context.Context) ([]domain.Alert, error) {
	alerts, err := s.alertRepo.ListAlerts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list alerts")
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// DismissAlert deletes the alert.
func (s *alertService) DismissAlert(ctx context.Context, alertID string) error {
	if _, err := s.alertRepo.FindAlertByID(ctx, alertID); err != nil {
		return fmt.Errorf("failed to find alert %s: %w", alertID, err)
	}
	if err := s.alertRepo.DeleteAlert(ctx, alertID); err != nil {
		s.LogError(ctx, err, "Failed to dismiss alert", slog.String("alert_id", alertID))
		return fmt.Errorf("failed to dismiss alert: %w", err)
	}
	s.LogInfo(ctx, "Alert dismissed", slog.String("alert_id", alertID))
	return nil
}
