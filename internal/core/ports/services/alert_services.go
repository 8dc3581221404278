package services

import (
	"context"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/dto"
)

// AlertSvcFacade defines the business operations for dashboard alerts.
type AlertSvcFacade interface {
	CreateAlert(ctx context.Context, req dto.CreateAlertRequest, creator string) (*domain.Alert, error)
	ListAlerts(ctx context.Context) ([]domain.Alert, error)
	// DismissAlert deletes the alert; dismissing twice is a not-found.
	DismissAlert(ctx context.Context, alertID string) error
}
