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

// clientService provides client catalog operations.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepository
}

// ClientServiceOption is a functional option for configuring the client service.
type ClientServiceOption func(*clientService)

// WithClientClock sets the clock used for audit timestamps.
func WithClientClock(clock Clock) ClientServiceOption {
	return func(s *clientService) {
		s.Clock = clock
	}
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepository, options ...ClientServiceOption) portssvc.ClientSvcFacade {
	svc := &clientService{clientRepo: clientRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func toDomainContacts(reqs []dto.ContactRequest) []domain.Contact {
	contacts := make([]domain.Contact, len(reqs))
	for i, c := range reqs {
		contacts[i] = domain.Contact{
			ContactID:       uuid.NewString(),
			Name:            c.Name,
			Role:            c.Role,
			Email:           c.Email,
			Phone:           c.Phone,
			IsDecisionMaker: c.IsDecisionMaker,
			IsCoordinator:   c.IsCoordinator,
		}
	}
	return contacts
}

// CreateClient registers a new client company.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creator string) (*domain.Client, error) {
	if req.RUT == "" || req.LegalName == "" {
		return nil, fmt.Errorf("%w: rut and legal name are required", apperrors.ErrValidation)
	}

	now := s.Now()
	client := domain.Client{
		ClientID:     uuid.NewString(),
		RUT:          req.RUT,
		LegalName:    req.LegalName,
		BusinessLine: req.BusinessLine,
		Address:      req.Address,
		Commune:      req.Commune,
		Region:       req.Region,
		Holding:      req.Holding,
		Contacts:     toDomainContacts(req.Contacts),
		RegisteredAt: s.Today(),
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("rut", req.RUT))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID retrieves a single client.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}

// ListClients retrieves all clients.
func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// UpdateClient applies a partial update to a client.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updater string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	if req.LegalName != nil {
		client.LegalName = *req.LegalName
	}
	if req.BusinessLine != nil {
		client.BusinessLine = *req.BusinessLine
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Commune != nil {
		client.Commune = *req.Commune
	}
	if req.Region != nil {
		client.Region = *req.Region
	}
	if req.Holding != nil {
		client.Holding = *req.Holding
	}
	if req.Contacts != nil {
		client.Contacts = toDomainContacts(*req.Contacts)
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	client.LastUpdatedAt = s.Now()
	client.LastUpdatedBy = updater

	if err := s.clientRepo.SaveClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// DeleteClient removes a client unless other records still reference it.
func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	referenced, err := s.clientRepo.IsClientReferenced(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check client references", slog.String("client_id", clientID))
		return fmt.Errorf("failed to check client references: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: client %s is referenced by quotes, executions or transactions", apperrors.ErrConflict, clientID)
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
