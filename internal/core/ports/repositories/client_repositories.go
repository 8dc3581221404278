package repositories

import (
	"context"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	// SaveClient inserts or fully replaces a client and its contacts.
	SaveClient(ctx context.Context, client domain.Client) error
	// FindClientByID retrieves a client with its contacts. Returns
	// apperrors.ErrNotFound when missing.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	// ListClients retrieves all clients ordered by legal name.
	ListClients(ctx context.Context) ([]domain.Client, error)
	// DeleteClient removes a client. Callers must check references first.
	DeleteClient(ctx context.Context, clientID string) error
	// IsClientReferenced reports whether quotes, executions or transactions
	// still point at the client.
	IsClientReferenced(ctx context.Context, clientID string) (bool, error)
}
