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

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

// SaveClient upserts the client row and replaces its contact rows in one
// database transaction.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO clients (client_id, rut, legal_name, business_line, address, commune, region, holding, registered_at, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (client_id) DO UPDATE SET
			legal_name = EXCLUDED.legal_name,
			business_line = EXCLUDED.business_line,
			address = EXCLUDED.address,
			commune = EXCLUDED.commune,
			region = EXCLUDED.region,
			holding = EXCLUDED.holding,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = tx.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.RUT,
		modelClient.LegalName,
		modelClient.BusinessLine,
		modelClient.Address,
		modelClient.Commune,
		modelClient.Region,
		modelClient.Holding,
		modelClient.RegisteredAt,
		modelClient.Notes,
		modelClient.CreatedAt,
		modelClient.CreatedBy,
		modelClient.LastUpdatedAt,
		modelClient.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client %s: %w", modelClient.ClientID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM client_contacts WHERE client_id = $1;`, modelClient.ClientID); err != nil {
		return fmt.Errorf("failed to clear contacts for client %s: %w", modelClient.ClientID, err)
	}

	batch := &pgx.Batch{}
	contactQuery := `
		INSERT INTO client_contacts (contact_id, client_id, name, role, email, phone, is_decision_maker, is_coordinator)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, contact := range client.Contacts {
		modelContact := mapping.ToModelContact(contact, client.ClientID)
		batch.Queue(contactQuery,
			modelContact.ContactID,
			modelContact.ClientID,
			modelContact.Name,
			modelContact.Role,
			modelContact.Email,
			modelContact.Phone,
			modelContact.IsDecisionMaker,
			modelContact.IsCoordinator,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save contacts for client %s: %w", modelClient.ClientID, err)
	}

	return r.Commit(ctx, tx)
}

// FindClientByID retrieves a client with its contacts.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, rut, legal_name, business_line, address, commune, region, holding, registered_at, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE client_id = $1;
	`
	var modelClient models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&modelClient.ClientID,
		&modelClient.RUT,
		&modelClient.LegalName,
		&modelClient.BusinessLine,
		&modelClient.Address,
		&modelClient.Commune,
		&modelClient.Region,
		&modelClient.Holding,
		&modelClient.RegisteredAt,
		&modelClient.Notes,
		&modelClient.CreatedAt,
		&modelClient.CreatedBy,
		&modelClient.LastUpdatedAt,
		&modelClient.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by id %s: %w", clientID, err)
	}

	contacts, err := r.findContacts(ctx, clientID)
	if err != nil {
		return nil, err
	}

	domainClient := mapping.ToDomainClient(modelClient, contacts)
	return &domainClient, nil
}

func (r *PgxClientRepository) findContacts(ctx context.Context, clientID string) ([]models.Contact, error) {
	query := `
		SELECT contact_id, client_id, name, role, email, phone, is_decision_maker, is_coordinator
		FROM client_contacts
		WHERE client_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts for client %s: %w", clientID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Contact, error) {
		var contact models.Contact
		err := row.Scan(
			&contact.ContactID,
			&contact.ClientID,
			&contact.Name,
			&contact.Role,
			&contact.Email,
			&contact.Phone,
			&contact.IsDecisionMaker,
			&contact.IsCoordinator,
		)
		return contact, err
	})
}

// ListClients retrieves all clients with their contacts.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT client_id, rut, legal_name, business_line, address, commune, region, holding, registered_at, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		ORDER BY legal_name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	modelClients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		var client models.Client
		err := row.Scan(
			&client.ClientID,
			&client.RUT,
			&client.LegalName,
			&client.BusinessLine,
			&client.Address,
			&client.Commune,
			&client.Region,
			&client.Holding,
			&client.RegisteredAt,
			&client.Notes,
			&client.CreatedAt,
			&client.CreatedBy,
			&client.LastUpdatedAt,
			&client.LastUpdatedBy,
		)
		return client, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}

	clients := make([]domain.Client, 0, len(modelClients))
	for _, m := range modelClients {
		contacts, err := r.findContacts(ctx, m.ClientID)
		if err != nil {
			return nil, err
		}
		clients = append(clients, mapping.ToDomainClient(m, contacts))
	}
	return clients, nil
}

// DeleteClient removes a client and its contacts.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM client_contacts WHERE client_id = $1;`, clientID); err != nil {
		return fmt.Errorf("failed to delete contacts for client %s: %w", clientID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// IsClientReferenced reports whether quotes, executions or transactions still
// point at the client.
func (r *PgxClientRepository) IsClientReferenced(ctx context.Context, clientID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM quotes WHERE client_id = $1)
			OR EXISTS (SELECT 1 FROM executions WHERE client_id = $1)
			OR EXISTS (SELECT 1 FROM transactions WHERE client_id = $1);
	`
	var referenced bool
	if err := r.Pool.QueryRow(ctx, query, clientID).Scan(&referenced); err != nil {
		return false, fmt.Errorf("failed to check references for client %s: %w", clientID, err)
	}
	return referenced, nil
}
