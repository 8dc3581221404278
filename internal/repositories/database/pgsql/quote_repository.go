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

type PgxQuoteRepository struct {
	BaseRepository
}

// newPgxQuoteRepository creates a new repository for quote data.
func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepository {
	return &PgxQuoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.QuoteRepository = (*PgxQuoteRepository)(nil)

// upsertQuote writes the quote header and replaces its item rows inside the
// given transaction. Items carry no surrogate key, so replace is simpler than
// diffing line by line.
func upsertQuote(ctx context.Context, tx pgx.Tx, quote domain.Quote) error {
	modelQuote := mapping.ToModelQuote(quote)

	query := `
		INSERT INTO quotes (quote_id, number, client_id, contact_id, issue_date, validity_days, subtotal, tax, total, status, notes, approval_date, execution_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (quote_id) DO UPDATE SET
			contact_id = EXCLUDED.contact_id,
			validity_days = EXCLUDED.validity_days,
			subtotal = EXCLUDED.subtotal,
			tax = EXCLUDED.tax,
			total = EXCLUDED.total,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			approval_date = EXCLUDED.approval_date,
			execution_id = EXCLUDED.execution_id,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := tx.Exec(ctx, query,
		modelQuote.QuoteID,
		modelQuote.Number,
		modelQuote.ClientID,
		modelQuote.ContactID,
		modelQuote.IssueDate,
		modelQuote.ValidityDays,
		modelQuote.Subtotal,
		modelQuote.Tax,
		modelQuote.Total,
		modelQuote.Status,
		modelQuote.Notes,
		modelQuote.ApprovalDate,
		modelQuote.ExecutionID,
		modelQuote.CreatedAt,
		modelQuote.CreatedBy,
		modelQuote.LastUpdatedAt,
		modelQuote.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save quote %s: %w", modelQuote.QuoteID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM quote_items WHERE quote_id = $1;`, modelQuote.QuoteID); err != nil {
		return fmt.Errorf("failed to clear items for quote %s: %w", modelQuote.QuoteID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO quote_items (quote_id, line_no, course_id, unit_price, headcount, discount_pct, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, item := range mapping.ToModelQuoteItems(quote) {
		batch.Queue(itemQuery,
			item.QuoteID,
			item.LineNo,
			item.CourseID,
			item.UnitPrice,
			item.Headcount,
			item.DiscountPct,
			item.Subtotal,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save items for quote %s: %w", modelQuote.QuoteID, err)
	}
	return nil
}

// SaveQuote inserts a new quote with its items.
func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := upsertQuote(ctx, tx, quote); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateQuote replaces a quote row and its items.
func (r *PgxQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	return r.SaveQuote(ctx, quote)
}

// FindQuoteByID retrieves a quote with its items.
func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	query := `
		SELECT quote_id, number, client_id, contact_id, issue_date, validity_days, subtotal, tax, total, status, notes, approval_date, execution_id, created_at, created_by, last_updated_at, last_updated_by
		FROM quotes
		WHERE quote_id = $1;
	`
	var modelQuote models.Quote
	err := r.Pool.QueryRow(ctx, query, quoteID).Scan(
		&modelQuote.QuoteID,
		&modelQuote.Number,
		&modelQuote.ClientID,
		&modelQuote.ContactID,
		&modelQuote.IssueDate,
		&modelQuote.ValidityDays,
		&modelQuote.Subtotal,
		&modelQuote.Tax,
		&modelQuote.Total,
		&modelQuote.Status,
		&modelQuote.Notes,
		&modelQuote.ApprovalDate,
		&modelQuote.ExecutionID,
		&modelQuote.CreatedAt,
		&modelQuote.CreatedBy,
		&modelQuote.LastUpdatedAt,
		&modelQuote.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote by id %s: %w", quoteID, err)
	}

	items, err := r.findItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	domainQuote := mapping.ToDomainQuote(modelQuote, items)
	return &domainQuote, nil
}

func (r *PgxQuoteRepository) findItems(ctx context.Context, quoteID string) ([]models.QuoteItem, error) {
	query := `
		SELECT quote_id, line_no, course_id, unit_price, headcount, discount_pct, subtotal
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for quote %s: %w", quoteID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.QuoteItem, error) {
		var item models.QuoteItem
		err := row.Scan(
			&item.QuoteID,
			&item.LineNo,
			&item.CourseID,
			&item.UnitPrice,
			&item.Headcount,
			&item.DiscountPct,
			&item.Subtotal,
		)
		return item, err
	})
}

// ListQuotes retrieves all quotes with their items, newest first.
func (r *PgxQuoteRepository) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	query := `
		SELECT quote_id, number, client_id, contact_id, issue_date, validity_days, subtotal, tax, total, status, notes, approval_date, execution_id, created_at, created_by, last_updated_at, last_updated_by
		FROM quotes
		ORDER BY issue_date DESC, number DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	modelQuotes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Quote, error) {
		var quote models.Quote
		err := row.Scan(
			&quote.QuoteID,
			&quote.Number,
			&quote.ClientID,
			&quote.ContactID,
			&quote.IssueDate,
			&quote.ValidityDays,
			&quote.Subtotal,
			&quote.Tax,
			&quote.Total,
			&quote.Status,
			&quote.Notes,
			&quote.ApprovalDate,
			&quote.ExecutionID,
			&quote.CreatedAt,
			&quote.CreatedBy,
			&quote.LastUpdatedAt,
			&quote.LastUpdatedBy,
		)
		return quote, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan quotes: %w", err)
	}

	quotes := make([]domain.Quote, 0, len(modelQuotes))
	for _, m := range modelQuotes {
		items, err := r.findItems(ctx, m.QuoteID)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, mapping.ToDomainQuote(m, items))
	}
	return quotes, nil
}

// NextQuoteSequence atomically allocates the next display-number sequence
// value for the given year.
func (r *PgxQuoteRepository) NextQuoteSequence(ctx context.Context, year int) (int, error) {
	query := `
		INSERT INTO quote_sequences (year, last_value)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = quote_sequences.last_value + 1
		RETURNING last_value;
	`
	var seq int
	if err := r.Pool.QueryRow(ctx, query, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to allocate quote sequence for year %d: %w", year, err)
	}
	return seq, nil
}

// ApproveQuoteWithExecution persists the approved quote and the spawned
// execution atomically, so a crash cannot leave an approved quote without its
// execution.
func (r *PgxQuoteRepository) ApproveQuoteWithExecution(ctx context.Context, quote domain.Quote, execution domain.Execution) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := upsertQuote(ctx, tx, quote); err != nil {
		return err
	}
	if err := upsertExecution(ctx, tx, execution); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
