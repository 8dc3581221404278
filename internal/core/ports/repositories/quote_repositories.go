package repositories

import (
	"context"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
)

// QuoteRepository defines persistence operations for quotes.
type QuoteRepository interface {
	// SaveQuote inserts a new quote with its items.
	SaveQuote(ctx context.Context, quote domain.Quote) error
	// UpdateQuote replaces a quote row and its items.
	UpdateQuote(ctx context.Context, quote domain.Quote) error
	// FindQuoteByID retrieves a quote with its items. Returns
	// apperrors.ErrNotFound when missing.
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)
	// ListQuotes retrieves all quotes ordered by issue date descending.
	ListQuotes(ctx context.Context) ([]domain.Quote, error)
	// NextQuoteSequence atomically allocates the next display-number
	// sequence value for the given year. Safe under concurrent callers.
	NextQuoteSequence(ctx context.Context, year int) (int, error)
	// ApproveQuoteWithExecution persists the approved quote and the newly
	// spawned execution in a single database transaction.
	ApproveQuoteWithExecution(ctx context.Context, quote domain.Quote, execution domain.Execution) error
}
