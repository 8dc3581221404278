package services

import (
	"context"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/dto"
)

// QuoteSvcFacade defines the business operations for commercial quotes.
type QuoteSvcFacade interface {
	// CreateQuote builds a new Draft quote, computing item subtotals and
	// quote totals, and allocates the next display number.
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, creator string) (*domain.Quote, error)
	GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)
	ListQuotes(ctx context.Context) ([]domain.Quote, error)
	// UpdateQuote edits header fields while the quote is Draft or Sent.
	UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, updater string) (*domain.Quote, error)
	// AddItem appends a line and recomputes quote totals.
	AddItem(ctx context.Context, quoteID string, req dto.QuoteItemRequest, updater string) (*domain.Quote, error)
	// RemoveItem drops the line at index and recomputes quote totals.
	RemoveItem(ctx context.Context, quoteID string, index int, updater string) (*domain.Quote, error)
	// TransitionQuote applies a guarded status change. Approval must go
	// through ApproveQuote: passing APPROVED here is rejected.
	TransitionQuote(ctx context.Context, quoteID string, target domain.QuoteStatus, updater string) (*domain.Quote, error)
	// ApproveQuote moves a Sent quote to Approved and spawns its execution
	// exactly once, atomically. Returns the updated quote and new execution.
	ApproveQuote(ctx context.Context, quoteID string, approver string) (*domain.Quote, *domain.Execution, error)
}
