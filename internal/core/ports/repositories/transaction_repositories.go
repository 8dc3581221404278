package repositories

import (
	"context"
	"time"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows ledger listings. Zero values mean "no filter".
type TransactionFilter struct {
	Kind        domain.TransactionKind
	ExecutionID *string
	ClientID    *string
	UnpaidOnly  bool
}

// TransactionRepository defines persistence operations for the financial
// ledger. The ledger is append-only: there is no delete.
type TransactionRepository interface {
	// SaveTransaction appends a ledger entry.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// SaveTransactionWithDirectCostLink appends a ledger entry and records
	// its id on the tagged execution's direct-cost list in a single
	// database transaction.
	SaveTransactionWithDirectCostLink(ctx context.Context, txn domain.Transaction, executionID string) error
	// FindTransactionByID retrieves a ledger entry. Returns
	// apperrors.ErrNotFound when missing.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ListTransactions retrieves ledger entries matching the filter,
	// ordered by issue date descending.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
	// ListTransactionsByExecution retrieves every entry tagged with the
	// execution.
	ListTransactionsByExecution(ctx context.Context, executionID string) ([]domain.Transaction, error)
	// ListTransactionsByIssueDate retrieves entries whose issue date falls
	// within [from, to] inclusive.
	ListTransactionsByIssueDate(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
	// UpdateSettlement updates the payment tracking of one entry in place.
	UpdateSettlement(ctx context.Context, transactionID string, outstanding decimal.Decimal, paid bool, paymentDate *time.Time, updatedBy string, updatedAt time.Time) error
	// SaveCreditNoteWithSettlement appends a credit note and applies the
	// settlement update to the referenced invoice in a single database
	// transaction.
	SaveCreditNoteWithSettlement(ctx context.Context, note domain.Transaction, invoice domain.Transaction) error
}
