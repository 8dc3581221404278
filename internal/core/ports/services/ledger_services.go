package services

import (
	"context"
	"time"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/dto"
)

// LedgerSvcFacade defines the business operations for the financial ledger.
type LedgerSvcFacade interface {
	// PostTransaction appends an Income or Expense entry. The outstanding
	// balance starts at the gross total.
	PostTransaction(ctx context.Context, req dto.PostTransactionRequest, creator string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
	// RegisterPayment marks an entry paid and zeroes its outstanding
	// balance. Idempotent; rejected for credit notes.
	RegisterPayment(ctx context.Context, transactionID string, paymentDate time.Time, updater string) (*domain.Transaction, error)
	// IssueCreditNote creates a CreditNote entry against an Income invoice
	// and reduces the invoice's outstanding balance. Amounts above the
	// remaining balance fail with apperrors.ErrOverCredit.
	IssueCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest, creator string) (*domain.Transaction, error)
}
