package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portsrepo "github.com/otecpro/otec_erp_backend/internal/core/ports/repositories"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
	"github.com/otecpro/otec_erp_backend/internal/utils/finance"
)

// ledgerService provides append-only financial ledger operations.
type ledgerService struct {
	BaseService
	txnRepo       portsrepo.TransactionRepository
	executionRepo portsrepo.ExecutionRepository
	clientRepo    portsrepo.ClientRepository
}

// LedgerServiceOption is a functional option for configuring the ledger service.
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock sets the clock used for audit timestamps.
func WithLedgerClock(clock Clock) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Clock = clock
	}
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	txnRepo portsrepo.TransactionRepository,
	executionRepo portsrepo.ExecutionRepository,
	clientRepo portsrepo.ClientRepository,
	options ...LedgerServiceOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		txnRepo:       txnRepo,
		executionRepo: executionRepo,
		clientRepo:    clientRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostTransaction appends an Income or Expense entry. The outstanding balance
// starts at the gross total and is reduced only by settlement operations.
// A direct expense tagged with an execution is also recorded on that
// execution's direct-cost list.
func (s *ledgerService) PostTransaction(ctx context.Context, req dto.PostTransactionRequest, creator string) (*domain.Transaction, error) {
	kind := domain.TransactionKind(req.Kind)
	if kind != domain.Income && kind != domain.Expense {
		return nil, fmt.Errorf("%w: only income and expense entries can be posted directly", apperrors.ErrValidation)
	}

	amount := domain.Amount{Net: req.Amount.Net, Tax: req.Amount.Tax, Total: req.Amount.Total}
	if err := finance.ValidateAmount(amount); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if req.DueDate.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w: due date cannot precede issue date", apperrors.ErrValidation)
	}

	if req.ExecutionID != nil {
		if _, err := s.executionRepo.FindExecutionByID(ctx, *req.ExecutionID); err != nil {
			return nil, fmt.Errorf("failed to find execution %s: %w", *req.ExecutionID, err)
		}
	}
	if req.ClientID != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, *req.ClientID); err != nil {
			return nil, fmt.Errorf("failed to find client %s: %w", *req.ClientID, err)
		}
	}

	now := s.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          kind,
		Category:      domain.TransactionCategory(req.Category),
		Subcategory:   req.Subcategory,
		IsDirect:      req.IsDirect,
		ExecutionID:   req.ExecutionID,
		ClientID:      req.ClientID,
		Amount:        amount,
		Metadata: domain.TransactionMetadata{
			DocumentNumber: req.DocumentNumber,
			PDFURL:         req.PDFURL,
			VehiclePlate:   req.VehiclePlate,
			Odometer:       req.Odometer,
			Description:    req.Description,
		},
		Tracking: domain.PaymentTracking{
			IssueDate: req.IssueDate,
			DueDate:   req.DueDate,
		},
		Outstanding: amount.Total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	var err error
	if kind == domain.Expense && txn.IsDirect && txn.ExecutionID != nil {
		err = s.txnRepo.SaveTransactionWithDirectCostLink(ctx, txn, *txn.ExecutionID)
	} else {
		err = s.txnRepo.SaveTransaction(ctx, txn)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("kind", req.Kind))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("total", txn.Amount.Total.String()))
	return &txn, nil
}

// GetTransactionByID retrieves a single ledger entry.
func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves ledger entries matching the filter params.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionFilter{
		Kind:        domain.TransactionKind(params.Kind),
		ExecutionID: params.ExecutionID,
		ClientID:    params.ClientID,
		UnpaidOnly:  params.UnpaidOnly,
	}
	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// RegisterPayment settles a transaction: paid flag set, outstanding zeroed.
// Calling it again on a settled entry is a no-op returning the current state.
func (s *ledgerService) RegisterPayment(ctx context.Context, transactionID string, paymentDate time.Time, updater string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.Kind == domain.CreditNote {
		return nil, fmt.Errorf("%w: credit notes are not payable", apperrors.ErrValidation)
	}
	if txn.Tracking.Paid {
		return txn, nil
	}

	now := s.Now()
	if err := s.txnRepo.UpdateSettlement(ctx, transactionID, decimal.Zero, true, &paymentDate, updater, now); err != nil {
		s.LogError(ctx, err, "Failed to register payment", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to register payment: %w", err)
	}

	txn.Tracking.Paid = true
	txn.Tracking.PaymentDate = &paymentDate
	txn.Outstanding = decimal.Zero
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = updater

	s.LogInfo(ctx, "Payment registered", slog.String("transaction_id", transactionID))
	return txn, nil
}

// IssueCreditNote creates a CreditNote entry against an Income invoice and
// reduces the invoice's outstanding balance. The credited amount is gross;
// its net part is recovered by dividing out the tax. Crediting more than the
// remaining balance fails.
func (s *ledgerService) IssueCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest, creator string) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: credit amount must be positive", apperrors.ErrValidation)
	}

	invoice, err := s.txnRepo.FindTransactionByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", req.InvoiceID, err)
	}
	if invoice.Kind != domain.Income {
		return nil, fmt.Errorf("%w: credit notes only apply to income invoices", apperrors.ErrValidation)
	}
	if req.Amount.GreaterThan(invoice.Outstanding) {
		return nil, fmt.Errorf("%w: %s exceeds the invoice's outstanding balance %s",
			apperrors.ErrOverCredit, req.Amount.String(), invoice.Outstanding.String())
	}

	now := s.Now()
	noteID := uuid.NewString()
	note := domain.Transaction{
		TransactionID: noteID,
		Kind:          domain.CreditNote,
		Category:      invoice.Category,
		Subcategory:   invoice.Subcategory,
		IsDirect:      invoice.IsDirect,
		ExecutionID:   invoice.ExecutionID,
		ClientID:      invoice.ClientID,
		Amount:        finance.SplitGross(req.Amount),
		Metadata: domain.TransactionMetadata{
			DocumentNumber: fmt.Sprintf("NC-%s", noteID[:8]),
			InvoiceRef:     &invoice.TransactionID,
			Description:    req.Reason,
		},
		Tracking: domain.PaymentTracking{
			IssueDate: s.Today(),
			DueDate:   s.Today(),
			Paid:      true,
		},
		Outstanding: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	invoice.Outstanding = invoice.Outstanding.Sub(req.Amount)
	if invoice.Outstanding.IsZero() {
		paymentDate := s.Today()
		invoice.Tracking.Paid = true
		invoice.Tracking.PaymentDate = &paymentDate
	}
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = creator

	if err := s.txnRepo.SaveCreditNoteWithSettlement(ctx, note, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to issue credit note", slog.String("invoice_id", req.InvoiceID))
		return nil, fmt.Errorf("failed to issue credit note: %w", err)
	}

	s.LogInfo(ctx, "Credit note issued",
		slog.String("credit_note_id", note.TransactionID),
		slog.String("invoice_id", invoice.TransactionID),
		slog.String("amount", req.Amount.String()))
	return &note, nil
}
