package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/core/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
)

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo       *MockTransactionRepository
	mockExecutionRepo *MockExecutionRepository
	mockClientRepo    *MockClientRepository
	service           portssvc.LedgerSvcFacade
	fixedNow          time.Time
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockExecutionRepo = new(MockExecutionRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	suite.service = services.NewLedgerService(
		suite.mockTxnRepo,
		suite.mockExecutionRepo,
		suite.mockClientRepo,
		services.WithLedgerClock(func() time.Time { return suite.fixedNow }),
	)
}

func (suite *LedgerServiceTestSuite) postRequest() dto.PostTransactionRequest {
	return dto.PostTransactionRequest{
		Kind:     "INCOME",
		Category: "OTHER",
		Amount: dto.AmountRequest{
			Net:   decimal.NewFromInt(100000),
			Tax:   decimal.NewFromInt(19000),
			Total: decimal.NewFromInt(119000),
		},
		IssueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestPostTransaction_Success() {
	ctx := context.Background()
	req := suite.postRequest()

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Kind == domain.Income &&
			t.Outstanding.Equal(decimal.NewFromInt(119000)) &&
			!t.Tracking.Paid
	})).Return(nil).Once()

	txn, err := suite.service.PostTransaction(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(txn.Outstanding.Equal(txn.Amount.Total))
	suite.False(txn.Tracking.Paid)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_DirectExpenseLinkedToExecution() {
	ctx := context.Background()
	executionID := uuid.NewString()
	req := suite.postRequest()
	req.Kind = "EXPENSE"
	req.Category = "MATERIALS"
	req.IsDirect = true
	req.ExecutionID = &executionID

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).
		Return(&domain.Execution{ExecutionID: executionID}, nil).Once()
	suite.mockTxnRepo.On("SaveTransactionWithDirectCostLink", ctx,
		mock.MatchedBy(func(t domain.Transaction) bool {
			return t.Kind == domain.Expense && t.IsDirect &&
				t.ExecutionID != nil && *t.ExecutionID == executionID
		}),
		executionID,
	).Return(nil).Once()

	txn, err := suite.service.PostTransaction(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_IndirectExpenseNotLinked() {
	ctx := context.Background()
	executionID := uuid.NewString()
	req := suite.postRequest()
	req.Kind = "EXPENSE"
	req.Category = "SALARIES"
	req.ExecutionID = &executionID

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).
		Return(&domain.Execution{ExecutionID: executionID}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil).Once()

	txn, err := suite.service.PostTransaction(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionWithDirectCostLink")
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_AmountMismatch() {
	ctx := context.Background()
	req := suite.postRequest()
	req.Amount.Total = decimal.NewFromInt(120000)

	txn, err := suite.service.PostTransaction(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_CreditNoteRejected() {
	ctx := context.Background()
	req := suite.postRequest()
	req.Kind = "CREDIT_NOTE"

	txn, err := suite.service.PostTransaction(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_DueBeforeIssue() {
	ctx := context.Background()
	req := suite.postRequest()
	req.DueDate = req.IssueDate.AddDate(0, 0, -1)

	txn, err := suite.service.PostTransaction(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_UnknownExecution() {
	ctx := context.Background()
	executionID := uuid.NewString()
	req := suite.postRequest()
	req.ExecutionID = &executionID

	suite.mockExecutionRepo.On("FindExecutionByID", ctx, executionID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.PostTransaction(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestRegisterPayment_SettlesEntry() {
	ctx := context.Background()
	txnID := uuid.NewString()
	paymentDate := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	existing := &domain.Transaction{
		TransactionID: txnID,
		Kind:          domain.Income,
		Amount:        domain.Amount{Total: decimal.NewFromInt(119000)},
		Outstanding:   decimal.NewFromInt(119000),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateSettlement", ctx, txnID, decimal.Zero, true, &paymentDate, "tester", suite.fixedNow).Return(nil).Once()

	txn, err := suite.service.RegisterPayment(ctx, txnID, paymentDate, "tester")

	suite.Require().NoError(err)
	suite.True(txn.Tracking.Paid)
	suite.True(txn.Outstanding.IsZero())
	suite.Require().NotNil(txn.Tracking.PaymentDate)
	suite.Equal(paymentDate, *txn.Tracking.PaymentDate)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRegisterPayment_Idempotent() {
	ctx := context.Background()
	txnID := uuid.NewString()
	originalDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.Transaction{
		TransactionID: txnID,
		Kind:          domain.Expense,
		Tracking:      domain.PaymentTracking{Paid: true, PaymentDate: &originalDate},
		Outstanding:   decimal.Zero,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()

	txn, err := suite.service.RegisterPayment(ctx, txnID, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "tester")

	suite.Require().NoError(err)
	suite.True(txn.Tracking.Paid)
	suite.Equal(originalDate, *txn.Tracking.PaymentDate)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateSettlement")
}

func (suite *LedgerServiceTestSuite) TestRegisterPayment_CreditNoteRejected() {
	ctx := context.Background()
	txnID := uuid.NewString()
	existing := &domain.Transaction{TransactionID: txnID, Kind: domain.CreditNote}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()

	txn, err := suite.service.RegisterPayment(ctx, txnID, suite.fixedNow, "tester")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestIssueCreditNote_SplitsGross() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Transaction{
		TransactionID: invoiceID,
		Kind:          domain.Income,
		Amount: domain.Amount{
			Net:   decimal.NewFromInt(1000000),
			Tax:   decimal.NewFromInt(190000),
			Total: decimal.NewFromInt(1190000),
		},
		Outstanding: decimal.NewFromInt(1190000),
	}
	req := dto.IssueCreditNoteRequest{
		InvoiceID: invoiceID,
		Amount:    decimal.NewFromInt(119000),
		Reason:    "billing adjustment",
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, invoiceID).Return(invoice, nil).Once()
	suite.mockTxnRepo.On("SaveCreditNoteWithSettlement", ctx,
		mock.MatchedBy(func(note domain.Transaction) bool {
			return note.Kind == domain.CreditNote &&
				note.Tracking.Paid &&
				note.Outstanding.IsZero() &&
				note.Metadata.InvoiceRef != nil && *note.Metadata.InvoiceRef == invoiceID
		}),
		mock.MatchedBy(func(inv domain.Transaction) bool {
			return inv.Outstanding.Equal(decimal.NewFromInt(1071000)) && !inv.Tracking.Paid
		}),
	).Return(nil).Once()

	note, err := suite.service.IssueCreditNote(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(note)
	// 119000 gross splits into 100000 net plus 19000 IVA
	suite.True(note.Amount.Net.Round(2).Equal(decimal.NewFromInt(100000)), "net was %s", note.Amount.Net)
	suite.True(note.Amount.Total.Equal(decimal.NewFromInt(119000)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestIssueCreditNote_MarksInvoicePaidWhenFullyCredited() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Transaction{
		TransactionID: invoiceID,
		Kind:          domain.Income,
		Amount:        domain.Amount{Total: decimal.NewFromInt(119000)},
		Outstanding:   decimal.NewFromInt(119000),
	}
	req := dto.IssueCreditNoteRequest{
		InvoiceID: invoiceID,
		Amount:    decimal.NewFromInt(119000),
		Reason:    "cancelled service",
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, invoiceID).Return(invoice, nil).Once()
	suite.mockTxnRepo.On("SaveCreditNoteWithSettlement", ctx,
		mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(inv domain.Transaction) bool {
			return inv.Outstanding.IsZero() && inv.Tracking.Paid
		}),
	).Return(nil).Once()

	note, err := suite.service.IssueCreditNote(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(note)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestIssueCreditNote_OverCredit() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Transaction{
		TransactionID: invoiceID,
		Kind:          domain.Income,
		Outstanding:   decimal.NewFromInt(50000),
	}
	req := dto.IssueCreditNoteRequest{
		InvoiceID: invoiceID,
		Amount:    decimal.NewFromInt(60000),
		Reason:    "too much",
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, invoiceID).Return(invoice, nil).Once()

	note, err := suite.service.IssueCreditNote(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(note)
	suite.ErrorIs(err, apperrors.ErrOverCredit)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveCreditNoteWithSettlement")
}

func (suite *LedgerServiceTestSuite) TestIssueCreditNote_ExpenseRejected() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Transaction{
		TransactionID: invoiceID,
		Kind:          domain.Expense,
		Outstanding:   decimal.NewFromInt(50000),
	}
	req := dto.IssueCreditNoteRequest{
		InvoiceID: invoiceID,
		Amount:    decimal.NewFromInt(10000),
		Reason:    "wrong target",
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, invoiceID).Return(invoice, nil).Once()

	note, err := suite.service.IssueCreditNote(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(note)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
