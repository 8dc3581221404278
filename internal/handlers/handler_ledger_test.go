package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
	"github.com/otecpro/otec_erp_backend/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) PostTransaction(ctx context.Context, req dto.PostTransactionRequest, creator string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) RegisterPayment(ctx context.Context, transactionID string, paymentDate time.Time, updater string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, paymentDate, updater)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) IssueCreditNote(ctx context.Context, req dto.IssueCreditNoteRequest, creator string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.ActorMiddleware())

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	registerLedgerRoutes(v1, suite.mockLedgerService)
}

func (suite *LedgerHandlerTestSuite) performRequest(method, url string, body any, actor string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set("X-Actor", actor)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleTransaction(kind domain.TransactionKind) *domain.Transaction {
	issue := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          kind,
		Category:      domain.CategoryMaterials,
		IsDirect:      true,
		Amount: domain.Amount{
			Net:   decimal.NewFromInt(100000),
			Tax:   decimal.NewFromInt(19000),
			Total: decimal.NewFromInt(119000),
		},
		Metadata: domain.TransactionMetadata{DocumentNumber: "F-1042"},
		Tracking: domain.PaymentTracking{
			IssueDate: issue,
			DueDate:   issue.AddDate(0, 0, 30),
		},
		Outstanding: decimal.NewFromInt(119000),
	}
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestPostTransaction_Success() {
	expected := sampleTransaction(domain.Income)

	suite.mockLedgerService.On("PostTransaction",
		mock.Anything,
		mock.MatchedBy(func(req dto.PostTransactionRequest) bool {
			return req.Kind == "INCOME" && req.Category == "MATERIALS"
		}),
		"maria",
	).Return(expected, nil).Once()

	body := dto.PostTransactionRequest{
		Kind:     "INCOME",
		Category: "MATERIALS",
		IsDirect: true,
		Amount: dto.AmountRequest{
			Net:   decimal.NewFromInt(100000),
			Tax:   decimal.NewFromInt(19000),
			Total: decimal.NewFromInt(119000),
		},
		DocumentNumber: "F-1042",
		IssueDate:      expected.Tracking.IssueDate,
		DueDate:        expected.Tracking.DueDate,
	}
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", body, "maria")

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.Equal("INCOME", resp.Kind)
	suite.True(expected.Outstanding.Equal(resp.Outstanding))

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestPostTransaction_InvalidKind() {
	body := map[string]any{
		"kind":      "REFUND",
		"category":  "MATERIALS",
		"amount":    map[string]string{"net": "100", "total": "100"},
		"issueDate": "2025-03-10T00:00:00Z",
		"dueDate":   "2025-04-09T00:00:00Z",
	}
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", body, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "PostTransaction")
}

func (suite *LedgerHandlerTestSuite) TestGetTransaction_NotFound() {
	transactionID := uuid.NewString()
	suite.mockLedgerService.On("GetTransactionByID", mock.Anything, transactionID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/transactions/"+transactionID, nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListTransactions_Filters() {
	executionID := uuid.NewString()
	expected := []domain.Transaction{*sampleTransaction(domain.Expense)}

	suite.mockLedgerService.On("ListTransactions",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Kind == "EXPENSE" && p.ExecutionID != nil && *p.ExecutionID == executionID && p.UnpaidOnly
		}),
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/transactions?kind=EXPENSE&executionID=%s&unpaidOnly=true", executionID)
	w := suite.performRequest(http.MethodGet, url, nil, "")

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal(expected[0].TransactionID, resp[0].TransactionID)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestRegisterPayment_Success() {
	paid := sampleTransaction(domain.Income)
	paymentDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	paid.Tracking.Paid = true
	paid.Tracking.PaymentDate = &paymentDate
	paid.Outstanding = decimal.Zero

	suite.mockLedgerService.On("RegisterPayment",
		mock.Anything, paid.TransactionID, paymentDate, "system",
	).Return(paid, nil).Once()

	body := dto.RegisterPaymentRequest{PaymentDate: paymentDate}
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions/"+paid.TransactionID+"/payment", body, "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Tracking.Paid)
	suite.True(resp.Outstanding.IsZero())

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestIssueCreditNote_OverCredit() {
	req := dto.IssueCreditNoteRequest{
		InvoiceID: uuid.NewString(),
		Amount:    decimal.NewFromInt(500000),
		Reason:    "Course cancelled",
	}
	suite.mockLedgerService.On("IssueCreditNote", mock.Anything, req, "system").
		Return(nil, apperrors.ErrOverCredit).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/transactions/credit-notes", req, "")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
