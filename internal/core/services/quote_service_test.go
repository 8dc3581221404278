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
type QuoteServiceTestSuite struct {
	suite.Suite
	mockQuoteRepo  *MockQuoteRepository
	mockClientRepo *MockClientRepository
	mockCourseRepo *MockCourseRepository
	service        portssvc.QuoteSvcFacade
	fixedNow       time.Time
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.mockQuoteRepo = new(MockQuoteRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockCourseRepo = new(MockCourseRepository)
	suite.fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	suite.service = services.NewQuoteService(
		suite.mockQuoteRepo,
		suite.mockClientRepo,
		suite.mockCourseRepo,
		services.WithQuoteClock(func() time.Time { return suite.fixedNow }),
	)
}

// --- Test Cases ---

func (suite *QuoteServiceTestSuite) TestCreateQuote_ComputesTotals() {
	ctx := context.Background()
	clientID := uuid.NewString()
	courseID := uuid.NewString()
	req := dto.CreateQuoteRequest{
		ClientID:     clientID,
		ValidityDays: 30,
		Items: []dto.QuoteItemRequest{{
			CourseID:    courseID,
			UnitPrice:   decimal.NewFromInt(85000),
			Headcount:   15,
			DiscountPct: decimal.NewFromInt(10),
		}},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, courseID).Return(&domain.Course{CourseID: courseID}, nil).Once()
	suite.mockQuoteRepo.On("NextQuoteSequence", ctx, 2025).Return(14, nil).Once()
	suite.mockQuoteRepo.On("SaveQuote", ctx, mock.MatchedBy(func(q domain.Quote) bool {
		return q.Status == domain.QuoteDraft && q.Number == "COT-2025-014"
	})).Return(nil).Once()

	quote, err := suite.service.CreateQuote(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(quote)
	// 85000 * 15 * 0.9 = 1147500, IVA 19% = 218025, total 1365525
	suite.True(quote.Subtotal.Equal(decimal.NewFromInt(1147500)), "subtotal was %s", quote.Subtotal)
	suite.True(quote.Tax.Equal(decimal.NewFromInt(218025)), "tax was %s", quote.Tax)
	suite.True(quote.Total.Equal(decimal.NewFromInt(1365525)), "total was %s", quote.Total)
	suite.Equal("COT-2025-014", quote.Number)
	suite.Equal(domain.QuoteDraft, quote.Status)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_InvalidDiscount() {
	ctx := context.Background()
	clientID := uuid.NewString()
	courseID := uuid.NewString()
	req := dto.CreateQuoteRequest{
		ClientID:     clientID,
		ValidityDays: 30,
		Items: []dto.QuoteItemRequest{{
			CourseID:    courseID,
			UnitPrice:   decimal.NewFromInt(50000),
			Headcount:   10,
			DiscountPct: decimal.NewFromInt(150),
		}},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, courseID).Return(&domain.Course{CourseID: courseID}, nil).Once()

	quote, err := suite.service.CreateQuote(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "SaveQuote")
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_UnknownClient() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.CreateQuoteRequest{
		ClientID:     clientID,
		ValidityDays: 30,
		Items: []dto.QuoteItemRequest{{
			CourseID:  uuid.NewString(),
			UnitPrice: decimal.NewFromInt(50000),
			Headcount: 5,
		}},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	quote, err := suite.service.CreateQuote(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *QuoteServiceTestSuite) TestTransitionQuote_DraftToSent() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	existing := &domain.Quote{QuoteID: quoteID, Status: domain.QuoteDraft}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockQuoteRepo.On("UpdateQuote", ctx, mock.MatchedBy(func(q domain.Quote) bool {
		return q.Status == domain.QuoteSent
	})).Return(nil).Once()

	quote, err := suite.service.TransitionQuote(ctx, quoteID, domain.QuoteSent, "tester")

	suite.Require().NoError(err)
	suite.Equal(domain.QuoteSent, quote.Status)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestTransitionQuote_RejectsApprovedTarget() {
	ctx := context.Background()
	quoteID := uuid.NewString()

	quote, err := suite.service.TransitionQuote(ctx, quoteID, domain.QuoteApproved, "tester")

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "FindQuoteByID")
}

func (suite *QuoteServiceTestSuite) TestTransitionQuote_InvalidTransition() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	existing := &domain.Quote{QuoteID: quoteID, Status: domain.QuoteRejected}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()

	quote, err := suite.service.TransitionQuote(ctx, quoteID, domain.QuoteSent, "tester")

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "UpdateQuote")
}

func (suite *QuoteServiceTestSuite) TestApproveQuote_SpawnsExecution() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	clientID := uuid.NewString()
	courseID := uuid.NewString()
	existing := &domain.Quote{
		QuoteID:  quoteID,
		ClientID: clientID,
		Status:   domain.QuoteSent,
		Items: []domain.QuoteItem{{
			CourseID:  courseID,
			UnitPrice: decimal.NewFromInt(85000),
			Headcount: 15,
			Subtotal:  decimal.NewFromInt(1147500),
		}},
	}
	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockQuoteRepo.On("ApproveQuoteWithExecution", ctx,
		mock.MatchedBy(func(q domain.Quote) bool {
			return q.Status == domain.QuoteApproved && q.ExecutionID != nil && q.ApprovalDate != nil
		}),
		mock.MatchedBy(func(e domain.Execution) bool {
			return e.CourseID == courseID && e.ClientID == clientID &&
				e.Status == domain.ExecutionPlanned &&
				e.QuoteID != nil && *e.QuoteID == quoteID
		}),
	).Return(nil).Once()

	quote, execution, err := suite.service.ApproveQuote(ctx, quoteID, "approver")

	suite.Require().NoError(err)
	suite.Require().NotNil(quote)
	suite.Require().NotNil(execution)
	suite.Equal(domain.QuoteApproved, quote.Status)
	suite.Require().NotNil(quote.ExecutionID)
	suite.Equal(execution.ExecutionID, *quote.ExecutionID)
	suite.Equal(0, execution.Config.TotalHours)
	suite.Equal(domain.ModalityOnSite, execution.Config.Modality)
	suite.Empty(execution.Config.Sessions)
	suite.Empty(execution.SenceCode)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestApproveQuote_OnlyOnce() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	executionID := uuid.NewString()
	existing := &domain.Quote{
		QuoteID:     quoteID,
		Status:      domain.QuoteApproved,
		ExecutionID: &executionID,
	}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()

	quote, execution, err := suite.service.ApproveQuote(ctx, quoteID, "approver")

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.Nil(execution)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "ApproveQuoteWithExecution")
}

func (suite *QuoteServiceTestSuite) TestApproveQuote_DraftNotApprovable() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	existing := &domain.Quote{QuoteID: quoteID, Status: domain.QuoteDraft}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()

	quote, execution, err := suite.service.ApproveQuote(ctx, quoteID, "approver")

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.Nil(execution)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *QuoteServiceTestSuite) TestAddItem_RecomputesTotals() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	courseID := uuid.NewString()
	existing := &domain.Quote{
		QuoteID: quoteID,
		Status:  domain.QuoteDraft,
		Items: []domain.QuoteItem{{
			CourseID: uuid.NewString(),
			Subtotal: decimal.NewFromInt(500000),
		}},
	}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()
	suite.mockCourseRepo.On("FindCourseByID", ctx, courseID).Return(&domain.Course{CourseID: courseID}, nil).Once()
	suite.mockQuoteRepo.On("UpdateQuote", ctx, mock.AnythingOfType("domain.Quote")).Return(nil).Once()

	quote, err := suite.service.AddItem(ctx, quoteID, dto.QuoteItemRequest{
		CourseID:  courseID,
		UnitPrice: decimal.NewFromInt(100000),
		Headcount: 2,
	}, "tester")

	suite.Require().NoError(err)
	suite.Len(quote.Items, 2)
	suite.True(quote.Subtotal.Equal(decimal.NewFromInt(700000)), "subtotal was %s", quote.Subtotal)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestAddItem_ImmutableAfterApproval() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	existing := &domain.Quote{QuoteID: quoteID, Status: domain.QuoteApproved}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()

	quote, err := suite.service.AddItem(ctx, quoteID, dto.QuoteItemRequest{
		CourseID:  uuid.NewString(),
		UnitPrice: decimal.NewFromInt(100000),
		Headcount: 1,
	}, "tester")

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "UpdateQuote")
}

func (suite *QuoteServiceTestSuite) TestRemoveItem_LastItemRejected() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	existing := &domain.Quote{
		QuoteID: quoteID,
		Status:  domain.QuoteDraft,
		Items:   []domain.QuoteItem{{CourseID: uuid.NewString()}},
	}

	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(existing, nil).Once()

	quote, err := suite.service.RemoveItem(ctx, quoteID, 0, "tester")

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "UpdateQuote")
}

// --- Run Suite ---
func TestQuoteService(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
