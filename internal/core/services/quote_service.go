package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portsrepo "github.com/otecpro/otec_erp_backend/internal/core/ports/repositories"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/dto"
	"github.com/otecpro/otec_erp_backend/internal/utils/finance"
)

// quoteService provides commercial quote operations.
type quoteService struct {
	BaseService
	quoteRepo  portsrepo.QuoteRepository
	clientRepo portsrepo.ClientRepository
	courseRepo portsrepo.CourseRepository
}

// QuoteServiceOption is a functional option for configuring the quote service.
type QuoteServiceOption func(*quoteService)

// WithQuoteClock sets the clock used for issue dates and audit timestamps.
func WithQuoteClock(clock Clock) QuoteServiceOption {
	return func(s *quoteService) {
		s.Clock = clock
	}
}

// NewQuoteService creates a new quote service.
func NewQuoteService(
	quoteRepo portsrepo.QuoteRepository,
	clientRepo portsrepo.ClientRepository,
	courseRepo portsrepo.CourseRepository,
	options ...QuoteServiceOption,
) portssvc.QuoteSvcFacade {
	svc := &quoteService{
		quoteRepo:  quoteRepo,
		clientRepo: clientRepo,
		courseRepo: courseRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

// buildItem validates one line request and computes its stored subtotal.
func (s *quoteService) buildItem(ctx context.Context, req dto.QuoteItemRequest) (domain.QuoteItem, error) {
	if _, err := s.courseRepo.FindCourseByID(ctx, req.CourseID); err != nil {
		return domain.QuoteItem{}, fmt.Errorf("failed to find course %s: %w", req.CourseID, err)
	}
	if req.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return domain.QuoteItem{}, fmt.Errorf("%w: unit price must be positive", apperrors.ErrValidation)
	}
	if req.Headcount < 1 {
		return domain.QuoteItem{}, fmt.Errorf("%w: headcount must be at least 1", apperrors.ErrValidation)
	}
	if req.DiscountPct.IsNegative() || req.DiscountPct.GreaterThan(decimal.NewFromInt(100)) {
		return domain.QuoteItem{}, fmt.Errorf("%w: discount must be between 0 and 100", apperrors.ErrValidation)
	}
	return domain.QuoteItem{
		CourseID:    req.CourseID,
		UnitPrice:   req.UnitPrice,
		Headcount:   req.Headcount,
		DiscountPct: req.DiscountPct,
		Subtotal:    finance.ItemSubtotal(req.UnitPrice, req.Headcount, req.DiscountPct),
	}, nil
}

// CreateQuote builds a new Draft quote with computed totals and the next
// display number for the issue year.
func (s *quoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, creator string) (*domain.Quote, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", req.ClientID, err)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: a quote needs at least one item", apperrors.ErrValidation)
	}

	items := make([]domain.QuoteItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := s.buildItem(ctx, itemReq)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	subtotal, tax, total := finance.QuoteTotals(items)

	now := s.Now()
	seq, err := s.quoteRepo.NextQuoteSequence(ctx, now.Year())
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate quote sequence")
		return nil, fmt.Errorf("failed to allocate quote number: %w", err)
	}

	quote := domain.Quote{
		QuoteID:      uuid.NewString(),
		Number:       fmt.Sprintf("COT-%d-%03d", now.Year(), seq),
		ClientID:     req.ClientID,
		ContactID:    req.ContactID,
		IssueDate:    s.Today(),
		ValidityDays: req.ValidityDays,
		Items:        items,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        total,
		Status:       domain.QuoteDraft,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	if err := s.quoteRepo.SaveQuote(ctx, quote); err != nil {
		s.LogError(ctx, err, "Failed to save quote", slog.String("number", quote.Number))
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}

	s.LogInfo(ctx, "Quote created", slog.String("quote_id", quote.QuoteID), slog.String("number", quote.Number))
	return &quote, nil
}

// GetQuoteByID retrieves a single quote.
func (s *quoteService) GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}
	return quote, nil
}

// ListQuotes retrieves all quotes.
func (s *quoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.ListQuotes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list quotes")
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// UpdateQuote edits header fields while the quote is still mutable.
func (s *quoteService) UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, updater string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}
	if !quote.Status.IsMutable() {
		return nil, fmt.Errorf("%w: quote %s is %s and can no longer be edited", apperrors.ErrConflict, quoteID, quote.Status)
	}

	if req.ContactID != nil {
		quote.ContactID = *req.ContactID
	}
	if req.ValidityDays != nil {
		quote.ValidityDays = *req.ValidityDays
	}
	if req.Notes != nil {
		quote.Notes = *req.Notes
	}

	quote.LastUpdatedAt = s.Now()
	quote.LastUpdatedBy = updater

	if err := s.quoteRepo.UpdateQuote(ctx, *quote); err != nil {
		s.LogError(ctx, err, "Failed to update quote", slog.String("quote_id", quoteID))
		return nil, fmt.Errorf("failed to update quote: %w", err)
	}

	return quote, nil
}

// AddItem appends a line and recomputes the quote totals.
func (s *quoteService) AddItem(ctx context.Context, quoteID string, req dto.QuoteItemRequest, updater string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}
	if !quote.Status.IsMutable() {
		return nil, fmt.Errorf("%w: quote %s is %s and can no longer be edited", apperrors.ErrConflict, quoteID, quote.Status)
	}

	item, err := s.buildItem(ctx, req)
	if err != nil {
		return nil, err
	}
	quote.Items = append(quote.Items, item)
	quote.Subtotal, quote.Tax, quote.Total = finance.QuoteTotals(quote.Items)
	quote.LastUpdatedAt = s.Now()
	quote.LastUpdatedBy = updater

	if err := s.quoteRepo.UpdateQuote(ctx, *quote); err != nil {
		s.LogError(ctx, err, "Failed to add quote item", slog.String("quote_id", quoteID))
		return nil, fmt.Errorf("failed to add quote item: %w", err)
	}

	return quote, nil
}

// RemoveItem drops the line at index and recomputes the quote totals. The
// last remaining line cannot be removed.
func (s *quoteService) RemoveItem(ctx context.Context, quoteID string, index int, updater string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}
	if !quote.Status.IsMutable() {
		return nil, fmt.Errorf("%w: quote %s is %s and can no longer be edited", apperrors.ErrConflict, quoteID, quote.Status)
	}
	if index < 0 || index >= len(quote.Items) {
		return nil, fmt.Errorf("%w: item index %d out of range", apperrors.ErrValidation, index)
	}
	if len(quote.Items) == 1 {
		return nil, fmt.Errorf("%w: a quote needs at least one item", apperrors.ErrValidation)
	}

	quote.Items = append(quote.Items[:index], quote.Items[index+1:]...)
	quote.Subtotal, quote.Tax, quote.Total = finance.QuoteTotals(quote.Items)
	quote.LastUpdatedAt = s.Now()
	quote.LastUpdatedBy = updater

	if err := s.quoteRepo.UpdateQuote(ctx, *quote); err != nil {
		s.LogError(ctx, err, "Failed to remove quote item", slog.String("quote_id", quoteID))
		return nil, fmt.Errorf("failed to remove quote item: %w", err)
	}

	return quote, nil
}

// TransitionQuote applies a guarded status change. Approval is excluded: it
// spawns an execution, so it must go through ApproveQuote.
func (s *quoteService) TransitionQuote(ctx context.Context, quoteID string, target domain.QuoteStatus, updater string) (*domain.Quote, error) {
	if target == domain.QuoteApproved {
		return nil, fmt.Errorf("%w: approval must go through the approve operation", apperrors.ErrValidation)
	}

	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}
	if !quote.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: quote cannot go from %s to %s", apperrors.ErrInvalidTransition, quote.Status, target)
	}

	quote.Status = target
	quote.LastUpdatedAt = s.Now()
	quote.LastUpdatedBy = updater

	if err := s.quoteRepo.UpdateQuote(ctx, *quote); err != nil {
		s.LogError(ctx, err, "Failed to transition quote", slog.String("quote_id", quoteID))
		return nil, fmt.Errorf("failed to transition quote: %w", err)
	}

	s.LogInfo(ctx, "Quote transitioned", slog.String("quote_id", quoteID), slog.String("status", string(target)))
	return quote, nil
}

// ApproveQuote moves a Sent quote to Approved and spawns its execution for
// the first line's course. The execution starts with an empty schedule
// config (zero hours, no sessions) to be filled in later by operations.
// Both writes happen in one database transaction, and a quote that already
// carries an execution is never approved again.
func (s *quoteService) ApproveQuote(ctx context.Context, quoteID string, approver string) (*domain.Quote, *domain.Execution, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}
	if quote.ExecutionID != nil {
		return nil, nil, fmt.Errorf("%w: quote %s already has execution %s", apperrors.ErrConflict, quoteID, *quote.ExecutionID)
	}
	if !quote.Status.CanTransitionTo(domain.QuoteApproved) {
		return nil, nil, fmt.Errorf("%w: quote cannot go from %s to %s", apperrors.ErrInvalidTransition, quote.Status, domain.QuoteApproved)
	}

	now := s.Now()
	execution := domain.Execution{
		ExecutionID: uuid.NewString(),
		CourseID:    quote.Items[0].CourseID,
		ClientID:    quote.ClientID,
		ActionIDs:   []string{},
		Status:      domain.ExecutionPlanned,
		Config: domain.ExecutionConfig{
			Modality:   domain.ModalityOnSite,
			TotalHours: 0,
			Sessions:   []domain.Session{},
		},
		Participants:     []domain.Participant{},
		DirectCostTxnIDs: []string{},
		QuoteID:          &quote.QuoteID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     approver,
			LastUpdatedAt: now,
			LastUpdatedBy: approver,
		},
	}

	approvalDate := s.Today()
	quote.Status = domain.QuoteApproved
	quote.ApprovalDate = &approvalDate
	quote.ExecutionID = &execution.ExecutionID
	quote.LastUpdatedAt = now
	quote.LastUpdatedBy = approver

	if err := s.quoteRepo.ApproveQuoteWithExecution(ctx, *quote, execution); err != nil {
		s.LogError(ctx, err, "Failed to approve quote", slog.String("quote_id", quoteID))
		return nil, nil, fmt.Errorf("failed to approve quote: %w", err)
	}

	s.LogInfo(ctx, "Quote approved",
		slog.String("quote_id", quoteID),
		slog.String("execution_id", execution.ExecutionID))
	return quote, &execution, nil
}
