package dto

import (
	"time"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QuoteItemRequest is one course line within a quote payload.
type QuoteItemRequest struct {
	CourseID    string          `json:"courseID" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	Headcount   int             `json:"headcount" binding:"required,gte=1"`
	DiscountPct decimal.Decimal `json:"discountPct"`
}

// CreateQuoteRequest defines the payload for creating a quote.
type CreateQuoteRequest struct {
	ClientID     string             `json:"clientID" binding:"required"`
	ContactID    string             `json:"contactID"`
	ValidityDays int                `json:"validityDays" binding:"required,gt=0"`
	Items        []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes        string             `json:"notes"`
}

// UpdateQuoteRequest defines the partial-update payload for a quote that is
// still Draft or Sent.
type UpdateQuoteRequest struct {
	ContactID    *string `json:"contactID,omitempty"`
	ValidityDays *int    `json:"validityDays,omitempty" binding:"omitempty,gt=0"`
	Notes        *string `json:"notes,omitempty"`
}

// TransitionQuoteRequest defines the payload for a status change.
type TransitionQuoteRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT SENT APPROVED REJECTED"`
}

// QuoteItemResponse is one quote line with its stored subtotal.
type QuoteItemResponse struct {
	CourseID    string          `json:"courseID"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Headcount   int             `json:"headcount"`
	DiscountPct decimal.Decimal `json:"discountPct"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	QuoteID      string              `json:"quoteID"`
	Number       string              `json:"number"`
	ClientID     string              `json:"clientID"`
	ContactID    string              `json:"contactID,omitempty"`
	IssueDate    time.Time           `json:"issueDate"`
	ValidityDays int                 `json:"validityDays"`
	Items        []QuoteItemResponse `json:"items"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes,omitempty"`
	ApprovalDate *time.Time          `json:"approvalDate,omitempty"`
	ExecutionID  *string             `json:"executionID,omitempty"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, len(q.Items))
	for i, item := range q.Items {
		items[i] = QuoteItemResponse{
			CourseID:    item.CourseID,
			UnitPrice:   item.UnitPrice,
			Headcount:   item.Headcount,
			DiscountPct: item.DiscountPct,
			Subtotal:    item.Subtotal,
		}
	}
	return QuoteResponse{
		QuoteID:      q.QuoteID,
		Number:       q.Number,
		ClientID:     q.ClientID,
		ContactID:    q.ContactID,
		IssueDate:    q.IssueDate,
		ValidityDays: q.ValidityDays,
		Items:        items,
		Subtotal:     q.Subtotal,
		Tax:          q.Tax,
		Total:        q.Total,
		Status:       string(q.Status),
		Notes:        q.Notes,
		ApprovalDate: q.ApprovalDate,
		ExecutionID:  q.ExecutionID,
	}
}

// ToQuoteResponses converts a slice of domain.Quote to responses.
func ToQuoteResponses(qs []domain.Quote) []QuoteResponse {
	responses := make([]QuoteResponse, len(qs))
	for i := range qs {
		responses[i] = ToQuoteResponse(&qs[i])
	}
	return responses
}
