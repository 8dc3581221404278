package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IVARate is the Chilean value-added tax rate applied to quote subtotals
// and invoice net amounts.
var IVARate = decimal.NewFromFloat(0.19)

// QuoteStatus indicates the commercial state of a quote.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "DRAFT"
	QuoteSent     QuoteStatus = "SENT"
	QuoteApproved QuoteStatus = "APPROVED"
	QuoteRejected QuoteStatus = "REJECTED"
)

// quoteTransitions is the allowed transition table. Approved and Rejected
// are terminal.
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteDraft: {QuoteSent, QuoteRejected},
	QuoteSent:  {QuoteApproved, QuoteRejected},
}

// CanTransitionTo reports whether a status change from s to target is allowed.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	for _, allowed := range quoteTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsMutable reports whether a quote in this status may still be edited.
func (s QuoteStatus) IsMutable() bool {
	return s == QuoteDraft || s == QuoteSent
}

// QuoteItem is one course line within a quote. Subtotal is stored, not
// recomputed on read: unitPrice * headcount * (1 - discountPct/100).
type QuoteItem struct {
	CourseID    string          `json:"courseID"`
	UnitPrice   decimal.Decimal `json:"unitPrice"` // Net price per participant
	Headcount   int             `json:"headcount"`
	DiscountPct decimal.Decimal `json:"discountPct"` // 0..100
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Quote is a priced commercial proposal sent to a client.
type Quote struct {
	QuoteID      string          `json:"quoteID"` // Primary Key (UUID)
	Number       string          `json:"number"`  // Human-readable, e.g. COT-2025-014
	ClientID     string          `json:"clientID"`
	ContactID    string          `json:"contactID,omitempty"`
	IssueDate    time.Time       `json:"issueDate"`
	ValidityDays int             `json:"validityDays"`
	Items        []QuoteItem     `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"` // IVA over the subtotal
	Total        decimal.Decimal `json:"total"`
	Status       QuoteStatus     `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	ApprovalDate *time.Time      `json:"approvalDate,omitempty"`
	ExecutionID  *string         `json:"executionID,omitempty"` // Set once on approval
	AuditFields
}
