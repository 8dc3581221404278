package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote represents a quote header row.
type Quote struct {
	QuoteID      string          `db:"quote_id"`
	Number       string          `db:"number"`
	ClientID     string          `db:"client_id"`
	ContactID    string          `db:"contact_id"`
	IssueDate    time.Time       `db:"issue_date"`
	ValidityDays int             `db:"validity_days"`
	Subtotal     decimal.Decimal `db:"subtotal"`
	Tax          decimal.Decimal `db:"tax"`
	Total        decimal.Decimal `db:"total"`
	Status       string          `db:"status"`
	Notes        string          `db:"notes"`
	ApprovalDate *time.Time      `db:"approval_date"`
	ExecutionID  *string         `db:"execution_id"`
	AuditFields
}

// QuoteItem represents one line row under a quote. LineNo preserves the
// display order.
type QuoteItem struct {
	QuoteID     string          `db:"quote_id"`
	LineNo      int             `db:"line_no"`
	CourseID    string          `db:"course_id"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Headcount   int             `db:"headcount"`
	DiscountPct decimal.Decimal `db:"discount_pct"`
	Subtotal    decimal.Decimal `db:"subtotal"`
}
