package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one financial ledger row. Amount and tracking are
// flattened into columns.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	Kind           string          `db:"kind"`
	Category       string          `db:"category"`
	Subcategory    string          `db:"subcategory"`
	IsDirect       bool            `db:"is_direct"`
	ExecutionID    *string         `db:"execution_id"`
	ClientID       *string         `db:"client_id"`
	AmountNet      decimal.Decimal `db:"amount_net"`
	AmountTax      decimal.Decimal `db:"amount_tax"`
	AmountTotal    decimal.Decimal `db:"amount_total"`
	DocumentNumber string          `db:"document_number"`
	PDFURL         string          `db:"pdf_url"`
	VehiclePlate   string          `db:"vehicle_plate"`
	Odometer       *int64          `db:"odometer"`
	InvoiceRef     *string         `db:"invoice_ref"`
	Description    string          `db:"description"`
	IssueDate      time.Time       `db:"issue_date"`
	DueDate        time.Time       `db:"due_date"`
	PaymentDate    *time.Time      `db:"payment_date"`
	Paid           bool            `db:"paid"`
	Outstanding    decimal.Decimal `db:"outstanding"`
	AuditFields
}
