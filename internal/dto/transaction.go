package dto

import (
	"time"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountRequest is the net/tax/total breakdown of a posted transaction.
type AmountRequest struct {
	Net   decimal.Decimal `json:"net" binding:"required"`
	Tax   decimal.Decimal `json:"tax"`
	Total decimal.Decimal `json:"total" binding:"required"`
}

// PostTransactionRequest defines the payload for appending a ledger entry.
type PostTransactionRequest struct {
	Kind           string        `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Category       string        `json:"category" binding:"required"`
	Subcategory    string        `json:"subcategory"`
	IsDirect       bool          `json:"isDirect"`
	ExecutionID    *string       `json:"executionID"`
	ClientID       *string       `json:"clientID"`
	Amount         AmountRequest `json:"amount" binding:"required"`
	DocumentNumber string        `json:"documentNumber"`
	PDFURL         string        `json:"pdfURL" binding:"omitempty,url"`
	VehiclePlate   string        `json:"vehiclePlate"`
	Odometer       *int64        `json:"odometer"`
	Description    string        `json:"description"`
	IssueDate      time.Time     `json:"issueDate" binding:"required"`
	DueDate        time.Time     `json:"dueDate" binding:"required"`
}

// RegisterPaymentRequest defines the payload for settling a transaction.
type RegisterPaymentRequest struct {
	PaymentDate time.Time `json:"paymentDate" binding:"required"`
}

// IssueCreditNoteRequest defines the payload for crediting an income invoice.
type IssueCreditNoteRequest struct {
	InvoiceID string          `json:"invoiceID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"` // Tax-inclusive
	Reason    string          `json:"reason" binding:"required"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string                     `json:"transactionID"`
	Kind          string                     `json:"kind"`
	Category      string                     `json:"category"`
	Subcategory   string                     `json:"subcategory,omitempty"`
	IsDirect      bool                       `json:"isDirect"`
	ExecutionID   *string                    `json:"executionID,omitempty"`
	ClientID      *string                    `json:"clientID,omitempty"`
	Amount        domain.Amount              `json:"amount"`
	Metadata      domain.TransactionMetadata `json:"metadata"`
	Tracking      domain.PaymentTracking     `json:"tracking"`
	Outstanding   decimal.Decimal            `json:"outstanding"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Kind:          string(t.Kind),
		Category:      string(t.Category),
		Subcategory:   t.Subcategory,
		IsDirect:      t.IsDirect,
		ExecutionID:   t.ExecutionID,
		ClientID:      t.ClientID,
		Amount:        t.Amount,
		Metadata:      t.Metadata,
		Tracking:      t.Tracking,
		Outstanding:   t.Outstanding,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to responses.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(ts))
	for i := range ts {
		responses[i] = ToTransactionResponse(&ts[i])
	}
	return responses
}

// ListTransactionsParams carries optional ledger list filters.
type ListTransactionsParams struct {
	Kind        string  `form:"kind" binding:"omitempty,oneof=INCOME EXPENSE CREDIT_NOTE"`
	ExecutionID *string `form:"executionID"`
	ClientID    *string `form:"clientID"`
	UnpaidOnly  bool    `form:"unpaidOnly"`
}
