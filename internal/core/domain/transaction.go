package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes ledger entries.
type TransactionKind string

const (
	Income     TransactionKind = "INCOME"
	Expense    TransactionKind = "EXPENSE"
	CreditNote TransactionKind = "CREDIT_NOTE"
)

// TransactionCategory classifies a ledger entry. Honoraria through Fuel are
// typically direct (attributable to one execution); Salaries through Other
// are typically indirect overhead. The IsDirect flag on the transaction is
// authoritative, the category is descriptive.
type TransactionCategory string

const (
	CategoryHonoraria  TransactionCategory = "HONORARIA"
	CategoryMaterials  TransactionCategory = "MATERIALS"
	CategoryPerDiem    TransactionCategory = "PER_DIEM"
	CategoryCatering   TransactionCategory = "CATERING"
	CategoryTransport  TransactionCategory = "TRANSPORT"
	CategoryRoomRental TransactionCategory = "ROOM_RENTAL"
	CategoryFuel       TransactionCategory = "FUEL"
	CategorySalaries   TransactionCategory = "SALARIES"
	CategoryOfficeRent TransactionCategory = "OFFICE_RENT"
	CategorySupplies   TransactionCategory = "SUPPLIES"
	CategoryOther      TransactionCategory = "OTHER"
)

// Amount holds the net/tax/total breakdown of a transaction.
// Invariant at creation: Total = Net + Tax.
type Amount struct {
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
	Total decimal.Decimal `json:"total"`
}

// TransactionMetadata carries supporting document details.
type TransactionMetadata struct {
	DocumentNumber string  `json:"documentNumber,omitempty"`
	PDFURL         string  `json:"pdfURL,omitempty"`
	VehiclePlate   string  `json:"vehiclePlate,omitempty"` // Fuel expenses only
	Odometer       *int64  `json:"odometer,omitempty"`     // Fuel expenses only
	InvoiceRef     *string `json:"invoiceRef,omitempty"`   // Credit notes: the original income transaction
	Description    string  `json:"description,omitempty"`
}

// PaymentTracking records the payable/receivable lifecycle of a transaction.
type PaymentTracking struct {
	IssueDate   time.Time  `json:"issueDate"`
	DueDate     time.Time  `json:"dueDate"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	Paid        bool       `json:"paid"`
}

// Transaction is one entry in the financial ledger. The ledger is append-only:
// entries are settled in place (paid flag, outstanding balance) but never
// removed by business logic.
type Transaction struct {
	TransactionID string              `json:"transactionID"` // Primary Key (UUID)
	Kind          TransactionKind     `json:"kind"`
	Category      TransactionCategory `json:"category"`
	Subcategory   string              `json:"subcategory,omitempty"`
	IsDirect      bool                `json:"isDirect"`              // Attributable to a single execution
	ExecutionID   *string             `json:"executionID,omitempty"` // Direct-cost / income linkage
	ClientID      *string             `json:"clientID,omitempty"`
	Amount        Amount              `json:"amount"`
	Metadata      TransactionMetadata `json:"metadata"`
	Tracking      PaymentTracking     `json:"tracking"`
	Outstanding   decimal.Decimal     `json:"outstanding"` // Remaining balance; zero for credit notes
	AuditFields
}
