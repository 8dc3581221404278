package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExecutionMargin is the profitability of a single execution: income net of
// credit notes, minus direct costs.
type ExecutionMargin struct {
	ExecutionID string          `json:"executionID"`
	CourseName  string          `json:"courseName,omitempty"` // Joined at read time; empty if the course is gone
	ClientName  string          `json:"clientName,omitempty"`
	NetIncome   decimal.Decimal `json:"netIncome"`   // Income net amounts minus credit note net amounts
	DirectCosts decimal.Decimal `json:"directCosts"` // Direct expense net amounts
	GrossMargin decimal.Decimal `json:"grossMargin"`
	MarginPct   decimal.Decimal `json:"marginPct"` // Zero when NetIncome is not positive
}

// ProfitAndLoss is the organization-wide income statement for a date range.
type ProfitAndLoss struct {
	From               time.Time       `json:"from"`
	To                 time.Time       `json:"to"`
	NetIncome          decimal.Decimal `json:"netIncome"`
	DirectCosts        decimal.Decimal `json:"directCosts"`
	ContributionMargin decimal.Decimal `json:"contributionMargin"`
	IndirectCosts      decimal.Decimal `json:"indirectCosts"`
	NetProfit          decimal.Decimal `json:"netProfit"`
	ProfitPct          decimal.Decimal `json:"profitPct"` // Zero when NetIncome is not positive
}

// CashFlowDay is one day of the cash-flow projection. Projected columns sum
// unpaid transactions due that day; actual columns sum payments registered
// that day.
type CashFlowDay struct {
	Date             time.Time       `json:"date"`
	ProjectedIncome  decimal.Decimal `json:"projectedIncome"`
	ActualIncome     decimal.Decimal `json:"actualIncome"`
	ProjectedExpense decimal.Decimal `json:"projectedExpense"`
	ActualExpense    decimal.Decimal `json:"actualExpense"`
	ProjectedBalance decimal.Decimal `json:"projectedBalance"`
	ActualBalance    decimal.Decimal `json:"actualBalance"`
}

// DashboardSummary feeds the landing-page KPI cards.
type DashboardSummary struct {
	ActiveExecutions  int             `json:"activeExecutions"`
	OpenQuotes        int             `json:"openQuotes"` // Draft or Sent
	UnpaidIncome      decimal.Decimal `json:"unpaidIncome"`
	UnpaidExpense     decimal.Decimal `json:"unpaidExpense"`
	PendingSAGRecords int             `json:"pendingSAGRecords"`
}
