package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardCounts holds SQL-side aggregates for the landing page.
type DashboardCounts struct {
	ActiveExecutions  int
	OpenQuotes        int
	UnpaidIncome      decimal.Decimal
	UnpaidExpense     decimal.Decimal
	PendingSAGRecords int
}

// ReportingRepository defines read-only aggregate queries that are cheaper
// to run in the database than over hydrated domain objects.
type ReportingRepository interface {
	GetDashboardCounts(ctx context.Context) (*DashboardCounts, error)
}
