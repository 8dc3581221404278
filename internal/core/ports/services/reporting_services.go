package services

import (
	"context"
	"time"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
)

// ReportingSvcFacade defines the derived financial reads. None of these
// mutate state.
type ReportingSvcFacade interface {
	// MarginForExecution computes income net of credit notes minus direct
	// costs for one execution. The percentage is zero when net income is
	// not positive.
	MarginForExecution(ctx context.Context, executionID string) (*domain.ExecutionMargin, error)
	// MarginByExecution computes the margin report for every execution.
	MarginByExecution(ctx context.Context) ([]domain.ExecutionMargin, error)
	// ProfitAndLoss aggregates the ledger over [from, to] by issue date.
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLoss, error)
	// CashFlowProjection returns one row per day for the next `days` days
	// starting today.
	CashFlowProjection(ctx context.Context, days int) ([]domain.CashFlowDay, error)
	// DashboardSummary returns the landing-page KPI aggregates.
	DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
