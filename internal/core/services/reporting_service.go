package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portsrepo "github.com/otecpro/otec_erp_backend/internal/core/ports/repositories"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
	"github.com/otecpro/otec_erp_backend/internal/utils/finance"
)

// reportingService derives financial reports from the ledger. The sums run
// in Go over repository reads so every formula is unit-testable with mocks.
type reportingService struct {
	BaseService
	txnRepo       portsrepo.TransactionRepository
	executionRepo portsrepo.ExecutionRepository
	courseRepo    portsrepo.CourseRepository
	clientRepo    portsrepo.ClientRepository
	reportingRepo portsrepo.ReportingRepository
}

// ReportingServiceOption is a functional option for configuring the reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingClock sets the clock anchoring the cash-flow projection.
func WithReportingClock(clock Clock) ReportingServiceOption {
	return func(s *reportingService) {
		s.Clock = clock
	}
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	txnRepo portsrepo.TransactionRepository,
	executionRepo portsrepo.ExecutionRepository,
	courseRepo portsrepo.CourseRepository,
	clientRepo portsrepo.ClientRepository,
	reportingRepo portsrepo.ReportingRepository,
	options ...ReportingServiceOption,
) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		txnRepo:       txnRepo,
		executionRepo: executionRepo,
		courseRepo:    courseRepo,
		clientRepo:    clientRepo,
		reportingRepo: reportingRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// marginFromTransactions folds one execution's ledger entries into a margin.
func marginFromTransactions(txns []domain.Transaction) (netIncome, directCosts, grossMargin, marginPct decimal.Decimal) {
	income := decimal.Zero
	credits := decimal.Zero
	directCosts = decimal.Zero
	for _, t := range txns {
		switch t.Kind {
		case domain.Income:
			income = income.Add(t.Amount.Net)
		case domain.CreditNote:
			credits = credits.Add(t.Amount.Net)
		case domain.Expense:
			if t.IsDirect {
				directCosts = directCosts.Add(t.Amount.Net)
			}
		}
	}
	netIncome = income.Sub(credits)
	grossMargin = netIncome.Sub(directCosts)
	marginPct = finance.Percentage(grossMargin, netIncome)
	return netIncome, directCosts, grossMargin, marginPct
}

// MarginForExecution computes the profitability of one execution.
func (s *reportingService) MarginForExecution(ctx context.Context, executionID string) (*domain.ExecutionMargin, error) {
	execution, err := s.executionRepo.FindExecutionByID(ctx, executionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find execution %s: %w", executionID, err)
	}

	txns, err := s.txnRepo.ListTransactionsByExecution(ctx, executionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load execution transactions")
		return nil, fmt.Errorf("failed to load transactions for execution %s: %w", executionID, err)
	}

	margin := &domain.ExecutionMargin{ExecutionID: executionID}
	margin.NetIncome, margin.DirectCosts, margin.GrossMargin, margin.MarginPct = marginFromTransactions(txns)

	// The joined names are cosmetic; a missing catalog row must not sink
	// the report.
	if course, err := s.courseRepo.FindCourseByID(ctx, execution.CourseID); err == nil {
		margin.CourseName = course.Name
	}
	if client, err := s.clientRepo.FindClientByID(ctx, execution.ClientID); err == nil {
		margin.ClientName = client.LegalName
	}

	return margin, nil
}

// MarginByExecution computes the margin report for every execution.
func (s *reportingService) MarginByExecution(ctx context.Context) ([]domain.ExecutionMargin, error) {
	executions, err := s.executionRepo.ListExecutions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list executions")
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	margins := make([]domain.ExecutionMargin, 0, len(executions))
	for _, execution := range executions {
		margin, err := s.MarginForExecution(ctx, execution.ExecutionID)
		if err != nil {
			return nil, err
		}
		margins = append(margins, *margin)
	}
	return margins, nil
}

// ProfitAndLoss aggregates the ledger over [from, to] by issue date.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLoss, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end precedes its start", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.ListTransactionsByIssueDate(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for period")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	income := decimal.Zero
	credits := decimal.Zero
	directCosts := decimal.Zero
	indirectCosts := decimal.Zero
	for _, t := range txns {
		switch t.Kind {
		case domain.Income:
			income = income.Add(t.Amount.Net)
		case domain.CreditNote:
			credits = credits.Add(t.Amount.Net)
		case domain.Expense:
			if t.IsDirect {
				directCosts = directCosts.Add(t.Amount.Net)
			} else {
				indirectCosts = indirectCosts.Add(t.Amount.Net)
			}
		}
	}

	netIncome := income.Sub(credits)
	contribution := netIncome.Sub(directCosts)
	netProfit := contribution.Sub(indirectCosts)

	return &domain.ProfitAndLoss{
		From:               from,
		To:                 to,
		NetIncome:          netIncome,
		DirectCosts:        directCosts,
		ContributionMargin: contribution,
		IndirectCosts:      indirectCosts,
		NetProfit:          netProfit,
		ProfitPct:          finance.Percentage(netProfit, netIncome),
	}, nil
}

// sameDay compares calendar dates ignoring the time of day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CashFlowProjection returns one row per day for the next `days` days starting
// today. Projected columns sum unpaid gross totals due that day; actual
// columns sum gross totals of payments registered that day.
func (s *reportingService) CashFlowProjection(ctx context.Context, days int) ([]domain.CashFlowDay, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: projection needs at least one day", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	today := s.Today()
	flow := make([]domain.CashFlowDay, 0, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i)
		day := domain.CashFlowDay{
			Date:             date,
			ProjectedIncome:  decimal.Zero,
			ActualIncome:     decimal.Zero,
			ProjectedExpense: decimal.Zero,
			ActualExpense:    decimal.Zero,
		}

		for _, t := range txns {
			if t.Kind == domain.CreditNote {
				continue
			}
			if !t.Tracking.Paid && sameDay(t.Tracking.DueDate, date) {
				switch t.Kind {
				case domain.Income:
					day.ProjectedIncome = day.ProjectedIncome.Add(t.Amount.Total)
				case domain.Expense:
					day.ProjectedExpense = day.ProjectedExpense.Add(t.Amount.Total)
				}
			}
			if t.Tracking.Paid && t.Tracking.PaymentDate != nil && sameDay(*t.Tracking.PaymentDate, date) {
				switch t.Kind {
				case domain.Income:
					day.ActualIncome = day.ActualIncome.Add(t.Amount.Total)
				case domain.Expense:
					day.ActualExpense = day.ActualExpense.Add(t.Amount.Total)
				}
			}
		}

		day.ProjectedBalance = day.ProjectedIncome.Sub(day.ProjectedExpense)
		day.ActualBalance = day.ActualIncome.Sub(day.ActualExpense)
		flow = append(flow, day)
	}

	return flow, nil
}

// DashboardSummary returns the landing-page KPI aggregates. The counting runs
// in SQL.
func (s *reportingService) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	counts, err := s.reportingRepo.GetDashboardCounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load dashboard counts")
		return nil, fmt.Errorf("failed to load dashboard counts: %w", err)
	}
	return &domain.DashboardSummary{
		ActiveExecutions:  counts.ActiveExecutions,
		OpenQuotes:        counts.OpenQuotes,
		UnpaidIncome:      counts.UnpaidIncome,
		UnpaidExpense:     counts.UnpaidExpense,
		PendingSAGRecords: counts.PendingSAGRecords,
	}, nil
}
