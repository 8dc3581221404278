package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/otecpro/otec_erp_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetDashboardCounts computes the landing-page aggregates in one round trip.
func (r *PgxReportingRepository) GetDashboardCounts(ctx context.Context) (*portsrepo.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM executions WHERE status IN ('PLANNED', 'IN_PROGRESS')),
			(SELECT COUNT(*) FROM quotes WHERE status IN ('DRAFT', 'SENT')),
			(SELECT COALESCE(SUM(outstanding), 0) FROM transactions WHERE kind = 'INCOME' AND paid = FALSE),
			(SELECT COALESCE(SUM(outstanding), 0) FROM transactions WHERE kind = 'EXPENSE' AND paid = FALSE),
			(SELECT COUNT(*) FROM execution_participants WHERE sag_status IN ('PENDING', 'INCOMPLETE'));
	`
	var counts portsrepo.DashboardCounts
	err := r.Pool.QueryRow(ctx, query).Scan(
		&counts.ActiveExecutions,
		&counts.OpenQuotes,
		&counts.UnpaidIncome,
		&counts.UnpaidExpense,
		&counts.PendingSAGRecords,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard counts: %w", err)
	}
	return &counts, nil
}
