package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/otecpro/otec_erp_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every PostgreSQL repository over one shared
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:      newPgxClientRepository(dbPool),
		CourseRepo:      newPgxCourseRepository(dbPool),
		InstructorRepo:  newPgxInstructorRepository(dbPool),
		QuoteRepo:       newPgxQuoteRepository(dbPool),
		ExecutionRepo:   newPgxExecutionRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AlertRepo:       newPgxAlertRepository(dbPool),
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
