package services

import (
	portsrepo "github.com/otecpro/otec_erp_backend/internal/core/ports/repositories"
	portssvc "github.com/otecpro/otec_erp_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies. The clock is shared so reports and audit stamps agree on "now".
func NewServiceContainer(repos portsrepo.RepositoryProvider, clock Clock) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo, WithClientClock(clock))
	container.Course = NewCourseService(repos.CourseRepo, WithCourseClock(clock))
	container.Instructor = NewInstructorService(repos.InstructorRepo, WithInstructorClock(clock))

	container.Quote = NewQuoteService(
		repos.QuoteRepo,
		repos.ClientRepo,
		repos.CourseRepo,
		WithQuoteClock(clock),
	)
	container.Execution = NewExecutionService(
		repos.ExecutionRepo,
		repos.CourseRepo,
		repos.ClientRepo,
		WithExecutionClock(clock),
	)
	container.Ledger = NewLedgerService(
		repos.TransactionRepo,
		repos.ExecutionRepo,
		repos.ClientRepo,
		WithLedgerClock(clock),
	)
	container.Reporting = NewReportingService(
		repos.TransactionRepo,
		repos.ExecutionRepo,
		repos.CourseRepo,
		repos.ClientRepo,
		repos.ReportingRepo,
		WithReportingClock(clock),
	)
	container.Alert = NewAlertService(repos.AlertRepo, WithAlertClock(clock))

	return container
}
