package repositories

// RepositoryProvider aggregates every repository implementation so wiring
// code can pass them around as one unit.
type RepositoryProvider struct {
	ClientRepo      ClientRepository
	CourseRepo      CourseRepository
	InstructorRepo  InstructorRepository
	QuoteRepo       QuoteRepository
	ExecutionRepo   ExecutionRepository
	TransactionRepo TransactionRepository
	AlertRepo       AlertRepository
	ReportingRepo   ReportingRepository
}
