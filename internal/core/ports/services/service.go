package services

// ServiceContainer aggregates every service facade so the HTTP layer can be
// wired from one unit.
type ServiceContainer struct {
	Client     ClientSvcFacade
	Course     CourseSvcFacade
	Instructor InstructorSvcFacade
	Quote      QuoteSvcFacade
	Execution  ExecutionSvcFacade
	Ledger     LedgerSvcFacade
	Reporting  ReportingSvcFacade
	Alert      AlertSvcFacade
}
