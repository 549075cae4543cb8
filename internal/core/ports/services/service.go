package services

// ServiceContainer holds instances of all the application services. It is the
// main entry point for accessing service functionality, particularly in the
// handlers.
type ServiceContainer struct {
	OrderSeries     OrderSeriesSvcFacade
	SenderSeries    SenderSeriesSvcFacade
	Order           OrderSvcFacade
	SubOrder        SubOrderSvcFacade
	Transaction     TransactionSvcFacade
	Ledger          LedgerSvcFacade
	User            UserSvcFacade
	BankAccount     BankAccountSvcFacade
	ExpenseCategory ExpenseCategorySvcFacade
	Audit           AuditSvcFacade
}
