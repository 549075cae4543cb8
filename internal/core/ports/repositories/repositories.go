package repositories

// RepositoryProvider bundles every repository implementation so wiring can
// pass one value around.
type RepositoryProvider struct {
	OrderSeriesRepo     OrderSeriesRepository
	SenderSeriesRepo    SenderSeriesRepository
	OrderRepo           OrderRepository
	SubOrderRepo        SubOrderRepository
	TransactionRepo     TransactionRepository
	UserRepo            UserRepository
	BankAccountRepo     BankAccountRepository
	ExpenseCategoryRepo ExpenseCategoryRepository
	AuditRepo           AuditRepository
}
