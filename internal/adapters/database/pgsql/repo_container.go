package pgsql

import (
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository against one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		OrderSeriesRepo:     NewPgxOrderSeriesRepository(pool),
		SenderSeriesRepo:    NewPgxSenderSeriesRepository(pool),
		OrderRepo:           NewPgxOrderRepository(pool),
		SubOrderRepo:        NewPgxSubOrderRepository(pool),
		TransactionRepo:     NewPgxTransactionRepository(pool),
		UserRepo:            NewPgxUserRepository(pool),
		BankAccountRepo:     NewPgxBankAccountRepository(pool),
		ExpenseCategoryRepo: NewPgxExpenseCategoryRepository(pool),
		AuditRepo:           NewPgxAuditRepository(pool),
	}
}
