package services

import (
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/platform/mail"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, mailer mail.Mailer) *portssvc.ServiceContainer {
	auditSvc := NewAuditService(repos.AuditRepo)

	return &portssvc.ServiceContainer{
		OrderSeries:     NewOrderSeriesService(repos.OrderSeriesRepo, auditSvc),
		SenderSeries:    NewSenderSeriesService(repos.SenderSeriesRepo, auditSvc),
		Order:           NewOrderService(repos.OrderRepo, auditSvc),
		SubOrder:        NewSubOrderService(repos.SubOrderRepo, repos.OrderRepo, auditSvc),
		Transaction:     NewTransactionService(repos.TransactionRepo, repos.SenderSeriesRepo, repos.UserRepo, auditSvc),
		Ledger:          NewLedgerService(repos.TransactionRepo, repos.UserRepo),
		User:            NewUserService(repos.UserRepo, mailer, auditSvc),
		BankAccount:     NewBankAccountService(repos.BankAccountRepo, auditSvc),
		ExpenseCategory: NewExpenseCategoryService(repos.ExpenseCategoryRepo, auditSvc),
		Audit:           auditSvc,
	}
}
