package repositories

import (
	"context"
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// BankAccountRepository persists bank accounts.
type BankAccountRepository interface {
	// SaveBankAccount inserts the account; when account.IsDefault is set, all
	// other defaults are unset in the same database transaction.
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
	SetDefaultBankAccount(ctx context.Context, accountID string, userID string, now time.Time) error
	UpdateBankAccount(ctx context.Context, account domain.BankAccount) error
	DeleteBankAccount(ctx context.Context, accountID string) error
}

// ExpenseCategoryRepository persists expense categories.
type ExpenseCategoryRepository interface {
	SaveExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error
	FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)
	ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	UpdateExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error
	DeleteExpenseCategory(ctx context.Context, categoryID string) error
}
