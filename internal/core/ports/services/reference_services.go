package services

import (
	"context"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/dto"
)

// BankAccountSvcFacade manages payout bank accounts.
type BankAccountSvcFacade interface {
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorUserID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
	SetDefaultBankAccount(ctx context.Context, accountID string, actingUserID string) error
	UpdateBankAccount(ctx context.Context, accountID string, req dto.UpdateBankAccountRequest, actingUserID string) (*domain.BankAccount, error)
	DeleteBankAccount(ctx context.Context, accountID string, actingUserID string) error
}

// ExpenseCategorySvcFacade manages expense categories.
type ExpenseCategorySvcFacade interface {
	CreateExpenseCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest, creatorUserID string) (*domain.ExpenseCategory, error)
	GetExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)
	ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	UpdateExpenseCategory(ctx context.Context, categoryID string, req dto.UpdateExpenseCategoryRequest, actingUserID string) (*domain.ExpenseCategory, error)
	ToggleExpenseCategory(ctx context.Context, categoryID string, actingUserID string) (*domain.ExpenseCategory, error)
	DeleteExpenseCategory(ctx context.Context, categoryID string, actingUserID string) error
}
