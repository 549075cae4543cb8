package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/impresthq/imprest_backend/internal/apperrors"
	"github.com/impresthq/imprest_backend/internal/core/domain"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/dto"
)

type bankAccountService struct {
	accountRepo portsrepo.BankAccountRepository
	auditSvc    portssvc.AuditSvcFacade
}

// NewBankAccountService creates a new BankAccountService.
func NewBankAccountService(accountRepo portsrepo.BankAccountRepository, auditSvc portssvc.AuditSvcFacade) portssvc.BankAccountSvcFacade {
	return &bankAccountService{accountRepo: accountRepo, auditSvc: auditSvc}
}

var _ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)

func (s *bankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorUserID string) (*domain.BankAccount, error) {
	now := time.Now()
	account := domain.BankAccount{
		AccountID:     uuid.NewString(),
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
		BranchName:    req.BranchName,
		IsDefault:     req.IsDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveBankAccount(ctx, account); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, creatorUserID, domain.AuditCreate, "bank_account", account.AccountID, map[string]any{
		"bankName":  account.BankName,
		"isDefault": account.IsDefault,
	})
	return &account, nil
}

func (s *bankAccountService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	return s.accountRepo.ListBankAccounts(ctx)
}

// SetDefaultBankAccount promotes one account to default. The repository swaps
// the flag atomically so at most one default is ever observable.
func (s *bankAccountService) SetDefaultBankAccount(ctx context.Context, accountID string, actingUserID string) error {
	if err := s.accountRepo.SetDefaultBankAccount(ctx, accountID, actingUserID, time.Now()); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actingUserID, domain.AuditUpdate, "bank_account", accountID, map[string]any{"isDefault": true})
	return nil
}

func (s *bankAccountService) UpdateBankAccount(ctx context.Context, accountID string, req dto.UpdateBankAccountRequest, actingUserID string) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.BankName != nil {
		account.BankName = *req.BankName
		changes["bankName"] = *req.BankName
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
		changes["accountNumber"] = *req.AccountNumber
	}
	if req.IFSCCode != nil {
		account.IFSCCode = *req.IFSCCode
		changes["ifscCode"] = *req.IFSCCode
	}
	if req.BranchName != nil {
		account.BranchName = *req.BranchName
		changes["branchName"] = *req.BranchName
	}
	if len(changes) == 0 && req.IsDefault == nil {
		return account, nil
	}

	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = actingUserID

	if len(changes) > 0 {
		if err := s.accountRepo.UpdateBankAccount(ctx, *account); err != nil {
			return nil, err
		}
	}

	// Promotion goes through the atomic swap, not a plain column update.
	if req.IsDefault != nil && *req.IsDefault && !account.IsDefault {
		if err := s.accountRepo.SetDefaultBankAccount(ctx, accountID, actingUserID, time.Now()); err != nil {
			return nil, err
		}
		account.IsDefault = true
		changes["isDefault"] = true
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditUpdate, "bank_account", accountID, changes)
	return account, nil
}

// DeleteBankAccount removes an account. The default account cannot be
// deleted; promote another account first.
func (s *bankAccountService) DeleteBankAccount(ctx context.Context, accountID string, actingUserID string) error {
	account, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.IsDefault {
		return fmt.Errorf("%w: cannot delete the default bank account", apperrors.ErrConflict)
	}

	if err := s.accountRepo.DeleteBankAccount(ctx, accountID); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditDelete, "bank_account", accountID, map[string]any{"bankName": account.BankName})
	return nil
}

type expenseCategoryService struct {
	categoryRepo portsrepo.ExpenseCategoryRepository
	auditSvc     portssvc.AuditSvcFacade
}

// NewExpenseCategoryService creates a new ExpenseCategoryService.
func NewExpenseCategoryService(categoryRepo portsrepo.ExpenseCategoryRepository, auditSvc portssvc.AuditSvcFacade) portssvc.ExpenseCategorySvcFacade {
	return &expenseCategoryService{categoryRepo: categoryRepo, auditSvc: auditSvc}
}

var _ portssvc.ExpenseCategorySvcFacade = (*expenseCategoryService)(nil)

func (s *expenseCategoryService) CreateExpenseCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest, creatorUserID string) (*domain.ExpenseCategory, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	category := domain.ExpenseCategory{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveExpenseCategory(ctx, category); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, creatorUserID, domain.AuditCreate, "expense_category", category.CategoryID, map[string]any{"name": category.Name})
	return &category, nil
}

func (s *expenseCategoryService) GetExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	return s.categoryRepo.FindExpenseCategoryByID(ctx, categoryID)
}

func (s *expenseCategoryService) ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	return s.categoryRepo.ListExpenseCategories(ctx)
}

func (s *expenseCategoryService) UpdateExpenseCategory(ctx context.Context, categoryID string, req dto.UpdateExpenseCategoryRequest, actingUserID string) (*domain.ExpenseCategory, error) {
	category, err := s.categoryRepo.FindExpenseCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Name != nil {
		category.Name = *req.Name
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
		changes["description"] = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
		changes["isActive"] = *req.IsActive
	}
	if len(changes) == 0 {
		return category, nil
	}

	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = actingUserID

	if err := s.categoryRepo.UpdateExpenseCategory(ctx, *category); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditUpdate, "expense_category", categoryID, changes)
	return category, nil
}

// ToggleExpenseCategory flips the active flag. Inactive categories stay on
// historical transactions but are hidden from new-transaction pickers.
func (s *expenseCategoryService) ToggleExpenseCategory(ctx context.Context, categoryID string, actingUserID string) (*domain.ExpenseCategory, error) {
	category, err := s.categoryRepo.FindExpenseCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	category.IsActive = !category.IsActive
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = actingUserID

	if err := s.categoryRepo.UpdateExpenseCategory(ctx, *category); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditUpdate, "expense_category", categoryID, map[string]any{"isActive": category.IsActive})
	return category, nil
}

func (s *expenseCategoryService) DeleteExpenseCategory(ctx context.Context, categoryID string, actingUserID string) error {
	category, err := s.categoryRepo.FindExpenseCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteExpenseCategory(ctx, categoryID); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditDelete, "expense_category", categoryID, map[string]any{"name": category.Name})
	return nil
}
