package dto

import (
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// CreateBankAccountRequest defines the data for creating a bank account.
type CreateBankAccountRequest struct {
	BankName      string `json:"bankName" binding:"required,min=2"`
	AccountNumber string `json:"accountNumber" binding:"required,min=6"`
	IFSCCode      string `json:"ifscCode" binding:"required,min=5"`
	BranchName    string `json:"branchName" binding:"required,min=2"`
	IsDefault     bool   `json:"isDefault"`
}

// UpdateBankAccountRequest defines the edits allowed on a bank account.
type UpdateBankAccountRequest struct {
	BankName      *string `json:"bankName" binding:"omitempty,min=2"`
	AccountNumber *string `json:"accountNumber" binding:"omitempty,min=6"`
	IFSCCode      *string `json:"ifscCode" binding:"omitempty,min=5"`
	BranchName    *string `json:"branchName" binding:"omitempty,min=2"`
	IsDefault     *bool   `json:"isDefault"`
}

// BankAccountResponse is the public view of a bank account.
type BankAccountResponse struct {
	ID            string    `json:"id"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber"`
	IFSCCode      string    `json:"ifscCode"`
	BranchName    string    `json:"branchName"`
	IsDefault     bool      `json:"isDefault"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListBankAccountsResponse wraps a bank account listing.
type ListBankAccountsResponse struct {
	Accounts []BankAccountResponse `json:"accounts"`
}

// ToBankAccountResponse converts a domain.BankAccount to its DTO.
func ToBankAccountResponse(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:            a.AccountID,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		IFSCCode:      a.IFSCCode,
		BranchName:    a.BranchName,
		IsDefault:     a.IsDefault,
		CreatedAt:     a.CreatedAt,
	}
}

// ToListBankAccountsResponse converts a domain slice to the listing DTO.
func ToListBankAccountsResponse(accounts []domain.BankAccount) ListBankAccountsResponse {
	out := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToBankAccountResponse(&accounts[i])
	}
	return ListBankAccountsResponse{Accounts: out}
}

// CreateExpenseCategoryRequest defines the data for creating a category.
type CreateExpenseCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Description string `json:"description" binding:"omitempty,min=3"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateExpenseCategoryRequest defines the edits allowed on a category.
type UpdateExpenseCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2"`
	Description *string `json:"description" binding:"omitempty,min=3"`
	IsActive    *bool   `json:"isActive"`
}

// ExpenseCategoryResponse is the public view of an expense category.
type ExpenseCategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListExpenseCategoriesResponse wraps a category listing.
type ListExpenseCategoriesResponse struct {
	Categories []ExpenseCategoryResponse `json:"categories"`
}

// ToExpenseCategoryResponse converts a domain.ExpenseCategory to its DTO.
func ToExpenseCategoryResponse(c *domain.ExpenseCategory) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{
		ID:          c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ToListExpenseCategoriesResponse converts a domain slice to the listing DTO.
func ToListExpenseCategoriesResponse(categories []domain.ExpenseCategory) ListExpenseCategoriesResponse {
	out := make([]ExpenseCategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToExpenseCategoryResponse(&categories[i])
	}
	return ListExpenseCategoriesResponse{Categories: out}
}
