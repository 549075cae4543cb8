package mapping

import (
	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/models"
)

func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		AccountID:     d.AccountID,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		IFSCCode:      d.IFSCCode,
		BranchName:    d.BranchName,
		IsDefault:     d.IsDefault,
		AuditFields:   toModelAuditFields(d.AuditFields),
	}
}

func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		AccountID:     m.AccountID,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		IFSCCode:      m.IFSCCode,
		BranchName:    m.BranchName,
		IsDefault:     m.IsDefault,
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}

func ToModelExpenseCategory(d domain.ExpenseCategory) models.ExpenseCategory {
	return models.ExpenseCategory{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

func ToDomainExpenseCategory(m models.ExpenseCategory) domain.ExpenseCategory {
	return domain.ExpenseCategory{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}
