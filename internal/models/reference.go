package models

// BankAccount is the bank_accounts table row.
type BankAccount struct {
	AccountID     string `db:"account_id"`
	BankName      string `db:"bank_name"`
	AccountNumber string `db:"account_number"`
	IFSCCode      string `db:"ifsc_code"`
	BranchName    string `db:"branch_name"`
	IsDefault     bool   `db:"is_default"`
	AuditFields
}

// ExpenseCategory is the expense_categories table row.
type ExpenseCategory struct {
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
