package domain

// ExpenseCategory classifies expense transactions.
type ExpenseCategory struct {
	CategoryID  string `json:"id"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
