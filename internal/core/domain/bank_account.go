package domain

// BankAccount is a payout account. At most one account is the default.
type BankAccount struct {
	AccountID     string `json:"id"` // Primary Key (UUID)
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BranchName    string `json:"branchName"`
	IsDefault     bool   `json:"isDefault"`
	AuditFields
}
