package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes fund advances from recorded spending.
type TransactionType string

const (
	Imprest TransactionType = "IMPREST"
	Expense TransactionType = "EXPENSE"
)

// PaymentMethod indicates how money moved.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentBank PaymentMethod = "BANK"
)

// TransactionStatus indicates the approval state of a transaction.
type TransactionStatus string

const (
	TxnPending  TransactionStatus = "PENDING"
	TxnApproved TransactionStatus = "APPROVED"
	TxnRejected TransactionStatus = "REJECTED"
)

// ExpenseReceiverID is the sentinel receiver for EXPENSE transactions, which
// pay out of the system rather than to another user.
const ExpenseReceiverID = "EXPENSE"

// Transaction is a single money movement. Its identifier is derived by the
// allocator: "{PREFIX}-{FIRSTNAME}-{ROLE}-{IMP|EXP}-{NNN}".
type Transaction struct {
	TransactionID     string            `json:"id"` // Primary Key, derived composite string
	Amount            decimal.Decimal   `json:"amount"` // Positive
	Type              TransactionType   `json:"type"`
	SenderID          string            `json:"senderId"`
	ReceiverID        string            `json:"receiverId"` // ExpenseReceiverID when Type == Expense
	Remark            string            `json:"remark"`
	PaymentMethod     PaymentMethod     `json:"paymentMethod"`
	BankAccountID     *string           `json:"bankAccountId,omitempty"`
	OrderID           *string           `json:"orderId,omitempty"`
	SubOrderID        *string           `json:"subOrderId,omitempty"`
	ExpenseCategoryID *string           `json:"expenseCategoryId,omitempty"`
	HasInvoice        bool              `json:"hasInvoice"`
	InvoiceURL        *string           `json:"invoiceUrl,omitempty"`
	EntryDate         time.Time         `json:"entryDate"`       // When the record was entered
	TransactionDate   time.Time         `json:"transactionDate"` // When the money actually moved
	Status            TransactionStatus `json:"status"`
	AuditFields
}
