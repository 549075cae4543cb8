package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row. The primary key is the
// allocator-derived composite identifier, not a UUID.
type Transaction struct {
	TransactionID     string          `db:"transaction_id"`
	Amount            decimal.Decimal `db:"amount"`
	Type              string          `db:"type"`
	SenderID          string          `db:"sender_id"`
	ReceiverID        string          `db:"receiver_id"`
	Remark            string          `db:"remark"`
	PaymentMethod     string          `db:"payment_method"`
	BankAccountID     *string         `db:"bank_account_id"`
	OrderID           *string         `db:"order_id"`
	SubOrderID        *string         `db:"sub_order_id"`
	ExpenseCategoryID *string         `db:"expense_category_id"`
	HasInvoice        bool            `db:"has_invoice"`
	InvoiceURL        *string         `db:"invoice_url"`
	EntryDate         time.Time       `db:"entry_date"`
	TransactionDate   time.Time       `db:"transaction_date"`
	Status            string          `db:"status"`
	AuditFields
}
