package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSummary holds the aggregate position of one user.
// Balance == TotalCredit - TotalDebit.
type LedgerSummary struct {
	Balance     decimal.Decimal `json:"balance"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
}

// LedgerEntry is one transaction viewed from a specific user's side of the
// ledger: exactly one of Credit/Debit carries the amount, the other is zero.
type LedgerEntry struct {
	TransactionID     string          `json:"transactionId"`
	Type              TransactionType `json:"type"`
	From              string          `json:"from"` // Resolved display name, raw ID fallback
	To                string          `json:"to"`
	Credit            decimal.Decimal `json:"credit"`
	Debit             decimal.Decimal `json:"debit"`
	Remark            string          `json:"remark"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod"`
	BankAccountID     *string         `json:"bankAccountId,omitempty"`
	OrderID           *string         `json:"orderId,omitempty"`
	SubOrderID        *string         `json:"subOrderId,omitempty"`
	ExpenseCategoryID *string         `json:"expenseCategoryId,omitempty"`
	HasInvoice        bool            `json:"hasInvoice"`
	InvoiceURL        *string         `json:"invoiceUrl,omitempty"`
	EntryDate         time.Time       `json:"entryDate"`
	TransactionDate   time.Time       `json:"transactionDate"`
	SenderID          string          `json:"senderId"`
	ReceiverID        string          `json:"receiverId"`
}

// UserLedger is the derived, per-user read model. It is never persisted;
// every read recomputes it from the full transaction set.
type UserLedger struct {
	UserID  string        `json:"userId"`
	Summary LedgerSummary `json:"summary"`
	Entries []LedgerEntry `json:"entries"`
}
