package dto

import (
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the full payload for recording a
// transaction. The identifier is derived server-side by the allocator.
type CreateTransactionRequest struct {
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Type              string          `json:"type" binding:"required,oneof=IMPREST EXPENSE"`
	SenderID          string          `json:"senderId" binding:"required"`
	ReceiverID        string          `json:"receiverId" binding:"required"`
	Remark            string          `json:"remark"`
	PaymentMethod     string          `json:"paymentMethod" binding:"required,oneof=CASH BANK"`
	BankAccountID     *string         `json:"bankAccountId"`
	OrderID           *string         `json:"orderId"`
	SubOrderID        *string         `json:"subOrderId"`
	ExpenseCategoryID *string         `json:"expenseCategoryId"`
	HasInvoice        bool            `json:"hasInvoice"`
	InvoiceURL        *string         `json:"invoiceUrl" binding:"omitempty,url"`
	EntryDate         time.Time       `json:"entryDate" binding:"required"`
	TransactionDate   time.Time       `json:"transactionDate" binding:"required"`
	Status            string          `json:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// UpdateTransactionRequest defines the administrative edits allowed on a
// transaction. The identifier is immutable.
type UpdateTransactionRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Status *string          `json:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Remark *string          `json:"remark"`
}

// TransactionResponse is the public view of a transaction.
type TransactionResponse struct {
	ID                string          `json:"id"`
	Amount            decimal.Decimal `json:"amount"`
	Type              string          `json:"type"`
	SenderID          string          `json:"senderId"`
	ReceiverID        string          `json:"receiverId"`
	Remark            string          `json:"remark"`
	PaymentMethod     string          `json:"paymentMethod"`
	BankAccountID     *string         `json:"bankAccountId,omitempty"`
	OrderID           *string         `json:"orderId,omitempty"`
	SubOrderID        *string         `json:"subOrderId,omitempty"`
	ExpenseCategoryID *string         `json:"expenseCategoryId,omitempty"`
	HasInvoice        bool            `json:"hasInvoice"`
	InvoiceURL        *string         `json:"invoiceUrl,omitempty"`
	EntryDate         time.Time       `json:"entryDate"`
	TransactionDate   time.Time       `json:"transactionDate"`
	Status            string          `json:"status"`
	CreatedBy         string          `json:"createdBy"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	// Mine restricts the listing to the acting user's transactions.
	Mine   bool `form:"mine"`
	Limit  int  `form:"limit,default=100"`
	Offset int  `form:"offset,default=0"`
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.TransactionID,
		Amount:            t.Amount,
		Type:              string(t.Type),
		SenderID:          t.SenderID,
		ReceiverID:        t.ReceiverID,
		Remark:            t.Remark,
		PaymentMethod:     string(t.PaymentMethod),
		BankAccountID:     t.BankAccountID,
		OrderID:           t.OrderID,
		SubOrderID:        t.SubOrderID,
		ExpenseCategoryID: t.ExpenseCategoryID,
		HasInvoice:        t.HasInvoice,
		InvoiceURL:        t.InvoiceURL,
		EntryDate:         t.EntryDate,
		TransactionDate:   t.TransactionDate,
		Status:            string(t.Status),
		CreatedBy:         t.CreatedBy,
		CreatedAt:         t.CreatedAt,
	}
}

// ToListTransactionsResponse converts a domain slice to the listing DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: out}
}
