package repositories

import (
	"context"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// ListTransactionsFilter narrows transaction listings.
type ListTransactionsFilter struct {
	// UserID, when set, restricts the listing to transactions the user sent,
	// received or created.
	UserID string
	Limit  int
	Offset int
}

// TransactionRepository persists transactions. Identifier sequencing uses a
// dedicated counter row per (prefix, name, role, type) bucket, reserved in the
// same database transaction as the insert, so concurrent creations cannot
// collide.
type TransactionRepository interface {
	// CreateTransaction reserves the next sequence for idPrefix's bucket,
	// derives the final identifier and inserts the row atomically. The
	// returned transaction carries the allocated identifier.
	CreateTransaction(ctx context.Context, txn domain.Transaction, idPrefix string) (*domain.Transaction, error)
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter ListTransactionsFilter) ([]domain.Transaction, error)
	// ListAllTransactions returns the full transaction set, which the ledger
	// aggregator folds per read.
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}
