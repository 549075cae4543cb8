package services

import (
	"context"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/dto"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
)

// TransactionSvcFacade records and manages transactions.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actingUserID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string, actingUserID string) error
}
