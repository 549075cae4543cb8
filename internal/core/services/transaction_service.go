package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/impresthq/imprest_backend/internal/apperrors"
	"github.com/impresthq/imprest_backend/internal/core/domain"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/dto"
	"github.com/impresthq/imprest_backend/internal/middleware"
	"github.com/impresthq/imprest_backend/internal/utils/sequencing"
)

type transactionService struct {
	txnRepo          portsrepo.TransactionRepository
	senderSeriesRepo portsrepo.SenderSeriesRepository
	userRepo         portsrepo.UserRepository
	auditSvc         portssvc.AuditSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepository,
	senderSeriesRepo portsrepo.SenderSeriesRepository,
	userRepo portsrepo.UserRepository,
	auditSvc portssvc.AuditSvcFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:          txnRepo,
		senderSeriesRepo: senderSeriesRepo,
		userRepo:         userRepo,
		auditSvc:         auditSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a transaction with a generated identifier of the
// form "{PREFIX}-{FIRSTNAME}-{ROLE}-{IMP|EXP}-{NNN}". The prefix comes from
// the default sender series, the name and role from the creating user, and
// NNN from a dedicated per-bucket counter the repository advances atomically
// with the insert.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	txnType := domain.TransactionType(req.Type)
	if txnType == domain.Expense && req.ReceiverID != domain.ExpenseReceiverID {
		return nil, fmt.Errorf("%w: expense transactions must use receiver %q", apperrors.ErrValidation, domain.ExpenseReceiverID)
	}
	if txnType == domain.Imprest && req.ReceiverID == domain.ExpenseReceiverID {
		return nil, fmt.Errorf("%w: imprest transactions require a user receiver", apperrors.ErrValidation)
	}

	series, err := s.senderSeriesRepo.FindDefaultSenderSeries(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoDefaultSeries) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve default sender series: %w", err)
	}

	creator, err := s.userRepo.FindUserByID(ctx, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: creating user not found", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to load creating user: %w", err)
	}

	nameToken := sequencing.NameToken(creator.Name)
	if nameToken == "" {
		return nil, fmt.Errorf("%w: creating user has no usable name for identifier generation", apperrors.ErrValidation)
	}
	idPrefix := sequencing.TransactionIDPrefix(
		series.Prefix,
		nameToken,
		sequencing.RoleToken(string(creator.Role)),
		sequencing.TypeToken(req.Type),
	)

	status := domain.TransactionStatus(req.Status)
	if status == "" {
		status = domain.TxnPending
	}

	now := time.Now()
	txn := domain.Transaction{
		Amount:            req.Amount,
		Type:              txnType,
		SenderID:          req.SenderID,
		ReceiverID:        req.ReceiverID,
		Remark:            req.Remark,
		PaymentMethod:     domain.PaymentMethod(req.PaymentMethod),
		BankAccountID:     req.BankAccountID,
		OrderID:           req.OrderID,
		SubOrderID:        req.SubOrderID,
		ExpenseCategoryID: req.ExpenseCategoryID,
		HasInvoice:        req.HasInvoice,
		InvoiceURL:        req.InvoiceURL,
		EntryDate:         req.EntryDate,
		TransactionDate:   req.TransactionDate,
		Status:            status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.txnRepo.CreateTransaction(ctx, txn, idPrefix)
	if err != nil {
		return nil, err
	}
	logger.Info("Transaction created",
		slog.String("transaction_id", created.TransactionID),
		slog.String("type", string(created.Type)),
		slog.String("amount", created.Amount.String()))

	s.auditSvc.Record(ctx, creatorUserID, domain.AuditCreate, "transaction", created.TransactionID, map[string]any{
		"type":   string(created.Type),
		"amount": created.Amount.String(),
	})
	return created, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx, filter)
}

// UpdateTransaction applies administrative edits. The generated identifier is
// immutable; only amount, status and remark may change.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actingUserID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
		changes["amount"] = req.Amount.String()
	}
	if req.Status != nil {
		txn.Status = domain.TransactionStatus(*req.Status)
		changes["status"] = *req.Status
	}
	if req.Remark != nil {
		txn.Remark = *req.Remark
		changes["remark"] = *req.Remark
	}
	if len(changes) == 0 {
		return txn, nil
	}

	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = actingUserID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditUpdate, "transaction", transactionID, changes)
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, actingUserID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Transaction deleted", slog.String("transaction_id", transactionID))

	s.auditSvc.Record(ctx, actingUserID, domain.AuditDelete, "transaction", transactionID, map[string]any{
		"type":   string(txn.Type),
		"amount": txn.Amount.String(),
	})
	return nil
}
