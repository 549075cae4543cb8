package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// ledgerService derives the per-user financial view from the full transaction
// set. It holds no state of its own.
type ledgerService struct {
	txnRepo  portsrepo.TransactionRepository
	userRepo portsrepo.UserRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(txnRepo portsrepo.TransactionRepository, userRepo portsrepo.UserRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{txnRepo: txnRepo, userRepo: userRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetUserLedger loads the transaction set and user directory and folds them.
// Load failures degrade to an empty ledger: this backs a dashboard, not a
// ledger of record, so availability wins over error signalling.
func (s *ledgerService) GetUserLedger(ctx context.Context, userID string) (*domain.UserLedger, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == "" {
		return emptyLedger(userID), nil
	}

	transactions, err := s.txnRepo.ListAllTransactions(ctx)
	if err != nil {
		logger.Warn("Transaction set unavailable for ledger, returning empty ledger", slog.String("user_id", userID), slog.String("error", err.Error()))
		return emptyLedger(userID), nil
	}

	users, err := s.userRepo.ListUsers(ctx, 0, 0)
	if err != nil {
		logger.Warn("User directory unavailable for ledger, returning empty ledger", slog.String("user_id", userID), slog.String("error", err.Error()))
		return emptyLedger(userID), nil
	}

	return ComputeLedger(userID, transactions, users), nil
}

// ComputeLedger folds the full transaction set into one user's ledger. The
// function is pure: identical inputs always yield an identical result and
// nothing is mutated.
//
// Credit accrues where the user is the receiver, debit where the user is the
// sender, and balance = totalCredit - totalDebit.
func ComputeLedger(userID string, transactions []domain.Transaction, users []domain.User) *domain.UserLedger {
	nameByID := make(map[string]string, len(users))
	for _, u := range users {
		nameByID[u.UserID] = u.Name
	}
	displayName := func(id string) string {
		if id == domain.ExpenseReceiverID {
			return "Expense"
		}
		if name, ok := nameByID[id]; ok {
			return name
		}
		return id
	}

	summary := domain.LedgerSummary{
		Balance:     decimal.Zero,
		TotalCredit: decimal.Zero,
		TotalDebit:  decimal.Zero,
	}
	entries := make([]domain.LedgerEntry, 0)

	for _, t := range transactions {
		isReceiver := t.ReceiverID == userID
		isSender := t.SenderID == userID
		if !isReceiver && !isSender {
			continue
		}

		credit := decimal.Zero
		debit := decimal.Zero
		if isReceiver {
			credit = t.Amount
			summary.TotalCredit = summary.TotalCredit.Add(t.Amount)
		}
		if isSender {
			debit = t.Amount
			summary.TotalDebit = summary.TotalDebit.Add(t.Amount)
		}

		entries = append(entries, domain.LedgerEntry{
			TransactionID:     t.TransactionID,
			Type:              t.Type,
			From:              displayName(t.SenderID),
			To:                displayName(t.ReceiverID),
			Credit:            credit,
			Debit:             debit,
			Remark:            t.Remark,
			PaymentMethod:     t.PaymentMethod,
			BankAccountID:     t.BankAccountID,
			OrderID:           t.OrderID,
			SubOrderID:        t.SubOrderID,
			ExpenseCategoryID: t.ExpenseCategoryID,
			HasInvoice:        t.HasInvoice,
			InvoiceURL:        t.InvoiceURL,
			EntryDate:         t.EntryDate,
			TransactionDate:   t.TransactionDate,
			SenderID:          t.SenderID,
			ReceiverID:        t.ReceiverID,
		})
	}

	summary.Balance = summary.TotalCredit.Sub(summary.TotalDebit)

	// Most recent first; equal dates tie-break on ID for determinism.
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].TransactionDate.Equal(entries[j].TransactionDate) {
			return entries[i].TransactionDate.After(entries[j].TransactionDate)
		}
		return entries[i].TransactionID > entries[j].TransactionID
	})

	return &domain.UserLedger{
		UserID:  userID,
		Summary: summary,
		Entries: entries,
	}
}

func emptyLedger(userID string) *domain.UserLedger {
	return &domain.UserLedger{
		UserID: userID,
		Summary: domain.LedgerSummary{
			Balance:     decimal.Zero,
			TotalCredit: decimal.Zero,
			TotalDebit:  decimal.Zero,
		},
		Entries: []domain.LedgerEntry{},
	}
}
