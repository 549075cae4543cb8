package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func txnBetween(id string, sender, receiver string, amount int64, txnDate time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		Amount:          decimal.NewFromInt(amount),
		Type:            domain.Imprest,
		SenderID:        sender,
		ReceiverID:      receiver,
		PaymentMethod:   domain.PaymentCash,
		EntryDate:       txnDate,
		TransactionDate: txnDate,
		Status:          domain.TxnApproved,
	}
}

func TestComputeLedger(t *testing.T) {
	alice := domain.User{UserID: "u-alice", Name: "Alice Smith"}
	bob := domain.User{UserID: "u-bob", Name: "Bob Jones"}
	users := []domain.User{alice, bob}

	t.Run("credits, debits and balance", func(t *testing.T) {
		txns := []domain.Transaction{
			txnBetween("T-1", "u-bob", "u-alice", 500, day(1)),
			txnBetween("T-2", "u-alice", "u-bob", 200, day(2)),
			txnBetween("T-3", "u-bob", "u-charlie", 999, day(3)), // not alice's
		}

		ledger := services.ComputeLedger("u-alice", txns, users)

		assert.Equal(t, "u-alice", ledger.UserID)
		assert.Len(t, ledger.Entries, 2)
		assert.True(t, ledger.Summary.TotalCredit.Equal(decimal.NewFromInt(500)), "totalCredit = %s", ledger.Summary.TotalCredit)
		assert.True(t, ledger.Summary.TotalDebit.Equal(decimal.NewFromInt(200)), "totalDebit = %s", ledger.Summary.TotalDebit)
		assert.True(t, ledger.Summary.Balance.Equal(decimal.NewFromInt(300)), "balance = %s", ledger.Summary.Balance)
	})

	t.Run("entries sorted by transaction date descending", func(t *testing.T) {
		txns := []domain.Transaction{
			txnBetween("T-old", "u-bob", "u-alice", 10, day(1)),
			txnBetween("T-new", "u-bob", "u-alice", 10, day(5)),
			txnBetween("T-mid", "u-alice", "u-bob", 10, day(3)),
		}

		ledger := services.ComputeLedger("u-alice", txns, users)

		ids := []string{ledger.Entries[0].TransactionID, ledger.Entries[1].TransactionID, ledger.Entries[2].TransactionID}
		assert.Equal(t, []string{"T-new", "T-mid", "T-old"}, ids)
	})

	t.Run("equal dates tie-break on identifier descending", func(t *testing.T) {
		txns := []domain.Transaction{
			txnBetween("T-a", "u-bob", "u-alice", 10, day(2)),
			txnBetween("T-b", "u-bob", "u-alice", 10, day(2)),
		}

		ledger := services.ComputeLedger("u-alice", txns, users)

		assert.Equal(t, "T-b", ledger.Entries[0].TransactionID)
		assert.Equal(t, "T-a", ledger.Entries[1].TransactionID)
	})

	t.Run("counterparty names resolved from the directory", func(t *testing.T) {
		txns := []domain.Transaction{
			txnBetween("T-1", "u-bob", "u-alice", 50, day(1)),
		}

		ledger := services.ComputeLedger("u-alice", txns, users)

		assert.Equal(t, "Bob Jones", ledger.Entries[0].From)
		assert.Equal(t, "Alice Smith", ledger.Entries[0].To)
	})

	t.Run("expense sentinel renders as Expense", func(t *testing.T) {
		txn := txnBetween("T-exp", "u-alice", domain.ExpenseReceiverID, 75, day(1))
		txn.Type = domain.Expense

		ledger := services.ComputeLedger("u-alice", []domain.Transaction{txn}, users)

		assert.Equal(t, "Expense", ledger.Entries[0].To)
		assert.True(t, ledger.Summary.TotalDebit.Equal(decimal.NewFromInt(75)))
		assert.True(t, ledger.Summary.TotalCredit.IsZero())
	})

	t.Run("unknown counterparty falls back to the raw id", func(t *testing.T) {
		txns := []domain.Transaction{
			txnBetween("T-1", "u-gone", "u-alice", 10, day(1)),
		}

		ledger := services.ComputeLedger("u-alice", txns, users)

		assert.Equal(t, "u-gone", ledger.Entries[0].From)
	})

	t.Run("no matching transactions yields an empty ledger", func(t *testing.T) {
		txns := []domain.Transaction{
			txnBetween("T-1", "u-bob", "u-charlie", 10, day(1)),
		}

		ledger := services.ComputeLedger("u-alice", txns, users)

		assert.NotNil(t, ledger.Entries)
		assert.Empty(t, ledger.Entries)
		assert.True(t, ledger.Summary.Balance.IsZero())
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		txns := []domain.Transaction{
			txnBetween("T-1", "u-bob", "u-alice", 500, day(1)),
			txnBetween("T-2", "u-alice", "u-bob", 200, day(1)),
		}

		first := services.ComputeLedger("u-alice", txns, users)
		second := services.ComputeLedger("u-alice", txns, users)

		assert.Equal(t, first, second)
	})
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo  *MockTransactionRepository
	mockUserRepo *MockUserRepository
	service      portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockUserRepo)
}

func (suite *LedgerServiceTestSuite) TestGetUserLedger_Success() {
	ctx := context.Background()
	txns := []domain.Transaction{
		txnBetween("T-1", "u-bob", "u-alice", 120, day(4)),
	}
	users := []domain.User{{UserID: "u-bob", Name: "Bob Jones"}}

	suite.mockTxnRepo.On("ListAllTransactions", ctx).Return(txns, nil).Once()
	suite.mockUserRepo.On("ListUsers", ctx, 0, 0).Return(users, nil).Once()

	ledger, err := suite.service.GetUserLedger(ctx, "u-alice")

	suite.Require().NoError(err)
	suite.Len(ledger.Entries, 1)
	suite.True(ledger.Summary.TotalCredit.Equal(decimal.NewFromInt(120)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetUserLedger_EmptyUserID() {
	ledger, err := suite.service.GetUserLedger(context.Background(), "")

	suite.Require().NoError(err)
	suite.Empty(ledger.Entries)
	suite.True(ledger.Summary.Balance.IsZero())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListAllTransactions", mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetUserLedger_TransactionsUnavailable() {
	ctx := context.Background()
	suite.mockTxnRepo.On("ListAllTransactions", ctx).Return(nil, assert.AnError).Once()

	ledger, err := suite.service.GetUserLedger(ctx, "u-alice")

	suite.Require().NoError(err)
	suite.Equal("u-alice", ledger.UserID)
	suite.Empty(ledger.Entries)
	suite.True(ledger.Summary.Balance.IsZero())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetUserLedger_DirectoryUnavailable() {
	ctx := context.Background()
	suite.mockTxnRepo.On("ListAllTransactions", ctx).Return([]domain.Transaction{}, nil).Once()
	suite.mockUserRepo.On("ListUsers", ctx, 0, 0).Return(nil, assert.AnError).Once()

	ledger, err := suite.service.GetUserLedger(ctx, "u-alice")

	suite.Require().NoError(err)
	suite.Empty(ledger.Entries)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
