package services_test

import (
	"context"
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock OrderSeriesRepository ---
type MockOrderSeriesRepository struct {
	mock.Mock
}

func (m *MockOrderSeriesRepository) SaveOrderSeries(ctx context.Context, series domain.OrderSeries) error {
	args := m.Called(ctx, series)
	return args.Error(0)
}

func (m *MockOrderSeriesRepository) FindOrderSeriesByID(ctx context.Context, seriesID string) (*domain.OrderSeries, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderSeries), args.Error(1)
}

func (m *MockOrderSeriesRepository) ListOrderSeries(ctx context.Context) ([]domain.OrderSeries, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderSeries), args.Error(1)
}

func (m *MockOrderSeriesRepository) CountOrderSeries(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderSeriesRepository) SetDefaultOrderSeries(ctx context.Context, seriesID string, userID string, now time.Time) error {
	args := m.Called(ctx, seriesID, userID, now)
	return args.Error(0)
}

func (m *MockOrderSeriesRepository) DeleteOrderSeries(ctx context.Context, seriesID string) error {
	args := m.Called(ctx, seriesID)
	return args.Error(0)
}

// --- Mock SenderSeriesRepository ---
type MockSenderSeriesRepository struct {
	mock.Mock
}

func (m *MockSenderSeriesRepository) SaveSenderSeries(ctx context.Context, series domain.SenderIDSeries) error {
	args := m.Called(ctx, series)
	return args.Error(0)
}

func (m *MockSenderSeriesRepository) FindSenderSeriesByID(ctx context.Context, seriesID string) (*domain.SenderIDSeries, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SenderIDSeries), args.Error(1)
}

func (m *MockSenderSeriesRepository) FindDefaultSenderSeries(ctx context.Context) (*domain.SenderIDSeries, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SenderIDSeries), args.Error(1)
}

func (m *MockSenderSeriesRepository) ListSenderSeries(ctx context.Context) ([]domain.SenderIDSeries, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SenderIDSeries), args.Error(1)
}

func (m *MockSenderSeriesRepository) CountSenderSeries(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSenderSeriesRepository) SetDefaultSenderSeries(ctx context.Context, seriesID string, userID string, now time.Time) error {
	args := m.Called(ctx, seriesID, userID, now)
	return args.Error(0)
}

func (m *MockSenderSeriesRepository) DeleteSenderSeries(ctx context.Context, seriesID string) error {
	args := m.Called(ctx, seriesID)
	return args.Error(0)
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// --- Mock SubOrderRepository ---
type MockSubOrderRepository struct {
	mock.Mock
}

func (m *MockSubOrderRepository) SaveSubOrder(ctx context.Context, subOrder domain.SubOrder) error {
	args := m.Called(ctx, subOrder)
	return args.Error(0)
}

func (m *MockSubOrderRepository) FindSubOrderByID(ctx context.Context, subOrderID string) (*domain.SubOrder, error) {
	args := m.Called(ctx, subOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubOrder), args.Error(1)
}

func (m *MockSubOrderRepository) ListSubOrders(ctx context.Context, orderID string) ([]domain.SubOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubOrder), args.Error(1)
}

func (m *MockSubOrderRepository) UpdateSubOrder(ctx context.Context, subOrder domain.SubOrder) error {
	args := m.Called(ctx, subOrder)
	return args.Error(0)
}

func (m *MockSubOrderRepository) DeleteSubOrder(ctx context.Context, subOrderID string) error {
	args := m.Called(ctx, subOrderID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction, idPrefix string) (*domain.Transaction, error) {
	args := m.Called(ctx, txn, idPrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, now)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string, deleterUserID string, now time.Time) error {
	args := m.Called(ctx, userID, deleterUserID, now)
	return args.Error(0)
}

// --- Mock AuditRepository ---
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListAuditLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

// stubAuditSvc satisfies AuditSvcFacade for services under test; the audit
// trail itself is covered by the audit service tests.
type stubAuditSvc struct{}

func (stubAuditSvc) Record(ctx context.Context, userID string, action domain.AuditAction, entityType, entityID string, details map[string]any) {
}

func (stubAuditSvc) ListAuditLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	return nil, nil
}
