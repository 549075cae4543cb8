package repositories

import (
	"context"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// OrderRepository persists orders. Number allocation happens inside the
// repository so the series row lock, the insert and the counter advance share
// one database transaction.
type OrderRepository interface {
	// CreateOrder locks the owning series row, computes the next sequence
	// value, formats the order number and inserts the order while advancing
	// the series counter, all atomically. The returned order carries the
	// allocated number. Returns apperrors.ErrNotFound when the series is
	// absent.
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, order domain.Order) error
	DeleteOrder(ctx context.Context, orderID string) error
}

// SubOrderRepository persists suborders.
type SubOrderRepository interface {
	SaveSubOrder(ctx context.Context, subOrder domain.SubOrder) error
	FindSubOrderByID(ctx context.Context, subOrderID string) (*domain.SubOrder, error)
	// ListSubOrders returns all suborders, optionally filtered to one order,
	// with parent order numbers and transaction counts populated.
	ListSubOrders(ctx context.Context, orderID string) ([]domain.SubOrder, error)
	UpdateSubOrder(ctx context.Context, subOrder domain.SubOrder) error
	// DeleteSubOrder returns apperrors.ErrConflict while transactions still
	// reference the suborder.
	DeleteSubOrder(ctx context.Context, subOrderID string) error
}
