package services

import (
	"context"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/dto"
)

// OrderSvcFacade mints and manages orders.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest, actingUserID string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID string, actingUserID string) error
}

// SubOrderSvcFacade manages suborders.
type SubOrderSvcFacade interface {
	CreateSubOrder(ctx context.Context, req dto.CreateSubOrderRequest, creatorUserID string) (*domain.SubOrder, error)
	GetSubOrderByID(ctx context.Context, subOrderID string) (*domain.SubOrder, error)
	ListSubOrders(ctx context.Context, orderID string) ([]domain.SubOrder, error)
	UpdateSubOrder(ctx context.Context, subOrderID string, req dto.UpdateSubOrderRequest, actingUserID string) (*domain.SubOrder, error)
	DeleteSubOrder(ctx context.Context, subOrderID string, actingUserID string) error
}
