package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/impresthq/imprest_backend/internal/apperrors"
	"github.com/impresthq/imprest_backend/internal/core/domain"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/dto"
	"github.com/impresthq/imprest_backend/internal/middleware"
)

type orderService struct {
	orderRepo portsrepo.OrderRepository
	auditSvc  portssvc.AuditSvcFacade
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepository, auditSvc portssvc.AuditSvcFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo, auditSvc: auditSvc}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder mints a new order against the requested series. The repository
// allocates the order number under the series row lock, so two concurrent
// creations on the same series can never receive the same number.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorUserID string) (*domain.Order, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	order := domain.Order{
		OrderID:       uuid.NewString(),
		Description:   req.Description,
		Amount:        req.Amount,
		Status:        domain.OrderActive,
		OrderSeriesID: req.OrderSeriesID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	logger.Info("Order created", slog.String("order_id", created.OrderID), slog.String("order_number", created.OrderNumber))

	s.auditSvc.Record(ctx, creatorUserID, domain.AuditCreate, "order", created.OrderID, map[string]any{
		"orderNumber": created.OrderNumber,
		"amount":      created.Amount.String(),
	})
	return created, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderRepo.FindOrderByID(ctx, orderID)
}

func (s *orderService) ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	return s.orderRepo.ListOrders(ctx, limit, offset)
}

// UpdateOrder applies administrative edits. The order number is immutable and
// COMPLETED/CANCELLED are terminal states.
func (s *orderService) UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest, actingUserID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		order.Amount = *req.Amount
		changes["amount"] = req.Amount.String()
	}
	if req.Description != nil {
		order.Description = *req.Description
		changes["description"] = *req.Description
	}
	if req.Status != nil && domain.OrderStatus(*req.Status) != order.Status {
		if order.Status != domain.OrderActive {
			return nil, fmt.Errorf("%w: order is already %s", apperrors.ErrConflict, order.Status)
		}
		order.Status = domain.OrderStatus(*req.Status)
		changes["status"] = *req.Status
	}

	if len(changes) == 0 {
		return order, nil
	}

	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = actingUserID

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditUpdate, "order", order.OrderID, changes)
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string, actingUserID string) error {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Order deleted", slog.String("order_id", orderID), slog.String("order_number", order.OrderNumber))

	s.auditSvc.Record(ctx, actingUserID, domain.AuditDelete, "order", orderID, map[string]any{"orderNumber": order.OrderNumber})
	return nil
}

type subOrderService struct {
	subOrderRepo portsrepo.SubOrderRepository
	orderRepo    portsrepo.OrderRepository
	auditSvc     portssvc.AuditSvcFacade
}

// NewSubOrderService creates a new SubOrderService.
func NewSubOrderService(subOrderRepo portsrepo.SubOrderRepository, orderRepo portsrepo.OrderRepository, auditSvc portssvc.AuditSvcFacade) portssvc.SubOrderSvcFacade {
	return &subOrderService{subOrderRepo: subOrderRepo, orderRepo: orderRepo, auditSvc: auditSvc}
}

var _ portssvc.SubOrderSvcFacade = (*subOrderService)(nil)

func (s *subOrderService) CreateSubOrder(ctx context.Context, req dto.CreateSubOrderRequest, creatorUserID string) (*domain.SubOrder, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("parent order lookup failed: %w", err)
	}

	now := time.Now()
	subOrder := domain.SubOrder{
		SubOrderID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		OrderID:     order.OrderID,
		OrderNumber: order.OrderNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.subOrderRepo.SaveSubOrder(ctx, subOrder); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, creatorUserID, domain.AuditCreate, "sub_order", subOrder.SubOrderID, map[string]any{
		"name":    subOrder.Name,
		"orderId": subOrder.OrderID,
	})
	return &subOrder, nil
}

func (s *subOrderService) GetSubOrderByID(ctx context.Context, subOrderID string) (*domain.SubOrder, error) {
	return s.subOrderRepo.FindSubOrderByID(ctx, subOrderID)
}

func (s *subOrderService) ListSubOrders(ctx context.Context, orderID string) ([]domain.SubOrder, error) {
	return s.subOrderRepo.ListSubOrders(ctx, orderID)
}

func (s *subOrderService) UpdateSubOrder(ctx context.Context, subOrderID string, req dto.UpdateSubOrderRequest, actingUserID string) (*domain.SubOrder, error) {
	subOrder, err := s.subOrderRepo.FindSubOrderByID(ctx, subOrderID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Name != nil && *req.Name != "" {
		subOrder.Name = *req.Name
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		subOrder.Description = *req.Description
		changes["description"] = *req.Description
	}
	if len(changes) == 0 {
		return subOrder, nil
	}

	subOrder.LastUpdatedAt = time.Now()
	subOrder.LastUpdatedBy = actingUserID

	if err := s.subOrderRepo.UpdateSubOrder(ctx, *subOrder); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditUpdate, "sub_order", subOrderID, changes)
	return subOrder, nil
}

// DeleteSubOrder removes a suborder. The repository refuses with ErrConflict
// while any transaction still references it.
func (s *subOrderService) DeleteSubOrder(ctx context.Context, subOrderID string, actingUserID string) error {
	subOrder, err := s.subOrderRepo.FindSubOrderByID(ctx, subOrderID)
	if err != nil {
		return err
	}

	if err := s.subOrderRepo.DeleteSubOrder(ctx, subOrderID); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditDelete, "sub_order", subOrderID, map[string]any{"name": subOrder.Name})
	return nil
}
