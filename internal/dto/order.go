package dto

import (
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data for minting a new order. The order
// number itself is allocated server-side.
type CreateOrderRequest struct {
	OrderSeriesID string          `json:"orderSeriesId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"omitempty,min=5"`
}

// UpdateOrderRequest defines the administrative edits allowed on an order.
type UpdateOrderRequest struct {
	Description *string          `json:"description" binding:"omitempty,min=5"`
	Amount      *decimal.Decimal `json:"amount"`
	Status      *string          `json:"status" binding:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	OrderSeriesID string          `json:"orderSeriesId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListOrdersParams defines query parameters for listing orders.
type ListOrdersParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListOrdersResponse wraps an order listing.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse converts a domain.Order to its DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:            o.OrderID,
		OrderNumber:   o.OrderNumber,
		Description:   o.Description,
		Amount:        o.Amount,
		Status:        string(o.Status),
		OrderSeriesID: o.OrderSeriesID,
		CreatedAt:     o.CreatedAt,
	}
}

// ToListOrdersResponse converts a domain slice to the listing DTO.
func ToListOrdersResponse(orders []domain.Order) ListOrdersResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return ListOrdersResponse{Orders: out}
}

// CreateSubOrderRequest defines the data for creating a suborder.
type CreateSubOrderRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	OrderID     string `json:"orderId" binding:"required"`
}

// UpdateSubOrderRequest defines the edits allowed on a suborder.
type UpdateSubOrderRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// SubOrderResponse is the public view of a suborder.
type SubOrderResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	OrderID          string    `json:"orderId"`
	OrderNumber      string    `json:"orderNumber,omitempty"`
	TransactionCount int64     `json:"transactionCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ListSubOrdersResponse wraps a suborder listing.
type ListSubOrdersResponse struct {
	SubOrders []SubOrderResponse `json:"subOrders"`
}

// ToSubOrderResponse converts a domain.SubOrder to its DTO.
func ToSubOrderResponse(s *domain.SubOrder) SubOrderResponse {
	return SubOrderResponse{
		ID:               s.SubOrderID,
		Name:             s.Name,
		Description:      s.Description,
		OrderID:          s.OrderID,
		OrderNumber:      s.OrderNumber,
		TransactionCount: s.TransactionCount,
		CreatedAt:        s.CreatedAt,
	}
}

// ToListSubOrdersResponse converts a domain slice to the listing DTO.
func ToListSubOrdersResponse(subOrders []domain.SubOrder) ListSubOrdersResponse {
	out := make([]SubOrderResponse, len(subOrders))
	for i := range subOrders {
		out[i] = ToSubOrderResponse(&subOrders[i])
	}
	return ListSubOrdersResponse{SubOrders: out}
}
