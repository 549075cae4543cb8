package domain

import "github.com/shopspring/decimal"

// OrderStatus indicates the lifecycle state of an order.
type OrderStatus string

const (
	OrderActive    OrderStatus = "ACTIVE"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Order represents a fund order minted against an order series.
type Order struct {
	OrderID       string          `json:"id"`          // Primary Key (UUID)
	OrderNumber   string          `json:"orderNumber"` // Derived "{PREFIX}-{NNN}[-{SUFFIX}]", unique
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"` // Positive
	Status        OrderStatus     `json:"status"`
	OrderSeriesID string          `json:"orderSeriesId"` // FK -> OrderSeries.SeriesID
	AuditFields
}

// SubOrder is a named subdivision of an order. It can only be deleted while
// no transactions reference it.
type SubOrder struct {
	SubOrderID  string `json:"id"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OrderID     string `json:"orderId"` // FK -> Order.OrderID
	// Derived on reads: order number of the parent and number of linked transactions.
	OrderNumber      string `json:"orderNumber,omitempty"`
	TransactionCount int64  `json:"transactionCount"`
	AuditFields
}
