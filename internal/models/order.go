package models

import "github.com/shopspring/decimal"

// Order is the orders table row.
type Order struct {
	OrderID       string          `db:"order_id"`
	OrderNumber   string          `db:"order_number"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	OrderSeriesID string          `db:"order_series_id"`
	AuditFields
}

// SubOrder is the sub_orders table row. OrderNumber and TransactionCount are
// join-derived columns present only on reads.
type SubOrder struct {
	SubOrderID       string `db:"sub_order_id"`
	Name             string `db:"name"`
	Description      string `db:"description"`
	OrderID          string `db:"order_id"`
	OrderNumber      string `db:"order_number"`
	TransactionCount int64  `db:"transaction_count"`
	AuditFields
}
