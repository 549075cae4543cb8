package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/impresthq/imprest_backend/internal/apperrors"
	"github.com/impresthq/imprest_backend/internal/core/domain"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	"github.com/impresthq/imprest_backend/internal/models"
	"github.com/impresthq/imprest_backend/internal/utils/mapping"
	"github.com/impresthq/imprest_backend/internal/utils/sequencing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const foreignKeyViolationCode = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

type PgxOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPgxOrderRepository creates a new repository for order data.
func NewPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepository {
	return &PgxOrderRepository{pool: pool}
}

const orderColumns = `order_id, order_number, description, amount, status, order_series_id, created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.OrderID,
		&o.OrderNumber,
		&o.Description,
		&o.Amount,
		&o.Status,
		&o.OrderSeriesID,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
	)
	return o, err
}

// CreateOrder allocates the order number and inserts the order in one
// database transaction. The series row is locked FOR UPDATE, so concurrent
// creations on the same series serialize and each observes the previous
// allocation's last_number.
func (r *PgxOrderRepository) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	var prefix, suffix string
	var startNumber, lastNumber int64
	err = tx.QueryRow(ctx, `
		SELECT prefix, suffix, start_number, last_number
		FROM order_series
		WHERE series_id = $1
		FOR UPDATE;
	`, order.OrderSeriesID).Scan(&prefix, &suffix, &startNumber, &lastNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: order series %s", apperrors.ErrNotFound, order.OrderSeriesID)
		}
		return nil, fmt.Errorf("failed to lock order series %s: %w", order.OrderSeriesID, err)
	}

	next := sequencing.NextOrderNumber(lastNumber, startNumber)
	order.OrderNumber = sequencing.FormatOrderNumber(prefix, next, suffix)

	m := mapping.ToModelOrder(order)
	_, err = tx.Exec(ctx, `
		INSERT INTO orders (order_id, order_number, description, amount, status, order_series_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`,
		m.OrderID, m.OrderNumber, m.Description, m.Amount, m.Status, m.OrderSeriesID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: order number %q already exists", apperrors.ErrDuplicate, order.OrderNumber)
		}
		return nil, fmt.Errorf("failed to insert order %s: %w", order.OrderID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE order_series SET last_number = $1, last_updated_at = $2, last_updated_by = $3
		WHERE series_id = $4;
	`, next, order.LastUpdatedAt, order.LastUpdatedBy, order.OrderSeriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to advance order series %s: %w", order.OrderSeriesID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order creation: %w", err)
	}
	return &order, nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	m, err := scanOrder(r.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}
	d := mapping.ToDomainOrder(m)
	return &d, nil
}

func (r *PgxOrderRepository) ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan order rows: %w", err)
	}

	out := make([]domain.Order, len(ms))
	for i := range ms {
		out[i] = mapping.ToDomainOrder(ms[i])
	}
	return out, nil
}

// UpdateOrder writes the mutable columns. The order number is never updated.
func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET description = $1, amount = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE order_id = $6;
	`, m.Description, m.Amount, m.Status, m.LastUpdatedAt, m.LastUpdatedBy, m.OrderID)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", order.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE order_id = $1;`, orderID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: order is still referenced by suborders or transactions", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to delete order %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxSubOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSubOrderRepository creates a new repository for suborder data.
func NewPgxSubOrderRepository(pool *pgxpool.Pool) portsrepo.SubOrderRepository {
	return &PgxSubOrderRepository{pool: pool}
}

// subOrderSelect joins the parent order number and counts referencing
// transactions in one read.
const subOrderSelect = `
	SELECT s.sub_order_id, s.name, s.description, s.order_id,
	       o.order_number,
	       COUNT(t.transaction_id) AS transaction_count,
	       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
	FROM sub_orders s
	JOIN orders o ON o.order_id = s.order_id
	LEFT JOIN transactions t ON t.sub_order_id = s.sub_order_id
`

const subOrderGroupBy = ` GROUP BY s.sub_order_id, s.name, s.description, s.order_id, o.order_number, s.created_at, s.created_by, s.last_updated_at, s.last_updated_by`

func scanSubOrder(row pgx.Row) (models.SubOrder, error) {
	var s models.SubOrder
	err := row.Scan(
		&s.SubOrderID,
		&s.Name,
		&s.Description,
		&s.OrderID,
		&s.OrderNumber,
		&s.TransactionCount,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

func (r *PgxSubOrderRepository) SaveSubOrder(ctx context.Context, subOrder domain.SubOrder) error {
	m := mapping.ToModelSubOrder(subOrder)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sub_orders (sub_order_id, name, description, order_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		m.SubOrderID, m.Name, m.Description, m.OrderID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: parent order %s", apperrors.ErrNotFound, subOrder.OrderID)
		}
		return fmt.Errorf("failed to save suborder %s: %w", subOrder.SubOrderID, err)
	}
	return nil
}

func (r *PgxSubOrderRepository) FindSubOrderByID(ctx context.Context, subOrderID string) (*domain.SubOrder, error) {
	query := subOrderSelect + ` WHERE s.sub_order_id = $1` + subOrderGroupBy + `;`
	m, err := scanSubOrder(r.pool.QueryRow(ctx, query, subOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find suborder %s: %w", subOrderID, err)
	}
	d := mapping.ToDomainSubOrder(m)
	return &d, nil
}

func (r *PgxSubOrderRepository) ListSubOrders(ctx context.Context, orderID string) ([]domain.SubOrder, error) {
	query := subOrderSelect
	args := []any{}
	if orderID != "" {
		query += ` WHERE s.order_id = $1`
		args = append(args, orderID)
	}
	query += subOrderGroupBy + ` ORDER BY s.created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query suborders: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SubOrder, error) {
		return scanSubOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan suborder rows: %w", err)
	}

	out := make([]domain.SubOrder, len(ms))
	for i := range ms {
		out[i] = mapping.ToDomainSubOrder(ms[i])
	}
	return out, nil
}

func (r *PgxSubOrderRepository) UpdateSubOrder(ctx context.Context, subOrder domain.SubOrder) error {
	m := mapping.ToModelSubOrder(subOrder)
	tag, err := r.pool.Exec(ctx, `
		UPDATE sub_orders SET name = $1, description = $2, last_updated_at = $3, last_updated_by = $4
		WHERE sub_order_id = $5;
	`, m.Name, m.Description, m.LastUpdatedAt, m.LastUpdatedBy, m.SubOrderID)
	if err != nil {
		return fmt.Errorf("failed to update suborder %s: %w", subOrder.SubOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSubOrder relies on the RESTRICT foreign key from transactions: a
// referenced suborder cannot be removed.
func (r *PgxSubOrderRepository) DeleteSubOrder(ctx context.Context, subOrderID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sub_orders WHERE sub_order_id = $1;`, subOrderID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: suborder is still referenced by transactions", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to delete suborder %s: %w", subOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
