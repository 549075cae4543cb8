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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

const transactionColumns = `transaction_id, amount, type, sender_id, receiver_id, remark, payment_method, bank_account_id, order_id, sub_order_id, expense_category_id, has_invoice, invoice_url, entry_date, transaction_date, status, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.Amount,
		&t.Type,
		&t.SenderID,
		&t.ReceiverID,
		&t.Remark,
		&t.PaymentMethod,
		&t.BankAccountID,
		&t.OrderID,
		&t.SubOrderID,
		&t.ExpenseCategoryID,
		&t.HasInvoice,
		&t.InvoiceURL,
		&t.EntryDate,
		&t.TransactionDate,
		&t.Status,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

// CreateTransaction reserves the next sequence for the identifier bucket and
// inserts the row in one database transaction. The counter row is created on
// first use; the upsert's RETURNING gives the reserved value under the row
// lock, so concurrent creations in the same bucket get distinct numbers.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction, idPrefix string) (*domain.Transaction, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	var sequence int64
	err = tx.QueryRow(ctx, `
		INSERT INTO sequence_counters (id_prefix, last_number)
		VALUES ($1, 1)
		ON CONFLICT (id_prefix) DO UPDATE SET last_number = sequence_counters.last_number + 1
		RETURNING last_number;
	`, idPrefix).Scan(&sequence)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve sequence for %q: %w", idPrefix, err)
	}

	txn.TransactionID = sequencing.FormatTransactionID(idPrefix, sequence)

	m := mapping.ToModelTransaction(txn)
	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (transaction_id, amount, type, sender_id, receiver_id, remark, payment_method, bank_account_id, order_id, sub_order_id, expense_category_id, has_invoice, invoice_url, entry_date, transaction_date, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`,
		m.TransactionID, m.Amount, m.Type, m.SenderID, m.ReceiverID, m.Remark, m.PaymentMethod,
		m.BankAccountID, m.OrderID, m.SubOrderID, m.ExpenseCategoryID,
		m.HasInvoice, m.InvoiceURL, m.EntryDate, m.TransactionDate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: transaction %q already exists", apperrors.ErrDuplicate, txn.TransactionID)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: transaction references a missing entity", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction creation: %w", err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// listTransactionsQuery builds the listing SELECT: newest-created first,
// identifier as a deterministic tiebreak.
func listTransactionsQuery(filter portsrepo.ListTransactionsFilter) (string, []any) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	args := []any{}
	if filter.UserID != "" {
		query += ` WHERE sender_id = $1 OR receiver_id = $1 OR created_by = $1`
		args = append(args, filter.UserID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, transaction_id DESC LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)
	args = append(args, limit, filter.Offset)
	return query, args
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	query, args := listTransactionsQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// UpdateTransaction writes the mutable columns. The identifier is immutable.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	tag, err := r.pool.Exec(ctx, `
		UPDATE transactions SET amount = $1, status = $2, remark = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $6;
	`, m.Amount, m.Status, m.Remark, m.LastUpdatedAt, m.LastUpdatedBy, m.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
