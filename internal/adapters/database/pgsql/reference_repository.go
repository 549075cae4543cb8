package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/impresthq/imprest_backend/internal/apperrors"
	"github.com/impresthq/imprest_backend/internal/core/domain"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	"github.com/impresthq/imprest_backend/internal/models"
	"github.com/impresthq/imprest_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPgxBankAccountRepository creates a new repository for bank account data.
func NewPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepository {
	return &PgxBankAccountRepository{pool: pool}
}

const bankAccountColumns = `account_id, bank_name, account_number, ifsc_code, branch_name, is_default, created_at, created_by, last_updated_at, last_updated_by`

func scanBankAccount(row pgx.Row) (models.BankAccount, error) {
	var a models.BankAccount
	err := row.Scan(
		&a.AccountID,
		&a.BankName,
		&a.AccountNumber,
		&a.IFSCCode,
		&a.BranchName,
		&a.IsDefault,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

// SaveBankAccount inserts the account. When the new account is flagged
// default, existing defaults are cleared in the same database transaction.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	if m.IsDefault {
		_, err = tx.Exec(ctx, `
			UPDATE bank_accounts SET is_default = FALSE, last_updated_at = $1, last_updated_by = $2
			WHERE is_default = TRUE;
		`, m.LastUpdatedAt, m.LastUpdatedBy)
		if err != nil {
			return fmt.Errorf("failed to clear default bank account: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bank_accounts (account_id, bank_name, account_number, ifsc_code, branch_name, is_default, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`,
		m.AccountID, m.BankName, m.AccountNumber, m.IFSCCode, m.BranchName, m.IsDefault,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bank account number already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save bank account %s: %w", account.AccountID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bank account creation: %w", err)
	}
	return nil
}

func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_id = $1;`
	m, err := scanBankAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account %s: %w", accountID, err)
	}
	d := mapping.ToDomainBankAccount(m)
	return &d, nil
}

func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts ORDER BY created_at;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BankAccount, error) {
		return scanBankAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bank account rows: %w", err)
	}

	out := make([]domain.BankAccount, len(ms))
	for i := range ms {
		out[i] = mapping.ToDomainBankAccount(ms[i])
	}
	return out, nil
}

func (r *PgxBankAccountRepository) SetDefaultBankAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	_, err = tx.Exec(ctx, `
		UPDATE bank_accounts SET is_default = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE is_default = TRUE;
	`, now, userID)
	if err != nil {
		return fmt.Errorf("failed to clear default bank account: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE bank_accounts SET is_default = TRUE, last_updated_at = $1, last_updated_by = $2
		WHERE account_id = $3;
	`, now, userID, accountID)
	if err != nil {
		return fmt.Errorf("failed to set default bank account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit default bank account change: %w", err)
	}
	return nil
}

func (r *PgxBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	tag, err := r.pool.Exec(ctx, `
		UPDATE bank_accounts SET bank_name = $1, account_number = $2, ifsc_code = $3, branch_name = $4, last_updated_at = $5, last_updated_by = $6
		WHERE account_id = $7;
	`, m.BankName, m.AccountNumber, m.IFSCCode, m.BranchName, m.LastUpdatedAt, m.LastUpdatedBy, m.AccountID)
	if err != nil {
		return fmt.Errorf("failed to update bank account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBankAccountRepository) DeleteBankAccount(ctx context.Context, accountID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: bank account is still referenced by transactions", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to delete bank account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxExpenseCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPgxExpenseCategoryRepository creates a new repository for expense
// category data.
func NewPgxExpenseCategoryRepository(pool *pgxpool.Pool) portsrepo.ExpenseCategoryRepository {
	return &PgxExpenseCategoryRepository{pool: pool}
}

const expenseCategoryColumns = `category_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanExpenseCategory(row pgx.Row) (models.ExpenseCategory, error) {
	var c models.ExpenseCategory
	err := row.Scan(
		&c.CategoryID,
		&c.Name,
		&c.Description,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

func (r *PgxExpenseCategoryRepository) SaveExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error {
	m := mapping.ToModelExpenseCategory(category)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO expense_categories (category_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		m.CategoryID, m.Name, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: expense category %q already exists", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to save expense category %s: %w", category.CategoryID, err)
	}
	return nil
}

func (r *PgxExpenseCategoryRepository) FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	query := `SELECT ` + expenseCategoryColumns + ` FROM expense_categories WHERE category_id = $1;`
	m, err := scanExpenseCategory(r.pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense category %s: %w", categoryID, err)
	}
	d := mapping.ToDomainExpenseCategory(m)
	return &d, nil
}

func (r *PgxExpenseCategoryRepository) ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	query := `SELECT ` + expenseCategoryColumns + ` FROM expense_categories ORDER BY name;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense categories: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExpenseCategory, error) {
		return scanExpenseCategory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense category rows: %w", err)
	}

	out := make([]domain.ExpenseCategory, len(ms))
	for i := range ms {
		out[i] = mapping.ToDomainExpenseCategory(ms[i])
	}
	return out, nil
}

func (r *PgxExpenseCategoryRepository) UpdateExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error {
	m := mapping.ToModelExpenseCategory(category)
	tag, err := r.pool.Exec(ctx, `
		UPDATE expense_categories SET name = $1, description = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $6;
	`, m.Name, m.Description, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to update expense category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseCategoryRepository) DeleteExpenseCategory(ctx context.Context, categoryID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expense_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: expense category is still referenced by transactions", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to delete expense category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
