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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// Partial unique indexes backing the single-default invariant; violation of
// one of these means a concurrent writer already holds the default flag.
const (
	orderSeriesDefaultIdx  = "idx_order_series_single_default"
	senderSeriesDefaultIdx = "idx_sender_id_series_single_default"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isUniqueViolationOn(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint
}

// orderSeriesSaveError translates an insert failure. A default-index
// violation gets its own message so a creation that raced another default
// holder is not reported as a prefix collision.
func orderSeriesSaveError(err error, series domain.OrderSeries) error {
	if isUniqueViolationOn(err, orderSeriesDefaultIdx) {
		return fmt.Errorf("%w: another order series is already the default", apperrors.ErrConflict)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: order series prefix %q already exists", apperrors.ErrDuplicate, series.Prefix)
	}
	return fmt.Errorf("failed to save order series %s: %w", series.SeriesID, err)
}

func senderSeriesSaveError(err error, series domain.SenderIDSeries) error {
	if isUniqueViolationOn(err, senderSeriesDefaultIdx) {
		return fmt.Errorf("%w: another sender series is already the default", apperrors.ErrConflict)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: sender series prefix %q already exists", apperrors.ErrDuplicate, series.Prefix)
	}
	return fmt.Errorf("failed to save sender series %s: %w", series.SeriesID, err)
}

type PgxOrderSeriesRepository struct {
	pool *pgxpool.Pool
}

// NewPgxOrderSeriesRepository creates a new repository for order series data.
func NewPgxOrderSeriesRepository(pool *pgxpool.Pool) portsrepo.OrderSeriesRepository {
	return &PgxOrderSeriesRepository{pool: pool}
}

const orderSeriesColumns = `series_id, prefix, suffix, description, is_default, start_number, last_number, created_at, created_by, last_updated_at, last_updated_by`

func scanOrderSeries(row pgx.Row) (models.OrderSeries, error) {
	var s models.OrderSeries
	err := row.Scan(
		&s.SeriesID,
		&s.Prefix,
		&s.Suffix,
		&s.Description,
		&s.IsDefault,
		&s.StartNumber,
		&s.LastNumber,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

func (r *PgxOrderSeriesRepository) SaveOrderSeries(ctx context.Context, series domain.OrderSeries) error {
	m := mapping.ToModelOrderSeries(series)
	query := `
		INSERT INTO order_series (series_id, prefix, suffix, description, is_default, start_number, last_number, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.SeriesID, m.Prefix, m.Suffix, m.Description, m.IsDefault, m.StartNumber, m.LastNumber,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return orderSeriesSaveError(err, series)
	}
	return nil
}

func (r *PgxOrderSeriesRepository) FindOrderSeriesByID(ctx context.Context, seriesID string) (*domain.OrderSeries, error) {
	query := `SELECT ` + orderSeriesColumns + ` FROM order_series WHERE series_id = $1;`
	m, err := scanOrderSeries(r.pool.QueryRow(ctx, query, seriesID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order series %s: %w", seriesID, err)
	}
	d := mapping.ToDomainOrderSeries(m)
	return &d, nil
}

func (r *PgxOrderSeriesRepository) ListOrderSeries(ctx context.Context) ([]domain.OrderSeries, error) {
	query := `SELECT ` + orderSeriesColumns + ` FROM order_series ORDER BY created_at;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query order series: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.OrderSeries, error) {
		return scanOrderSeries(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan order series rows: %w", err)
	}

	out := make([]domain.OrderSeries, len(ms))
	for i := range ms {
		out[i] = mapping.ToDomainOrderSeries(ms[i])
	}
	return out, nil
}

func (r *PgxOrderSeriesRepository) CountOrderSeries(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_series;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count order series: %w", err)
	}
	return count, nil
}

// SetDefaultOrderSeries unsets every default flag and sets the target's in one
// transaction. No intermediate state with zero or two defaults is visible to
// other sessions.
func (r *PgxOrderSeriesRepository) SetDefaultOrderSeries(ctx context.Context, seriesID string, userID string, now time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	_, err = tx.Exec(ctx, `
		UPDATE order_series SET is_default = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE is_default = TRUE;
	`, now, userID)
	if err != nil {
		return fmt.Errorf("failed to clear default order series: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE order_series SET is_default = TRUE, last_updated_at = $1, last_updated_by = $2
		WHERE series_id = $3;
	`, now, userID, seriesID)
	if err != nil {
		return fmt.Errorf("failed to set default order series %s: %w", seriesID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit default order series change: %w", err)
	}
	return nil
}

func (r *PgxOrderSeriesRepository) DeleteOrderSeries(ctx context.Context, seriesID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM order_series WHERE series_id = $1;`, seriesID)
	if err != nil {
		return fmt.Errorf("failed to delete order series %s: %w", seriesID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxSenderSeriesRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSenderSeriesRepository creates a new repository for sender-ID series
// data.
func NewPgxSenderSeriesRepository(pool *pgxpool.Pool) portsrepo.SenderSeriesRepository {
	return &PgxSenderSeriesRepository{pool: pool}
}

const senderSeriesColumns = `series_id, prefix, description, is_default, last_number, created_at, created_by, last_updated_at, last_updated_by`

func scanSenderSeries(row pgx.Row) (models.SenderIDSeries, error) {
	var s models.SenderIDSeries
	err := row.Scan(
		&s.SeriesID,
		&s.Prefix,
		&s.Description,
		&s.IsDefault,
		&s.LastNumber,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

func (r *PgxSenderSeriesRepository) SaveSenderSeries(ctx context.Context, series domain.SenderIDSeries) error {
	m := mapping.ToModelSenderSeries(series)
	query := `
		INSERT INTO sender_id_series (series_id, prefix, description, is_default, last_number, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.SeriesID, m.Prefix, m.Description, m.IsDefault, m.LastNumber,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return senderSeriesSaveError(err, series)
	}
	return nil
}

func (r *PgxSenderSeriesRepository) FindSenderSeriesByID(ctx context.Context, seriesID string) (*domain.SenderIDSeries, error) {
	query := `SELECT ` + senderSeriesColumns + ` FROM sender_id_series WHERE series_id = $1;`
	m, err := scanSenderSeries(r.pool.QueryRow(ctx, query, seriesID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sender series %s: %w", seriesID, err)
	}
	d := mapping.ToDomainSenderSeries(m)
	return &d, nil
}

func (r *PgxSenderSeriesRepository) FindDefaultSenderSeries(ctx context.Context) (*domain.SenderIDSeries, error) {
	query := `SELECT ` + senderSeriesColumns + ` FROM sender_id_series WHERE is_default = TRUE;`
	m, err := scanSenderSeries(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoDefaultSeries
		}
		return nil, fmt.Errorf("failed to find default sender series: %w", err)
	}
	d := mapping.ToDomainSenderSeries(m)
	return &d, nil
}

func (r *PgxSenderSeriesRepository) ListSenderSeries(ctx context.Context) ([]domain.SenderIDSeries, error) {
	query := `SELECT ` + senderSeriesColumns + ` FROM sender_id_series ORDER BY created_at;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sender series: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SenderIDSeries, error) {
		return scanSenderSeries(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sender series rows: %w", err)
	}

	out := make([]domain.SenderIDSeries, len(ms))
	for i := range ms {
		out[i] = mapping.ToDomainSenderSeries(ms[i])
	}
	return out, nil
}

func (r *PgxSenderSeriesRepository) CountSenderSeries(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sender_id_series;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sender series: %w", err)
	}
	return count, nil
}

func (r *PgxSenderSeriesRepository) SetDefaultSenderSeries(ctx context.Context, seriesID string, userID string, now time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	_, err = tx.Exec(ctx, `
		UPDATE sender_id_series SET is_default = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE is_default = TRUE;
	`, now, userID)
	if err != nil {
		return fmt.Errorf("failed to clear default sender series: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE sender_id_series SET is_default = TRUE, last_updated_at = $1, last_updated_by = $2
		WHERE series_id = $3;
	`, now, userID, seriesID)
	if err != nil {
		return fmt.Errorf("failed to set default sender series %s: %w", seriesID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit default sender series change: %w", err)
	}
	return nil
}

func (r *PgxSenderSeriesRepository) DeleteSenderSeries(ctx context.Context, seriesID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sender_id_series WHERE series_id = $1;`, seriesID)
	if err != nil {
		return fmt.Errorf("failed to delete sender series %s: %w", seriesID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
