package repositories

import (
	"context"
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// OrderSeriesRepository persists order numbering series.
type OrderSeriesRepository interface {
	// SaveOrderSeries inserts a new series. Returns apperrors.ErrDuplicate when
	// the prefix is already taken.
	SaveOrderSeries(ctx context.Context, series domain.OrderSeries) error
	FindOrderSeriesByID(ctx context.Context, seriesID string) (*domain.OrderSeries, error)
	ListOrderSeries(ctx context.Context) ([]domain.OrderSeries, error)
	CountOrderSeries(ctx context.Context) (int64, error)
	// SetDefaultOrderSeries unsets every default flag and sets the target's,
	// inside one database transaction.
	SetDefaultOrderSeries(ctx context.Context, seriesID string, userID string, now time.Time) error
	DeleteOrderSeries(ctx context.Context, seriesID string) error
}

// SenderSeriesRepository persists sender-ID series used by the transaction
// identifier allocator.
type SenderSeriesRepository interface {
	SaveSenderSeries(ctx context.Context, series domain.SenderIDSeries) error
	FindSenderSeriesByID(ctx context.Context, seriesID string) (*domain.SenderIDSeries, error)
	// FindDefaultSenderSeries returns apperrors.ErrNoDefaultSeries when no
	// series is marked default.
	FindDefaultSenderSeries(ctx context.Context) (*domain.SenderIDSeries, error)
	ListSenderSeries(ctx context.Context) ([]domain.SenderIDSeries, error)
	CountSenderSeries(ctx context.Context) (int64, error)
	SetDefaultSenderSeries(ctx context.Context, seriesID string, userID string, now time.Time) error
	DeleteSenderSeries(ctx context.Context, seriesID string) error
}
