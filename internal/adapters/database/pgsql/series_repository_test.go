package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/impresthq/imprest_backend/internal/apperrors"
	"github.com/impresthq/imprest_backend/internal/core/domain"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: constraint}
}

func TestOrderSeriesSaveError(t *testing.T) {
	series := domain.OrderSeries{SeriesID: "s-1", Prefix: "ORD-2024"}

	t.Run("default index violation is a conflict, not a prefix collision", func(t *testing.T) {
		err := orderSeriesSaveError(uniqueViolation(orderSeriesDefaultIdx), series)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
		assert.Contains(t, err.Error(), "already the default")
		assert.NotContains(t, err.Error(), "prefix")
	})

	t.Run("prefix unique violation is a duplicate", func(t *testing.T) {
		err := orderSeriesSaveError(uniqueViolation("order_series_prefix_key"), series)
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		assert.Contains(t, err.Error(), `prefix "ORD-2024" already exists`)
	})

	t.Run("wrapped driver errors are still recognized", func(t *testing.T) {
		wrapped := fmt.Errorf("exec failed: %w", uniqueViolation(orderSeriesDefaultIdx))
		assert.ErrorIs(t, orderSeriesSaveError(wrapped, series), apperrors.ErrConflict)
	})

	t.Run("other failures pass through untranslated", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := orderSeriesSaveError(cause, series)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, apperrors.ErrConflict)
		assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
	})
}

func TestSenderSeriesSaveError(t *testing.T) {
	series := domain.SenderIDSeries{SeriesID: "s-2", Prefix: "SND-01"}

	t.Run("default index violation is a conflict", func(t *testing.T) {
		err := senderSeriesSaveError(uniqueViolation(senderSeriesDefaultIdx), series)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
	})

	t.Run("prefix unique violation is a duplicate", func(t *testing.T) {
		err := senderSeriesSaveError(uniqueViolation("sender_id_series_prefix_key"), series)
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		assert.Contains(t, err.Error(), `prefix "SND-01" already exists`)
	})
}
