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
	"github.com/impresthq/imprest_backend/internal/utils/sequencing"
)

type orderSeriesService struct {
	seriesRepo portsrepo.OrderSeriesRepository
	auditSvc   portssvc.AuditSvcFacade
}

// NewOrderSeriesService creates a new OrderSeriesService.
func NewOrderSeriesService(seriesRepo portsrepo.OrderSeriesRepository, auditSvc portssvc.AuditSvcFacade) portssvc.OrderSeriesSvcFacade {
	return &orderSeriesService{seriesRepo: seriesRepo, auditSvc: auditSvc}
}

var _ portssvc.OrderSeriesSvcFacade = (*orderSeriesService)(nil)

// CreateOrderSeries creates a numbering series. The first series created
// becomes the default automatically.
func (s *orderSeriesService) CreateOrderSeries(ctx context.Context, req dto.CreateOrderSeriesRequest, creatorUserID string) (*domain.OrderSeries, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Binding already validated the shape; re-check here so the rule holds
	// for non-HTTP callers too.
	if !sequencing.ValidPrefix(req.Prefix) {
		return nil, fmt.Errorf("%w: prefix must be at least 2 characters of A-Z, 0-9 or '-'", apperrors.ErrValidation)
	}
	if req.Suffix != "" && !sequencing.ValidSuffix(req.Suffix) {
		return nil, fmt.Errorf("%w: suffix must consist of A-Z, 0-9 or '-'", apperrors.ErrValidation)
	}

	startNumber := req.StartNumber
	if startNumber < 1 {
		startNumber = 1
	}

	count, err := s.seriesRepo.CountOrderSeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count order series: %w", err)
	}

	now := time.Now()
	series := domain.OrderSeries{
		SeriesID:    uuid.NewString(),
		Prefix:      req.Prefix,
		Suffix:      req.Suffix,
		Description: req.Description,
		IsDefault:   count == 0,
		StartNumber: startNumber,
		LastNumber:  0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.seriesRepo.SaveOrderSeries(ctx, series); err != nil {
		return nil, err
	}
	logger.Info("Order series created", slog.String("series_id", series.SeriesID), slog.String("prefix", series.Prefix), slog.Bool("is_default", series.IsDefault))

	s.auditSvc.Record(ctx, creatorUserID, domain.AuditCreate, "order_series", series.SeriesID, map[string]any{
		"prefix":    series.Prefix,
		"isDefault": series.IsDefault,
	})
	return &series, nil
}

func (s *orderSeriesService) GetOrderSeriesByID(ctx context.Context, seriesID string) (*domain.OrderSeries, error) {
	return s.seriesRepo.FindOrderSeriesByID(ctx, seriesID)
}

func (s *orderSeriesService) ListOrderSeries(ctx context.Context) ([]domain.OrderSeries, error) {
	return s.seriesRepo.ListOrderSeries(ctx)
}

// SetDefaultOrderSeries marks one series as the default. The repository
// performs the unset-all-then-set-one swap in a single database transaction
// so no state with zero or two defaults is ever observable.
func (s *orderSeriesService) SetDefaultOrderSeries(ctx context.Context, seriesID string, actingUserID string) error {
	if err := s.seriesRepo.SetDefaultOrderSeries(ctx, seriesID, actingUserID, time.Now()); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actingUserID, domain.AuditUpdate, "order_series", seriesID, map[string]any{"isDefault": true})
	return nil
}

// DeleteOrderSeries removes a series. The default series cannot be deleted;
// another series has to be promoted first.
func (s *orderSeriesService) DeleteOrderSeries(ctx context.Context, seriesID string, actingUserID string) error {
	series, err := s.seriesRepo.FindOrderSeriesByID(ctx, seriesID)
	if err != nil {
		return err
	}
	if series.IsDefault {
		return fmt.Errorf("%w: cannot delete the default order series", apperrors.ErrConflict)
	}

	if err := s.seriesRepo.DeleteOrderSeries(ctx, seriesID); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actingUserID, domain.AuditDelete, "order_series", seriesID, map[string]any{"prefix": series.Prefix})
	return nil
}

type senderSeriesService struct {
	seriesRepo portsrepo.SenderSeriesRepository
	auditSvc   portssvc.AuditSvcFacade
}

// NewSenderSeriesService creates a new SenderSeriesService.
func NewSenderSeriesService(seriesRepo portsrepo.SenderSeriesRepository, auditSvc portssvc.AuditSvcFacade) portssvc.SenderSeriesSvcFacade {
	return &senderSeriesService{seriesRepo: seriesRepo, auditSvc: auditSvc}
}

var _ portssvc.SenderSeriesSvcFacade = (*senderSeriesService)(nil)

func (s *senderSeriesService) CreateSenderSeries(ctx context.Context, req dto.CreateSenderSeriesRequest, creatorUserID string) (*domain.SenderIDSeries, error) {
	if !sequencing.ValidPrefix(req.Prefix) {
		return nil, fmt.Errorf("%w: prefix must be at least 2 characters of A-Z, 0-9 or '-'", apperrors.ErrValidation)
	}

	count, err := s.seriesRepo.CountSenderSeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sender series: %w", err)
	}

	now := time.Now()
	series := domain.SenderIDSeries{
		SeriesID:    uuid.NewString(),
		Prefix:      req.Prefix,
		Description: req.Description,
		IsDefault:   count == 0,
		LastNumber:  0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.seriesRepo.SaveSenderSeries(ctx, series); err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Sender series created", slog.String("series_id", series.SeriesID), slog.String("prefix", series.Prefix), slog.Bool("is_default", series.IsDefault))

	s.auditSvc.Record(ctx, creatorUserID, domain.AuditCreate, "sender_series", series.SeriesID, map[string]any{
		"prefix":    series.Prefix,
		"isDefault": series.IsDefault,
	})
	return &series, nil
}

func (s *senderSeriesService) ListSenderSeries(ctx context.Context) ([]domain.SenderIDSeries, error) {
	return s.seriesRepo.ListSenderSeries(ctx)
}

func (s *senderSeriesService) SetDefaultSenderSeries(ctx context.Context, seriesID string, actingUserID string) error {
	if err := s.seriesRepo.SetDefaultSenderSeries(ctx, seriesID, actingUserID, time.Now()); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actingUserID, domain.AuditUpdate, "sender_series", seriesID, map[string]any{"isDefault": true})
	return nil
}

// DeleteSenderSeries removes a sender series. The default cannot be deleted
// because transaction creation resolves the default series at mint time.
func (s *senderSeriesService) DeleteSenderSeries(ctx context.Context, seriesID string, actingUserID string) error {
	series, err := s.seriesRepo.FindSenderSeriesByID(ctx, seriesID)
	if err != nil {
		return err
	}
	if series.IsDefault {
		return fmt.Errorf("%w: cannot delete the default sender series", apperrors.ErrConflict)
	}

	if err := s.seriesRepo.DeleteSenderSeries(ctx, seriesID); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actingUserID, domain.AuditDelete, "sender_series", seriesID, map[string]any{"prefix": series.Prefix})
	return nil
}
