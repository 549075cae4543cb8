package services

import (
	"context"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/dto"
)

// OrderSeriesSvcFacade manages order numbering series.
type OrderSeriesSvcFacade interface {
	CreateOrderSeries(ctx context.Context, req dto.CreateOrderSeriesRequest, creatorUserID string) (*domain.OrderSeries, error)
	GetOrderSeriesByID(ctx context.Context, seriesID string) (*domain.OrderSeries, error)
	ListOrderSeries(ctx context.Context) ([]domain.OrderSeries, error)
	SetDefaultOrderSeries(ctx context.Context, seriesID string, actingUserID string) error
	DeleteOrderSeries(ctx context.Context, seriesID string, actingUserID string) error
}

// SenderSeriesSvcFacade manages sender-ID series.
type SenderSeriesSvcFacade interface {
	CreateSenderSeries(ctx context.Context, req dto.CreateSenderSeriesRequest, creatorUserID string) (*domain.SenderIDSeries, error)
	ListSenderSeries(ctx context.Context) ([]domain.SenderIDSeries, error)
	SetDefaultSenderSeries(ctx context.Context, seriesID string, actingUserID string) error
	DeleteSenderSeries(ctx context.Context, seriesID string, actingUserID string) error
}
