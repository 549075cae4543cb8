package dto

import (
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// CreateOrderSeriesRequest defines the data for creating an order series.
// The seriescode validation is registered in the handlers package.
type CreateOrderSeriesRequest struct {
	Prefix      string `json:"prefix" binding:"required,min=2,seriescode"`
	Suffix      string `json:"suffix" binding:"omitempty,seriescode"`
	Description string `json:"description" binding:"omitempty,min=5"`
	StartNumber int64  `json:"startNumber" binding:"omitempty,min=1"`
}

// CreateSenderSeriesRequest defines the data for creating a sender-ID series.
type CreateSenderSeriesRequest struct {
	Prefix      string `json:"prefix" binding:"required,min=2,seriescode"`
	Description string `json:"description" binding:"omitempty,min=5"`
}

// OrderSeriesResponse is the public view of an order series.
type OrderSeriesResponse struct {
	ID          string    `json:"id"`
	Prefix      string    `json:"prefix"`
	Suffix      string    `json:"suffix,omitempty"`
	Description string    `json:"description,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	StartNumber int64     `json:"startNumber"`
	LastNumber  int64     `json:"lastNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SenderSeriesResponse is the public view of a sender-ID series.
type SenderSeriesResponse struct {
	ID          string    `json:"id"`
	Prefix      string    `json:"prefix"`
	Description string    `json:"description,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	LastNumber  int64     `json:"lastNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListOrderSeriesResponse wraps an order series listing.
type ListOrderSeriesResponse struct {
	Series []OrderSeriesResponse `json:"series"`
}

// ListSenderSeriesResponse wraps a sender series listing.
type ListSenderSeriesResponse struct {
	Series []SenderSeriesResponse `json:"series"`
}

// ToOrderSeriesResponse converts a domain.OrderSeries to its DTO.
func ToOrderSeriesResponse(s *domain.OrderSeries) OrderSeriesResponse {
	return OrderSeriesResponse{
		ID:          s.SeriesID,
		Prefix:      s.Prefix,
		Suffix:      s.Suffix,
		Description: s.Description,
		IsDefault:   s.IsDefault,
		StartNumber: s.StartNumber,
		LastNumber:  s.LastNumber,
		CreatedAt:   s.CreatedAt,
	}
}

// ToListOrderSeriesResponse converts a domain slice to the listing DTO.
func ToListOrderSeriesResponse(series []domain.OrderSeries) ListOrderSeriesResponse {
	out := make([]OrderSeriesResponse, len(series))
	for i := range series {
		out[i] = ToOrderSeriesResponse(&series[i])
	}
	return ListOrderSeriesResponse{Series: out}
}

// ToSenderSeriesResponse converts a domain.SenderIDSeries to its DTO.
func ToSenderSeriesResponse(s *domain.SenderIDSeries) SenderSeriesResponse {
	return SenderSeriesResponse{
		ID:          s.SeriesID,
		Prefix:      s.Prefix,
		Description: s.Description,
		IsDefault:   s.IsDefault,
		LastNumber:  s.LastNumber,
		CreatedAt:   s.CreatedAt,
	}
}

// ToListSenderSeriesResponse converts a domain slice to the listing DTO.
func ToListSenderSeriesResponse(series []domain.SenderIDSeries) ListSenderSeriesResponse {
	out := make([]SenderSeriesResponse, len(series))
	for i := range series {
		out[i] = ToSenderSeriesResponse(&series[i])
	}
	return ListSenderSeriesResponse{Series: out}
}
