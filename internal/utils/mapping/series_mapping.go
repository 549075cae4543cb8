package mapping

import (
	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/models"
)

func ToModelOrderSeries(d domain.OrderSeries) models.OrderSeries {
	return models.OrderSeries{
		SeriesID:    d.SeriesID,
		Prefix:      d.Prefix,
		Suffix:      d.Suffix,
		Description: d.Description,
		IsDefault:   d.IsDefault,
		StartNumber: d.StartNumber,
		LastNumber:  d.LastNumber,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

func ToDomainOrderSeries(m models.OrderSeries) domain.OrderSeries {
	return domain.OrderSeries{
		SeriesID:    m.SeriesID,
		Prefix:      m.Prefix,
		Suffix:      m.Suffix,
		Description: m.Description,
		IsDefault:   m.IsDefault,
		StartNumber: m.StartNumber,
		LastNumber:  m.LastNumber,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

func ToModelSenderSeries(d domain.SenderIDSeries) models.SenderIDSeries {
	return models.SenderIDSeries{
		SeriesID:    d.SeriesID,
		Prefix:      d.Prefix,
		Description: d.Description,
		IsDefault:   d.IsDefault,
		LastNumber:  d.LastNumber,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

func ToDomainSenderSeries(m models.SenderIDSeries) domain.SenderIDSeries {
	return domain.SenderIDSeries{
		SeriesID:    m.SeriesID,
		Prefix:      m.Prefix,
		Description: m.Description,
		IsDefault:   m.IsDefault,
		LastNumber:  m.LastNumber,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}
