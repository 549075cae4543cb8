package mapping

import (
	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/models"
)

func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:       d.OrderID,
		OrderNumber:   d.OrderNumber,
		Description:   d.Description,
		Amount:        d.Amount,
		Status:        string(d.Status),
		OrderSeriesID: d.OrderSeriesID,
		AuditFields:   toModelAuditFields(d.AuditFields),
	}
}

func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:       m.OrderID,
		OrderNumber:   m.OrderNumber,
		Description:   m.Description,
		Amount:        m.Amount,
		Status:        domain.OrderStatus(m.Status),
		OrderSeriesID: m.OrderSeriesID,
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}

func ToModelSubOrder(d domain.SubOrder) models.SubOrder {
	return models.SubOrder{
		SubOrderID:  d.SubOrderID,
		Name:        d.Name,
		Description: d.Description,
		OrderID:     d.OrderID,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

func ToDomainSubOrder(m models.SubOrder) domain.SubOrder {
	return domain.SubOrder{
		SubOrderID:       m.SubOrderID,
		Name:             m.Name,
		Description:      m.Description,
		OrderID:          m.OrderID,
		OrderNumber:      m.OrderNumber,
		TransactionCount: m.TransactionCount,
		AuditFields:      toDomainAuditFields(m.AuditFields),
	}
}
