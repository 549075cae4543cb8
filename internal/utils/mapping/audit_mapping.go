package mapping

import (
	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/models"
)

func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		AuditID:    d.AuditID,
		UserID:     d.UserID,
		Action:     string(d.Action),
		EntityType: d.EntityType,
		EntityID:   d.EntityID,
		Details:    d.Details,
		Timestamp:  d.Timestamp,
	}
}

func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		AuditID:    m.AuditID,
		UserID:     m.UserID,
		Action:     domain.AuditAction(m.Action),
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Details:    m.Details,
		Timestamp:  m.Timestamp,
	}
}
