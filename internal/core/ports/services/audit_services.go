package services

import (
	"context"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// AuditSvcFacade records and lists the audit trail. Record is best-effort:
// implementations log failures instead of propagating them.
type AuditSvcFacade interface {
	Record(ctx context.Context, userID string, action domain.AuditAction, entityType, entityID string, details map[string]any)
	ListAuditLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error)
}
