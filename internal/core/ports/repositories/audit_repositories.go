package repositories

import (
	"context"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// AuditRepository persists the audit trail.
type AuditRepository interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error
	ListAuditLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error)
}
