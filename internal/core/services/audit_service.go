package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/impresthq/imprest_backend/internal/core/domain"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/middleware"
)

type auditService struct {
	auditRepo portsrepo.AuditRepository
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditRepository) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record writes one audit trail row. Failures are logged, never propagated:
// the audit trail must not fail the operation it describes.
func (s *auditService) Record(ctx context.Context, userID string, action domain.AuditAction, entityType, entityID string, details map[string]any) {
	entry := domain.AuditLog{
		AuditID:    uuid.NewString(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Timestamp:  time.Now(),
	}

	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to record audit log entry",
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID),
			slog.String("action", string(action)),
			slog.String("error", err.Error()))
	}
}

func (s *auditService) ListAuditLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	return s.auditRepo.ListAuditLogs(ctx, limit, offset)
}
