package dto

import (
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// ListAuditLogsParams defines query parameters for listing audit logs.
type ListAuditLogsParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// AuditLogResponse is the public view of one audit trail entry.
type AuditLogResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Details    map[string]any `json:"details,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// ListAuditLogsResponse wraps an audit trail listing.
type ListAuditLogsResponse struct {
	Logs []AuditLogResponse `json:"logs"`
}

// ToAuditLogResponse converts a domain.AuditLog to its DTO.
func ToAuditLogResponse(l *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:         l.AuditID,
		UserID:     l.UserID,
		Action:     string(l.Action),
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Details:    l.Details,
		Timestamp:  l.Timestamp,
	}
}

// ToListAuditLogsResponse converts a domain slice to the listing DTO.
func ToListAuditLogsResponse(logs []domain.AuditLog) ListAuditLogsResponse {
	out := make([]AuditLogResponse, len(logs))
	for i := range logs {
		out[i] = ToAuditLogResponse(&logs[i])
	}
	return ListAuditLogsResponse{Logs: out}
}
