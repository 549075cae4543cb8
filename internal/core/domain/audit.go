package domain

import "time"

// AuditAction is the kind of change an audit log row records.
type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// AuditLog records a single create/update/delete performed by a user.
type AuditLog struct {
	AuditID    string         `json:"id"` // Primary Key (UUID)
	UserID     string         `json:"userId"`
	Action     AuditAction    `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Details    map[string]any `json:"details,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}
