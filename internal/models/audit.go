package models

import "time"

// AuditLog is the audit_logs table row. Details is stored as JSONB.
type AuditLog struct {
	AuditID    string         `db:"audit_id"`
	UserID     string         `db:"user_id"`
	Action     string         `db:"action"`
	EntityType string         `db:"entity_type"`
	EntityID   string         `db:"entity_id"`
	Details    map[string]any `db:"details"`
	Timestamp  time.Time      `db:"timestamp"`
}
