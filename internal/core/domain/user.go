package domain

import "time"

// UserRole identifies the coarse role a user holds within the organisation.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleAccountant UserRole = "accountant"
	RoleEmployee   UserRole = "employee"
)

// User represents an employee or administrator of the imprest system.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	PrintName    string   `json:"printName"`
	SenderID     string   `json:"senderId"` // Composite sender code, e.g. "SND-01-JDOE"
	Position     string   `json:"position,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Whatsapp     string   `json:"whatsapp,omitempty"`
	Address      string   `json:"address,omitempty"`
	PANNumber    string   `json:"panNumber,omitempty"`
	AadhaarNo    string   `json:"aadhaarNumber,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
