package models

import "time"

// User is the users table row.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	PrintName    string `db:"print_name"`
	SenderID     string `db:"sender_id"`
	Position     string `db:"position"`
	Phone        string `db:"phone"`
	Whatsapp     string `db:"whatsapp"`
	Address      string `db:"address"`
	PANNumber    string `db:"pan_number"`
	AadhaarNo    string `db:"aadhaar_number"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
