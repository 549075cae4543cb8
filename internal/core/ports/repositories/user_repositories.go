package repositories

import (
	"context"
	"time"

	"github.com/impresthq/imprest_backend/internal/core/domain"
)

// UserRepository persists users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	UpdateUserPassword(ctx context.Context, userID string, passwordHash string, now time.Time) error
	// DeleteUser soft-deletes by setting deleted_at.
	DeleteUser(ctx context.Context, userID string, deleterUserID string, now time.Time) error
}
