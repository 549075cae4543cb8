package services

import (
	"context"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	"github.com/impresthq/imprest_backend/internal/dto"
)

// UserSvcFacade manages users and credential checks.
type UserSvcFacade interface {
	// CreateUser creates the user with a generated initial password and
	// returns both; delivery of the password by email is best-effort.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actingUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, actingUserID string) error
	// Authenticate verifies email+password and returns the user on success.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// ChangePassword verifies the current password and stores a hash of the
	// new one.
	ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error
}
