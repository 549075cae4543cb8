package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/impresthq/imprest_backend/internal/apperrors"
	"github.com/impresthq/imprest_backend/internal/core/domain"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/dto"
	"github.com/impresthq/imprest_backend/internal/middleware"
	"github.com/impresthq/imprest_backend/internal/platform/mail"
	"github.com/impresthq/imprest_backend/internal/utils"
)

const generatedPasswordLength = 12

type userService struct {
	userRepo portsrepo.UserRepository
	mailer   mail.Mailer
	auditSvc portssvc.AuditSvcFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository, mailer mail.Mailer, auditSvc portssvc.AuditSvcFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, mailer: mailer, auditSvc: auditSvc}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser creates a user with a server-generated initial password. The
// password is returned to the caller and mailed to the user; mail delivery is
// best-effort and never fails the creation.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("%w: a user with this email already exists", apperrors.ErrDuplicate)
	}

	password, err := utils.GeneratePassword(generatedPasswordLength)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate initial password: %w", err)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash initial password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.UserRole(req.Role),
		PrintName:    req.PrintName,
		SenderID:     req.SenderID + "-" + req.PrintName,
		Position:     req.Position,
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		Address:      req.Address,
		PANNumber:    req.PANNumber,
		AadhaarNo:    req.AadhaarNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, "", err
	}
	logger.Info("User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))

	if err := s.mailer.SendGeneratedPassword(ctx, user.Email, user.Name, password); err != nil {
		logger.Error("Failed to email generated password", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
	}

	s.auditSvc.Record(ctx, creatorUserID, domain.AuditCreate, "user", user.UserID, map[string]any{
		"email": user.Email,
		"role":  string(user.Role),
	})
	return &user, password, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx, limit, offset)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
		changes["name"] = *req.Name
	}
	if req.Position != nil {
		user.Position = *req.Position
		changes["position"] = *req.Position
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
		changes["phone"] = *req.Phone
	}
	if req.Whatsapp != nil {
		user.Whatsapp = *req.Whatsapp
		changes["whatsapp"] = *req.Whatsapp
	}
	if req.Address != nil {
		user.Address = *req.Address
		changes["address"] = *req.Address
	}
	if len(changes) == 0 {
		return user, nil
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = actingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditUpdate, "user", userID, changes)
	return user, nil
}

// DeleteUser soft-deletes so past transactions keep resolving the user's
// name in ledger views.
func (s *userService) DeleteUser(ctx context.Context, userID string, actingUserID string) error {
	if userID == actingUserID {
		return fmt.Errorf("%w: users cannot delete themselves", apperrors.ErrConflict)
	}

	if err := s.userRepo.DeleteUser(ctx, userID, actingUserID, time.Now()); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actingUserID, domain.AuditDelete, "user", userID, nil)
	return nil
}

// ChangePassword lets a user replace their own password after proving they
// know the current one. New users are told to do this after the generated
// password arrives by mail.
func (s *userService) ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdateUserPassword(ctx, userID, hash, time.Now()); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, userID, domain.AuditUpdate, "user", userID, map[string]any{
		"field": "password",
	})
	return nil
}

// Authenticate verifies the email and password pair. Both unknown email and
// wrong password produce the same error so callers cannot probe for accounts.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}
	return user, nil
}
