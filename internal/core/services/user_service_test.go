package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/impresthq/imprest_backend/internal/apperrors"
	"github.com/impresthq/imprest_backend/internal/core/domain"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/core/services"
	"github.com/impresthq/imprest_backend/internal/dto"
	"github.com/impresthq/imprest_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// recordingMailer captures the last generated-password mail instead of
// sending it.
type recordingMailer struct {
	to       string
	password string
}

func (m *recordingMailer) SendGeneratedPassword(ctx context.Context, to, name, password string) error {
	m.to = to
	m.password = password
	return nil
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	mailer   *recordingMailer
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mailer = &recordingMailer{}
	suite.service = services.NewUserService(suite.mockRepo, suite.mailer, stubAuditSvc{})
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateUserRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Role:      "employee",
		PrintName: "JDOE",
		SenderID:  "SND-01",
	}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.Role == domain.RoleEmployee &&
			u.SenderID == "SND-01-JDOE" &&
			u.PasswordHash != "" &&
			u.CreatedBy == creatorUserID
	})).Return(nil).Once()

	user, password, err := suite.service.CreateUser(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.NotEmpty(password)
	suite.True(utils.CheckPasswordHash(password, user.PasswordHash))
	suite.Equal(req.Email, suite.mailer.to)
	suite.Equal(password, suite.mailer.password)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Role:      "employee",
		PrintName: "JDOE",
		SenderID:  "SND-01",
	}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(&domain.User{UserID: uuid.NewString(), Email: req.Email}, nil).Once()

	user, password, err := suite.service.CreateUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(password)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "s3cret-pass"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmailSameError() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfRefused() {
	ctx := context.Background()
	userID := uuid.NewString()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	current := "initial-pass"
	hash, err := utils.HashPassword(current)
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), PasswordHash: hash}

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockRepo.On("UpdateUserPassword", ctx, user.UserID, mock.MatchedBy(func(newHash string) bool {
		return newHash != hash && utils.CheckPasswordHash("new-pass-123", newHash)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err = suite.service.ChangePassword(ctx, user.UserID, current, "new-pass-123")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("initial-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), PasswordHash: hash}

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	err = suite.service.ChangePassword(ctx, user.UserID, "guess", "new-pass-123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestChangePassword_UserMissing() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ChangePassword(ctx, userID, "whatever", "new-pass-123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
