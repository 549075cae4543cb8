package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetUserLedger(ctx context.Context, userID string) (*domain.UserLedger, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserLedger), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

func (suite *LedgerHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "imprest-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	registerLedgerRoutes(v1, suite.mockLedgerService)
}

func (suite *LedgerHandlerTestSuite) TestGetUserLedger_Success() {
	userID := uuid.NewString()
	requestingUserID := uuid.NewString()

	expectedLedger := &domain.UserLedger{
		UserID: userID,
		Summary: domain.LedgerSummary{
			Balance:     decimal.NewFromInt(300),
			TotalCredit: decimal.NewFromInt(500),
			TotalDebit:  decimal.NewFromInt(200),
		},
		Entries: []domain.LedgerEntry{
			{
				TransactionID: "RBC-2025-JANE-EMP-IMP-002",
				Type:          domain.Imprest,
				Credit:        decimal.NewFromInt(500),
				Debit:         decimal.Zero,
			},
			{
				TransactionID: "RBC-2025-JANE-EMP-EXP-001",
				Type:          domain.Expense,
				Credit:        decimal.Zero,
				Debit:         decimal.NewFromInt(200),
			},
		},
	}

	suite.mockLedgerService.On("GetUserLedger",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
	).Return(expectedLedger, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/"+userID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body domain.UserLedger
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal(userID, body.UserID)
	suite.True(body.Summary.Balance.Equal(decimal.NewFromInt(300)))
	suite.Len(body.Entries, 2)
	if len(body.Entries) == 2 {
		suite.Equal("RBC-2025-JANE-EMP-IMP-002", body.Entries[0].TransactionID)
		suite.Equal("RBC-2025-JANE-EMP-EXP-001", body.Entries[1].TransactionID)
	}

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetOwnLedger_UsesTokenSubject() {
	requestingUserID := uuid.NewString()

	suite.mockLedgerService.On("GetUserLedger",
		mock.AnythingOfType("*context.valueCtx"),
		requestingUserID,
	).Return(&domain.UserLedger{
		UserID:  requestingUserID,
		Entries: []domain.LedgerEntry{},
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/me", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetUserLedger_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetUserLedger")
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
