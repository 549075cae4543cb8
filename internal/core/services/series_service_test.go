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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type OrderSeriesServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOrderSeriesRepository
	service  portssvc.OrderSeriesSvcFacade
}

func (suite *OrderSeriesServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrderSeriesRepository)
	suite.service = services.NewOrderSeriesService(suite.mockRepo, stubAuditSvc{})
}

// --- Test Cases ---

func (suite *OrderSeriesServiceTestSuite) TestCreateOrderSeries_FirstBecomesDefault() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateOrderSeriesRequest{Prefix: "ORD-2024", StartNumber: 1}

	suite.mockRepo.On("CountOrderSeries", ctx).Return(int64(0), nil).Once()
	suite.mockRepo.On("SaveOrderSeries", ctx, mock.MatchedBy(func(s domain.OrderSeries) bool {
		return s.Prefix == "ORD-2024" && s.IsDefault && s.StartNumber == 1 && s.LastNumber == 0
	})).Return(nil).Once()

	series, err := suite.service.CreateOrderSeries(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.True(series.IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderSeriesServiceTestSuite) TestCreateOrderSeries_SubsequentNotDefault() {
	ctx := context.Background()
	req := dto.CreateOrderSeriesRequest{Prefix: "PO-2025", Suffix: "HQ", StartNumber: 100}

	suite.mockRepo.On("CountOrderSeries", ctx).Return(int64(2), nil).Once()
	suite.mockRepo.On("SaveOrderSeries", ctx, mock.MatchedBy(func(s domain.OrderSeries) bool {
		return !s.IsDefault && s.Suffix == "HQ" && s.StartNumber == 100
	})).Return(nil).Once()

	series, err := suite.service.CreateOrderSeries(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(series.IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderSeriesServiceTestSuite) TestCreateOrderSeries_InvalidPrefix() {
	req := dto.CreateOrderSeriesRequest{Prefix: "or d"}

	series, err := suite.service.CreateOrderSeries(context.Background(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(series)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOrderSeries", mock.Anything, mock.Anything)
}

func (suite *OrderSeriesServiceTestSuite) TestCreateOrderSeries_DuplicatePrefix() {
	ctx := context.Background()
	req := dto.CreateOrderSeriesRequest{Prefix: "ORD-2024"}

	suite.mockRepo.On("CountOrderSeries", ctx).Return(int64(1), nil).Once()
	suite.mockRepo.On("SaveOrderSeries", ctx, mock.AnythingOfType("domain.OrderSeries")).Return(apperrors.ErrDuplicate).Once()

	series, err := suite.service.CreateOrderSeries(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(series)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderSeriesServiceTestSuite) TestSetDefaultOrderSeries_Success() {
	ctx := context.Background()
	seriesID := uuid.NewString()
	actingUserID := uuid.NewString()

	suite.mockRepo.On("SetDefaultOrderSeries", ctx, seriesID, actingUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.SetDefaultOrderSeries(ctx, seriesID, actingUserID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderSeriesServiceTestSuite) TestDeleteOrderSeries_DefaultRefused() {
	ctx := context.Background()
	seriesID := uuid.NewString()
	existing := &domain.OrderSeries{SeriesID: seriesID, Prefix: "ORD-2024", IsDefault: true}

	suite.mockRepo.On("FindOrderSeriesByID", ctx, seriesID).Return(existing, nil).Once()

	err := suite.service.DeleteOrderSeries(ctx, seriesID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteOrderSeries", mock.Anything, mock.Anything)
}

func (suite *OrderSeriesServiceTestSuite) TestDeleteOrderSeries_Success() {
	ctx := context.Background()
	seriesID := uuid.NewString()
	existing := &domain.OrderSeries{SeriesID: seriesID, Prefix: "PO-2025", IsDefault: false}

	suite.mockRepo.On("FindOrderSeriesByID", ctx, seriesID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteOrderSeries", ctx, seriesID).Return(nil).Once()

	err := suite.service.DeleteOrderSeries(ctx, seriesID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestOrderSeriesService(t *testing.T) {
	suite.Run(t, new(OrderSeriesServiceTestSuite))
}

// --- Sender Series Test Suite ---
type SenderSeriesServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSenderSeriesRepository
	service  portssvc.SenderSeriesSvcFacade
}

func (suite *SenderSeriesServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSenderSeriesRepository)
	suite.service = services.NewSenderSeriesService(suite.mockRepo, stubAuditSvc{})
}

func (suite *SenderSeriesServiceTestSuite) TestCreateSenderSeries_FirstBecomesDefault() {
	ctx := context.Background()
	req := dto.CreateSenderSeriesRequest{Prefix: "SND-01"}

	suite.mockRepo.On("CountSenderSeries", ctx).Return(int64(0), nil).Once()
	suite.mockRepo.On("SaveSenderSeries", ctx, mock.MatchedBy(func(s domain.SenderIDSeries) bool {
		return s.Prefix == "SND-01" && s.IsDefault
	})).Return(nil).Once()

	series, err := suite.service.CreateSenderSeries(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(series.IsDefault)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SenderSeriesServiceTestSuite) TestDeleteSenderSeries_DefaultRefused() {
	ctx := context.Background()
	seriesID := uuid.NewString()
	existing := &domain.SenderIDSeries{SeriesID: seriesID, Prefix: "SND-01", IsDefault: true}

	suite.mockRepo.On("FindSenderSeriesByID", ctx, seriesID).Return(existing, nil).Once()

	err := suite.service.DeleteSenderSeries(ctx, seriesID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteSenderSeries", mock.Anything, mock.Anything)
}

func TestSenderSeriesService(t *testing.T) {
	suite.Run(t, new(SenderSeriesServiceTestSuite))
}
