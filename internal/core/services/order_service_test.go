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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOrderRepository
	service  portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrderRepository)
	suite.service = services.NewOrderService(suite.mockRepo, stubAuditSvc{})
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	seriesID := uuid.NewString()
	req := dto.CreateOrderRequest{
		OrderSeriesID: seriesID,
		Amount:        decimal.NewFromInt(1500),
		Description:   "Site visit advance",
	}

	suite.mockRepo.On("CreateOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.OrderSeriesID == seriesID &&
			o.Status == domain.OrderActive &&
			o.Amount.Equal(req.Amount) &&
			o.CreatedBy == creatorUserID &&
			o.OrderNumber == "" // allocated by the repository
	})).Return(&domain.Order{
		OrderID:       uuid.NewString(),
		OrderNumber:   "ORD-2024-001",
		Amount:        req.Amount,
		Status:        domain.OrderActive,
		OrderSeriesID: seriesID,
	}, nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal("ORD-2024-001", order.OrderNumber)
	suite.Equal(domain.OrderActive, order.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		OrderSeriesID: uuid.NewString(),
		Amount:        decimal.Zero,
	}

	order, err := suite.service.CreateOrder(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_SeriesNotFound() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		OrderSeriesID: uuid.NewString(),
		Amount:        decimal.NewFromInt(100),
	}

	suite.mockRepo.On("CreateOrder", ctx, mock.AnythingOfType("domain.Order")).Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.CreateOrder(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_StatusTransition() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.Order{
		OrderID: orderID,
		Amount:  decimal.NewFromInt(100),
		Status:  domain.OrderActive,
	}
	completed := "COMPLETED"

	suite.mockRepo.On("FindOrderByID", ctx, orderID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderCompleted
	})).Return(nil).Once()

	order, err := suite.service.UpdateOrder(ctx, orderID, dto.UpdateOrderRequest{Status: &completed}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.OrderCompleted, order.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_TerminalStatusIsFinal() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.Order{
		OrderID: orderID,
		Amount:  decimal.NewFromInt(100),
		Status:  domain.OrderCancelled,
	}
	active := "ACTIVE"

	suite.mockRepo.On("FindOrderByID", ctx, orderID).Return(existing, nil).Once()

	order, err := suite.service.UpdateOrder(ctx, orderID, dto.UpdateOrderRequest{Status: &active}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_NoChanges() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.Order{OrderID: orderID, Amount: decimal.NewFromInt(100), Status: domain.OrderActive}

	suite.mockRepo.On("FindOrderByID", ctx, orderID).Return(existing, nil).Once()

	order, err := suite.service.UpdateOrder(ctx, orderID, dto.UpdateOrderRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(existing, order)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestDeleteOrder_NotFound() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockRepo.On("FindOrderByID", ctx, orderID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteOrder(ctx, orderID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteOrder", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

// --- SubOrder Test Suite ---
type SubOrderServiceTestSuite struct {
	suite.Suite
	mockSubRepo   *MockSubOrderRepository
	mockOrderRepo *MockOrderRepository
	service       portssvc.SubOrderSvcFacade
}

func (suite *SubOrderServiceTestSuite) SetupTest() {
	suite.mockSubRepo = new(MockSubOrderRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.service = services.NewSubOrderService(suite.mockSubRepo, suite.mockOrderRepo, stubAuditSvc{})
}

func (suite *SubOrderServiceTestSuite) TestCreateSubOrder_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()
	parent := &domain.Order{OrderID: orderID, OrderNumber: "ORD-2024-007"}
	req := dto.CreateSubOrderRequest{Name: "Materials", OrderID: orderID}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(parent, nil).Once()
	suite.mockSubRepo.On("SaveSubOrder", ctx, mock.MatchedBy(func(s domain.SubOrder) bool {
		return s.OrderID == orderID && s.Name == "Materials" && s.OrderNumber == "ORD-2024-007"
	})).Return(nil).Once()

	subOrder, err := suite.service.CreateSubOrder(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("Materials", subOrder.Name)
	suite.mockSubRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *SubOrderServiceTestSuite) TestCreateSubOrder_ParentMissing() {
	ctx := context.Background()
	req := dto.CreateSubOrderRequest{Name: "Materials", OrderID: uuid.NewString()}

	suite.mockOrderRepo.On("FindOrderByID", ctx, req.OrderID).Return(nil, apperrors.ErrNotFound).Once()

	subOrder, err := suite.service.CreateSubOrder(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(subOrder)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSubRepo.AssertNotCalled(suite.T(), "SaveSubOrder", mock.Anything, mock.Anything)
}

func (suite *SubOrderServiceTestSuite) TestDeleteSubOrder_StillReferenced() {
	ctx := context.Background()
	subOrderID := uuid.NewString()
	existing := &domain.SubOrder{SubOrderID: subOrderID, Name: "Materials", TransactionCount: 3}
	expectedErr := assert.AnError

	suite.mockSubRepo.On("FindSubOrderByID", ctx, subOrderID).Return(existing, nil).Once()
	suite.mockSubRepo.On("DeleteSubOrder", ctx, subOrderID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteSubOrder(ctx, subOrderID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.NotErrorIs(err, expectedErr)
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func TestSubOrderService(t *testing.T) {
	suite.Run(t, new(SubOrderServiceTestSuite))
}
