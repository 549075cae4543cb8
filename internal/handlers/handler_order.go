package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/dto"
)

// orderHandler handles order and suborder routes.
type orderHandler struct {
	orderService    portssvc.OrderSvcFacade
	subOrderService portssvc.SubOrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade, sos portssvc.SubOrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os, subOrderService: sos}
}

// registerOrderRoutes registers order and suborder routes.
func registerOrderRoutes(rg *gin.RouterGroup, os portssvc.OrderSvcFacade, sos portssvc.SubOrderSvcFacade) {
	h := newOrderHandler(os, sos)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
		orders.PATCH("/:id", h.updateOrder)
		orders.DELETE("/:id", h.deleteOrder)
		orders.GET("/:id/suborders", h.listSubOrdersForOrder)
	}

	subOrders := rg.Group("/suborders")
	{
		subOrders.POST("", h.createSubOrder)
		subOrders.GET("", h.listSubOrders)
		subOrders.GET("/:id", h.getSubOrder)
		subOrders.PATCH("/:id", h.updateSubOrder)
		subOrders.DELETE("/:id", h.deleteSubOrder)
	}
}

// createOrder godoc
// @Summary Mint a new order
// @Description Allocates the next number in the chosen series and creates the order as ACTIVE
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Series not found"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}

	requestLogger(c).Info("Order created", slog.String("order_number", order.OrderNumber))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// getOrder godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	order, err := h.orderService.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List orders
// @Tags orders
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListOrdersResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}

// updateOrder godoc
// @Summary Update an order
// @Description Amount, description and status may change; the order number is immutable and COMPLETED/CANCELLED are terminal
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   order body dto.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Order is in a terminal state"
// @Security BearerAuth
// @Router /orders/{id} [patch]
func (h *orderHandler) updateOrder(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete an order
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Order is still referenced"
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete order")
		return
	}
	c.Status(http.StatusNoContent)
}

// listSubOrdersForOrder godoc
// @Summary List suborders of one order
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.ListSubOrdersResponse
// @Security BearerAuth
// @Router /orders/{id}/suborders [get]
func (h *orderHandler) listSubOrdersForOrder(c *gin.Context) {
	subOrders, err := h.subOrderService.ListSubOrders(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list suborders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSubOrdersResponse(subOrders))
}

// createSubOrder godoc
// @Summary Create a suborder
// @Tags suborders
// @Accept  json
// @Produce  json
// @Param   subOrder body dto.CreateSubOrderRequest true "Suborder details"
// @Success 201 {object} dto.SubOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Parent order not found"
// @Security BearerAuth
// @Router /suborders [post]
func (h *orderHandler) createSubOrder(c *gin.Context) {
	var req dto.CreateSubOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	subOrder, err := h.subOrderService.CreateSubOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create suborder")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSubOrderResponse(subOrder))
}

// listSubOrders godoc
// @Summary List all suborders
// @Tags suborders
// @Produce  json
// @Success 200 {object} dto.ListSubOrdersResponse
// @Security BearerAuth
// @Router /suborders [get]
func (h *orderHandler) listSubOrders(c *gin.Context) {
	subOrders, err := h.subOrderService.ListSubOrders(c.Request.Context(), "")
	if err != nil {
		respondError(c, err, "Failed to list suborders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSubOrdersResponse(subOrders))
}

// getSubOrder godoc
// @Summary Get a suborder by ID
// @Tags suborders
// @Produce  json
// @Param   id path string true "Suborder ID"
// @Success 200 {object} dto.SubOrderResponse
// @Failure 404 {object} map[string]string "Suborder not found"
// @Security BearerAuth
// @Router /suborders/{id} [get]
func (h *orderHandler) getSubOrder(c *gin.Context) {
	subOrder, err := h.subOrderService.GetSubOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve suborder")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubOrderResponse(subOrder))
}

// updateSubOrder godoc
// @Summary Update a suborder
// @Tags suborders
// @Accept  json
// @Produce  json
// @Param   id path string true "Suborder ID"
// @Param   subOrder body dto.UpdateSubOrderRequest true "Fields to update"
// @Success 200 {object} dto.SubOrderResponse
// @Failure 404 {object} map[string]string "Suborder not found"
// @Security BearerAuth
// @Router /suborders/{id} [patch]
func (h *orderHandler) updateSubOrder(c *gin.Context) {
	var req dto.UpdateSubOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	subOrder, err := h.subOrderService.UpdateSubOrder(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update suborder")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubOrderResponse(subOrder))
}

// deleteSubOrder godoc
// @Summary Delete a suborder
// @Description Refused while transactions still reference the suborder
// @Tags suborders
// @Produce  json
// @Param   id path string true "Suborder ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Suborder not found"
// @Failure 409 {object} map[string]string "Suborder is still referenced"
// @Security BearerAuth
// @Router /suborders/{id} [delete]
func (h *orderHandler) deleteSubOrder(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.subOrderService.DeleteSubOrder(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete suborder")
		return
	}
	c.Status(http.StatusNoContent)
}
