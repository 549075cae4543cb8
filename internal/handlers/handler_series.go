package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/dto"
)

// seriesHandler handles order series and sender-ID series routes.
type seriesHandler struct {
	orderSeriesService  portssvc.OrderSeriesSvcFacade
	senderSeriesService portssvc.SenderSeriesSvcFacade
}

func newSeriesHandler(oss portssvc.OrderSeriesSvcFacade, sss portssvc.SenderSeriesSvcFacade) *seriesHandler {
	return &seriesHandler{orderSeriesService: oss, senderSeriesService: sss}
}

// registerSeriesRoutes registers routes for both series kinds.
func registerSeriesRoutes(rg *gin.RouterGroup, oss portssvc.OrderSeriesSvcFacade, sss portssvc.SenderSeriesSvcFacade) {
	h := newSeriesHandler(oss, sss)

	orderSeries := rg.Group("/order-series")
	{
		orderSeries.POST("", h.createOrderSeries)
		orderSeries.GET("", h.listOrderSeries)
		orderSeries.GET("/:id", h.getOrderSeries)
		orderSeries.PUT("/:id/default", h.setDefaultOrderSeries)
		orderSeries.DELETE("/:id", h.deleteOrderSeries)
	}

	senderSeries := rg.Group("/sender-series")
	{
		senderSeries.POST("", h.createSenderSeries)
		senderSeries.GET("", h.listSenderSeries)
		senderSeries.PUT("/:id/default", h.setDefaultSenderSeries)
		senderSeries.DELETE("/:id", h.deleteSenderSeries)
	}
}

// createOrderSeries godoc
// @Summary Create an order numbering series
// @Description The first series created becomes the default automatically
// @Tags series
// @Accept  json
// @Produce  json
// @Param   series body dto.CreateOrderSeriesRequest true "Series details"
// @Success 201 {object} dto.OrderSeriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Prefix already exists"
// @Security BearerAuth
// @Router /order-series [post]
func (h *seriesHandler) createOrderSeries(c *gin.Context) {
	var req dto.CreateOrderSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	series, err := h.orderSeriesService.CreateOrderSeries(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create order series")
		return
	}

	requestLogger(c).Info("Order series created", slog.String("series_id", series.SeriesID))
	c.JSON(http.StatusCreated, dto.ToOrderSeriesResponse(series))
}

// getOrderSeries godoc
// @Summary Get an order series by ID
// @Tags series
// @Produce  json
// @Param   id path string true "Series ID"
// @Success 200 {object} dto.OrderSeriesResponse
// @Failure 404 {object} map[string]string "Series not found"
// @Security BearerAuth
// @Router /order-series/{id} [get]
func (h *seriesHandler) getOrderSeries(c *gin.Context) {
	series, err := h.orderSeriesService.GetOrderSeriesByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve order series")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderSeriesResponse(series))
}

// listOrderSeries godoc
// @Summary List order series
// @Tags series
// @Produce  json
// @Success 200 {object} dto.ListOrderSeriesResponse
// @Security BearerAuth
// @Router /order-series [get]
func (h *seriesHandler) listOrderSeries(c *gin.Context) {
	series, err := h.orderSeriesService.ListOrderSeries(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list order series")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrderSeriesResponse(series))
}

// setDefaultOrderSeries godoc
// @Summary Mark an order series as the default
// @Tags series
// @Produce  json
// @Param   id path string true "Series ID"
// @Success 204 "Default updated"
// @Failure 404 {object} map[string]string "Series not found"
// @Security BearerAuth
// @Router /order-series/{id}/default [put]
func (h *seriesHandler) setDefaultOrderSeries(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.orderSeriesService.SetDefaultOrderSeries(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to set default order series")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteOrderSeries godoc
// @Summary Delete an order series
// @Description The default series cannot be deleted
// @Tags series
// @Produce  json
// @Param   id path string true "Series ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Series not found"
// @Failure 409 {object} map[string]string "Series is the default"
// @Security BearerAuth
// @Router /order-series/{id} [delete]
func (h *seriesHandler) deleteOrderSeries(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.orderSeriesService.DeleteOrderSeries(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete order series")
		return
	}
	c.Status(http.StatusNoContent)
}

// createSenderSeries godoc
// @Summary Create a sender-ID series
// @Tags series
// @Accept  json
// @Produce  json
// @Param   series body dto.CreateSenderSeriesRequest true "Series details"
// @Success 201 {object} dto.SenderSeriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Prefix already exists"
// @Security BearerAuth
// @Router /sender-series [post]
func (h *seriesHandler) createSenderSeries(c *gin.Context) {
	var req dto.CreateSenderSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	series, err := h.senderSeriesService.CreateSenderSeries(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create sender series")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSenderSeriesResponse(series))
}

// listSenderSeries godoc
// @Summary List sender-ID series
// @Tags series
// @Produce  json
// @Success 200 {object} dto.ListSenderSeriesResponse
// @Security BearerAuth
// @Router /sender-series [get]
func (h *seriesHandler) listSenderSeries(c *gin.Context) {
	series, err := h.senderSeriesService.ListSenderSeries(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list sender series")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSenderSeriesResponse(series))
}

// setDefaultSenderSeries godoc
// @Summary Mark a sender-ID series as the default
// @Tags series
// @Produce  json
// @Param   id path string true "Series ID"
// @Success 204 "Default updated"
// @Failure 404 {object} map[string]string "Series not found"
// @Security BearerAuth
// @Router /sender-series/{id}/default [put]
func (h *seriesHandler) setDefaultSenderSeries(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.senderSeriesService.SetDefaultSenderSeries(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to set default sender series")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteSenderSeries godoc
// @Summary Delete a sender-ID series
// @Description The default series cannot be deleted
// @Tags series
// @Produce  json
// @Param   id path string true "Series ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Series not found"
// @Failure 409 {object} map[string]string "Series is the default"
// @Security BearerAuth
// @Router /sender-series/{id} [delete]
func (h *seriesHandler) deleteSenderSeries(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.senderSeriesService.DeleteSenderSeries(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete sender series")
		return
	}
	c.Status(http.StatusNoContent)
}
