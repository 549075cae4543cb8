package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/utils/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ledgerHandler serves the derived per-user ledger view.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ls)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/me", h.getOwnLedger)
		ledger.GET("/:id", h.getUserLedger)
		ledger.GET("/:id/export", h.exportUserLedger)
	}
}

// getOwnLedger godoc
// @Summary Get the caller's ledger
// @Tags ledger
// @Produce  json
// @Success 200 {object} domain.UserLedger
// @Security BearerAuth
// @Router /ledger/me [get]
func (h *ledgerHandler) getOwnLedger(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.GetUserLedger(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// getUserLedger godoc
// @Summary Get a user's ledger
// @Description Folds the full transaction set into the user's summary and entries, most recent first
// @Tags ledger
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} domain.UserLedger
// @Security BearerAuth
// @Router /ledger/{id} [get]
func (h *ledgerHandler) getUserLedger(c *gin.Context) {
	ledger, err := h.ledgerService.GetUserLedger(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to compute ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// exportUserLedger godoc
// @Summary Download a user's ledger as a spreadsheet
// @Tags ledger
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   id path string true "User ID"
// @Success 200 {file} file "Ledger workbook"
// @Security BearerAuth
// @Router /ledger/{id}/export [get]
func (h *ledgerHandler) exportUserLedger(c *gin.Context) {
	logger := requestLogger(c)
	userID := c.Param("id")

	ledger, err := h.ledgerService.GetUserLedger(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute ledger")
		return
	}

	workbook, err := export.LedgerWorkbook(ledger)
	if err != nil {
		logger.Error("Failed to render ledger workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export ledger"})
		return
	}
	defer func() {
		_ = workbook.Close()
	}()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "ledger-"+userID+".xlsx"))
	c.Header("Content-Type", xlsxContentType)
	if _, err := workbook.WriteTo(c.Writer); err != nil {
		logger.Error("Failed to stream ledger workbook", slog.String("error", err.Error()))
	}
}
