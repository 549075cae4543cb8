package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/impresthq/imprest_backend/internal/core/ports/services"
	"github.com/impresthq/imprest_backend/internal/dto"
)

// auditHandler exposes the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers the audit trail routes.
func registerAuditRoutes(rg *gin.RouterGroup, as portssvc.AuditSvcFacade) {
	h := newAuditHandler(as)
	rg.GET("/audit-logs", h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit trail entries
// @Description Entries are returned most recent first
// @Tags audit
// @Produce  json
// @Param   limit query int false "Page size" default(100)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAuditLogsResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logs, err := h.auditService.ListAuditLogs(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list audit logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuditLogsResponse(logs))
}
