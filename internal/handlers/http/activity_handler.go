package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/handlers/dto"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

// ActivityHandler expõe o histórico de auditoria de tickets
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler cria um novo ActivityHandler
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListLogs lista as entradas de auditoria, opcionalmente de um ticket
// @Summary Lista o histórico de auditoria
// @Tags activity
// @Produce json
// @Param ticket query string false "Limita a um ticket"
// @Success 200 {array} dto.ActivityLogResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/activity-logs [get]
func (h *ActivityHandler) ListLogs(c *gin.Context) {
	var ticketID *string
	if ticket := c.Query("ticket"); ticket != "" {
		ticketID = &ticket
	}

	logs, err := h.activityService.List(c.Request.Context(), ticketID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityLogResponses(logs))
}
