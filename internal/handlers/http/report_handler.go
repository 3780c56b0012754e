package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/handlers/dto"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

// ReportHandler lida com relatórios agregados de tickets
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler cria um novo ReportHandler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// TicketSummary agrega tickets por status e prioridade. Com
// ?format=csv a resposta vira um arquivo para download.
// @Summary Relatório de tickets por status e prioridade
// @Tags reports
// @Produce json
// @Produce text/csv
// @Param format query string false "json (default) ou csv"
// @Success 200 {object} dto.TicketSummaryResponse
// @Security BearerAuth
// @Router /api/reports/tickets [get]
func (h *ReportHandler) TicketSummary(c *gin.Context) {
	if c.Query("format") == "csv" {
		data, err := h.reportService.TicketSummaryCSV(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="ticket-summary.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
		return
	}

	rows, err := h.reportService.TicketSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketSummaryResponse(rows))
}
