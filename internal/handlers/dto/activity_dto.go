package dto

import (
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// ActivityLogResponse representa uma entrada do histórico de auditoria
type ActivityLogResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	UserID    string    `json:"user"`
	TicketID  string    `json:"ticket"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// ToActivityLogResponse converte uma entrada de auditoria
func ToActivityLogResponse(log *entities.ActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		UserID:    log.UserID,
		TicketID:  log.TicketID,
		Details:   log.Details,
		Timestamp: log.Timestamp,
	}
}

// ToActivityLogResponses converte uma lista de entradas de auditoria
func ToActivityLogResponses(logs []*entities.ActivityLog) []ActivityLogResponse {
	responses := make([]ActivityLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = ToActivityLogResponse(log)
	}
	return responses
}

// TicketSummaryResponse é o relatório status x prioridade
type TicketSummaryResponse struct {
	Summary []TicketSummaryRow `json:"summary"`
}

// TicketSummaryRow é uma linha do relatório
type TicketSummaryRow struct {
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	IsDeleted bool   `json:"isDeleted"`
	Count     int64  `json:"count"`
}

// ToTicketSummaryResponse converte as linhas agregadas do relatório
func ToTicketSummaryResponse(rows []repositories.TicketSummaryRow) TicketSummaryResponse {
	summary := make([]TicketSummaryRow, len(rows))
	for i, row := range rows {
		summary[i] = TicketSummaryRow{
			Status:    row.Status,
			Priority:  row.Priority,
			IsDeleted: row.Deleted,
			Count:     row.Count,
		}
	}
	return TicketSummaryResponse{Summary: summary}
}
