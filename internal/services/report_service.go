package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// ReportService agrega contagens de tickets para relatórios
type ReportService struct {
	ticketRepo repositories.TicketRepository
	logger     ports.Logger
}

// NewReportService cria um novo ReportService
func NewReportService(ticketRepo repositories.TicketRepository, logger ports.Logger) *ReportService {
	return &ReportService{ticketRepo: ticketRepo, logger: logger}
}

// TicketSummary retorna as contagens por status, prioridade e flag de
// deleção, incluindo tickets deletados (o relatório é visão gerencial)
func (s *ReportService) TicketSummary(ctx context.Context) ([]repositories.TicketSummaryRow, error) {
	return s.ticketRepo.CountByStatusPriority(ctx)
}

// TicketSummaryCSV rende o mesmo relatório em CSV
func (s *ReportService) TicketSummaryCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.TicketSummary(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"status", "priority", "isDeleted", "count"}); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			row.Status,
			row.Priority,
			strconv.FormatBool(row.Deleted),
			strconv.FormatInt(row.Count, 10),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
