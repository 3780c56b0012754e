package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// AttendanceService contém a lógica de ponto, ausências e correções
type AttendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	leaveRepo      repositories.LeaveRequestRepository
	correctionRepo repositories.CorrectionRepository
	logger         ports.Logger
}

// NewAttendanceService cria um novo AttendanceService
func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	leaveRepo repositories.LeaveRequestRepository,
	correctionRepo repositories.CorrectionRepository,
	logger ports.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		correctionRepo: correctionRepo,
		logger:         logger,
	}
}

// Record grava um evento de ponto para o próprio requisitante
func (s *AttendanceService) Record(ctx context.Context, actor Actor, action entities.AttendanceAction, note string) (*entities.AttendanceEvent, error) {
	event := &entities.AttendanceEvent{
		UserID:    actor.ID,
		Action:    action,
		Timestamp: time.Now(),
		Note:      note,
	}
	if err := event.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.attendanceRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ReportInput delimita o relatório de ponto. Month ("YYYY-MM") tem
// precedência sobre o par Start/End.
type ReportInput struct {
	Start  *time.Time
	End    *time.Time
	Month  string
	UserID *string
}

// Report é o relatório de ponto de um intervalo
type Report struct {
	Start   time.Time
	End     time.Time
	Count   int
	Entries []*entities.AttendanceEvent
}

// BuildReport gera o relatório de eventos do intervalo pedido
func (s *AttendanceService) BuildReport(ctx context.Context, input ReportInput) (*Report, error) {
	var start, end time.Time
	if input.Month != "" {
		monthStart, err := time.ParseInLocation("2006-01", input.Month, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid month %q: %w", input.Month, err)
		}
		start = monthStart
		end = monthStart.AddDate(0, 1, 0).Add(-time.Second)
	} else {
		start = time.Unix(0, 0)
		if input.Start != nil {
			start = *input.Start
		}
		end = time.Now()
		if input.End != nil {
			end = *input.End
		}
	}

	entries, err := s.attendanceRepo.List(ctx, repositories.AttendanceFilters{
		Start:  start,
		End:    end,
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &Report{
		Start:   start,
		End:     end,
		Count:   len(entries),
		Entries: entries,
	}, nil
}

// SubmitLeave registra uma solicitação de ausência pendente
func (s *AttendanceService) SubmitLeave(ctx context.Context, actor Actor, startDate, endDate time.Time, reason string) (*entities.LeaveRequest, error) {
	now := time.Now()
	req := &entities.LeaveRequest{
		UserID:    actor.ID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
		Status:    entities.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.leaveRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// MyLeaves lista as solicitações de ausência do requisitante
func (s *AttendanceService) MyLeaves(ctx context.Context, actor Actor) ([]*entities.LeaveRequest, error) {
	return s.leaveRepo.ListByUser(ctx, actor.ID)
}

// PendingLeaves lista as solicitações aguardando decisão
func (s *AttendanceService) PendingLeaves(ctx context.Context) ([]*entities.LeaveRequest, error) {
	return s.leaveRepo.ListByStatus(ctx, entities.RequestPending)
}

// DecideLeave registra a decisão de um aprovador sobre uma ausência
func (s *AttendanceService) DecideLeave(ctx context.Context, actor Actor, id string, approve bool, note string) (*entities.LeaveRequest, error) {
	req, err := s.leaveRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.ErrRequestNotFound
	}

	req.Decide(actor.ID, approve, note)
	req.UpdatedAt = time.Now()
	if err := s.leaveRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info("leave request decided", "request_id", req.ID, "status", req.Status, "approver", actor.ID)
	return req, nil
}

// SubmitCorrectionInput representa um pedido de correção de ponto
type SubmitCorrectionInput struct {
	Date        time.Time
	NewClockIn  *time.Time
	NewClockOut *time.Time
	Reason      string
}

// SubmitCorrection registra um pedido de correção pendente
func (s *AttendanceService) SubmitCorrection(ctx context.Context, actor Actor, input SubmitCorrectionInput) (*entities.AttendanceCorrection, error) {
	now := time.Now()
	corr := &entities.AttendanceCorrection{
		UserID:      actor.ID,
		Date:        input.Date,
		NewClockIn:  input.NewClockIn,
		NewClockOut: input.NewClockOut,
		Reason:      input.Reason,
		Status:      entities.RequestPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := corr.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.correctionRepo.Create(ctx, corr); err != nil {
		return nil, err
	}
	return corr, nil
}

// MyCorrections lista os pedidos de correção do requisitante
func (s *AttendanceService) MyCorrections(ctx context.Context, actor Actor) ([]*entities.AttendanceCorrection, error) {
	return s.correctionRepo.ListByUser(ctx, actor.ID)
}

// PendingCorrections lista os pedidos aguardando decisão
func (s *AttendanceService) PendingCorrections(ctx context.Context) ([]*entities.AttendanceCorrection, error) {
	return s.correctionRepo.ListByStatus(ctx, entities.RequestPending)
}

// DecideCorrection registra a decisão de um aprovador sobre uma correção
func (s *AttendanceService) DecideCorrection(ctx context.Context, actor Actor, id string, approve bool, note string) (*entities.AttendanceCorrection, error) {
	corr, err := s.correctionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if corr == nil {
		return nil, errors.ErrRequestNotFound
	}

	corr.Decide(actor.ID, approve, note)
	corr.UpdatedAt = time.Now()
	if err := s.correctionRepo.Update(ctx, corr); err != nil {
		return nil, err
	}

	s.logger.Info("correction request decided", "request_id", corr.ID, "status", corr.Status, "approver", actor.ID)
	return corr, nil
}
