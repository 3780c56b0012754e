package dto

import (
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

// RecordAttendanceRequest registra um evento de ponto
type RecordAttendanceRequest struct {
	Action string `json:"action" binding:"required,oneof=login break_start break_end logout"`
	Note   string `json:"note" binding:"max=500"`
}

// AttendanceEventResponse representa um evento de ponto
type AttendanceEventResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// AttendanceReportResponse é o relatório de ponto de um intervalo
type AttendanceReportResponse struct {
	Range   ReportRange               `json:"range"`
	Count   int                       `json:"count"`
	Entries []AttendanceEventResponse `json:"entries"`
}

// ReportRange delimita o intervalo do relatório
type ReportRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SubmitLeaveRequest representa uma solicitação de ausência
type SubmitLeaveRequest struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	Reason    string    `json:"reason" binding:"required,max=1000"`
}

// SubmitCorrectionRequest representa um pedido de correção de ponto
type SubmitCorrectionRequest struct {
	Date        time.Time  `json:"date" binding:"required"`
	NewClockIn  *time.Time `json:"newClockIn"`
	NewClockOut *time.Time `json:"newClockOut"`
	Reason      string     `json:"reason" binding:"required,max=1000"`
}

// DecisionRequest registra a decisão de um aprovador
type DecisionRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note" binding:"max=1000"`
}

// LeaveRequestResponse representa uma solicitação de ausência
type LeaveRequestResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	ApproverID   string    `json:"approver,omitempty"`
	DecisionNote string    `json:"decisionNote,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CorrectionResponse representa um pedido de correção de ponto
type CorrectionResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user"`
	Date         time.Time  `json:"date"`
	NewClockIn   *time.Time `json:"newClockIn,omitempty"`
	NewClockOut  *time.Time `json:"newClockOut,omitempty"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	ApproverID   string     `json:"approver,omitempty"`
	DecisionNote string     `json:"decisionNote,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToAttendanceEventResponse converte um evento de ponto
func ToAttendanceEventResponse(event *entities.AttendanceEvent) AttendanceEventResponse {
	return AttendanceEventResponse{
		ID:        event.ID,
		UserID:    event.UserID,
		Action:    string(event.Action),
		Timestamp: event.Timestamp,
		Note:      event.Note,
	}
}

// ToAttendanceReportResponse converte o relatório de ponto
func ToAttendanceReportResponse(report *services.Report) AttendanceReportResponse {
	entries := make([]AttendanceEventResponse, len(report.Entries))
	for i, event := range report.Entries {
		entries[i] = ToAttendanceEventResponse(event)
	}
	return AttendanceReportResponse{
		Range:   ReportRange{Start: report.Start, End: report.End},
		Count:   report.Count,
		Entries: entries,
	}
}

// ToLeaveRequestResponse converte uma solicitação de ausência
func ToLeaveRequestResponse(req *entities.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           req.ID,
		UserID:       req.UserID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		Status:       string(req.Status),
		ApproverID:   req.ApproverID,
		DecisionNote: req.DecisionNote,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}
}

// ToLeaveRequestResponses converte uma lista de solicitações
func ToLeaveRequestResponses(reqs []*entities.LeaveRequest) []LeaveRequestResponse {
	responses := make([]LeaveRequestResponse, len(reqs))
	for i, req := range reqs {
		responses[i] = ToLeaveRequestResponse(req)
	}
	return responses
}

// ToCorrectionResponse converte um pedido de correção
func ToCorrectionResponse(corr *entities.AttendanceCorrection) CorrectionResponse {
	return CorrectionResponse{
		ID:           corr.ID,
		UserID:       corr.UserID,
		Date:         corr.Date,
		NewClockIn:   corr.NewClockIn,
		NewClockOut:  corr.NewClockOut,
		Reason:       corr.Reason,
		Status:       string(corr.Status),
		ApproverID:   corr.ApproverID,
		DecisionNote: corr.DecisionNote,
		CreatedAt:    corr.CreatedAt,
		UpdatedAt:    corr.UpdatedAt,
	}
}

// ToCorrectionResponses converte uma lista de pedidos de correção
func ToCorrectionResponses(corrs []*entities.AttendanceCorrection) []CorrectionResponse {
	responses := make([]CorrectionResponse, len(corrs))
	for i, corr := range corrs {
		responses[i] = ToCorrectionResponse(corr)
	}
	return responses
}
