package entities

import (
	"errors"
	"time"
)

// Ações de ponto registráveis
type AttendanceAction string

const (
	AttendanceLogin      AttendanceAction = "login"
	AttendanceBreakStart AttendanceAction = "break_start"
	AttendanceBreakEnd   AttendanceAction = "break_end"
	AttendanceLogout     AttendanceAction = "logout"
)

// IsValidAttendanceAction verifica se a ação pertence ao enum
func IsValidAttendanceAction(a AttendanceAction) bool {
	switch a {
	case AttendanceLogin, AttendanceBreakStart, AttendanceBreakEnd, AttendanceLogout:
		return true
	}
	return false
}

// AttendanceEvent é um evento de ponto (entrada, pausa, saída)
type AttendanceEvent struct {
	ID        string
	UserID    string
	Action    AttendanceAction
	Timestamp time.Time
	Note      string
}

// Validate valida regras de negócio do evento de ponto
func (e *AttendanceEvent) Validate() error {
	if e.UserID == "" {
		return errors.New("user is required")
	}
	if !IsValidAttendanceAction(e.Action) {
		return errors.New("invalid action")
	}
	return nil
}

// Situação de solicitações de ausência e correção
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// LeaveRequest é uma solicitação de ausência com workflow de aprovação
type LeaveRequest struct {
	ID           string
	UserID       string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       RequestStatus
	ApproverID   string
	DecisionNote string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Decide registra a decisão de um aprovador
func (l *LeaveRequest) Decide(approverID string, approve bool, note string) {
	if approve {
		l.Status = RequestApproved
	} else {
		l.Status = RequestRejected
	}
	l.ApproverID = approverID
	l.DecisionNote = note
}

// Validate valida regras de negócio da solicitação de ausência
func (l *LeaveRequest) Validate() error {
	if l.UserID == "" {
		return errors.New("user is required")
	}
	if l.StartDate.IsZero() || l.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if l.Reason == "" {
		return errors.New("reason is required")
	}
	return nil
}

// AttendanceCorrection é um pedido de correção de ponto
type AttendanceCorrection struct {
	ID           string
	UserID       string
	Date         time.Time
	NewClockIn   *time.Time
	NewClockOut  *time.Time
	Reason       string
	Status       RequestStatus
	ApproverID   string
	DecisionNote string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Decide registra a decisão de um aprovador
func (c *AttendanceCorrection) Decide(approverID string, approve bool, note string) {
	if approve {
		c.Status = RequestApproved
	} else {
		c.Status = RequestRejected
	}
	c.ApproverID = approverID
	c.DecisionNote = note
}

// Validate valida regras de negócio do pedido de correção
func (c *AttendanceCorrection) Validate() error {
	if c.UserID == "" {
		return errors.New("user is required")
	}
	if c.Date.IsZero() {
		return errors.New("date is required")
	}
	if c.Reason == "" {
		return errors.New("reason is required")
	}
	if c.NewClockIn == nil && c.NewClockOut == nil {
		return errors.New("at least one corrected time is required")
	}
	return nil
}
