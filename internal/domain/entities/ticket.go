package entities

import (
	"errors"
	"time"
)

// Status do ciclo de vida de tickets e sales tickets
type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "In Progress"
	StatusSolved     TicketStatus = "Solved"
)

// IsValidStatus verifica se o status pertence ao enum
func IsValidStatus(s TicketStatus) bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusSolved
}

// Prioridade de tickets de suporte
type TicketPriority string

const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
)

// IsValidPriority verifica se a prioridade pertence ao enum
func IsValidPriority(p TicketPriority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Attachment descreve um arquivo anexado a um ticket.
// O armazenamento em si é um serviço externo; aqui só guardamos o descritor.
type Attachment struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	MimeType   string    `json:"mimetype"`
	Size       int64     `json:"size"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Ticket representa uma solicitação de suporte.
// Invariante: quando ambos estão definidos, o responsável principal
// (AssigneeID) é sempre membro do conjunto AssigneeIDs; ver
// ReconcileAssignees.
type Ticket struct {
	ID          string
	Subject     string
	Description string

	AssigneeID  string
	AssigneeIDs []string
	CreatedBy   string

	Tags     []string
	Priority TicketPriority
	Status   TicketStatus
	DueAt    *time.Time

	// Campos específicos do negócio de processamento de pagamentos
	MID           string
	DBA           string
	ContactNumber string
	ContactPerson string
	Notes         string

	Attachments []Attachment

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
	DeletedBy string
}

// IsDeleted verifica se o ticket foi marcado como deletado
func (t *Ticket) IsDeleted() bool {
	return t.DeletedAt != nil
}

// SoftDelete marca o ticket como deletado, preservando-o para auditoria
func (t *Ticket) SoftDelete(actorID string) {
	now := time.Now()
	t.DeletedAt = &now
	t.DeletedBy = actorID
}

// ReconcileAssignees normaliza o par responsável/conjunto.
// Lista não vazia manda: o primeiro membro vira o responsável principal.
// Com apenas o responsável definido, o conjunto passa a ser {responsável}.
func (t *Ticket) ReconcileAssignees() error {
	if len(t.AssigneeIDs) > 0 {
		t.AssigneeID = t.AssigneeIDs[0]
		return nil
	}
	if t.AssigneeID != "" {
		t.AssigneeIDs = []string{t.AssigneeID}
		return nil
	}
	return errors.New("at least one assignee is required")
}

// AddAttachments anexa descritores ao ticket
func (t *Ticket) AddAttachments(items []Attachment) {
	t.Attachments = append(t.Attachments, items...)
}

// Validate valida regras de negócio da entidade Ticket
func (t *Ticket) Validate() error {
	if t.Subject == "" {
		return errors.New("subject is required")
	}
	if t.Description == "" {
		return errors.New("description is required")
	}
	if t.CreatedBy == "" {
		return errors.New("creator is required")
	}
	if !IsValidPriority(t.Priority) {
		return errors.New("invalid priority")
	}
	if !IsValidStatus(t.Status) {
		return errors.New("invalid status")
	}
	if t.AssigneeID == "" && len(t.AssigneeIDs) == 0 {
		return errors.New("at least one assignee is required")
	}
	return nil
}
