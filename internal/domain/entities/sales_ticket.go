package entities

import (
	"errors"
	"time"
)

// SalesTicket representa uma solicitação de onboarding de um novo negócio.
// Compartilha com Ticket o ciclo de vida (status, responsáveis, soft
// delete, anexos), mas carrega os dados cadastrais do estabelecimento.
type SalesTicket struct {
	ID string

	BusinessName      string
	Address           string
	OwnerName         string
	TaxFileName       string
	ContactPersonName string
	ContactNumber     string
	Email             string
	EINOrSSN          string
	TurnaroundTime    string

	AssigneeID  string
	AssigneeIDs []string
	CreatedBy   string

	Status TicketStatus
	DueAt  *time.Time
	Notes  string

	Attachments []Attachment

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
	DeletedBy string
}

// IsDeleted verifica se o sales ticket foi marcado como deletado
func (s *SalesTicket) IsDeleted() bool {
	return s.DeletedAt != nil
}

// SoftDelete marca o sales ticket como deletado
func (s *SalesTicket) SoftDelete(actorID string) {
	now := time.Now()
	s.DeletedAt = &now
	s.DeletedBy = actorID
}

// ReconcileAssignees aplica a mesma invariante de Ticket ao par
// responsável/conjunto.
func (s *SalesTicket) ReconcileAssignees() error {
	if len(s.AssigneeIDs) > 0 {
		s.AssigneeID = s.AssigneeIDs[0]
		return nil
	}
	if s.AssigneeID != "" {
		s.AssigneeIDs = []string{s.AssigneeID}
		return nil
	}
	return errors.New("at least one assignee is required")
}

// AddAttachments anexa descritores ao sales ticket
func (s *SalesTicket) AddAttachments(items []Attachment) {
	s.Attachments = append(s.Attachments, items...)
}

// Validate valida regras de negócio da entidade SalesTicket
func (s *SalesTicket) Validate() error {
	switch {
	case s.BusinessName == "":
		return errors.New("business name is required")
	case s.Address == "":
		return errors.New("address is required")
	case s.OwnerName == "":
		return errors.New("owner name is required")
	case s.ContactPersonName == "":
		return errors.New("contact person is required")
	case s.ContactNumber == "":
		return errors.New("contact number is required")
	case s.Email == "":
		return errors.New("email is required")
	case s.EINOrSSN == "":
		return errors.New("ein or ssn is required")
	case s.TurnaroundTime == "":
		return errors.New("turnaround time is required")
	case s.CreatedBy == "":
		return errors.New("creator is required")
	}
	if !IsValidStatus(s.Status) {
		return errors.New("invalid status")
	}
	if s.AssigneeID == "" && len(s.AssigneeIDs) == 0 {
		return errors.New("at least one assignee is required")
	}
	return nil
}
