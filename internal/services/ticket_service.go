package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// TicketService contém a lógica de negócio para tickets de suporte
type TicketService struct {
	ticketRepo repositories.TicketRepository
	userRepo   repositories.UserRepository
	access     *AccessService
	activity   *ActivityService
	store      ports.AttachmentStore
	logger     ports.Logger
}

// NewTicketService cria um novo TicketService
func NewTicketService(
	ticketRepo repositories.TicketRepository,
	userRepo repositories.UserRepository,
	access *AccessService,
	activity *ActivityService,
	store ports.AttachmentStore,
	logger ports.Logger,
) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		access:     access,
		activity:   activity,
		store:      store,
		logger:     logger,
	}
}

// CreateTicketInput representa os dados para criar um ticket
type CreateTicketInput struct {
	Subject       string
	Description   string
	AssigneeID    string
	AssigneeIDs   []string
	Tags          []string
	Priority      entities.TicketPriority
	Status        entities.TicketStatus
	DueAt         *time.Time
	MID           string
	DBA           string
	ContactNumber string
	ContactPerson string
	Notes         string
}

// CreateTicket cria um ticket validando que todos os responsáveis existem
func (s *TicketService) CreateTicket(ctx context.Context, actor Actor, input CreateTicketInput) (*entities.Ticket, error) {
	now := time.Now()
	ticket := &entities.Ticket{
		Subject:       input.Subject,
		Description:   input.Description,
		AssigneeID:    input.AssigneeID,
		AssigneeIDs:   input.AssigneeIDs,
		CreatedBy:     actor.ID,
		Tags:          input.Tags,
		Priority:      input.Priority,
		Status:        input.Status,
		DueAt:         input.DueAt,
		MID:           input.MID,
		DBA:           input.DBA,
		ContactNumber: input.ContactNumber,
		ContactPerson: input.ContactPerson,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := ticket.ReconcileAssignees(); err != nil {
		return nil, invalid(err)
	}
	if err := ticket.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.checkAssignees(ctx, ticket.AssigneeIDs); err != nil {
		return nil, err
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, entities.ActivityCreateTicket, actor.ID, ticket.ID,
		fmt.Sprintf("Ticket created by %s", actor.Name))

	s.logger.Info("ticket created", "ticket_id", ticket.ID, "created_by", actor.ID)
	return ticket, nil
}

// ListTicketsInput contém os filtros da query string
type ListTicketsInput struct {
	AssigneeIDs []string
	Status      *entities.TicketStatus
	Priority    *entities.TicketPriority
	Tags        []string
}

// ListTickets lista tickets sob o escopo de visibilidade do requisitante
func (s *TicketService) ListTickets(ctx context.Context, actor Actor, input ListTicketsInput) ([]*entities.Ticket, error) {
	scope, err := s.access.ResolveScope(ctx, actor, permissions.TicketsViewAll)
	if err != nil {
		return nil, err
	}

	return s.ticketRepo.List(ctx, repositories.TicketFilters{
		Scope:       scope,
		AssigneeIDs: input.AssigneeIDs,
		Status:      input.Status,
		Priority:    input.Priority,
		Tags:        input.Tags,
	})
}

// ListDeletedTickets lista tickets deletados. O repositório aplica o
// predicado de deletados a partir de Scope.ViewDeleted: Admin enxerga
// tudo, portadores de tickets.viewDeleted só os próprios.
func (s *TicketService) ListDeletedTickets(ctx context.Context, actor Actor) ([]*entities.Ticket, error) {
	scope, err := s.access.ResolveScope(ctx, actor, permissions.TicketsViewAll)
	if err != nil {
		return nil, err
	}

	return s.ticketRepo.List(ctx, repositories.TicketFilters{
		Scope:       scope,
		OnlyDeleted: true,
	})
}

// GetTicket busca um ticket reaplicando o predicado de visibilidade.
// Ticket existente mas invisível responde forbidden, não not-found:
// quem conhece o ID descobre que a entidade existe, mas nada além disso.
func (s *TicketService) GetTicket(ctx context.Context, actor Actor, id string) (*entities.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, errors.ErrTicketNotFound
	}

	scope, err := s.access.ResolveScope(ctx, actor, permissions.TicketsViewAll)
	if err != nil {
		return nil, err
	}
	if !scope.CanView(ticket.AssigneeID, ticket.AssigneeIDs, ticket.CreatedBy, ticket.IsDeleted()) {
		return nil, errors.ErrForbidden
	}

	return ticket, nil
}

// UpdateTicketInput representa os campos mutáveis de um ticket.
// Campos nil não são alterados.
type UpdateTicketInput struct {
	Subject       *string
	Description   *string
	AssigneeID    *string
	AssigneeIDs   []string
	Tags          []string
	Priority      *entities.TicketPriority
	Status        *entities.TicketStatus
	DueAt         *time.Time
	MID           *string
	DBA           *string
	ContactNumber *string
	ContactPerson *string
	Notes         *string
}

// UpdateTicket aplica uma atualização parcial sob o predicado de edição
func (s *TicketService) UpdateTicket(ctx context.Context, actor Actor, id string, input UpdateTicketInput) (*entities.Ticket, error) {
	ticket, err := s.loadForEdit(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Subject != nil {
		ticket.Subject = *input.Subject
	}
	if input.Description != nil {
		ticket.Description = *input.Description
	}
	if len(input.AssigneeIDs) > 0 {
		ticket.AssigneeIDs = input.AssigneeIDs
		if err := ticket.ReconcileAssignees(); err != nil {
			return nil, invalid(err)
		}
	} else if input.AssigneeID != nil && *input.AssigneeID != "" {
		ticket.AssigneeID = *input.AssigneeID
		ticket.AssigneeIDs = []string{*input.AssigneeID}
	}
	if input.Tags != nil {
		ticket.Tags = input.Tags
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
	}
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.DueAt != nil {
		ticket.DueAt = input.DueAt
	}
	if input.MID != nil {
		ticket.MID = *input.MID
	}
	if input.DBA != nil {
		ticket.DBA = *input.DBA
	}
	if input.ContactNumber != nil {
		ticket.ContactNumber = *input.ContactNumber
	}
	if input.ContactPerson != nil {
		ticket.ContactPerson = *input.ContactPerson
	}
	if input.Notes != nil {
		ticket.Notes = *input.Notes
	}

	if err := ticket.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.checkAssignees(ctx, ticket.AssigneeIDs); err != nil {
		return nil, err
	}

	ticket.UpdatedAt = time.Now()
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, entities.ActivityUpdateTicket, actor.ID, ticket.ID,
		fmt.Sprintf("Ticket updated by %s", actor.Name))
	return ticket, nil
}

// UpdateStatus troca somente o status do ticket
func (s *TicketService) UpdateStatus(ctx context.Context, actor Actor, id string, status entities.TicketStatus) (*entities.Ticket, error) {
	if !entities.IsValidStatus(status) {
		return nil, invalid(fmt.Errorf("invalid status %q", status))
	}

	ticket, err := s.loadForEdit(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	ticket.Status = status
	ticket.UpdatedAt = time.Now()
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, entities.ActivityUpdateStatus, actor.ID, ticket.ID,
		fmt.Sprintf("Status changed to %s", status))
	return ticket, nil
}

// DeleteTicket marca o ticket como deletado, preservando-o para
// auditoria. A rota já exige tickets.delete; a decisão final é
// exclusiva de Admin.
func (s *TicketService) DeleteTicket(ctx context.Context, actor Actor, id string) error {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return errors.ErrTicketNotFound
	}
	if actor.Role != permissions.RoleAdmin {
		return errors.ErrForbidden
	}

	ticket.SoftDelete(actor.ID)
	ticket.UpdatedAt = time.Now()
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return err
	}

	s.activity.Record(ctx, entities.ActivityDeleteTicket, actor.ID, ticket.ID,
		fmt.Sprintf("Ticket soft-deleted by %s", actor.Name))

	s.logger.Info("ticket deleted", "ticket_id", ticket.ID, "deleted_by", actor.ID)
	return nil
}

// AddAttachments persiste os arquivos recebidos e anexa os descritores
func (s *TicketService) AddAttachments(ctx context.Context, actor Actor, id string, uploads []ports.Upload) ([]entities.Attachment, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, errors.ErrTicketNotFound
	}

	items := make([]entities.Attachment, 0, len(uploads))
	for _, upload := range uploads {
		item, err := s.store.Save(ctx, upload, actor.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	ticket.AddAttachments(items)
	ticket.UpdatedAt = time.Now()
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return items, nil
}

// loadForEdit carrega o ticket e aplica o predicado de edição e a
// trava de entidade deletada.
func (s *TicketService) loadForEdit(ctx context.Context, actor Actor, id string) (*entities.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, errors.ErrTicketNotFound
	}
	if ticket.IsDeleted() && actor.Role != permissions.RoleAdmin {
		return nil, errors.ErrTicketDeleted
	}

	scope, err := s.access.ResolveScope(ctx, actor, permissions.TicketsViewAll)
	if err != nil {
		return nil, err
	}
	if !scope.CanEdit(actor.Role, ticket.AssigneeID, ticket.AssigneeIDs, ticket.CreatedBy) {
		return nil, errors.ErrForbidden
	}

	return ticket, nil
}

func (s *TicketService) checkAssignees(ctx context.Context, ids []string) error {
	ok, err := s.userRepo.ExistByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrAssigneeNotFound
	}
	return nil
}
