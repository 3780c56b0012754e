package services

import (
	"context"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// SalesService contém a lógica de negócio para tickets de onboarding
type SalesService struct {
	salesRepo repositories.SalesTicketRepository
	userRepo  repositories.UserRepository
	store     ports.AttachmentStore
	logger    ports.Logger
}

// NewSalesService cria um novo SalesService
func NewSalesService(
	salesRepo repositories.SalesTicketRepository,
	userRepo repositories.UserRepository,
	store ports.AttachmentStore,
	logger ports.Logger,
) *SalesService {
	return &SalesService{
		salesRepo: salesRepo,
		userRepo:  userRepo,
		store:     store,
		logger:    logger,
	}
}

// CreateSalesInput representa os dados para criar um sales ticket
type CreateSalesInput struct {
	BusinessName      string
	Address           string
	OwnerName         string
	TaxFileName       string
	ContactPersonName string
	ContactNumber     string
	Email             string
	EINOrSSN          string
	TurnaroundTime    string
	DueAt             *time.Time
	AssigneeID        string
	AssigneeIDs       []string
	Notes             string
}

// CreateSales cria um sales ticket validando os responsáveis
func (s *SalesService) CreateSales(ctx context.Context, actor Actor, input CreateSalesInput) (*entities.SalesTicket, error) {
	now := time.Now()
	ticket := &entities.SalesTicket{
		BusinessName:      input.BusinessName,
		Address:           input.Address,
		OwnerName:         input.OwnerName,
		TaxFileName:       input.TaxFileName,
		ContactPersonName: input.ContactPersonName,
		ContactNumber:     input.ContactNumber,
		Email:             input.Email,
		EINOrSSN:          input.EINOrSSN,
		TurnaroundTime:    input.TurnaroundTime,
		AssigneeID:        input.AssigneeID,
		AssigneeIDs:       input.AssigneeIDs,
		CreatedBy:         actor.ID,
		Status:            entities.StatusOpen,
		DueAt:             input.DueAt,
		Notes:             input.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := ticket.ReconcileAssignees(); err != nil {
		return nil, invalid(err)
	}
	if err := ticket.Validate(); err != nil {
		return nil, invalid(err)
	}

	ok, err := s.userRepo.ExistByIDs(ctx, ticket.AssigneeIDs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrAssigneeNotFound
	}

	if err := s.salesRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.logger.Info("sales ticket created", "sales_id", ticket.ID, "created_by", actor.ID)
	return ticket, nil
}

// ListSales lista sales tickets. Todos os autenticados veem todos os
// não deletados; deletados só aparecem para Admin.
func (s *SalesService) ListSales(ctx context.Context, actor Actor, status *entities.TicketStatus) ([]*entities.SalesTicket, error) {
	scope := permissions.Scope{
		UserID:  actor.ID,
		Admin:   actor.Role == permissions.RoleAdmin,
		ViewAll: true,
	}
	return s.salesRepo.List(ctx, repositories.SalesFilters{Scope: scope, Status: status})
}

// GetSales busca um sales ticket por ID
func (s *SalesService) GetSales(ctx context.Context, actor Actor, id string) (*entities.SalesTicket, error) {
	ticket, err := s.salesRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, errors.ErrTicketNotFound
	}
	if ticket.IsDeleted() && actor.Role != permissions.RoleAdmin {
		// Existente mas invisível responde forbidden, como nos tickets
		return nil, errors.ErrForbidden
	}
	return ticket, nil
}

// UpdateSalesInput representa os campos mutáveis de um sales ticket
type UpdateSalesInput struct {
	BusinessName      *string
	Address           *string
	OwnerName         *string
	TaxFileName       *string
	ContactPersonName *string
	ContactNumber     *string
	Email             *string
	EINOrSSN          *string
	TurnaroundTime    *string
	DueAt             *time.Time
	AssigneeID        *string
	AssigneeIDs       []string
	Status            *entities.TicketStatus
	Notes             *string
}

// UpdateSales aplica uma atualização parcial
func (s *SalesService) UpdateSales(ctx context.Context, actor Actor, id string, input UpdateSalesInput) (*entities.SalesTicket, error) {
	ticket, err := s.salesRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, errors.ErrTicketNotFound
	}
	if ticket.IsDeleted() && actor.Role != permissions.RoleAdmin {
		return nil, errors.ErrTicketDeleted
	}

	if input.BusinessName != nil {
		ticket.BusinessName = *input.BusinessName
	}
	if input.Address != nil {
		ticket.Address = *input.Address
	}
	if input.OwnerName != nil {
		ticket.OwnerName = *input.OwnerName
	}
	if input.TaxFileName != nil {
		ticket.TaxFileName = *input.TaxFileName
	}
	if input.ContactPersonName != nil {
		ticket.ContactPersonName = *input.ContactPersonName
	}
	if input.ContactNumber != nil {
		ticket.ContactNumber = *input.ContactNumber
	}
	if input.Email != nil {
		ticket.Email = *input.Email
	}
	if input.EINOrSSN != nil {
		ticket.EINOrSSN = *input.EINOrSSN
	}
	if input.TurnaroundTime != nil {
		ticket.TurnaroundTime = *input.TurnaroundTime
	}
	if input.DueAt != nil {
		ticket.DueAt = input.DueAt
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
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.Notes != nil {
		ticket.Notes = *input.Notes
	}

	if err := ticket.Validate(); err != nil {
		return nil, invalid(err)
	}

	ticket.UpdatedAt = time.Now()
	if err := s.salesRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// DeleteSales marca o sales ticket como deletado. Decisão exclusiva de Admin.
func (s *SalesService) DeleteSales(ctx context.Context, actor Actor, id string) error {
	ticket, err := s.salesRepo.FindByID(ctx, id)
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
	if err := s.salesRepo.Update(ctx, ticket); err != nil {
		return err
	}

	s.logger.Info("sales ticket deleted", "sales_id", ticket.ID, "deleted_by", actor.ID)
	return nil
}

// AddAttachments persiste os arquivos recebidos e anexa os descritores
func (s *SalesService) AddAttachments(ctx context.Context, actor Actor, id string, uploads []ports.Upload) ([]entities.Attachment, error) {
	ticket, err := s.salesRepo.FindByID(ctx, id)
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
	if err := s.salesRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return items, nil
}
