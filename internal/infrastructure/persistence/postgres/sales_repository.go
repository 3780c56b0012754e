package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// SalesTicketRepository implementa repositories.SalesTicketRepository
type SalesTicketRepository struct {
	db *gorm.DB
}

// NewSalesTicketRepository cria um novo SalesTicketRepository
func NewSalesTicketRepository(db *gorm.DB) repositories.SalesTicketRepository {
	return &SalesTicketRepository{db: db}
}

func (r *SalesTicketRepository) Create(ctx context.Context, ticket *entities.SalesTicket) error {
	model := r.toModel(ticket)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	ticket.ID = model.ID
	return nil
}

func (r *SalesTicketRepository) FindByID(ctx context.Context, id string) (*entities.SalesTicket, error) {
	var model SalesTicketModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *SalesTicketRepository) Update(ctx context.Context, ticket *entities.SalesTicket) error {
	model := r.toModel(ticket)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

// List retorna sales tickets não deletados para qualquer requisitante
// autenticado; diferente dos tickets de suporte, a listagem de vendas
// não restringe por ownership.
func (r *SalesTicketRepository) List(ctx context.Context, filters repositories.SalesFilters) ([]*entities.SalesTicket, error) {
	var models []*SalesTicketModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&SalesTicketModel{})

	if !filters.Scope.Admin {
		query = query.Where("deleted_at IS NULL")
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}

	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	tickets := make([]*entities.SalesTicket, 0, len(models))
	for _, model := range models {
		tickets = append(tickets, r.toEntity(model))
	}
	return tickets, nil
}

// Conversores
func (r *SalesTicketRepository) toModel(ticket *entities.SalesTicket) *SalesTicketModel {
	var dueAt *int64
	if ticket.DueAt != nil {
		ts := ticket.DueAt.Unix()
		dueAt = &ts
	}

	var deletedAt *int64
	if ticket.DeletedAt != nil {
		ts := ticket.DeletedAt.Unix()
		deletedAt = &ts
	}

	var deletedBy *string
	if ticket.DeletedBy != "" {
		deletedBy = &ticket.DeletedBy
	}

	return &SalesTicketModel{
		ID:                ticket.ID,
		BusinessName:      ticket.BusinessName,
		Address:           ticket.Address,
		OwnerName:         ticket.OwnerName,
		TaxFileName:       ticket.TaxFileName,
		ContactPersonName: ticket.ContactPersonName,
		ContactNumber:     ticket.ContactNumber,
		Email:             ticket.Email,
		EINOrSSN:          ticket.EINOrSSN,
		TurnaroundTime:    ticket.TurnaroundTime,
		AssigneeID:        ticket.AssigneeID,
		AssigneeIDs:       datatypes.NewJSONSlice(ticket.AssigneeIDs),
		CreatedBy:         ticket.CreatedBy,
		Status:            string(ticket.Status),
		DueAt:             dueAt,
		Notes:             ticket.Notes,
		Attachments:       datatypes.NewJSONSlice(ticket.Attachments),
		CreatedAt:         ticket.CreatedAt.Unix(),
		UpdatedAt:         ticket.UpdatedAt.Unix(),
		DeletedAt:         deletedAt,
		DeletedBy:         deletedBy,
	}
}

func (r *SalesTicketRepository) toEntity(model *SalesTicketModel) *entities.SalesTicket {
	var dueAt *time.Time
	if model.DueAt != nil {
		ts := time.Unix(*model.DueAt, 0)
		dueAt = &ts
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	var deletedBy string
	if model.DeletedBy != nil {
		deletedBy = *model.DeletedBy
	}

	return &entities.SalesTicket{
		ID:                model.ID,
		BusinessName:      model.BusinessName,
		Address:           model.Address,
		OwnerName:         model.OwnerName,
		TaxFileName:       model.TaxFileName,
		ContactPersonName: model.ContactPersonName,
		ContactNumber:     model.ContactNumber,
		Email:             model.Email,
		EINOrSSN:          model.EINOrSSN,
		TurnaroundTime:    model.TurnaroundTime,
		AssigneeID:        model.AssigneeID,
		AssigneeIDs:       model.AssigneeIDs,
		CreatedBy:         model.CreatedBy,
		Status:            entities.TicketStatus(model.Status),
		DueAt:             dueAt,
		Notes:             model.Notes,
		Attachments:       model.Attachments,
		CreatedAt:         time.Unix(model.CreatedAt, 0),
		UpdatedAt:         time.Unix(model.UpdatedAt, 0),
		DeletedAt:         deletedAt,
		DeletedBy:         deletedBy,
	}
}
