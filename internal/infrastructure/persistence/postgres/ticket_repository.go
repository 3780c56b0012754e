package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// TicketRepository implementa repositories.TicketRepository
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository cria um novo TicketRepository
func NewTicketRepository(db *gorm.DB) repositories.TicketRepository {
	return &TicketRepository{db: db}
}

// memberJSON monta o literal JSON para o operador de pertinência @>
// sobre a coluna jsonb de responsáveis.
func memberJSON(id string) string {
	return fmt.Sprintf(`[%q]`, id)
}

func (r *TicketRepository) Create(ctx context.Context, ticket *entities.Ticket) error {
	model := r.toModel(ticket)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	ticket.ID = model.ID
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id string) (*entities.Ticket, error) {
	var model TicketModel

	db := dbFromContext(ctx, r.db)
	// Deletados também são retornados: a decisão 403/404 é do serviço
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TicketRepository) Update(ctx context.Context, ticket *entities.Ticket) error {
	model := r.toModel(ticket)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *TicketRepository) List(ctx context.Context, filters repositories.TicketFilters) ([]*entities.Ticket, error) {
	var models []*TicketModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&TicketModel{})

	query = r.applyScope(query, filters.Scope, filters.OnlyDeleted)

	// Filtros da query string
	if len(filters.AssigneeIDs) > 0 {
		cond := r.db.Where("assignee_id IN ?", filters.AssigneeIDs)
		for _, id := range filters.AssigneeIDs {
			cond = cond.Or("assignee_ids @> ?::jsonb", memberJSON(id))
		}
		query = query.Where(cond)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", string(*filters.Priority))
	}
	if len(filters.Tags) > 0 {
		cond := r.db.Where("1 = 0")
		for _, tag := range filters.Tags {
			cond = cond.Or("tags @> ?::jsonb", memberJSON(tag))
		}
		query = query.Where(cond)
	}

	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	tickets := make([]*entities.Ticket, 0, len(models))
	for _, model := range models {
		tickets = append(tickets, r.toEntity(model))
	}
	return tickets, nil
}

// applyScope traduz o escopo de visibilidade no predicado da query.
// O predicado de ownership é conjugado (AND) com os demais filtros:
// quem não tem view-all jamais recebe ticket de terceiros, mesmo
// filtrando explicitamente por outro responsável. Na listagem de
// deletados o view-all não se aplica: não-Admin com ViewDeleted
// só enxerga os próprios registros deletados.
func (r *TicketRepository) applyScope(query *gorm.DB, scope permissions.Scope, onlyDeleted bool) *gorm.DB {
	if onlyDeleted {
		query = query.Where("deleted_at IS NOT NULL")
		if scope.Admin {
			return query
		}
		if !scope.ViewDeleted {
			return query.Where("1 = 0")
		}
		return query.Where(r.ownership(scope.UserID))
	}

	if !scope.Admin {
		// Soft delete: invisível para quem não é Admin
		query = query.Where("deleted_at IS NULL")
	}

	if !scope.Unrestricted() {
		query = query.Where(r.ownership(scope.UserID))
	}

	return query
}

func (r *TicketRepository) ownership(userID string) *gorm.DB {
	return r.db.Where("assignee_id = ?", userID).
		Or("created_by = ?", userID).
		Or("assignee_ids @> ?::jsonb", memberJSON(userID))
}

func (r *TicketRepository) CountByStatusPriority(ctx context.Context) ([]repositories.TicketSummaryRow, error) {
	db := dbFromContext(ctx, r.db)

	var rows []repositories.TicketSummaryRow
	err := db.Model(&TicketModel{}).
		Select("status, priority, deleted_at IS NOT NULL AS deleted, COUNT(*) AS count").
		Group("status, priority, deleted_at IS NOT NULL").
		Order("status, priority").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Conversores
func (r *TicketRepository) toModel(ticket *entities.Ticket) *TicketModel {
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

	return &TicketModel{
		ID:            ticket.ID,
		Subject:       ticket.Subject,
		Description:   ticket.Description,
		AssigneeID:    ticket.AssigneeID,
		AssigneeIDs:   datatypes.NewJSONSlice(ticket.AssigneeIDs),
		CreatedBy:     ticket.CreatedBy,
		Tags:          datatypes.NewJSONSlice(ticket.Tags),
		Priority:      string(ticket.Priority),
		Status:        string(ticket.Status),
		DueAt:         dueAt,
		MID:           ticket.MID,
		DBA:           ticket.DBA,
		ContactNumber: ticket.ContactNumber,
		ContactPerson: ticket.ContactPerson,
		Notes:         ticket.Notes,
		Attachments:   datatypes.NewJSONSlice(ticket.Attachments),
		CreatedAt:     ticket.CreatedAt.Unix(),
		UpdatedAt:     ticket.UpdatedAt.Unix(),
		DeletedAt:     deletedAt,
		DeletedBy:     deletedBy,
	}
}

func (r *TicketRepository) toEntity(model *TicketModel) *entities.Ticket {
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

	return &entities.Ticket{
		ID:            model.ID,
		Subject:       model.Subject,
		Description:   model.Description,
		AssigneeID:    model.AssigneeID,
		AssigneeIDs:   model.AssigneeIDs,
		CreatedBy:     model.CreatedBy,
		Tags:          model.Tags,
		Priority:      entities.TicketPriority(model.Priority),
		Status:        entities.TicketStatus(model.Status),
		DueAt:         dueAt,
		MID:           model.MID,
		DBA:           model.DBA,
		ContactNumber: model.ContactNumber,
		ContactPerson: model.ContactPerson,
		Notes:         model.Notes,
		Attachments:   model.Attachments,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
		DeletedAt:     deletedAt,
		DeletedBy:     deletedBy,
	}
}
