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

// RoleRepository implementa repositories.RoleRepository
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository cria um novo RoleRepository
func NewRoleRepository(db *gorm.DB) repositories.RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(ctx context.Context, role *entities.Role) error {
	model := r.toModel(role)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	role.ID = model.ID
	return nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (*entities.Role, error) {
	var model RoleModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*entities.Role, error) {
	var model RoleModel

	db := dbFromContext(ctx, r.db)
	// Role inexistente retorna (nil, nil): o resolver degrada para mapa
	// vazio em vez de tratar como erro
	if err := db.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *RoleRepository) Update(ctx context.Context, role *entities.Role) error {
	model := r.toModel(role)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&RoleModel{}, "id = ?", id).Error
}

func (r *RoleRepository) List(ctx context.Context) ([]*entities.Role, error) {
	var models []*RoleModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	roles := make([]*entities.Role, 0, len(models))
	for _, model := range models {
		roles = append(roles, r.toEntity(model))
	}
	return roles, nil
}

// Conversores
func (r *RoleRepository) toModel(role *entities.Role) *RoleModel {
	perms := role.Permissions
	if perms == nil {
		perms = map[string]bool{}
	}

	return &RoleModel{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: datatypes.NewJSONType(perms),
		CreatedAt:   role.CreatedAt.Unix(),
		UpdatedAt:   role.UpdatedAt.Unix(),
	}
}

func (r *RoleRepository) toEntity(model *RoleModel) *entities.Role {
	perms := model.Permissions.Data()
	if perms == nil {
		perms = map[string]bool{}
	}

	return &entities.Role{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Permissions: perms,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}
