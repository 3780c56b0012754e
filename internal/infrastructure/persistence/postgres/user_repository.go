package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	// Soft delete: ignorar contas encerradas
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	// E-mails são únicos de forma case-insensitive; armazenamos em minúsculas
	email = strings.TrimSpace(strings.ToLower(email))
	if err := db.Where("email = ? AND deleted_at IS NULL", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByResetToken(ctx context.Context, hashedToken string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	now := time.Now().Unix()
	err := db.Where("reset_password_token = ? AND reset_password_expires > ? AND deleted_at IS NULL", hashedToken, now).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// FindOverrides lê somente o mapa de overrides para o resolver.
// Usuário inexistente ou encerrado degrada para mapa vazio (fail-closed).
func (r *UserRepository) FindOverrides(ctx context.Context, id string) (map[string]bool, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	err := db.Select("overrides").Where("id = ? AND deleted_at IS NULL", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]bool{}, nil
		}
		return nil, err
	}

	overrides := model.Overrides.Data()
	if overrides == nil {
		overrides = map[string]bool{}
	}
	return overrides, nil
}

func (r *UserRepository) ExistByIDs(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}

	db := dbFromContext(ctx, r.db)
	var count int64
	err := db.Model(&UserModel{}).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == int64(len(ids)), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&UserModel{})

	if !filters.IncludeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	// Aplicar filtros
	if filters.Role != nil {
		query = query.Where("role = ?", *filters.Role)
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Limit(pageSize).Offset(offset).Order("created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var deletedAt *int64
	if user.DeletedAt != nil {
		ts := user.DeletedAt.Unix()
		deletedAt = &ts
	}

	var deletedBy *string
	if user.DeletedBy != "" {
		deletedBy = &user.DeletedBy
	}

	var resetToken *string
	if user.ResetPasswordToken != "" {
		resetToken = &user.ResetPasswordToken
	}

	var resetExpires *int64
	if user.ResetPasswordExpires != nil {
		ts := user.ResetPasswordExpires.Unix()
		resetExpires = &ts
	}

	overrides := user.Overrides
	if overrides == nil {
		overrides = map[string]bool{}
	}

	return &UserModel{
		ID:                   user.ID,
		Email:                user.Email.String(),
		Name:                 user.Name,
		PasswordHash:         user.PasswordHash,
		Role:                 user.Role,
		Overrides:            datatypes.NewJSONType(overrides),
		MustChangePassword:   user.MustChangePassword,
		ResetPasswordToken:   resetToken,
		ResetPasswordExpires: resetExpires,
		CreatedAt:            user.CreatedAt.Unix(),
		UpdatedAt:            user.UpdatedAt.Unix(),
		DeletedAt:            deletedAt,
		DeletedBy:            deletedBy,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
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

	var resetToken string
	if model.ResetPasswordToken != nil {
		resetToken = *model.ResetPasswordToken
	}

	var resetExpires *time.Time
	if model.ResetPasswordExpires != nil {
		ts := time.Unix(*model.ResetPasswordExpires, 0)
		resetExpires = &ts
	}

	overrides := model.Overrides.Data()
	if overrides == nil {
		overrides = map[string]bool{}
	}

	return &entities.User{
		ID:                   model.ID,
		Email:                email,
		Name:                 model.Name,
		PasswordHash:         model.PasswordHash,
		Role:                 model.Role,
		Overrides:            overrides,
		MustChangePassword:   model.MustChangePassword,
		ResetPasswordToken:   resetToken,
		ResetPasswordExpires: resetExpires,
		CreatedAt:            time.Unix(model.CreatedAt, 0),
		UpdatedAt:            time.Unix(model.UpdatedAt, 0),
		DeletedAt:            deletedAt,
		DeletedBy:            deletedBy,
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	return users, nil
}
