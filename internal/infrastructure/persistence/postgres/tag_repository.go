package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// TagRepository implementa repositories.TagRepository
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository cria um novo TagRepository
func NewTagRepository(db *gorm.DB) repositories.TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, tag *entities.Tag) error {
	model := r.toModel(tag)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	tag.ID = model.ID
	return nil
}

func (r *TagRepository) FindByID(ctx context.Context, id string) (*entities.Tag, error) {
	var model TagModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TagRepository) FindByName(ctx context.Context, name string) (*entities.Tag, error) {
	var model TagModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TagRepository) Update(ctx context.Context, tag *entities.Tag) error {
	model := r.toModel(tag)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *TagRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&TagModel{}, "id = ?", id).Error
}

func (r *TagRepository) List(ctx context.Context, onlyActive bool) ([]*entities.Tag, error) {
	var models []*TagModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&TagModel{})
	if onlyActive {
		query = query.Where("active = ?", true)
	}

	if err := query.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	tags := make([]*entities.Tag, 0, len(models))
	for _, model := range models {
		tags = append(tags, r.toEntity(model))
	}
	return tags, nil
}

// Conversores
func (r *TagRepository) toModel(tag *entities.Tag) *TagModel {
	return &TagModel{
		ID:        tag.ID,
		Name:      tag.Name,
		Active:    tag.Active,
		CreatedAt: tag.CreatedAt.Unix(),
		UpdatedAt: tag.UpdatedAt.Unix(),
	}
}

func (r *TagRepository) toEntity(model *TagModel) *entities.Tag {
	return &entities.Tag{
		ID:        model.ID,
		Name:      model.Name,
		Active:    model.Active,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}
}
