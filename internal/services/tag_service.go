package services

import (
	"context"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// TagService contém a lógica de negócio do catálogo de tags
type TagService struct {
	tagRepo repositories.TagRepository
	logger  ports.Logger
}

// NewTagService cria um novo TagService
func NewTagService(tagRepo repositories.TagRepository, logger ports.Logger) *TagService {
	return &TagService{tagRepo: tagRepo, logger: logger}
}

// ListActiveTags lista o vocabulário disponível para novos tickets
func (s *TagService) ListActiveTags(ctx context.Context) ([]*entities.Tag, error) {
	return s.tagRepo.List(ctx, true)
}

// ListAllTags lista o catálogo inteiro, inclusive tags desativadas
func (s *TagService) ListAllTags(ctx context.Context) ([]*entities.Tag, error) {
	return s.tagRepo.List(ctx, false)
}

// CreateTag registra uma nova tag ativa com nome único
func (s *TagService) CreateTag(ctx context.Context, name string) (*entities.Tag, error) {
	existing, err := s.tagRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrTagAlreadyExists
	}

	now := time.Now()
	tag := &entities.Tag{
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tag.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}

	s.logger.Info("tag created", "tag", tag.Name)
	return tag, nil
}

// UpdateTagInput representa os campos mutáveis de uma tag
type UpdateTagInput struct {
	Name   *string
	Active *bool
}

// UpdateTag renomeia e/ou (des)ativa uma tag. Desativar esconde a tag
// das listagens comuns sem invalidar tickets que já a usam.
func (s *TagService) UpdateTag(ctx context.Context, id string, input UpdateTagInput) (*entities.Tag, error) {
	tag, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errors.ErrTagNotFound
	}

	if input.Name != nil && *input.Name != "" {
		tag.Name = *input.Name
	}
	if input.Active != nil {
		tag.Active = *input.Active
	}
	if err := tag.Validate(); err != nil {
		return nil, invalid(err)
	}

	tag.UpdatedAt = time.Now()
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// DeleteTag remove a tag do catálogo definitivamente
func (s *TagService) DeleteTag(ctx context.Context, id string) error {
	return s.tagRepo.Delete(ctx, id)
}
