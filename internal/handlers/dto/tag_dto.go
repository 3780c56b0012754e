package dto

import (
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// CreateTagRequest representa a requisição para criar uma tag
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateTagRequest renomeia e/ou (des)ativa uma tag
type UpdateTagRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Active *bool   `json:"active"`
}

// TagResponse representa a resposta de uma tag
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTagResponse converte uma entidade Tag para TagResponse
func ToTagResponse(tag *entities.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		Active:    tag.Active,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

// ToTagResponses converte uma lista de tags
func ToTagResponses(tags []*entities.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = ToTagResponse(tag)
	}
	return responses
}
