package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/handlers/dto"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

// TagHandler lida com o vocabulário de tags de tickets
type TagHandler struct {
	tagService *services.TagService
}

// NewTagHandler cria um novo TagHandler
func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// ListActiveTags lista as tags ativas
// @Summary Lista tags ativas
// @Tags tags
// @Produce json
// @Success 200 {array} dto.TagResponse
// @Security BearerAuth
// @Router /api/tags [get]
func (h *TagHandler) ListActiveTags(c *gin.Context) {
	tags, err := h.tagService.ListActiveTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponses(tags))
}

// ListAllTags lista todas as tags, inclusive inativas
// @Summary Lista todas as tags
// @Tags tags
// @Produce json
// @Success 200 {array} dto.TagResponse
// @Security BearerAuth
// @Router /api/tags/all [get]
func (h *TagHandler) ListAllTags(c *gin.Context) {
	tags, err := h.tagService.ListAllTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponses(tags))
}

// CreateTag cria uma tag ativa
// @Summary Cria uma tag
// @Tags tags
// @Accept json
// @Produce json
// @Param request body dto.CreateTagRequest true "Nome da tag"
// @Success 201 {object} dto.TagResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}

// UpdateTag renomeia e/ou (des)ativa uma tag
// @Summary Atualiza uma tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "ID da tag"
// @Param request body dto.UpdateTagRequest true "Campos a alterar"
// @Success 200 {object} dto.TagResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/tags/{id} [patch]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	tag, err := h.tagService.UpdateTag(c.Request.Context(), c.Param("id"), services.UpdateTagInput{
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

// DeleteTag remove uma tag
// @Summary Remove uma tag
// @Tags tags
// @Produce json
// @Param id path string true "ID da tag"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	if err := h.tagService.DeleteTag(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tag deleted successfully"})
}
