package http

import (
	errs "errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/handlers/dto"
	"github.com/Muhammaddarab1/spadepayits/internal/handlers/middleware"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

// actorFrom extrai a identidade da requisição como ator de serviço
func actorFrom(c *gin.Context) (services.Actor, bool) {
	claims, ok := middleware.CurrentIdentity(c)
	if !ok {
		return services.Actor{}, false
	}
	return services.Actor{
		ID:   claims.UserID,
		Name: claims.Name,
		Role: claims.Role,
	}, true
}

// isAdmin responde se a credencial da requisição é de Admin
func isAdmin(c *gin.Context) bool {
	claims, ok := middleware.CurrentIdentity(c)
	return ok && claims.Role == permissions.RoleAdmin
}

// respondError traduz erros de domínio no status e corpo RFC 7807.
// Erros não mapeados respondem 500 genérico; o detalhe fica no log,
// nunca no corpo.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
	case errs.Is(err, errors.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Ticket"))
	case errs.Is(err, errors.ErrRoleNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Role"))
	case errs.Is(err, errors.ErrTagNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Tag"))
	case errs.Is(err, errors.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Request"))
	case errs.Is(err, errors.ErrAssigneeNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Assignee"))
	case errs.Is(err, errors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.email_already_exists"))
	case errs.Is(err, errors.ErrRoleAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.role_already_exists"))
	case errs.Is(err, errors.ErrTagAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.tag_already_exists"))
	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
	case errs.Is(err, errors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.invalid_credentials"))
	case errs.Is(err, errors.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.auth.wrong_password"))
	case errs.Is(err, errors.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.auth.password_too_short"))
	case errs.Is(err, errors.ErrInvalidResetToken):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.auth.invalid_reset_token"))
	case errs.Is(err, errors.ErrRoleNotDefined):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.role_not_defined"))
	case errs.Is(err, errors.ErrTicketDeleted):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.ticket_deleted"))
	case errs.Is(err, errors.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_email"))
	case errs.Is(err, errors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.validation_failed"))
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}

// respondValidationError responde 400 com os erros de campo extraídos
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.ExtractValidationErrors(c, err)))
}

// parseUploads extrai os arquivos do campo multipart "files". Em caso
// de erro a resposta já foi escrita; o handler só precisa retornar.
func parseUploads(c *gin.Context, maxFiles int) ([]ports.Upload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.uploads.invalid_form"))
		return nil, nil, err
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.uploads.no_files"))
		return nil, nil, errs.New("no files")
	}
	if maxFiles > 0 && len(files) > maxFiles {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.uploads.too_many_files"))
		return nil, nil, errs.New("too many files")
	}

	uploads := make([]ports.Upload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			closeAll()
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.uploads.invalid_form"))
			return nil, nil, err
		}
		opened = append(opened, file)
		uploads = append(uploads, ports.Upload{
			Filename: header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Size:     header.Size,
			Content:  file,
		})
	}

	return uploads, closeAll, nil
}
