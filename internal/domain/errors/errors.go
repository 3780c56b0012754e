package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")

	// Access Gate: 401 diferencia token ausente de token inválido/expirado
	ErrMissingToken = errors.New("error.auth.missing_token")
	ErrInvalidToken = errors.New("error.auth.invalid_token")
	// 423 fora da allow-list enquanto a troca de senha está pendente
	ErrPasswordChangeRequired = errors.New("error.auth.password_change_required")

	ErrWrongPassword     = errors.New("error.auth.wrong_password")
	ErrPasswordTooShort  = errors.New("error.auth.password_too_short")
	ErrInvalidResetToken = errors.New("error.auth.invalid_reset_token")

	ErrRoleNotFound      = errors.New("error.role_not_found")
	ErrRoleAlreadyExists = errors.New("error.role_already_exists")
	ErrRoleNotDefined    = errors.New("error.role_not_defined")

	ErrTicketNotFound   = errors.New("error.ticket_not_found")
	ErrTicketDeleted    = errors.New("error.ticket_deleted")
	ErrAssigneeNotFound = errors.New("error.assignee_not_found")

	ErrTagNotFound      = errors.New("error.tag_not_found")
	ErrTagAlreadyExists = errors.New("error.tag_already_exists")

	ErrRequestNotFound = errors.New("error.request_not_found")

	// ErrValidationFailed embrulha erros de validação de entidade para
	// que os handlers respondam 400 em vez de 500
	ErrValidationFailed = errors.New("error.validation_failed")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeLocked       = "/problems/password-change-required"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
