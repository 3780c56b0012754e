package ports

import "errors"

var (
	// ErrTokenInvalid cobre assinatura inválida e expiração
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// TokenClaims é o snapshot de identidade embutido na credencial.
// O nome do role fica congelado até a credencial ser reemitida (próximo
// login); os valores de permissão são resolvidos a cada requisição.
type TokenClaims struct {
	UserID             string
	Role               string
	Name               string
	Email              string
	MustChangePassword bool
}

// TokenService emite e valida credenciais assinadas com tempo de vida fixo
type TokenService interface {
	Issue(claims TokenClaims) (string, error)
	Verify(token string) (*TokenClaims, error)
}
