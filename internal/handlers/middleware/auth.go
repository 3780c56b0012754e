package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
)

const (
	// IdentityContextKey é a chave usada para armazenar a identidade no contexto do Gin
	IdentityContextKey = "identity"
	// tokenCookieName é o nome do cookie que carrega a credencial
	tokenCookieName = "token"
)

// AuthMiddleware valida a credencial e popula a identidade da requisição
type AuthMiddleware struct {
	tokens ports.TokenService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens ports.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate extrai a credencial do header Authorization (prioridade)
// ou do cookie "token" e a valida. Token ausente e token inválido
// respondem 401 com mensagens distintas. Nenhum outro efeito colateral:
// permissões são resolvidas adiante, por decisão.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.Request)
		if token == "" {
			respondUnauthorized(c, "error.auth.missing_token")
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			respondUnauthorized(c, "error.auth.invalid_token")
			return
		}

		c.Set(IdentityContextKey, claims)
		c.Next()
	}
}

// CurrentIdentity retorna a identidade autenticada da requisição
func CurrentIdentity(c *gin.Context) (*ports.TokenClaims, bool) {
	value, exists := c.Get(IdentityContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*ports.TokenClaims)
	return claims, ok
}

// extractToken busca a credencial no header Authorization e, na
// ausência dele, no header Cookie cru (split em ';' e '=').
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookieHeader := r.Header.Get("Cookie")
	for _, part := range strings.Split(cookieHeader, ";") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) == 2 && kv[0] == tokenCookieName {
			return kv[1]
		}
	}
	return ""
}

func respondUnauthorized(c *gin.Context, detailKey string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, newProblem(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		detailKey,
		http.StatusUnauthorized,
	))
}
