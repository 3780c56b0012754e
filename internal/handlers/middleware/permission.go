package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

// PermissionMiddleware decide capabilities por rota
type PermissionMiddleware struct {
	access *services.AccessService
}

// NewPermissionMiddleware cria um novo PermissionMiddleware
func NewPermissionMiddleware(access *services.AccessService) *PermissionMiddleware {
	return &PermissionMiddleware{access: access}
}

// RequireCapability exige que o conjunto efetivo do requisitante
// conceda a capability. Admin passa sem consultar o armazenamento.
// Negação responde 403; falha de resolução responde 500, nunca um
// 403 enganoso.
func (m *PermissionMiddleware) RequireCapability(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentIdentity(c)
		if !ok {
			respondUnauthorized(c, "error.auth.missing_token")
			return
		}

		if claims.Role == permissions.RoleAdmin {
			c.Next()
			return
		}

		set, err := m.access.ResolveSet(c.Request.Context(), claims.UserID, claims.Role)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, newProblem(
				c,
				errors.ProblemTypeInternal,
				"error.internal.title",
				"error.internal.detail",
				http.StatusInternalServerError,
			))
			return
		}

		if !set.Has(key) {
			respondForbidden(c)
			return
		}

		c.Next()
	}
}

// RequireRole exige que o nome do role na credencial esteja na lista.
// Usado nas rotas restritas a roles confiáveis, como o histórico de
// auditoria.
func RequireRole(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentIdentity(c)
		if !ok {
			respondUnauthorized(c, "error.auth.missing_token")
			return
		}

		for _, name := range names {
			if claims.Role == name {
				c.Next()
				return
			}
		}

		respondForbidden(c)
	}
}

func respondForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, newProblem(
		c,
		errors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		http.StatusForbidden,
	))
}
