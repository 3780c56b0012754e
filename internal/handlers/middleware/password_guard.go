package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
)

// passwordChangeAllowList são as rotas acessíveis mesmo com a troca de
// senha pendente: trocar a senha e consultar o próprio perfil.
var passwordChangeAllowList = []struct {
	method string
	prefix string
}{
	{http.MethodPost, "/api/auth/change-password"},
	{http.MethodGet, "/api/users/me"},
}

// RequirePasswordChanged bloqueia com 423 qualquer rota fora da
// allow-list enquanto a credencial carrega mustChangePassword.
// A flag vem congelada na credencial: após a troca, o novo token
// emitido já vem limpo.
func RequirePasswordChanged() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentIdentity(c)
		if !ok || !claims.MustChangePassword {
			c.Next()
			return
		}

		for _, allowed := range passwordChangeAllowList {
			if c.Request.Method == allowed.method && strings.HasPrefix(c.Request.URL.Path, allowed.prefix) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusLocked, newProblem(
			c,
			errors.ProblemTypeLocked,
			"error.locked.title",
			"error.auth.password_change_required",
			http.StatusLocked,
		))
	}
}
