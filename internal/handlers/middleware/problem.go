package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/i18n"
)

// newProblem monta uma resposta RFC 7807 traduzida. O pacote dto
// oferece o mesmo para handlers; este duplicado mínimo existe porque
// dto importa middleware para as chaves de contexto.
func newProblem(c *gin.Context, problemType, titleKey, detailKey string, status int) *problems.Problem {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, translate(c, detailKey))
	problem.Type = baseURL + problemType
	problem.Title = translate(c, titleKey)
	problem.Instance = c.Request.URL.Path
	return problem
}

// translate resolve a mensagem no idioma da requisição, caindo para a
// própria chave quando o serviço i18n não está no contexto (testes).
func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}
	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	if langStr == "" {
		langStr = service.GetDefaultLanguage()
	}
	return service.T(langStr, key)
}
