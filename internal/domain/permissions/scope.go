package permissions

// Roles confiáveis que podem editar qualquer ticket, mesmo sem serem
// responsáveis ou criadores. Espelha a regra do cliente para evitar
// divergência entre o que a UI habilita e o que o servidor aceita.
var elevatedRoles = map[string]bool{
	"Agent":   true,
	"Sales":   true,
	"Finance": true,
}

// IsElevatedRole responde se o role tem o selo de confiança para edição.
func IsElevatedRole(roleName string) bool {
	return roleName == RoleAdmin || elevatedRoles[roleName]
}

// Scope restringe quais entidades uma identidade enxerga em listagens.
// Os repositórios traduzem o Scope no predicado da query; o mesmo Scope
// é reaplicado pós-fetch em leituras unitárias.
type Scope struct {
	UserID      string
	Admin       bool
	ViewAll     bool
	ViewDeleted bool
}

// NewScope monta o escopo de visibilidade a partir do conjunto efetivo.
func NewScope(userID string, set Set, viewAllKey string) Scope {
	return Scope{
		UserID:      userID,
		Admin:       set.IsAdmin(),
		ViewAll:     set.IsAdmin() || set.Has(viewAllKey),
		ViewDeleted: set.IsAdmin() || set.Has(TicketsViewDeleted),
	}
}

// Unrestricted indica que o predicado de ownership não se aplica.
func (s Scope) Unrestricted() bool {
	return s.ViewAll
}

// CanView decide a visibilidade de uma entidade já carregada.
// A regra é idêntica ao predicado de listagem: view-all, ou responsável
// principal, ou membro do conjunto de responsáveis, ou criador.
// Entidades deletadas ficam invisíveis para quem não é Admin, mesmo
// para o próprio criador.
func (s Scope) CanView(assigneeID string, assigneeIDs []string, createdBy string, deleted bool) bool {
	if deleted && !s.Admin {
		return false
	}
	if s.ViewAll {
		return true
	}
	return s.owns(assigneeID, assigneeIDs, createdBy)
}

func (s Scope) owns(assigneeID string, assigneeIDs []string, createdBy string) bool {
	if s.UserID == "" {
		return false
	}
	if assigneeID == s.UserID || createdBy == s.UserID {
		return true
	}
	for _, id := range assigneeIDs {
		if id == s.UserID {
			return true
		}
	}
	return false
}

// CanEdit decide mutações de nível de entidade (edição, troca de status).
// Mais amplo que CanView: além de Admin e ownership, roles confiáveis
// também podem editar. A exclusão definitiva não passa por aqui; ela é
// decidida exclusivamente por Admin.
func (s Scope) CanEdit(roleName, assigneeID string, assigneeIDs []string, createdBy string) bool {
	if s.Admin || IsElevatedRole(roleName) {
		return true
	}
	return s.owns(assigneeID, assigneeIDs, createdBy)
}
