package permissions

// RoleAdmin é o nome de role reservado com acesso total.
// Nunca consulta o registro de roles: o bypass acontece antes do lookup.
const RoleAdmin = "Admin"

// Chaves de capability consumidas pelas rotas.
// O vocabulário é aberto: novas chaves podem ser introduzidas em runtime
// por ação administrativa, sem migração de schema.
const (
	TicketsCreate      = "tickets.create"
	TicketsUpdate      = "tickets.update"
	TicketsDelete      = "tickets.delete"
	TicketsViewDeleted = "tickets.viewDeleted"
	TicketsViewAll     = "tickets.viewAll"
	ReportsGenerate    = "reports.generate"
	TagsManage         = "tags.manage"
	SalesCreate        = "sales.create"
	SalesUpdate        = "sales.update"
	SalesDelete        = "sales.delete"
	SalesViewAll       = "sales.viewAll"
	UsersManage        = "users.manage"
	RolesManage        = "roles.manage"
	AccountsDelete     = "accounts.delete"
	MembersAdd         = "members.add"

	AttendanceRecord            = "attendance.record"
	AttendanceReport            = "attendance.report"
	AttendanceRequestLeave      = "attendance.requestLeave"
	AttendanceRequestCorrection = "attendance.requestCorrection"
	AttendanceApproveRequests   = "attendance.approveRequests"
)

// Set é o conjunto efetivo de capabilities de uma identidade.
// admin=true é o sentinela "todas as capabilities" usado pelo bypass
// de Admin: nenhum override consegue revogar acesso por esse caminho.
type Set struct {
	admin  bool
	values map[string]bool
}

// AdminSet retorna o conjunto sentinela que concede qualquer capability.
func AdminSet() Set {
	return Set{admin: true}
}

// NewSet cria um Set a partir de um mapa capability -> bool.
// O mapa é copiado: o Set resultante não compartilha estado com o chamador.
func NewSet(values map[string]bool) Set {
	copied := make(map[string]bool, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Set{values: copied}
}

// Has responde se a capability está concedida.
// Somente o valor estritamente true concede; ausente ou false negam.
func (s Set) Has(key string) bool {
	if s.admin {
		return true
	}
	return s.values[key]
}

// IsAdmin indica se o conjunto é o sentinela de Admin.
func (s Set) IsAdmin() bool {
	return s.admin
}

// Values retorna uma cópia do mapa resolvido.
// Para o sentinela de Admin retorna {"admin": true}, o marcador que o
// cliente usa para reconhecer acesso total.
func (s Set) Values() map[string]bool {
	if s.admin {
		return map[string]bool{"admin": true}
	}
	out := make(map[string]bool, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
