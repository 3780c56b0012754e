package permissions

// Resolve computa o conjunto efetivo de capabilities para uma identidade.
//
// Regras de merge, nesta ordem:
//  1. roleName == "Admin" retorna o sentinela de acesso total, sem
//     consultar o mapa do role e ignorando overrides.
//  2. O mapa do role é a base. Um role inexistente chega aqui como mapa
//     vazio (fail-closed, nunca erro).
//  3. Cada chave presente em overrides substitui o valor do role,
//     inclusive introduzindo capability que o role nunca concedeu ou
//     revogando explicitamente uma que o role concede.
//
// A função é pura: depende somente dos argumentos e não mantém estado.
func Resolve(roleName string, rolePerms, overrides map[string]bool) Set {
	if roleName == RoleAdmin {
		return AdminSet()
	}

	merged := make(map[string]bool, len(rolePerms)+len(overrides))
	for k, v := range rolePerms {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return Set{values: merged}
}
