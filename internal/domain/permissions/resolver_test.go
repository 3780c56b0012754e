package permissions_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
)

var _ = Describe("Resolve", func() {
	Context("quando o role é Admin", func() {
		It("concede qualquer capability, ignorando o mapa do role", func() {
			set := permissions.Resolve(permissions.RoleAdmin, nil, nil)

			Expect(set.IsAdmin()).To(BeTrue())
			Expect(set.Has(permissions.TicketsCreate)).To(BeTrue())
			Expect(set.Has("qualquer.chave.desconhecida")).To(BeTrue())
		})

		It("nenhum override consegue revogar o acesso", func() {
			overrides := map[string]bool{
				permissions.TicketsCreate: false,
				permissions.UsersManage:   false,
			}

			set := permissions.Resolve(permissions.RoleAdmin, nil, overrides)

			Expect(set.Has(permissions.TicketsCreate)).To(BeTrue())
			Expect(set.Has(permissions.UsersManage)).To(BeTrue())
		})

		It("expõe o marcador de admin no mapa serializável", func() {
			set := permissions.Resolve(permissions.RoleAdmin, nil, nil)

			Expect(set.Values()).To(Equal(map[string]bool{"admin": true}))
		})
	})

	Context("quando o role não define a capability", func() {
		It("nega quando o override também não define", func() {
			set := permissions.Resolve("Agent", map[string]bool{}, map[string]bool{})

			Expect(set.Has(permissions.TicketsDelete)).To(BeFalse())
		})

		It("nega chave desconhecida", func() {
			set := permissions.Resolve("Agent", map[string]bool{permissions.TicketsCreate: true}, nil)

			Expect(set.Has("chave.inexistente")).To(BeFalse())
		})
	})

	Context("merge de overrides por usuário", func() {
		It("override true concede mesmo quando o role nega explicitamente", func() {
			rolePerms := map[string]bool{permissions.TicketsCreate: false}
			overrides := map[string]bool{permissions.TicketsCreate: true}

			set := permissions.Resolve("User", rolePerms, overrides)

			Expect(set.Has(permissions.TicketsCreate)).To(BeTrue())
		})

		It("override false revoga mesmo quando o role concede", func() {
			rolePerms := map[string]bool{permissions.TicketsCreate: true}
			overrides := map[string]bool{permissions.TicketsCreate: false}

			set := permissions.Resolve("Agent", rolePerms, overrides)

			Expect(set.Has(permissions.TicketsCreate)).To(BeFalse())
		})

		It("override pode introduzir capability que o role nunca concedeu", func() {
			overrides := map[string]bool{permissions.ReportsGenerate: true}

			set := permissions.Resolve("User", map[string]bool{}, overrides)

			Expect(set.Has(permissions.ReportsGenerate)).To(BeTrue())
		})

		It("chaves ausentes no override caem no valor do role", func() {
			rolePerms := map[string]bool{
				permissions.TicketsCreate: true,
				permissions.TicketsUpdate: true,
			}
			overrides := map[string]bool{permissions.TicketsUpdate: false}

			set := permissions.Resolve("Agent", rolePerms, overrides)

			Expect(set.Has(permissions.TicketsCreate)).To(BeTrue())
			Expect(set.Has(permissions.TicketsUpdate)).To(BeFalse())
		})

		It("override vazio é equivalente às permissões puras do role", func() {
			rolePerms := map[string]bool{permissions.SalesCreate: true}

			comOverride := permissions.Resolve("Sales", rolePerms, map[string]bool{})
			semOverride := permissions.Resolve("Sales", rolePerms, nil)

			Expect(comOverride.Values()).To(Equal(semOverride.Values()))
		})
	})

	Context("role inexistente", func() {
		It("degrada para mapa vazio, nunca erro", func() {
			set := permissions.Resolve("RoleQueFoiApagado", nil, nil)

			Expect(set.IsAdmin()).To(BeFalse())
			Expect(set.Has(permissions.TicketsCreate)).To(BeFalse())
		})

		It("overrides continuam valendo sobre o mapa vazio", func() {
			overrides := map[string]bool{permissions.TicketsCreate: true}

			set := permissions.Resolve("RoleQueFoiApagado", nil, overrides)

			Expect(set.Has(permissions.TicketsCreate)).To(BeTrue())
		})
	})

	Context("pureza", func() {
		It("resolver duas vezes com as mesmas entradas produz o mesmo resultado", func() {
			rolePerms := map[string]bool{permissions.TicketsCreate: true, permissions.TagsManage: false}
			overrides := map[string]bool{permissions.TagsManage: true}

			first := permissions.Resolve("Agent", rolePerms, overrides)
			second := permissions.Resolve("Agent", rolePerms, overrides)

			Expect(first.Values()).To(Equal(second.Values()))
		})

		It("não compartilha estado com os mapas de entrada", func() {
			rolePerms := map[string]bool{permissions.TicketsCreate: true}

			set := permissions.Resolve("Agent", rolePerms, nil)
			rolePerms[permissions.TicketsCreate] = false

			Expect(set.Has(permissions.TicketsCreate)).To(BeTrue())
		})
	})
})
