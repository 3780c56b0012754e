package permissions_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
)

var _ = Describe("Scope", func() {
	const (
		userA = "usr-a"
		userB = "usr-b"
		userC = "usr-c"
		userD = "usr-d"
	)

	scopeFor := func(userID string, perms map[string]bool) permissions.Scope {
		set := permissions.Resolve("Agent", perms, nil)
		return permissions.NewScope(userID, set, permissions.TicketsViewAll)
	}

	Context("visibilidade de listagem e leitura unitária", func() {
		It("view-all libera qualquer entidade não deletada", func() {
			scope := scopeFor(userD, map[string]bool{permissions.TicketsViewAll: true})

			Expect(scope.Unrestricted()).To(BeTrue())
			Expect(scope.CanView(userA, []string{userA, userB}, userC, false)).To(BeTrue())
		})

		It("sem view-all, exige ownership: responsável, membro ou criador", func() {
			scope := scopeFor(userB, nil)

			Expect(scope.CanView(userA, []string{userA, userB}, userC, false)).To(BeTrue())
			Expect(scope.CanView(userB, nil, userC, false)).To(BeTrue())
			Expect(scope.CanView(userA, []string{userA}, userB, false)).To(BeTrue())
		})

		It("nega quem não é responsável, membro nem criador", func() {
			scope := scopeFor(userD, nil)

			Expect(scope.CanView(userA, []string{userA, userB}, userC, false)).To(BeFalse())
		})

		It("não-Admin nunca enxerga entidade deletada, nem sendo o criador", func() {
			scope := scopeFor(userC, map[string]bool{permissions.TicketsViewAll: true})

			Expect(scope.CanView(userA, []string{userA}, userC, true)).To(BeFalse())
		})

		It("Admin enxerga tudo, inclusive deletados", func() {
			set := permissions.Resolve(permissions.RoleAdmin, nil, nil)
			scope := permissions.NewScope(userD, set, permissions.TicketsViewAll)

			Expect(scope.CanView(userA, []string{userA}, userC, true)).To(BeTrue())
		})
	})

	Context("predicado de edição", func() {
		It("membro do conjunto de responsáveis pode editar", func() {
			scope := scopeFor(userB, nil)

			Expect(scope.CanEdit("User", userA, []string{userA, userB}, userC)).To(BeTrue())
		})

		It("role confiável pode editar sem ownership", func() {
			scope := scopeFor(userD, nil)

			Expect(scope.CanEdit("Agent", userA, []string{userA, userB}, userC)).To(BeTrue())
			Expect(scope.CanEdit("Sales", userA, nil, userC)).To(BeTrue())
		})

		It("role comum sem ownership não edita", func() {
			scope := scopeFor(userD, nil)

			Expect(scope.CanEdit("User", userA, []string{userA, userB}, userC)).To(BeFalse())
		})
	})
})
