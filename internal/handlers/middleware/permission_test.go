package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/logging"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

func newCapabilityRouter(roleRepo *stubRoleRepo, userRepo *stubUserRepo, claims *ports.TokenClaims, key string) *gin.Engine {
	access := services.NewAccessService(roleRepo, userRepo, logging.NewSlogLogger("error"))
	mw := NewPermissionMiddleware(access)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(IdentityContextKey, claims)
		}
		c.Next()
	})
	router.POST("/api/tickets", mw.RequireCapability(key), okHandler)
	return router
}

func postTickets(router *gin.Engine) int {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/tickets", nil))
	return w.Code
}

func TestRequireCapability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("capability concedida pelo role passa", func(t *testing.T) {
		roleRepo := &stubRoleRepo{role: &entities.Role{
			Name:        "Agent",
			Permissions: map[string]bool{permissions.TicketsCreate: true},
		}}
		router := newCapabilityRouter(roleRepo, &stubUserRepo{},
			&ports.TokenClaims{UserID: "usr-1", Role: "Agent"}, permissions.TicketsCreate)

		if code := postTickets(router); code != http.StatusOK {
			t.Errorf("expected 200, got %d", code)
		}
	})

	t.Run("capability ausente responde 403", func(t *testing.T) {
		roleRepo := &stubRoleRepo{role: &entities.Role{Name: "Agent", Permissions: map[string]bool{}}}
		router := newCapabilityRouter(roleRepo, &stubUserRepo{},
			&ports.TokenClaims{UserID: "usr-1", Role: "Agent"}, permissions.TicketsCreate)

		if code := postTickets(router); code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", code)
		}
	})

	t.Run("override concede o que o role nega", func(t *testing.T) {
		roleRepo := &stubRoleRepo{role: &entities.Role{Name: "Agent", Permissions: map[string]bool{}}}
		userRepo := &stubUserRepo{overrides: map[string]bool{permissions.TicketsCreate: true}}
		router := newCapabilityRouter(roleRepo, userRepo,
			&ports.TokenClaims{UserID: "usr-1", Role: "Agent"}, permissions.TicketsCreate)

		if code := postTickets(router); code != http.StatusOK {
			t.Errorf("expected 200, got %d", code)
		}
	})

	t.Run("falha de resolução responde 500, nunca 403", func(t *testing.T) {
		roleRepo := &stubRoleRepo{err: errors.New("connection refused")}
		router := newCapabilityRouter(roleRepo, &stubUserRepo{},
			&ports.TokenClaims{UserID: "usr-1", Role: "Agent"}, permissions.TicketsCreate)

		if code := postTickets(router); code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", code)
		}
	})

	t.Run("admin passa sem consultar o armazenamento", func(t *testing.T) {
		roleRepo := &stubRoleRepo{err: errors.New("storage down")}
		userRepo := &stubUserRepo{err: errors.New("storage down")}
		router := newCapabilityRouter(roleRepo, userRepo,
			&ports.TokenClaims{UserID: "usr-1", Role: permissions.RoleAdmin}, permissions.TicketsDelete)

		if code := postTickets(router); code != http.StatusOK {
			t.Errorf("expected 200, got %d", code)
		}
	})

	t.Run("sem identidade responde 401", func(t *testing.T) {
		router := newCapabilityRouter(&stubRoleRepo{}, &stubUserRepo{}, nil, permissions.TicketsCreate)

		if code := postTickets(router); code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(claims *ports.TokenClaims) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if claims != nil {
				c.Set(IdentityContextKey, claims)
			}
			c.Next()
		})
		router.GET("/api/activity-logs", RequireRole(permissions.RoleAdmin, "Sales", "Finance"), okHandler)
		return router
	}

	do := func(router *gin.Engine) int {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/activity-logs", nil))
		return w.Code
	}

	t.Run("role na lista passa", func(t *testing.T) {
		if code := do(newRouter(&ports.TokenClaims{UserID: "usr-1", Role: "Finance"})); code != http.StatusOK {
			t.Errorf("expected 200, got %d", code)
		}
	})

	t.Run("role fora da lista responde 403", func(t *testing.T) {
		if code := do(newRouter(&ports.TokenClaims{UserID: "usr-1", Role: "User"})); code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", code)
		}
	})

	t.Run("sem identidade responde 401", func(t *testing.T) {
		if code := do(newRouter(nil)); code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", code)
		}
	})
}
