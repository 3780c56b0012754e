package postgres

import (
	"context"
	"fmt"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/valueobjects"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/auth"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/config"
)

// baselineRoles são as roles criadas no primeiro boot. "Admin" não entra:
// é sentinela resolvida fora do registro de roles.
var baselineRoles = []entities.Role{
	{
		Name:        "User",
		Description: "Baseline role",
		Permissions: map[string]bool{
			permissions.TicketsViewAll: true,
			permissions.TicketsCreate:  true,
			permissions.TicketsUpdate:  true,
			permissions.SalesCreate:    true,
			permissions.SalesUpdate:    true,
		},
	},
	{
		Name:        "HR",
		Description: "Human Resources",
		Permissions: map[string]bool{
			permissions.AttendanceReport: true,
			permissions.RolesManage:      true,
		},
	},
	{
		Name:        "Operational",
		Description: "Operational team",
		Permissions: map[string]bool{
			permissions.MembersAdd: true,
		},
	},
	{
		Name:        "Agent",
		Description: "Support agent",
		Permissions: map[string]bool{
			permissions.TicketsCreate:  true,
			permissions.TicketsViewAll: true,
			permissions.SalesCreate:    true,
			permissions.SalesUpdate:    true,
		},
	},
	{
		Name:        "Sales",
		Description: "Sales team",
		Permissions: map[string]bool{
			permissions.TicketsCreate:    true,
			permissions.AttendanceRecord: true,
		},
	},
	{
		Name:        "Finance",
		Description: "Finance team",
		Permissions: map[string]bool{
			permissions.TicketsCreate:    true,
			permissions.AttendanceRecord: true,
		},
	},
}

// Seed garante as roles de base e a conta Admin inicial.
// Roles já existentes nunca são sobrescritas: os mapas de permissão
// são editáveis pelo Admin depois do primeiro boot.
func Seed(ctx context.Context, roles repositories.RoleRepository, users repositories.UserRepository, cfg config.SeedConfig, logger ports.Logger) error {
	for i := range baselineRoles {
		role := baselineRoles[i]

		existing, err := roles.FindByName(ctx, role.Name)
		if err != nil {
			return fmt.Errorf("failed to check role %s: %w", role.Name, err)
		}
		if existing != nil {
			continue
		}

		if err := roles.Create(ctx, &role); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Name, err)
		}
		logger.Info("role seeded", "name", role.Name)
	}

	return seedAdmin(ctx, users, cfg, logger)
}

func seedAdmin(ctx context.Context, users repositories.UserRepository, cfg config.SeedConfig, logger ports.Logger) error {
	adminEmail := cfg.AdminEmail
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminName := cfg.AdminName
	if adminName == "" {
		adminName = "Initial Admin"
	}
	adminPassword := cfg.AdminPassword
	if adminPassword == "" {
		adminPassword = "Admin@12345"
	}

	email, err := valueobjects.NewEmail(adminEmail)
	if err != nil {
		return fmt.Errorf("invalid admin email: %w", err)
	}

	existing, err := users.FindByEmail(ctx, email.String())
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &entities.User{
		Email:              email,
		Name:               adminName,
		PasswordHash:       hash,
		Role:               permissions.RoleAdmin,
		MustChangePassword: true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	logger.Warn("initial admin account created, change the password immediately",
		"email", email.String(),
	)
	return nil
}
