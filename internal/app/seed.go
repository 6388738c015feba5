package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/service"
	"github.com/netbeans/netbeans-server/internal/infrastructure/db/sqlstore"
	"github.com/netbeans/netbeans-server/internal/pkg/config"
)

func init() { //nolint: gochecknoinits
	seedCmd.AddCommand(seedAdminCmd, seedSuperAdminCmd)
	rootCmd.AddCommand(seedCmd)
}

var (
	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Create bootstrap accounts",
	}

	seedAdminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Create the initial ADMIN from INIT_ADMIN_* (no-op if the email exists)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, domain.RoleAdmin, func(c *config.Config) service.SeedInput {
				return service.SeedInput{
					FullName: c.Seed.AdminName,
					Email:    c.Seed.AdminEmail,
					Password: c.Seed.AdminPassword,
				}
			})
		},
	}

	seedSuperAdminCmd = &cobra.Command{
		Use:   "superadmin",
		Short: "Create the SUPERADMIN from INIT_SUPERADMIN_* (no-op if the email exists)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, domain.RoleSuperAdmin, func(c *config.Config) service.SeedInput {
				return service.SeedInput{
					FullName: c.Seed.SuperAdminName,
					Email:    c.Seed.SuperAdminEmail,
					Password: c.Seed.SuperAdminPassword,
				}
			})
		},
	}
)

func runSeed(cmd *cobra.Command, role domain.Role, input func(*config.Config) service.SeedInput) error {
	ctx := cmd.Context()
	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	db, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = sqlstore.Close(db) }()

	users := service.NewUserService(sqlstore.NewUserRepository(db), nil, log)
	in := input(cfg)
	in.Role = role

	user, created, err := users.Seed(ctx, in)
	if err != nil {
		return fmt.Errorf("seed %s: %w", role, err)
	}
	if created {
		if usesDefaultPassword(role, in.Password) {
			log.Warn().Str("role", string(role)).Str("email", user.Email).
				Msg("seeded account uses the default password, change it before going live")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s created: %s (%s)\n", role, user.Email, user.ID)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists: %s (role %s), nothing to do\n", role, user.Email, user.Role)
	}
	return nil
}

func usesDefaultPassword(role domain.Role, password string) bool {
	switch role {
	case domain.RoleAdmin:
		return password == config.DefaultAdminPassword
	case domain.RoleSuperAdmin:
		return password == config.DefaultSuperAdminPassword
	default:
		return false
	}
}
