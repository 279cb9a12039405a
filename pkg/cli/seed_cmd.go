package cli

import (
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"vms/internal/auth"
	"vms/internal/db"
	"vms/internal/db/repository"
	"vms/internal/domain"
	"vms/internal/service"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Database seeding helpers",
	}

	cmd.AddCommand(newSeedAdminCmd())
	return cmd
}

func newSeedAdminCmd() *cobra.Command {
	var (
		dbPath   string
		username string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create an admin account",
		Long: "Open the database, run pending migrations, seed the role " +
			"table, and create an ADMIN account with the given credentials. " +
			"Fails if the username or email is already taken.",
		Example: `  vmsctl seed admin --db vms.sqlite --username admin --email admin@example.org --password changeme123`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeDB, readDB, err := db.OpenSQLitePair(dbPath, 1)
			if err != nil {
				return err
			}
			defer func() {
				_ = readDB.Close()
				_ = writeDB.Close()
			}()

			if err := db.RunMigrations(writeDB); err != nil {
				return err
			}

			ctx := cmd.Context()
			roleRepo := repository.NewRoleRepo(writeDB)
			if err := db.SeedRoles(ctx, roleRepo); err != nil {
				return err
			}

			// The token service is unused for seeding but required by the
			// auth service constructor; any valid secret will do.
			tokens, err := auth.NewTokenService("seed-only-secret", time.Hour)
			if err != nil {
				return err
			}
			authSvc := service.NewAuthService(
				repository.NewUserRepo(writeDB),
				roleRepo,
				repository.NewVolunteerRepo(writeDB),
				tokens,
				0,
			)

			user, err := authSvc.Register(ctx, service.RegisterRequest{
				Name:     username,
				Username: username,
				Email:    email,
				Password: password,
				Role:     domain.RoleAdmin,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "vms.sqlite", "Path to the SQLite database file")
	cmd.Flags().StringVar(&username, "username", "", "Admin username")
	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
