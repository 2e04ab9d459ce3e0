package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/peyvand/peyvand_backend/config"
	"github.com/peyvand/peyvand_backend/internal/repo"
	entpolicy "github.com/peyvand/peyvand_backend/internal/repo/distributionpolicy"
	"github.com/peyvand/peyvand_backend/pkg/database"
)

func NewMigrateCommand() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			fmt.Println("Running Migrations For Main DB.")
			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			if err := database.MigrateEnt(ctx, client); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			if seed {
				fmt.Println("Seeding default distribution policy.")
				if err := seedDefaultPolicy(ctx, client); err != nil {
					return fmt.Errorf("failed to seed default policy: %w", err)
				}
			}

			fmt.Println("Migrations executed successfully.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Create a default distribution policy if none exists")

	return cmd
}

// seedDefaultPolicy installs a percentage policy with the doctor share
// auto-balanced, so a fresh deployment can serve previews immediately.
func seedDefaultPolicy(ctx context.Context, client *repo.Client) error {
	exists, err := client.DistributionPolicy.Query().
		Where(entpolicy.IsDefault(true)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin, therapist := 10.0, 60.0
	return client.DistributionPolicy.Create().
		SetName("standard").
		SetMode(entpolicy.ModePercentage).
		SetAdminShare(admin).
		SetTherapistShare(therapist).
		SetAutoBalanceRole(entpolicy.AutoBalanceRoleDoctor).
		SetIsDefault(true).
		Exec(ctx)
}
