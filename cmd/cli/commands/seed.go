package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cedarhouse/staffadmin/pkg/core/services"
)

// SeedCmd creates the seed command
func SeedCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load default age groups, plans, staff, pricing and expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.DB.RunMigrations(app.Ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			if err := services.Seed(app.Ctx, app.DB, app.Logger); err != nil {
				return err
			}

			fmt.Println("\n✓ Seed data loaded!")
			return nil
		},
	}
}
