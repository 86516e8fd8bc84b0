package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cedarhouse/staffadmin/internal/server"
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the staffing admin HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.DB.RunMigrations(app.Ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			return server.New(app.Cfg, app.DB, app.Logger).Run()
		},
	}
}
