package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cedarhouse/staffadmin/internal/config"
	"github.com/cedarhouse/staffadmin/pkg/clients/sheetsclient"
	"github.com/cedarhouse/staffadmin/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	DB     *postgres.DB
	Logger *zap.Logger
	Ctx    context.Context

	sheets *sheetsclient.Client
}

// Sheets returns the Google Sheets client, creating it on first use.
// Creation may trigger the interactive OAuth flow, so only commands that
// actually publish to Sheets should call this.
func (a *AppContext) Sheets() (*sheetsclient.Client, error) {
	if a.sheets != nil {
		return a.sheets, nil
	}

	oauthCfg, err := config.LoadOAuthClient()
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	client, err := sheetsclient.NewClient(a.Ctx, oauthCfg, a.Cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	a.sheets = client
	return a.sheets, nil
}
