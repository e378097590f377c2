package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mrlokans/mybible/internal/config"
	"github.com/mrlokans/mybible/internal/entrypoint"
)

// openApp builds the services over the database at dbPath, keeping the rest
// of the configuration from the environment.
func openApp(dbPath string) (*entrypoint.App, error) {
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cfg := config.NewConfig()
	cfg.Database.Path = absDBPath
	return entrypoint.NewApp(cfg)
}
