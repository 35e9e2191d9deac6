package app

import (
	"fmt"

	"github.com/brightforge/academy-backend/internal/data/store"
	"github.com/brightforge/academy-backend/internal/db"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

func wireStore(cfg Config, log *logger.Logger) (store.Store, error) {
	log.Info("Wiring record store...", "backend", cfg.StoreBackend)
	switch cfg.StoreBackend {
	case "file":
		return store.NewFileStore(cfg.DataDir, log), nil
	case "sqlite", "sql":
		dbService, err := db.NewDatabaseService(log)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		if err := dbService.AutoMigrateAll(); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		return store.NewSQLStore(dbService.DB(), log), nil
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.StoreBackend)
	}
}
