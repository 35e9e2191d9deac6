package app

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/brightforge/academy-backend/internal/data/store"
	"github.com/brightforge/academy-backend/internal/http"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Store    store.Store
	Services Services
	Server   *http.Server
}

func New() (*App, error) {
	// .env is optional; real environment wins.
	_ = godotenv.Load()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	recordStore, err := wireStore(cfg, log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	if err := recordStore.Init(context.Background()); err != nil {
		log.Sync()
		return nil, fmt.Errorf("init record store: %w", err)
	}

	serviceset := wireServices(log, recordStore)
	handlerset := wireHandlers(log, serviceset)
	server := wireServer(cfg, log, handlerset)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Store:    recordStore,
		Services: serviceset,
		Server:   server,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Log.Warn("Record store close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
