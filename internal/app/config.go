package app

import (
	"strings"

	"github.com/brightforge/academy-backend/internal/platform/envutil"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

type Config struct {
	Port string

	// StoreBackend selects the record store: "sqlite" (relational, default)
	// or "file" (JSON documents under DataDir).
	StoreBackend string
	DataDir      string

	CORSAllowOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	port := envutil.GetEnv("PORT", "8080", log)
	backend := strings.ToLower(envutil.GetEnv("STORE_BACKEND", "sqlite", log))
	dataDir := envutil.GetEnv("DATA_DIR", "data", log)

	var origins []string
	if raw := envutil.GetEnv("CORS_ALLOW_ORIGINS", "", log); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Config{
		Port:             port,
		StoreBackend:     backend,
		DataDir:          dataDir,
		CORSAllowOrigins: origins,
	}
}
