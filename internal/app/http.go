package app

import (
	"github.com/brightforge/academy-backend/internal/http"
	httpH "github.com/brightforge/academy-backend/internal/http/handlers"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Enrollment *httpH.EnrollmentHandler
	Contact    *httpH.ContactHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Enrollment: httpH.NewEnrollmentHandler(log, services.Enrollment),
		Contact:    httpH.NewContactHandler(log, services.Contact),
	}
}

func wireServer(cfg Config, log *logger.Logger, handlers Handlers) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:               log,
		HealthHandler:     handlers.Health,
		EnrollmentHandler: handlers.Enrollment,
		ContactHandler:    handlers.Contact,
		CORSAllowOrigins:  cfg.CORSAllowOrigins,
	})
}
