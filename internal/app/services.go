package app

import (
	"github.com/brightforge/academy-backend/internal/data/store"
	"github.com/brightforge/academy-backend/internal/platform/logger"
	"github.com/brightforge/academy-backend/internal/services"
)

type Services struct {
	Enrollment services.EnrollmentService
	Contact    services.ContactService
}

func wireServices(log *logger.Logger, recordStore store.Store) Services {
	log.Info("Wiring services...")
	return Services{
		Enrollment: services.NewEnrollmentService(log, recordStore),
		Contact:    services.NewContactService(log, recordStore),
	}
}
