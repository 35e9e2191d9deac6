package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/brightforge/academy-backend/internal/http/handlers"
	httpMW "github.com/brightforge/academy-backend/internal/http/middleware"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler     *httpH.HealthHandler
	EnrollmentHandler *httpH.EnrollmentHandler
	ContactHandler    *httpH.ContactHandler

	CORSAllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSAllowOrigins))

	api := r.Group("/api")
	{
		// Health
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.HealthCheck)
		}

		// Enrollments
		if cfg.EnrollmentHandler != nil {
			api.GET("/enrollments", cfg.EnrollmentHandler.ListEnrollments)
			api.GET("/enrollments/stats", cfg.EnrollmentHandler.EnrollmentStats)
			api.GET("/enrollments/check/:courseTitle/:email", cfg.EnrollmentHandler.CheckEnrollment)
			api.POST("/enrollments", cfg.EnrollmentHandler.Enroll)
		}

		// Contact
		if cfg.ContactHandler != nil {
			api.POST("/contact", cfg.ContactHandler.Submit)
			api.GET("/contact/submissions", cfg.ContactHandler.ListSubmissions)
		}
	}

	return r
}
