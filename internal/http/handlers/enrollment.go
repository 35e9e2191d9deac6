package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightforge/academy-backend/internal/http/response"
	"github.com/brightforge/academy-backend/internal/platform/logger"
	"github.com/brightforge/academy-backend/internal/services"
)

type EnrollmentHandler struct {
	log               *logger.Logger
	enrollmentService services.EnrollmentService
}

func NewEnrollmentHandler(log *logger.Logger, enrollmentService services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		log:               log.With("handler", "EnrollmentHandler"),
		enrollmentService: enrollmentService,
	}
}

type enrollRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	CourseTitle string `json:"courseTitle"`
}

func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "ListEnrollments", err)
		return
	}
	response.RespondOK(c, enrollments)
}

func (h *EnrollmentHandler) CheckEnrollment(c *gin.Context) {
	courseTitle := c.Param("courseTitle")
	email := c.Param("email")
	enrollment, enrolled, err := h.enrollmentService.Check(c.Request.Context(), courseTitle, email)
	if err != nil {
		respondServiceError(c, h.log, "CheckEnrollment", err)
		return
	}
	response.RespondOK(c, gin.H{"enrolled": enrolled, "user": enrollment})
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), req.Email, req.Name, req.CourseTitle)
	if err != nil {
		respondServiceError(c, h.log, "Enroll", err)
		return
	}
	response.RespondCreated(c, gin.H{
		"message":    "Enrollment successful",
		"enrollment": enrollment,
	})
}

func (h *EnrollmentHandler) EnrollmentStats(c *gin.Context) {
	stats, err := h.enrollmentService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "EnrollmentStats", err)
		return
	}
	response.RespondOK(c, stats)
}
