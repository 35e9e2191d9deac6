package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightforge/academy-backend/internal/http/response"
	"github.com/brightforge/academy-backend/internal/platform/logger"
	"github.com/brightforge/academy-backend/internal/services"
)

type ContactHandler struct {
	log            *logger.Logger
	contactService services.ContactService
}

func NewContactHandler(log *logger.Logger, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:            log.With("handler", "ContactHandler"),
		contactService: contactService,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	submission, err := h.contactService.Submit(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		respondServiceError(c, h.log, "Submit", err)
		return
	}
	response.RespondCreated(c, gin.H{
		"success": true,
		"message": "Contact submission received",
		"id":      submission.ID,
	})
}

func (h *ContactHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.contactService.ListSubmissions(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "ListSubmissions", err)
		return
	}
	response.RespondOK(c, submissions)
}
