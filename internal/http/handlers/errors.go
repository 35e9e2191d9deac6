package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightforge/academy-backend/internal/http/response"
	"github.com/brightforge/academy-backend/internal/platform/apierr"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

// respondServiceError maps an apierr to its status and code; anything else
// is logged with detail and surfaced as a generic 500.
func respondServiceError(c *gin.Context, log *logger.Logger, op string, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		response.RespondError(c, ae.Status, ae.Code, ae)
		return
	}
	log.Error(op+" failed", "error", err)
	response.RespondError(c, http.StatusInternalServerError, "internal_error", errors.New("internal server error"))
}
