package contact

import (
	"errors"
	"net/http"
	"strings"

	"estatehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts POST /contact/send behind the given limiter.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, limit gin.HandlerFunc) {
	rg.POST("/contact/send", limit, h.Send)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	err := h.service.Send(c.Request.Context(), req)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, SendResponse{Message: "Message sent successfully"})
	case errors.Is(err, ErrValidation):
		msg := strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", msg)
	case errors.Is(err, ErrNotConfigured):
		response.Error(c, http.StatusInternalServerError, "MAIL_NOT_CONFIGURED",
			"Email configuration is missing. Please check SMTP environment variables.")
	default:
		response.Internal(c, err, "Failed to send message")
	}
}
