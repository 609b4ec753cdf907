package admin

import (
	"errors"
	"net/http"
	"strconv"

	"estatehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already guarded by JWTAuth, ActiveUser and AdminOnly.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/dashboard", h.GetDashboard)

	admin.GET("/users", h.GetUsers)
	admin.PUT("/users/:id/block", h.ToggleBlockUser)

	admin.GET("/properties", h.GetProperties)
	admin.PUT("/properties/:id/approve", h.SetPropertyStatus)

	admin.GET("/bookings", h.GetBookings)
}

func (h *Handler) GetDashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to load dashboard")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to get users")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) ToggleBlockUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	res, err := h.service.ToggleBlock(c.Request.Context(), c.GetInt64("user_id"), userID)
	if err != nil {
		h.writeError(c, err, "Failed to update user")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetProperties(c *gin.Context) {
	props, err := h.service.ListProperties(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to get properties")
		return
	}
	response.Success(c, http.StatusOK, props)
}

func (h *Handler) SetPropertyStatus(c *gin.Context) {
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req SetPropertyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	res, err := h.service.SetPropertyStatus(c.Request.Context(), c.GetInt64("user_id"), propertyID, req.Status)
	if err != nil {
		h.writeError(c, err, "Failed to update property")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetBookings(c *gin.Context) {
	rows, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to get bookings")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, ErrPropertyNotFound):
		response.Error(c, http.StatusNotFound, "PROPERTY_NOT_FOUND", "Property not found")
	case errors.Is(err, ErrCannotBlockAdmin):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot block admin users")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", err.Error())
	default:
		response.Internal(c, err, fallback)
	}
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err == nil && id <= 0 {
		err = strconv.ErrRange
	}
	return id, err
}
