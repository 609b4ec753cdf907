package favorite

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.GetFavorites)
		favorites.POST("/:propertyId/toggle", h.ToggleFavorite)
	}
}

func (h *Handler) ToggleFavorite(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("propertyId"), 10, 64)
	if err != nil || propertyID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	added, err := h.service.Toggle(c.Request.Context(), c.GetInt64("user_id"), propertyID)
	if err != nil {
		h.writeError(c, err, "Failed to update favorites")
		return
	}

	msg := "Removed from fav"
	if added {
		msg = "Added to fav"
	}
	response.Success(c, http.StatusOK, ToggleResponse{Message: msg, PropertyID: propertyID, IsFavorite: added})
}

func (h *Handler) GetFavorites(c *gin.Context) {
	favs, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to get favorites")
		return
	}
	response.Success(c, http.StatusOK, ToListResponse(favs))
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, ErrPropertyNotFound):
		response.Error(c, http.StatusNotFound, "PROPERTY_NOT_FOUND", "Property not found")
	default:
		response.Internal(c, err, fallback)
	}
}
