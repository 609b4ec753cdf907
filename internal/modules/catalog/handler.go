package catalog

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	properties := rg.Group("/properties")
	{
		properties.GET("", h.ListProperties)
		properties.GET("/search", h.SearchProperties)
		properties.GET("/status", h.GetStatus)
		properties.GET("/:id", h.GetProperty)
	}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/properties", h.CreateProperty)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create property")
		return
	}
	response.Success(c, http.StatusCreated, CreatePropertyResponse{Message: "Property created successfully", Property: *p})
}

func (h *Handler) ListProperties(c *gin.Context) {
	props, err := h.service.ListApproved(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to get properties")
		return
	}
	response.Success(c, http.StatusOK, props)
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to get property")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// SearchProperties handles GET /properties/search?title=house&city=york
func (h *Handler) SearchProperties(c *gin.Context) {
	res, err := h.service.Search(c.Request.Context(), c.Query("title"), c.Query("city"))
	if err != nil {
		h.writeError(c, err, "Search failed")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetStatus(c *gin.Context) {
	st, err := h.service.Status(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to get status")
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrDuplicateAddress):
		response.Error(c, http.StatusBadRequest, "DUPLICATE_ADDRESS", "A property with this address already exists")
	case errors.Is(err, ErrPropertyNotFound):
		response.Error(c, http.StatusNotFound, "PROPERTY_NOT_FOUND", "Property not found")
	default:
		response.Internal(c, err, fallback)
	}
}
