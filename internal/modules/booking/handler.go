package booking

import (
	"errors"
	"net/http"

	"estatehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the fee table so clients can show it before login.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/fees", h.GetFees)
}

// RegisterRoutes expects rg to carry JWTAuth and ActiveUser.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.POST("/bookings/:id/modify", h.ModifyBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Visit booked successfully",
		"booking": gin.H{
			"id":         b.ID,
			"propertyId": b.PropertyID,
			"date":       b.VisitDate,
			"status":     b.Status,
		},
	})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		h.writeError(c, err, "Failed to cancel booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":            "Booking cancelled successfully",
		"cancellationCharge": res.CancellationCharge,
		"refundMessage":      res.RefundMessage,
	})
}

func (h *Handler) ModifyBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	res, err := h.service.Modify(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to modify booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":            "Booking date modified successfully",
		"modificationCharge": res.ModificationCharge,
		"chargeMessage":      res.ChargeMessage,
		"newDate":            res.NewDate,
	})
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to load bookings")
		return
	}

	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBookingResponse(&bookings[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"bookedVisits": out})
}

func (h *Handler) GetFees(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Fees())
}

func bookingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Unknown and malformed ids look the same to the client.
		response.Error(c, http.StatusBadRequest, "BOOKING_NOT_FOUND", "Booking not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, ErrPropertyNotFound):
		response.Error(c, http.StatusNotFound, "PROPERTY_NOT_FOUND", "Property not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusBadRequest, "BOOKING_NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusBadRequest, "BOOKING_CONFLICT", "This property is already booked")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusBadRequest, "INVALID_BOOKING_STATE", "Can only modify confirmed bookings and cancel active ones")
	case errors.Is(err, ErrConcurrentUpdate):
		response.Error(c, http.StatusConflict, "CONCURRENT_UPDATE", "Booking was changed by another request, please retry")
	default:
		response.Internal(c, err, fallback)
	}
}
