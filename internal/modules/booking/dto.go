package booking

import (
	"time"

	"estatehub/internal/domain"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID int64     `json:"propertyId" binding:"required,gt=0"`
	Date       DateInput `json:"date"`
}

type ModifyBookingRequest struct {
	NewDate DateInput `json:"newDate"`
}

type CancelResult struct {
	Booking            *domain.Booking
	CancellationCharge int64
	RefundMessage      string
}

type ModifyResult struct {
	Booking            *domain.Booking
	ModificationCharge int64
	ChargeMessage      string
	NewDate            time.Time
}

type BookingResponse struct {
	ID                  uuid.UUID                    `json:"id"`
	PropertyID          int64                        `json:"propertyId"`
	Property            *domain.PropertySummary      `json:"property,omitempty"`
	Date                time.Time                    `json:"date"`
	Status              domain.BookingStatus         `json:"status"`
	BookingDate         time.Time                    `json:"bookingDate"`
	ModificationHistory []domain.BookingModification `json:"modificationHistory"`
	CancellationDate    *time.Time                   `json:"cancellationDate,omitempty"`
	CancellationCharge  *int64                       `json:"cancellationCharge,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                  b.ID,
		PropertyID:          b.PropertyID,
		Date:                b.VisitDate,
		Status:              b.Status,
		BookingDate:         b.CreatedAt,
		ModificationHistory: b.ModificationHistory,
		CancellationDate:    b.CancellationDate,
		CancellationCharge:  b.CancellationCharge,
	}
	if resp.ModificationHistory == nil {
		resp.ModificationHistory = []domain.BookingModification{}
	}
	if b.Property != nil {
		summary := b.Property.Summary()
		resp.Property = &summary
	}
	return resp
}

// BookingEvent is what the admin live feed receives.
type BookingEvent struct {
	BookingID  uuid.UUID            `json:"bookingId"`
	UserID     int64                `json:"userId"`
	PropertyID int64                `json:"propertyId"`
	Status     domain.BookingStatus `json:"status"`
	VisitDate  time.Time            `json:"date"`
	Charge     int64                `json:"charge"`
	At         time.Time            `json:"at"`
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingModified  = "booking.modified"
	EventBookingCancelled = "booking.cancelled"
)
