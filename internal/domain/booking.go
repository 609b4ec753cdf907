package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingModified  BookingStatus = "modified"
	BookingCancelled BookingStatus = "cancelled"
)

// bookingTransitions lists the statuses reachable from each status.
// A modified booking can only be cancelled; cancelled is terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingModified, BookingCancelled},
	BookingModified:  {BookingCancelled},
	BookingCancelled: {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// IsActive reports whether the booking still holds the (user, property) slot.
func (s BookingStatus) IsActive() bool {
	return s == BookingConfirmed || s == BookingModified
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// ActiveBookingStatuses is used by queries that look for a live booking.
var ActiveBookingStatuses = []BookingStatus{BookingConfirmed, BookingModified}

// Booking is a scheduled property visit. It is never deleted; cancellation is terminal.
type Booking struct {
	ID         uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     int64         `json:"userId" gorm:"not null;index:idx_booking_user_property"`
	PropertyID int64         `json:"propertyId" gorm:"not null;index:idx_booking_user_property"`
	VisitDate  time.Time     `json:"date" gorm:"not null"`
	Status     BookingStatus `json:"status" gorm:"size:16;not null;index"`
	Version    int           `json:"-" gorm:"not null;default:1"`
	CreatedAt  time.Time     `json:"bookingDate"`
	UpdatedAt  time.Time     `json:"updatedAt"`

	CancellationDate   *time.Time `json:"cancellationDate,omitempty"`
	CancellationCharge *int64     `json:"cancellationCharge,omitempty"`

	ModificationHistory []BookingModification `json:"modificationHistory" gorm:"foreignKey:BookingID;constraint:OnDelete:RESTRICT"`

	User     *User     `json:"-" gorm:"foreignKey:UserID"`
	Property *Property `json:"-" gorm:"foreignKey:PropertyID"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BookingModification is one append-only entry of a booking's date change history.
type BookingModification struct {
	ID           int64     `json:"-" gorm:"primaryKey"`
	BookingID    uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	PreviousDate time.Time `json:"previousDate" gorm:"not null"`
	NewDate      time.Time `json:"newDate" gorm:"not null"`
	ModifiedAt   time.Time `json:"modifiedAt" gorm:"not null"`
	Charge       int64     `json:"charge" gorm:"not null;default:0"`
}

func (BookingModification) TableName() string { return "booking_modifications" }
