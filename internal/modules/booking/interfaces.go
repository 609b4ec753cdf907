package booking

import (
	"context"
	"time"

	"estatehub/internal/domain"

	"github.com/google/uuid"
)

// BookingRepository stores bookings. Create enforces the one active booking
// per (user, property) rule; the Save methods are conditional on the version
// the booking was read with.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetForUser(ctx context.Context, userID int64, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	SaveCancellation(ctx context.Context, b *domain.Booking, at time.Time, charge int64) error
	SaveModification(ctx context.Context, b *domain.Booking, mod domain.BookingModification) error
}

type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// PropertyLookup is the read-only view of the catalog bookings need.
type PropertyLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// EventPublisher receives booking lifecycle events. It must not block.
type EventPublisher interface {
	Broadcast(eventType string, payload any)
}
