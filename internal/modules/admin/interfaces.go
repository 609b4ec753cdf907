package admin

import (
	"context"

	"estatehub/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	SetBlocked(ctx context.Context, id int64, blocked bool) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
	CountBlocked(ctx context.Context) (int64, error)
}

type PropertyRepository interface {
	GetWithOwner(ctx context.Context, id int64) (*domain.Property, error)
	ListByStatus(ctx context.Context, status domain.PropertyStatus) ([]domain.Property, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PropertyStatus) (*domain.Property, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.PropertyStatus) (int64, error)
}

type BookingRepository interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
	CountByStatus(ctx context.Context, statuses ...domain.BookingStatus) (int64, error)
}

// CatalogInvalidator drops cached public listings after a review decision.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context, propertyID int64)
}
