package admin

import (
	"context"
	"errors"
	"fmt"
	"log"

	"estatehub/internal/domain"
	"estatehub/internal/modules/catalog"
	"estatehub/internal/repository"
)

type Service struct {
	users      UserRepository
	properties PropertyRepository
	bookings   BookingRepository
	catalog    CatalogInvalidator
}

func NewService(users UserRepository, properties PropertyRepository, bookings BookingRepository, catalog CatalogInvalidator) *Service {
	return &Service{users: users, properties: properties, bookings: bookings, catalog: catalog}
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var (
		out DashboardResponse
		err error
	)
	if out.TotalUsers, err = s.users.CountByRole(ctx, domain.RoleUser); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if out.BlockedUsers, err = s.users.CountBlocked(ctx); err != nil {
		return nil, fmt.Errorf("count blocked users: %w", err)
	}
	if out.TotalProperties, err = s.properties.Count(ctx); err != nil {
		return nil, fmt.Errorf("count properties: %w", err)
	}
	if out.PendingProperties, err = s.properties.CountByStatus(ctx, domain.PropertyPending); err != nil {
		return nil, fmt.Errorf("count pending properties: %w", err)
	}
	if out.TotalBookings, err = s.bookings.CountByStatus(ctx, domain.ActiveBookingStatuses...); err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}
	if out.CancelledBookings, err = s.bookings.CountByStatus(ctx, domain.BookingCancelled); err != nil {
		return nil, fmt.Errorf("count cancelled bookings: %w", err)
	}
	return &out, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, err := s.users.ListByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, toUserSummary(&users[i]))
	}
	return out, nil
}

// ToggleBlock flips the blocked flag of a regular user.
func (s *Service) ToggleBlock(ctx context.Context, actorID, userID int64) (*ToggleBlockResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.IsAdmin() {
		return nil, ErrCannotBlockAdmin
	}

	updated, err := s.users.SetBlocked(ctx, userID, !u.IsBlocked)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("set blocked: %w", err)
	}

	log.Printf("admin action: ToggleBlock actor_id=%d user_id=%d blocked=%t", actorID, userID, updated.IsBlocked)

	msg := "User unblocked successfully"
	if updated.IsBlocked {
		msg = "User blocked successfully"
	}
	return &ToggleBlockResponse{Message: msg, User: toUserSummary(updated)}, nil
}

func (s *Service) ListProperties(ctx context.Context) ([]catalog.PropertyResponse, error) {
	props, err := s.properties.ListByStatus(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return catalog.ToPropertyResponses(props), nil
}

// SetPropertyStatus records a review decision. Only approved and rejected
// are accepted; a listing can be moved between them freely.
func (s *Service) SetPropertyStatus(ctx context.Context, actorID, propertyID int64, status string) (*PropertyStatusResponse, error) {
	target := domain.PropertyStatus(status)
	if !target.IsReviewOutcome() {
		return nil, ErrInvalidStatus
	}

	if _, err := s.properties.UpdateStatus(ctx, propertyID, target); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("update property status: %w", err)
	}
	if s.catalog != nil {
		s.catalog.Invalidate(ctx, propertyID)
	}

	p, err := s.properties.GetWithOwner(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("reload property: %w", err)
	}

	log.Printf("admin action: SetPropertyStatus actor_id=%d property_id=%d status=%s", actorID, propertyID, target)

	return &PropertyStatusResponse{
		Message:  fmt.Sprintf("Property %s successfully", target),
		Property: catalog.ToPropertyResponse(p),
	}, nil
}

// ListBookings returns every booking across users, newest booking date first.
func (s *Service) ListBookings(ctx context.Context) ([]BookingRow, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	out := make([]BookingRow, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingRow(&bookings[i]))
	}
	return out, nil
}
