package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"estatehub/internal/domain"
	"estatehub/internal/repository"

	"github.com/google/uuid"
)

// maxWriteAttempts bounds re-reads after a stale write.
const maxWriteAttempts = 3

type Service struct {
	bookings   BookingRepository
	users      UserRepository
	properties PropertyLookup
	events     EventPublisher

	fees FeeSchedule
	loc  *time.Location
	now  func() time.Time
}

// NewService wires the booking manager. events may be nil.
func NewService(
	bookings BookingRepository,
	users UserRepository,
	properties PropertyLookup,
	events EventPublisher,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		bookings:   bookings,
		users:      users,
		properties: properties,
		events:     events,
		fees:       DefaultFeeSchedule,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *Service) Fees() FeeSchedule {
	return s.fees
}

func (s *Service) ensureUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

func (s *Service) parseFutureDate(in DateInput) (time.Time, error) {
	t, err := ParseVisitDate(in, s.loc)
	if err != nil {
		return time.Time{}, err
	}
	if isBeforeToday(t, s.now(), s.loc) {
		return time.Time{}, fmt.Errorf("%w: visit date %s is in the past", ErrValidation, in)
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if req.PropertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyId is required", ErrValidation)
	}
	visit, err := s.parseFutureDate(req.Date)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	property, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("load property: %w", err)
	}

	b := &domain.Booking{
		UserID:     userID,
		PropertyID: property.ID,
		VisitDate:  visit,
		Status:     domain.BookingConfirmed,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		switch {
		case errors.Is(err, repository.ErrActiveBookingExists):
			return nil, ErrConflict
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	b.Property = property

	log.Printf("booking_created booking_id=%s user_id=%d property_id=%d visit=%s", b.ID, userID, b.PropertyID, b.VisitDate.Format(time.RFC3339))
	s.publish(EventBookingCreated, b, 0)
	return b, nil
}

func (s *Service) loadBooking(ctx context.Context, userID int64, id uuid.UUID) (*domain.Booking, error) {
	b, err := s.bookings.GetForUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("load booking: %w", err)
	}
	return b, nil
}

// Cancel moves a confirmed or modified booking to cancelled and charges the
// tier fee for how close the visit is. A cancelled booking cannot be cancelled again.
func (s *Service) Cancel(ctx context.Context, userID int64, bookingID uuid.UUID) (*CancelResult, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		b, err := s.loadBooking(ctx, userID, bookingID)
		if err != nil {
			return nil, err
		}
		if !b.Status.CanTransitionTo(domain.BookingCancelled) {
			return nil, ErrInvalidState
		}

		now := s.now().UTC()
		charge := s.fees.CancellationFee(DaysUntilVisit(b.VisitDate, now))

		err = s.bookings.SaveCancellation(ctx, b, now, charge)
		if errors.Is(err, repository.ErrStaleBooking) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cancel booking: %w", err)
		}

		log.Printf("booking_cancelled booking_id=%s user_id=%d charge=%d", b.ID, userID, charge)
		s.publish(EventBookingCancelled, b, charge)
		return &CancelResult{
			Booking:            b,
			CancellationCharge: charge,
			RefundMessage:      CancellationMessage(charge),
		}, nil
	}

	return nil, ErrConcurrentUpdate
}

// Modify moves the visit date of a confirmed booking. The fee is based on the
// date being replaced, not the new one.
func (s *Service) Modify(ctx context.Context, userID int64, bookingID uuid.UUID, req ModifyBookingRequest) (*ModifyResult, error) {
	newDate, err := s.parseFutureDate(req.NewDate)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		b, err := s.loadBooking(ctx, userID, bookingID)
		if err != nil {
			return nil, err
		}
		if !b.Status.CanTransitionTo(domain.BookingModified) {
			return nil, ErrInvalidState
		}

		now := s.now().UTC()
		charge := s.fees.ModificationFee(DaysUntilVisit(b.VisitDate, now))
		mod := domain.BookingModification{
			PreviousDate: b.VisitDate,
			NewDate:      newDate,
			ModifiedAt:   now,
			Charge:       charge,
		}

		err = s.bookings.SaveModification(ctx, b, mod)
		if errors.Is(err, repository.ErrStaleBooking) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("modify booking: %w", err)
		}

		log.Printf("booking_modified booking_id=%s user_id=%d charge=%d new_date=%s", b.ID, userID, charge, newDate.Format(time.RFC3339))
		s.publish(EventBookingModified, b, charge)
		return &ModifyResult{
			Booking:            b,
			ModificationCharge: charge,
			ChargeMessage:      ModificationMessage(charge),
			NewDate:            newDate,
		}, nil
	}

	return nil, ErrConcurrentUpdate
}

// List returns every booking of the user, cancelled ones included, oldest first.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Booking, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	out, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (s *Service) publish(eventType string, b *domain.Booking, charge int64) {
	if s.events == nil {
		return
	}
	s.events.Broadcast(eventType, BookingEvent{
		BookingID:  b.ID,
		UserID:     b.UserID,
		PropertyID: b.PropertyID,
		Status:     b.Status,
		VisitDate:  b.VisitDate,
		Charge:     charge,
		At:         s.now().UTC(),
	})
}
