package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"estatehub/internal/domain"
	"estatehub/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetForUser(ctx context.Context, userID int64, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SaveCancellation(ctx context.Context, b *domain.Booking, at time.Time, charge int64) error {
	args := m.Called(ctx, b, at, charge)
	if args.Error(0) == nil {
		b.Status = domain.BookingCancelled
		b.CancellationDate = &at
		b.CancellationCharge = &charge
	}
	return args.Error(0)
}

func (m *MockBookingRepository) SaveModification(ctx context.Context, b *domain.Booking, mod domain.BookingModification) error {
	args := m.Called(ctx, b, mod)
	if args.Error(0) == nil {
		b.VisitDate = mod.NewDate
		b.Status = domain.BookingModified
		b.ModificationHistory = append(b.ModificationHistory, mod)
	}
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPropertyLookup struct {
	mock.Mock
}

func (m *MockPropertyLookup) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

type recordedEvent struct {
	eventType string
	payload   any
}

type fakePublisher struct {
	events []recordedEvent
}

func (p *fakePublisher) Broadcast(eventType string, payload any) {
	p.events = append(p.events, recordedEvent{eventType, payload})
}

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	svc        *Service
	bookings   *MockBookingRepository
	users      *MockUserRepository
	properties *MockPropertyLookup
	events     *fakePublisher
}

func newFixture() *fixture {
	f := &fixture{
		bookings:   new(MockBookingRepository),
		users:      new(MockUserRepository),
		properties: new(MockPropertyLookup),
		events:     &fakePublisher{},
	}
	f.svc = NewService(f.bookings, f.users, f.properties, f.events, time.UTC)
	f.svc.now = func() time.Time { return testNow }
	return f
}

func bookingIn(days int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         uuid.New(),
		UserID:     1,
		PropertyID: 10,
		VisitDate:  testNow.AddDate(0, 0, days),
		Status:     status,
		Version:    1,
	}
}

func TestCreate_Success(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	property := &domain.Property{ID: 10, Title: "Modern Family House"}

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.properties.On("GetByID", ctx, int64(10)).Return(property, nil)
	f.bookings.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == 1 && b.PropertyID == 10 && b.Status == domain.BookingConfirmed
	})).Return(nil)

	b, err := f.svc.Create(ctx, 1, CreateBookingRequest{PropertyID: 10, Date: TextDate("20/06/2026")})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC), b.VisitDate)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Empty(t, b.ModificationHistory)
	assert.Nil(t, b.CancellationDate)
	assert.Same(t, property, b.Property)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, EventBookingCreated, f.events.events[0].eventType)
	f.bookings.AssertExpectations(t)
}

func TestCreate_ConflictWhenActiveBookingExists(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.properties.On("GetByID", ctx, int64(10)).Return(&domain.Property{ID: 10}, nil)
	f.bookings.On("Create", ctx, mock.Anything).Return(repository.ErrActiveBookingExists)

	_, err := f.svc.Create(ctx, 1, CreateBookingRequest{PropertyID: 10, Date: TextDate("2026-06-20")})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, f.events.events)
}

func TestCreate_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.users.On("Exists", ctx, int64(1)).Return(false, nil)
	_, err := f.svc.Create(ctx, 1, CreateBookingRequest{PropertyID: 10, Date: TextDate("2026-06-20")})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	f = newFixture()
	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.properties.On("GetByID", ctx, int64(99)).Return(nil, repository.ErrNotFound)
	_, err = f.svc.Create(ctx, 1, CreateBookingRequest{PropertyID: 99, Date: TextDate("2026-06-20")})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_ValidationHappensBeforeLookups(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, req := range []CreateBookingRequest{
		{PropertyID: 10},
		{PropertyID: 10, Date: TextDate("not a date")},
		{PropertyID: 10, Date: TextDate("31/05/2026")},
		{PropertyID: 0, Date: TextDate("2026-06-20")},
	} {
		_, err := f.svc.Create(ctx, 1, req)
		assert.ErrorIs(t, err, ErrValidation)
	}
	f.users.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestCreate_SameDayVisitAllowed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.properties.On("GetByID", ctx, int64(10)).Return(&domain.Property{ID: 10}, nil)
	f.bookings.On("Create", ctx, mock.Anything).Return(nil)

	_, err := f.svc.Create(ctx, 1, CreateBookingRequest{PropertyID: 10, Date: TextDate("01/06/2026")})
	assert.NoError(t, err)
}

func TestCancel_ChargesByTier(t *testing.T) {
	cases := []struct {
		days   int
		charge int64
		msg    string
	}{
		{20, 0, "Free cancellation - no charges applied."},
		{10, 25, "A cancellation fee of $25 will be charged."},
		{3, 50, "A cancellation fee of $50 will be charged."},
	}

	for _, tc := range cases {
		f := newFixture()
		ctx := context.Background()
		b := bookingIn(tc.days, domain.BookingConfirmed)

		f.users.On("Exists", ctx, int64(1)).Return(true, nil)
		f.bookings.On("GetForUser", ctx, int64(1), b.ID).Return(b, nil)
		f.bookings.On("SaveCancellation", ctx, b, testNow, tc.charge).Return(nil)

		res, err := f.svc.Cancel(ctx, 1, b.ID)
		require.NoError(t, err, "days=%d", tc.days)
		assert.Equal(t, tc.charge, res.CancellationCharge)
		assert.Equal(t, tc.msg, res.RefundMessage)
		assert.Equal(t, domain.BookingCancelled, res.Booking.Status)
		require.NotNil(t, res.Booking.CancellationDate)
		assert.Equal(t, testNow, *res.Booking.CancellationDate)
		f.bookings.AssertExpectations(t)
	}
}

func TestCancel_ModifiedBookingCanBeCancelled(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := bookingIn(30, domain.BookingModified)

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.bookings.On("GetForUser", ctx, int64(1), b.ID).Return(b, nil)
	f.bookings.On("SaveCancellation", ctx, b, testNow, int64(0)).Return(nil)

	res, err := f.svc.Cancel(ctx, 1, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.CancellationCharge)
}

func TestCancel_RejectsAlreadyCancelled(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := bookingIn(3, domain.BookingCancelled)

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.bookings.On("GetForUser", ctx, int64(1), b.ID).Return(b, nil)

	_, err := f.svc.Cancel(ctx, 1, b.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
	f.bookings.AssertNotCalled(t, "SaveCancellation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_BookingNotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := uuid.New()

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.bookings.On("GetForUser", ctx, int64(1), id).Return(nil, repository.ErrNotFound)

	_, err := f.svc.Cancel(ctx, 1, id)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_RetriesStaleWriteAndSeesNewState(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	first := bookingIn(10, domain.BookingConfirmed)
	reread := *first
	reread.Status = domain.BookingCancelled

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.bookings.On("GetForUser", ctx, int64(1), first.ID).Return(first, nil).Once()
	f.bookings.On("GetForUser", ctx, int64(1), first.ID).Return(&reread, nil).Once()
	f.bookings.On("SaveCancellation", ctx, first, testNow, int64(25)).Return(repository.ErrStaleBooking).Once()

	_, err := f.svc.Cancel(ctx, 1, first.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
	f.bookings.AssertExpectations(t)
}

func TestCancel_GivesUpAfterRepeatedStaleWrites(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := bookingIn(10, domain.BookingConfirmed)

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.bookings.On("GetForUser", ctx, int64(1), b.ID).Return(b, nil)
	f.bookings.On("SaveCancellation", ctx, b, testNow, int64(25)).Return(repository.ErrStaleBooking)

	_, err := f.svc.Cancel(ctx, 1, b.ID)
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	f.bookings.AssertNumberOfCalls(t, "SaveCancellation", maxWriteAttempts)
}

func TestModify_AppendsHistoryWithPreviousDate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := bookingIn(10, domain.BookingConfirmed)
	previous := b.VisitDate
	newDate := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.bookings.On("GetForUser", ctx, int64(1), b.ID).Return(b, nil)
	f.bookings.On("SaveModification", ctx, b, domain.BookingModification{
		PreviousDate: previous,
		NewDate:      newDate,
		ModifiedAt:   testNow,
		Charge:       15,
	}).Return(nil)

	res, err := f.svc.Modify(ctx, 1, b.ID, ModifyBookingRequest{NewDate: TextDate("01/07/2026")})
	require.NoError(t, err)

	assert.Equal(t, int64(15), res.ModificationCharge)
	assert.Equal(t, "A modification fee of $15 will be charged.", res.ChargeMessage)
	assert.Equal(t, newDate, res.NewDate)
	assert.Equal(t, domain.BookingModified, b.Status)
	assert.Equal(t, newDate, b.VisitDate)
	require.Len(t, b.ModificationHistory, 1)
	assert.Equal(t, previous, b.ModificationHistory[0].PreviousDate)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, EventBookingModified, f.events.events[0].eventType)
}

func TestModify_FeeUsesCurrentVisitDate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := bookingIn(3, domain.BookingConfirmed)

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.bookings.On("GetForUser", ctx, int64(1), b.ID).Return(b, nil)
	f.bookings.On("SaveModification", ctx, b, mock.MatchedBy(func(m domain.BookingModification) bool {
		return m.Charge == 30
	})).Return(nil)

	// moving the visit far out does not make the change free
	res, err := f.svc.Modify(ctx, 1, b.ID, ModifyBookingRequest{NewDate: TextDate("2026-12-01")})
	require.NoError(t, err)
	assert.Equal(t, int64(30), res.ModificationCharge)
}

func TestModify_RejectsNonConfirmed(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.BookingModified, domain.BookingCancelled} {
		f := newFixture()
		ctx := context.Background()
		b := bookingIn(20, status)

		f.users.On("Exists", ctx, int64(1)).Return(true, nil)
		f.bookings.On("GetForUser", ctx, int64(1), b.ID).Return(b, nil)

		_, err := f.svc.Modify(ctx, 1, b.ID, ModifyBookingRequest{NewDate: TextDate("2026-07-01")})
		assert.ErrorIs(t, err, ErrInvalidState, "status=%s", status)
		assert.Empty(t, b.ModificationHistory)
		f.bookings.AssertNotCalled(t, "SaveModification", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestModify_StorageFailureIsWrapped(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := bookingIn(20, domain.BookingConfirmed)
	boom := errors.New("disk full")

	f.users.On("Exists", ctx, int64(1)).Return(true, nil)
	f.bookings.On("GetForUser", ctx, int64(1), b.ID).Return(b, nil)
	f.bookings.On("SaveModification", ctx, b, mock.Anything).Return(boom)

	_, err := f.svc.Modify(ctx, 1, b.ID, ModifyBookingRequest{NewDate: TextDate("2026-07-01")})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Empty(t, f.events.events)
}

func TestList_UserNotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.users.On("Exists", ctx, int64(7)).Return(false, nil)
	_, err := f.svc.List(ctx, 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
