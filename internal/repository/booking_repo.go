package repository

import (
	"context"
	"time"

	"estatehub/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func withHistory(db *gorm.DB) *gorm.DB {
	return db.Preload("ModificationHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("booking_modifications.id ASC")
	})
}

// Create inserts a confirmed booking unless the user already holds an active
// one for the same property. The user row is locked for the duration of the
// check so two concurrent requests cannot both pass it.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner domain.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", b.UserID).
			First(&owner).Error
		if err != nil {
			return translate(err)
		}

		var active int64
		err = tx.Model(&domain.Booking{}).
			Where("user_id = ? AND property_id = ? AND status IN ?", b.UserID, b.PropertyID, domain.ActiveBookingStatuses).
			Count(&active).Error
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrActiveBookingExists
		}

		if b.Status == "" {
			b.Status = domain.BookingConfirmed
		}
		b.Version = 1
		return translate(tx.Create(b).Error)
	})
}

// GetForUser loads a booking only if it belongs to userID.
func (r *BookingRepository) GetForUser(ctx context.Context, userID int64, id uuid.UUID) (*domain.Booking, error) {
	var b domain.Booking
	err := withHistory(r.db.WithContext(ctx)).
		Preload("Property").
		Where("id = ? AND user_id = ?", id, userID).
		First(&b).Error
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := withHistory(r.db.WithContext(ctx)).
		Preload("Property").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

// ListAll is the admin view: every booking with its user and property, newest first.
func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := withHistory(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Property").
		Order("created_at DESC, id").
		Find(&out).Error
	return out, err
}

// CountByStatus counts bookings in any of the given statuses.
func (r *BookingRepository) CountByStatus(ctx context.Context, statuses ...domain.BookingStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("status IN ?", statuses).Count(&cnt).Error
	return cnt, err
}

// SaveCancellation persists a cancellation computed from b as it was read.
// It fails with ErrStaleBooking if the row changed since then.
func (r *BookingRepository) SaveCancellation(ctx context.Context, b *domain.Booking, at time.Time, charge int64) error {
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND version = ?", b.ID, b.Version).
		Updates(map[string]any{
			"status":              domain.BookingCancelled,
			"cancellation_date":   at,
			"cancellation_charge": charge,
			"version":             gorm.Expr("version + 1"),
			"updated_at":          at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleBooking
	}

	b.Status = domain.BookingCancelled
	b.CancellationDate = &at
	b.CancellationCharge = &charge
	b.Version++
	b.UpdatedAt = at
	return nil
}

// SaveModification moves the visit date and appends one history entry in a
// single transaction. It fails with ErrStaleBooking if the row changed since
// b was read.
func (r *BookingRepository) SaveModification(ctx context.Context, b *domain.Booking, mod domain.BookingModification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Booking{}).
			Where("id = ? AND version = ?", b.ID, b.Version).
			Updates(map[string]any{
				"visit_date": mod.NewDate,
				"status":     domain.BookingModified,
				"version":    gorm.Expr("version + 1"),
				"updated_at": mod.ModifiedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleBooking
		}

		mod.BookingID = b.ID
		return tx.Create(&mod).Error
	})
	if err != nil {
		return err
	}

	b.VisitDate = mod.NewDate
	b.Status = domain.BookingModified
	b.Version++
	b.UpdatedAt = mod.ModifiedAt
	b.ModificationHistory = append(b.ModificationHistory, mod)
	return nil
}
