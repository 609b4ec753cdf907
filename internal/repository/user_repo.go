package repository

import (
	"context"
	"strings"
	"time"

	"estatehub/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = normalizeEmail(u.Email)
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// GetByResetToken returns the user holding an unexpired password reset token.
func (r *UserRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("password_reset_token = ? AND password_reset_expires > ?", token, now).
		First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return translate(r.db.WithContext(ctx).Save(u).Error)
}

// SetBlocked flips the block flag and returns the updated user.
func (r *UserRepository) SetBlocked(ctx context.Context, id int64, blocked bool) (*domain.User, error) {
	res := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Update("is_blocked", blocked)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Where("role = ?", role).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("role = ?", role).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) CountBlocked(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("is_blocked = ?", true).Count(&cnt).Error
	return cnt, err
}

// ClearExpiredResetTokens wipes reset tokens whose expiry is before now.
func (r *UserRepository) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("password_reset_token <> '' AND password_reset_expires < ?", now).
		Updates(map[string]any{"password_reset_token": "", "password_reset_expires": nil})
	return res.RowsAffected, res.Error
}
