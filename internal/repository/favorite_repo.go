package repository

import (
	"context"

	"estatehub/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Toggle adds the property to the user's favorites, or removes it if it is
// already there. It returns true when the property ends up favorited.
// The user row is locked first so concurrent toggles for the same user run
// one after another.
func (r *FavoriteRepository) Toggle(ctx context.Context, userID, propertyID int64) (bool, error) {
	var added bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner domain.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", userID).
			First(&owner).Error
		if err != nil {
			return translate(err)
		}

		res := tx.Where("user_id = ? AND property_id = ?", userID, propertyID).Delete(&domain.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			added = false
			return nil
		}

		fav := &domain.Favorite{UserID: userID, PropertyID: propertyID}
		if err := tx.Create(fav).Error; err != nil {
			return translate(err)
		}
		added = true
		return nil
	})
	return added, err
}

// ListByUser returns favorites oldest first with their property loaded.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var out []domain.Favorite
	err := r.db.WithContext(ctx).
		Preload("Property").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, propertyID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&cnt).Error
	return cnt > 0, err
}
