package domain

import (
	"time"
)

// Favorite links a user to a property they saved. One row per (user, property).
type Favorite struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UserID     int64     `json:"userId" gorm:"not null;index;uniqueIndex:idx_user_property"`
	PropertyID int64     `json:"propertyId" gorm:"not null;index;uniqueIndex:idx_user_property"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}

func (Favorite) TableName() string {
	return "favorites"
}
