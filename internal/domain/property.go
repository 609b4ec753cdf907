package domain

import (
	"time"

	"gorm.io/datatypes"
)

type PropertyStatus string

const (
	PropertyPending  PropertyStatus = "pending"
	PropertyApproved PropertyStatus = "approved"
	PropertyRejected PropertyStatus = "rejected"
)

func (s PropertyStatus) IsReviewOutcome() bool {
	return s == PropertyApproved || s == PropertyRejected
}

// Property is a listing in the public catalog. Address is unique per owner.
type Property struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Price       float64        `json:"price"`
	Address     string         `json:"address" gorm:"not null;uniqueIndex:idx_property_owner_address"`
	City        string         `json:"city,omitempty" gorm:"index"`
	Country     string         `json:"country,omitempty"`
	Image       string         `json:"image,omitempty"`
	Facilities  datatypes.JSON `json:"facilities,omitempty"`
	OwnerID     int64          `json:"ownerId" gorm:"not null;uniqueIndex:idx_property_owner_address"`
	Status      PropertyStatus `json:"status" gorm:"size:16;not null;default:pending;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Property) TableName() string { return "properties" }

// PropertySummary holds the display fields attached to bookings and favorites.
type PropertySummary struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Address string  `json:"address"`
	City    string  `json:"city,omitempty"`
	Country string  `json:"country,omitempty"`
	Price   float64 `json:"price"`
	Image   string  `json:"image,omitempty"`
}

func (p *Property) Summary() PropertySummary {
	return PropertySummary{
		ID:      p.ID,
		Title:   p.Title,
		Address: p.Address,
		City:    p.City,
		Country: p.Country,
		Price:   p.Price,
		Image:   p.Image,
	}
}
