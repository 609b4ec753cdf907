package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           int64    `json:"id" gorm:"primaryKey"`
	Name         string   `json:"name" gorm:"size:80;not null"`
	Email        string   `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email"`
	PasswordHash string   `json:"-" gorm:"column:password_hash"`
	GoogleID     string   `json:"-" gorm:"column:google_id;index"`
	Image        string   `json:"image,omitempty"`
	Role         UserRole `json:"role" gorm:"size:16;not null;default:user"`
	IsBlocked    bool     `json:"isBlocked" gorm:"not null;default:false"`

	PasswordResetToken   string     `json:"-" gorm:"column:password_reset_token;index"`
	PasswordResetExpires *time.Time `json:"-" gorm:"column:password_reset_expires"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasLocalPassword is false for accounts created through Google sign-in.
func (u *User) HasLocalPassword() bool {
	return u.PasswordHash != ""
}
