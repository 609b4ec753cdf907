package admin

import (
	"time"

	"estatehub/internal/domain"
	"estatehub/internal/modules/catalog"
)

type DashboardResponse struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalProperties   int64 `json:"totalProperties"`
	TotalBookings     int64 `json:"totalBookings"`
	CancelledBookings int64 `json:"cancelledBookings"`
	PendingProperties int64 `json:"pendingProperties"`
	BlockedUsers      int64 `json:"blockedUsers"`
}

type UserSummary struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Image     string          `json:"image,omitempty"`
	Role      domain.UserRole `json:"role"`
	IsBlocked bool            `json:"isBlocked"`
	CreatedAt time.Time       `json:"createdAt"`
}

func toUserSummary(u *domain.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      u.Role,
		IsBlocked: u.IsBlocked,
		CreatedAt: u.CreatedAt,
	}
}

type ToggleBlockResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

type SetPropertyStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PropertyStatusResponse struct {
	Message  string                   `json:"message"`
	Property catalog.PropertyResponse `json:"property"`
}

type BookingUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingRow is one booking in the back-office list.
type BookingRow struct {
	ID                 string                  `json:"id"`
	User               *BookingUser            `json:"user"`
	Property           *domain.PropertySummary `json:"property"`
	Date               time.Time               `json:"date"`
	Status             domain.BookingStatus    `json:"status"`
	BookingDate        time.Time               `json:"bookingDate"`
	CancellationCharge *int64                  `json:"cancellationCharge,omitempty"`
	Modifications      int                     `json:"modifications"`
}

func toBookingRow(b *domain.Booking) BookingRow {
	row := BookingRow{
		ID:                 b.ID.String(),
		Date:               b.VisitDate,
		Status:             b.Status,
		BookingDate:        b.CreatedAt,
		CancellationCharge: b.CancellationCharge,
		Modifications:      len(b.ModificationHistory),
	}
	if b.User != nil {
		row.User = &BookingUser{ID: b.User.ID, Name: b.User.Name, Email: b.User.Email}
	}
	if b.Property != nil {
		summary := b.Property.Summary()
		row.Property = &summary
	}
	return row
}
