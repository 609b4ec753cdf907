package auth

import (
	"context"
	"time"

	"estatehub/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}
