package favorite

import (
	"context"

	"estatehub/internal/domain"
)

type FavoriteRepository interface {
	Toggle(ctx context.Context, userID, propertyID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
}

type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type PropertyRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
