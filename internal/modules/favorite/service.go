package favorite

import (
	"context"
	"fmt"

	"estatehub/internal/domain"
)

type Service struct {
	favorites  FavoriteRepository
	users      UserRepository
	properties PropertyRepository
}

func NewService(favorites FavoriteRepository, users UserRepository, properties PropertyRepository) *Service {
	return &Service{favorites: favorites, users: users, properties: properties}
}

// Toggle flips membership and reports whether the property is now a favorite.
func (s *Service) Toggle(ctx context.Context, userID, propertyID int64) (bool, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return false, ErrUserNotFound
	}

	ok, err = s.properties.Exists(ctx, propertyID)
	if err != nil {
		return false, fmt.Errorf("check property: %w", err)
	}
	if !ok {
		return false, ErrPropertyNotFound
	}

	added, err := s.favorites.Toggle(ctx, userID, propertyID)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return added, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.favorites.ListByUser(ctx, userID)
}
