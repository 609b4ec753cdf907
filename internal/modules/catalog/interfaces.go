package catalog

import (
	"context"
	"time"

	"estatehub/internal/domain"
	"estatehub/internal/repository"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetWithOwner(ctx context.Context, id int64) (*domain.Property, error)
	ListByStatus(ctx context.Context, status domain.PropertyStatus) ([]domain.Property, error)
	Search(ctx context.Context, f repository.PropertyFilter) ([]domain.Property, error)
	Count(ctx context.Context) (int64, error)
}

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Cache is the read-through store for public listings. A miss is (false, nil).
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
