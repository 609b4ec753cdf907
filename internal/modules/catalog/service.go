package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"estatehub/internal/domain"
	"estatehub/internal/repository"
)

const (
	approvedListKey = "catalog:approved"
	propertyKeyPfx  = "catalog:property:"
)

type Service struct {
	properties PropertyRepository
	users      UserCounter
	cache      Cache
	cacheTTL   time.Duration
}

// NewService builds the catalog service. cache may be nil.
func NewService(properties PropertyRepository, users UserCounter, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{properties: properties, users: users, cache: cache, cacheTTL: cacheTTL}
}

func propertyKey(id int64) string {
	return propertyKeyPfx + strconv.FormatInt(id, 10)
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreatePropertyRequest) (*PropertyResponse, error) {
	req.normalize()
	if req.Title == "" || req.Address == "" {
		return nil, fmt.Errorf("%w: title and address are required", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: valid price is required", ErrValidation)
	}

	p := &domain.Property{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Image:       req.Image,
		Facilities:  req.Facilities,
		OwnerID:     ownerID,
		Status:      domain.PropertyPending,
	}
	if err := s.properties.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateAddress
		}
		return nil, fmt.Errorf("create property: %w", err)
	}

	log.Printf("property_created id=%d owner_id=%d status=%s", p.ID, ownerID, p.Status)
	s.Invalidate(ctx, p.ID)

	created, err := s.properties.GetWithOwner(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("reload property: %w", err)
	}
	resp := ToPropertyResponse(created)
	return &resp, nil
}

// ListApproved returns the public catalog, newest first.
func (s *Service) ListApproved(ctx context.Context) ([]PropertyResponse, error) {
	var cached []PropertyResponse
	if s.cacheGet(ctx, approvedListKey, &cached) {
		return cached, nil
	}

	props, err := s.properties.ListByStatus(ctx, domain.PropertyApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved properties: %w", err)
	}
	out := ToPropertyResponses(props)
	s.cacheSet(ctx, approvedListKey, out)
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*PropertyResponse, error) {
	var cached PropertyResponse
	if s.cacheGet(ctx, propertyKey(id), &cached) {
		return &cached, nil
	}

	p, err := s.properties.GetWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	out := ToPropertyResponse(p)
	s.cacheSet(ctx, propertyKey(id), out)
	return &out, nil
}

// Search matches approved listings by title and city substrings. With
// neither term set it returns nothing; callers use ListApproved for that.
func (s *Service) Search(ctx context.Context, title, city string) (*SearchResponse, error) {
	title, city = strings.TrimSpace(title), strings.TrimSpace(city)
	if title == "" && city == "" {
		return &SearchResponse{Count: 0, Results: []PropertyResponse{}}, nil
	}

	props, err := s.properties.Search(ctx, repository.PropertyFilter{
		Title:  title,
		City:   city,
		Status: domain.PropertyApproved,
	})
	if err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}
	results := ToPropertyResponses(props)
	return &SearchResponse{Count: len(results), Results: results}, nil
}

func (s *Service) Status(ctx context.Context) (*StatusResponse, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	props, err := s.properties.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count properties: %w", err)
	}
	return &StatusResponse{UsersCount: users, PropertiesCount: props}, nil
}

// Invalidate drops the cached public list and the cached listing for id.
func (s *Service) Invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, approvedListKey, propertyKey(id)); err != nil {
		log.Printf("catalog_cache_error op=delete property_id=%d err=%v", id, err)
	}
}

func (s *Service) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		log.Printf("catalog_cache_error op=get key=%s err=%v", key, err)
		return false
	}
	return hit
}

func (s *Service) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, v, s.cacheTTL); err != nil {
		log.Printf("catalog_cache_error op=set key=%s err=%v", key, err)
	}
}
