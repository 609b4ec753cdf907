package repository

import (
	"context"
	"strings"

	"estatehub/internal/domain"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// PropertyFilter narrows catalog searches. Title and City are case-insensitive
// substrings; empty fields are ignored.
type PropertyFilter struct {
	Title  string
	City   string
	Status domain.PropertyStatus
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	if p.Status == "" {
		p.Status = domain.PropertyPending
	}
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PropertyRepository) GetWithOwner(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	if err := r.db.WithContext(ctx).Preload("Owner").First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PropertyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ListByStatus returns listings newest first with their owner. An empty
// status lists everything.
func (r *PropertyRepository) ListByStatus(ctx context.Context, status domain.PropertyStatus) ([]domain.Property, error) {
	q := r.db.WithContext(ctx).Preload("Owner").Order("created_at DESC, id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []domain.Property
	err := q.Find(&out).Error
	return out, err
}

func (r *PropertyRepository) Search(ctx context.Context, f PropertyFilter) ([]domain.Property, error) {
	q := r.db.WithContext(ctx).Model(&domain.Property{}).Preload("Owner")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Title); s != "" {
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\'`, containsPattern(s))
	}
	if s := strings.TrimSpace(f.City); s != "" {
		q = q.Where(`LOWER(city) LIKE ? ESCAPE '\'`, containsPattern(s))
	}

	var out []domain.Property
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern that matches s literally anywhere in
// the lowercased column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func (r *PropertyRepository) UpdateStatus(ctx context.Context, id int64, status domain.PropertyStatus) (*domain.Property, error) {
	res := r.db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Property{}).Count(&cnt).Error
	return cnt, err
}

func (r *PropertyRepository) CountByStatus(ctx context.Context, status domain.PropertyStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Property{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}
