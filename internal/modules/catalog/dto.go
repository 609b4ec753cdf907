package catalog

import (
	"strings"
	"time"

	"estatehub/internal/domain"

	"gorm.io/datatypes"
)

type CreatePropertyRequest struct {
	Title       string         `json:"title" binding:"required,max=200"`
	Description string         `json:"description" binding:"max=5000"`
	Price       float64        `json:"price" binding:"required,gt=0"`
	Address     string         `json:"address" binding:"required,max=300"`
	City        string         `json:"city" binding:"max=100"`
	Country     string         `json:"country" binding:"max=100"`
	Image       string         `json:"image" binding:"omitempty,url"`
	Facilities  datatypes.JSON `json:"facilities"`
}

func (r *CreatePropertyRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Address = strings.TrimSpace(r.Address)
	r.City = strings.TrimSpace(r.City)
	r.Country = strings.TrimSpace(r.Country)
	r.Image = strings.TrimSpace(r.Image)
	if strings.TrimSpace(string(r.Facilities)) == "null" {
		r.Facilities = nil
	}
}

type OwnerSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PropertyResponse struct {
	ID          int64                 `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Price       float64               `json:"price"`
	Address     string                `json:"address"`
	City        string                `json:"city,omitempty"`
	Country     string                `json:"country,omitempty"`
	Image       string                `json:"image,omitempty"`
	Facilities  datatypes.JSON        `json:"facilities,omitempty"`
	Status      domain.PropertyStatus `json:"status"`
	Owner       *OwnerSummary         `json:"owner,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

func ToPropertyResponse(p *domain.Property) PropertyResponse {
	out := PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Address:     p.Address,
		City:        p.City,
		Country:     p.Country,
		Image:       p.Image,
		Facilities:  p.Facilities,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Owner != nil {
		out.Owner = &OwnerSummary{ID: p.Owner.ID, Name: p.Owner.Name, Email: p.Owner.Email}
	}
	return out
}

func ToPropertyResponses(props []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(props))
	for i := range props {
		out = append(out, ToPropertyResponse(&props[i]))
	}
	return out
}

type CreatePropertyResponse struct {
	Message  string           `json:"message"`
	Property PropertyResponse `json:"property"`
}

type SearchResponse struct {
	Count   int                `json:"count"`
	Results []PropertyResponse `json:"results"`
}

type StatusResponse struct {
	UsersCount      int64 `json:"usersCount"`
	PropertiesCount int64 `json:"propertiesCount"`
}
