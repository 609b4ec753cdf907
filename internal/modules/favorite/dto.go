package favorite

import "estatehub/internal/domain"

type ToggleResponse struct {
	Message    string `json:"message"`
	PropertyID int64  `json:"propertyId"`
	IsFavorite bool   `json:"isFavorite"`
}

// ListResponse keeps both shapes the web client reads.
type ListResponse struct {
	FavResidencies   []domain.PropertySummary `json:"favResidencies"`
	FavResidenciesID []int64                  `json:"favResidenciesID"`
}

func ToListResponse(favs []domain.Favorite) ListResponse {
	resp := ListResponse{
		FavResidencies:   make([]domain.PropertySummary, 0, len(favs)),
		FavResidenciesID: make([]int64, 0, len(favs)),
	}
	for _, f := range favs {
		resp.FavResidenciesID = append(resp.FavResidenciesID, f.PropertyID)
		if f.Property != nil {
			resp.FavResidencies = append(resp.FavResidencies, f.Property.Summary())
		}
	}
	return resp
}
