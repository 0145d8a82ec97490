package response

import (
	"github.com/google/uuid"

	"venue-desk/internal/domain/catalog"
)

type CatalogItemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromCatalogItem(it catalog.Item) CatalogItemResponse {
	return CatalogItemResponse{ID: it.ID, Name: it.Name}
}

func FromCatalogItems(items []catalog.Item) []CatalogItemResponse {
	out := make([]CatalogItemResponse, len(items))
	for i, it := range items {
		out[i] = FromCatalogItem(it)
	}
	return out
}
