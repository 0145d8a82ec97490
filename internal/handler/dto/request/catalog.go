package request

// AddCatalogItemRequest adds a placeholder-named item when Name is empty.
type AddCatalogItemRequest struct {
	Name string `json:"name"`
}

type RenameCatalogItemRequest struct {
	Name string `json:"name" binding:"required"`
}
