package dto

import "github.com/calema/findash_backend/internal/core/domain"

// CreateCategoryRequest is the POST /categorias body.
type CreateCategoryRequest struct {
	DashboardID string `json:"dashboard_id" binding:"required"`
	Nome        string `json:"nome" binding:"required"`
	Tipo        string `json:"tipo" binding:"omitempty,oneof=income expense both"`
	Descricao   string `json:"descricao"`
	Icone       string `json:"icone"`
	Cor         string `json:"cor"`
}

// UpdateCategoryRequest is the PUT /categorias/:id body.
type UpdateCategoryRequest struct {
	DashboardID string  `json:"dashboard_id" binding:"required"`
	Nome        *string `json:"nome"`
	Tipo        *string `json:"tipo" binding:"omitempty,oneof=income expense both"`
	Descricao   *string `json:"descricao"`
	Icone       *string `json:"icone"`
	Cor         *string `json:"cor"`
}

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	LegacyID  string `json:"_id"`
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao,omitempty"`
	Icone     string `json:"icone,omitempty"`
	Cor       string `json:"cor,omitempty"`
}

// ListCategoriesResponse wraps the list payload.
type ListCategoriesResponse struct {
	Categorias []CategoryResponse `json:"categorias"`
}

// ToCategoryResponse converts a domain.Category to its wire shape.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		LegacyID:  c.CategoryID,
		ID:        c.CategoryID,
		Nome:      c.Name,
		Tipo:      string(c.Kind),
		Descricao: c.Description,
		Icone:     c.Icon,
		Cor:       c.Color,
	}
}

// ToListCategoriesResponse converts a slice of domain categories.
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categorias: out}
}
