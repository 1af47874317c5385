package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. ParentID nil crea una raíz.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ParentID *int64 `json:"parent_id"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ParentID  *int64    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResponse hijas directas de una categoría existente.
// Items nunca es nil: un padre sin hijas produce una lista vacía.
type CategoryListResponse struct {
	ParentID int64              `json:"parent_id"`
	Items    []CategoryResponse `json:"items"`
}
