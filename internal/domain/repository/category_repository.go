package repository

import (
	"context"

	"github.com/jhoicas/categories-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
//
// GetByID devuelve (nil, nil) si el id no existe. ListByParent con parentID nil
// lista las raíces; el orden es siempre created_at ascendente (más antiguas primero).
// Create asigna ID y CreatedAt desde el almacén.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	ListByParent(ctx context.Context, parentID *int64) ([]*entity.Category, error)
	CountChildren(ctx context.Context, id int64) (int, error)
	Delete(ctx context.Context, id int64) error
}
