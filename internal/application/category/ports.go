package category

import (
	"context"

	"github.com/jhoicas/categories-api/internal/domain/repository"
)

// UnitOfWork delimita una unidad de trabajo (una transacción, una conexión).
// fn recibe un repositorio atado a esa unidad; si fn devuelve error se
// descarta todo lo hecho, si no se confirma. La unidad se libera siempre.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(repo repository.CategoryRepository) error) error
	RunReadOnly(ctx context.Context, fn func(repo repository.CategoryRepository) error) error
}
