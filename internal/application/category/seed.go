package category

import (
	"context"
	"fmt"

	"github.com/jhoicas/categories-api/internal/domain/entity"
	"github.com/jhoicas/categories-api/internal/domain/repository"
)

// seedNode categoría de ejemplo con sus hijas.
type seedNode struct {
	name     string
	children []seedNode
}

// dummyTree datos de ejemplo: 3 raíces, 12 categorías en total.
var dummyTree = []seedNode{
	{name: "category A", children: []seedNode{
		{name: "subcategory A1", children: []seedNode{
			{name: "sub subcategory A1-1"},
			{name: "sub subcategory A1-2"},
		}},
		{name: "subcategory A2"},
		{name: "subcategory A3"},
	}},
	{name: "category B", children: []seedNode{
		{name: "subcategory B1"},
		{name: "subcategory B2"},
		{name: "subcategory B3"},
	}},
	{name: "category C", children: []seedNode{
		{name: "subcategory C1"},
	}},
}

// Seed carga el árbol de ejemplo en una sola unidad de trabajo. Si la
// categoría 1 ya existe no hace nada y devuelve false.
func Seed(ctx context.Context, uow UnitOfWork) (bool, error) {
	seeded := false
	err := uow.Run(ctx, func(repo repository.CategoryRepository) error {
		first, err := repo.GetByID(ctx, 1)
		if err != nil {
			return err
		}
		if first != nil {
			return nil
		}
		// Primero todas las raíces, luego cada nivel: así los ids siguen el
		// mismo orden que los datos de ejemplo originales (A=1, B=2, C=3, A1=4...).
		level := dummyTree
		parents := make([]*int64, len(level))
		for len(level) > 0 {
			var next []seedNode
			var nextParents []*int64
			for i, node := range level {
				c := &entity.Category{Name: node.name, ParentID: parents[i]}
				if err := repo.Create(ctx, c); err != nil {
					return fmt.Errorf("seed %q: %w", node.name, err)
				}
				id := c.ID
				for range node.children {
					nextParents = append(nextParents, &id)
				}
				next = append(next, node.children...)
			}
			level, parents = next, nextParents
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}
