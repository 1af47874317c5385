package category

import (
	"context"
	"fmt"

	"github.com/jhoicas/categories-api/internal/application/dto"
	"github.com/jhoicas/categories-api/internal/domain"
	"github.com/jhoicas/categories-api/internal/domain/entity"
	"github.com/jhoicas/categories-api/internal/domain/repository"
	"github.com/jhoicas/categories-api/pkg/textutil"
)

// Service casos de uso del árbol de categorías. No guarda estado: cada
// operación abre su propia unidad de trabajo.
type Service struct {
	uow UnitOfWork
}

// NewService construye el caso de uso.
func NewService(uow UnitOfWork) *Service {
	return &Service{uow: uow}
}

// GetRootCategories lista las categorías sin padre, más antiguas primero.
func (s *Service) GetRootCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	err := s.uow.RunReadOnly(ctx, func(repo repository.CategoryRepository) error {
		roots, err := repo.ListByParent(ctx, nil)
		if err != nil {
			return err
		}
		out = toCategoryResponses(roots)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetChildrenCategories lista las hijas directas de parentID.
// Devuelve nil si el padre no existe; un padre sin hijas da Items vacío.
func (s *Service) GetChildrenCategories(ctx context.Context, parentID int64) (*dto.CategoryListResponse, error) {
	var out *dto.CategoryListResponse
	err := s.uow.RunReadOnly(ctx, func(repo repository.CategoryRepository) error {
		parent, err := repo.GetByID(ctx, parentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return nil
		}
		children, err := repo.ListByParent(ctx, &parentID)
		if err != nil {
			return err
		}
		out = &dto.CategoryListResponse{ParentID: parentID, Items: toCategoryResponses(children)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategory obtiene una categoría por ID. Devuelve nil si no existe.
func (s *Service) GetCategory(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := s.uow.RunReadOnly(ctx, func(repo repository.CategoryRepository) error {
		c, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = toCategoryResponse(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory crea una categoría. Si in.ParentID apunta a un id inexistente
// devuelve nil y no persiste nada.
func (s *Service) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := textutil.NormalizeName(in.Name)
	if n := textutil.NameLength(name); n < entity.CategoryNameMinLen || n > entity.CategoryNameMaxLen {
		return nil, fmt.Errorf("%w: name debe tener entre %d y %d caracteres",
			domain.ErrInvalidInput, entity.CategoryNameMinLen, entity.CategoryNameMaxLen)
	}

	var out *dto.CategoryResponse
	err := s.uow.Run(ctx, func(repo repository.CategoryRepository) error {
		if in.ParentID != nil {
			parent, err := repo.GetByID(ctx, *in.ParentID)
			if err != nil {
				return err
			}
			if parent == nil {
				return nil
			}
		}
		c := &entity.Category{Name: name, ParentID: in.ParentID}
		if err := repo.Create(ctx, c); err != nil {
			return err
		}
		out = toCategoryResponse(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCategory elimina una categoría hoja. Orden de comprobación:
// existencia, luego hijas, luego borrado.
func (s *Service) DeleteCategory(ctx context.Context, id int64) (DeleteResult, error) {
	var result DeleteResult
	err := s.uow.Run(ctx, func(repo repository.CategoryRepository) error {
		c, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			result = DeleteNotFound
			return nil
		}
		children, err := repo.CountChildren(ctx, id)
		if err != nil {
			return err
		}
		if children > 0 {
			result = DeleteHasChildren
			return nil
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		result = DeleteOK
		return nil
	})
	if err != nil {
		return 0, err
	}
	return result, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items
}
