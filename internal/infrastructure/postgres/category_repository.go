package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/categories-api/internal/domain"
	"github.com/jhoicas/categories-api/internal/domain/entity"
	"github.com/jhoicas/categories-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, name, parent_id, created_at`

// Create inserta la categoría; id y created_at los asigna la base de datos.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (name, parent_id)
		VALUES ($1, $2)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, c.Name, c.ParentID).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert category: %w: %w", domain.ErrParentNotFound, err)
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.ParentID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListByParent lista las hijas directas de parentID (nil = raíces), más antiguas primero.
// El id desempata filas insertadas en la misma transacción, que comparten now().
func (r *CategoryRepo) ListByParent(ctx context.Context, parentID *int64) ([]*entity.Category, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if parentID == nil {
		rows, err = r.q.Query(ctx, `
			SELECT `+categoryColumns+`
			FROM categories
			WHERE parent_id IS NULL
			ORDER BY created_at ASC, id ASC`)
	} else {
		rows, err = r.q.Query(ctx, `
			SELECT `+categoryColumns+`
			FROM categories
			WHERE parent_id = $1
			ORDER BY created_at ASC, id ASC`, *parentID)
	}
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// CountChildren cuenta las hijas directas de id.
func (r *CategoryRepo) CountChildren(ctx context.Context, id int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE parent_id = $1`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return n, nil
}

// Delete elimina una categoría por ID. No comprueba hijas: eso lo hace el servicio.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
