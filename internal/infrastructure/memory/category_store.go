// Package memory implementa el almacén de categorías en memoria del proceso.
// Sirve para desarrollo local sin PostgreSQL (DB_DRIVER=memory) y para tests;
// los datos se pierden al reiniciar.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/categories-api/internal/application/category"
	"github.com/jhoicas/categories-api/internal/domain"
	"github.com/jhoicas/categories-api/internal/domain/entity"
	"github.com/jhoicas/categories-api/internal/domain/repository"
)

var _ category.UnitOfWork = (*Store)(nil)

// ErrReadOnly se devuelve al intentar escribir dentro de RunReadOnly.
var ErrReadOnly = errors.New("unidad de trabajo de solo lectura")

// Store arena de categorías indexada por id. Las escrituras se serializan;
// cada unidad de trabajo opera sobre una copia que se publica solo si fn no falla.
type Store struct {
	mu     sync.RWMutex
	rows   map[int64]entity.Category
	nextID int64
	now    func() time.Time
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{rows: make(map[int64]entity.Category), now: time.Now}
}

// Run ejecuta fn con un repositorio de lectura/escritura y confirma si no hay error.
func (s *Store) Run(ctx context.Context, fn func(repo repository.CategoryRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txRepo{rows: make(map[int64]entity.Category, len(s.rows)), nextID: s.nextID, now: s.now}
	for id, c := range s.rows {
		tx.rows[id] = c
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.rows = tx.rows
	s.nextID = tx.nextID
	return nil
}

// RunReadOnly ejecuta fn sobre el estado actual; cualquier escritura falla con ErrReadOnly.
func (s *Store) RunReadOnly(ctx context.Context, fn func(repo repository.CategoryRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&txRepo{rows: s.rows, readOnly: true})
}

type txRepo struct {
	rows     map[int64]entity.Category
	nextID   int64
	now      func() time.Time
	readOnly bool
}

func (r *txRepo) Create(ctx context.Context, c *entity.Category) error {
	if r.readOnly {
		return ErrReadOnly
	}
	if c.ParentID != nil {
		if _, ok := r.rows[*c.ParentID]; !ok {
			return fmt.Errorf("insert category: %w", domain.ErrParentNotFound)
		}
	}
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = r.now().UTC()
	r.rows[c.ID] = clone(c)
	return nil
}

func (r *txRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	out := clone(&c)
	return &out, nil
}

func (r *txRepo) ListByParent(ctx context.Context, parentID *int64) ([]*entity.Category, error) {
	list := make([]*entity.Category, 0)
	for _, c := range r.rows {
		if sameParent(c.ParentID, parentID) {
			out := clone(&c)
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *txRepo) CountChildren(ctx context.Context, id int64) (int, error) {
	n := 0
	for _, c := range r.rows {
		if c.ParentID != nil && *c.ParentID == id {
			n++
		}
	}
	return n, nil
}

func (r *txRepo) Delete(ctx context.Context, id int64) error {
	if r.readOnly {
		return ErrReadOnly
	}
	delete(r.rows, id)
	return nil
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func clone(c *entity.Category) entity.Category {
	out := *c
	if c.ParentID != nil {
		p := *c.ParentID
		out.ParentID = &p
	}
	return out
}
