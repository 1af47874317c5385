package entity

import "time"

// Límites del nombre de una categoría (en caracteres).
const (
	CategoryNameMinLen = 1
	CategoryNameMaxLen = 100
)

// Category representa un nodo del árbol de categorías. Las hijas no se
// materializan: se obtienen consultando por ParentID.
type Category struct {
	ID        int64
	Name      string
	ParentID  *int64 // nil si es raíz
	CreatedAt time.Time
}
