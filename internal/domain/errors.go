package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// "No encontrado" y "tiene hijas" no son errores: el servicio los devuelve como valores.
var (
	ErrParentNotFound = errors.New("categoría padre no encontrada")
	ErrInvalidInput   = errors.New("entrada inválida")
)
