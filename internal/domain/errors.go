package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrCodeTaken         = errors.New("código numérico en uso")
	ErrCodesExhausted    = errors.New("no hay códigos numéricos disponibles")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
