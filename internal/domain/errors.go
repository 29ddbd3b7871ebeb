package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrCompanyNotFound    = errors.New("empresa no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrQuotaExceeded      = errors.New("cuota del plan alcanzada")
	ErrCompanyBlocked     = errors.New("empresa bloqueada o pendiente de activación")
	ErrVisitNotActive     = errors.New("la visita no está activa")
	ErrTenantMismatch     = errors.New("el recurso pertenece a otra empresa")
)
