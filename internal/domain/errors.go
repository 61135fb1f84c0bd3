package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Registro de cargas.
	ErrVehicleRequired = errors.New("debe seleccionar un vehículo")
	ErrNoItems         = errors.New("la carga no tiene productos con cantidad mayor a cero")

	// Configuración de rubros/segmentos.
	ErrCategoryExists      = errors.New("el rubro ya existe")
	ErrCategoryNotFound    = errors.New("rubro no encontrado")
	ErrSubcategoryExists   = errors.New("el segmento ya existe en el rubro")
	ErrSubcategoryNotFound = errors.New("segmento no encontrado en el rubro")

	ErrInvalidTransition  = errors.New("transición no permitida en el estado actual")
	ErrBackendUnavailable = errors.New("backend no disponible")
)
