package dto

import "time"

// CreateCategoryRequest body para crear un rubro.
type CreateCategoryRequest struct {
	Rubro string `json:"rubro"`
}

// CreateSubcategoryRequest body para agregar un segmento a un rubro.
type CreateSubcategoryRequest struct {
	Segmento string `json:"segmento"`
}

// CategoryConfigResponse mapa Rubro -> Segmentos.
type CategoryConfigResponse struct {
	Rubros    map[string][]string `json:"rubros"`
	Orden     []string            `json:"orden"` // rubros ordenados alfabéticamente
	UpdatedAt time.Time           `json:"updated_at"`
}
