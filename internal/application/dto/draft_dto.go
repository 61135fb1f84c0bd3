package dto

import "time"

// DraftEventRequest body para POST /api/loads/drafts/:id/events.
type DraftEventRequest struct {
	Evento     string `json:"evento"`
	VehiculoID string `json:"vehiculoId,omitempty"`
	ProductoID string `json:"idProducto,omitempty"`
	Cantidad   int64  `json:"Cantidad,omitempty"`
	Export     string `json:"export,omitempty"`
}

// DraftResponse estado de un borrador de carga.
type DraftResponse struct {
	ID         string              `json:"id"`
	Estado     string              `json:"estado"`
	VehiculoID string              `json:"vehiculoId,omitempty"`
	Productos  []LoadItemRequest   `json:"productos"`
	Eventos    []string            `json:"eventos"` // eventos válidos en el estado actual
	Resultado  *LoadResultResponse `json:"resultado,omitempty"`
	Error      string              `json:"error,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}
