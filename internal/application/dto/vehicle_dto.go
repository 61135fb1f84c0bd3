package dto

import "time"

// CreateVehicleRequest entrada para crear un vehículo.
type CreateVehicleRequest struct {
	Marca  string `json:"marca" validate:"required,max=100"`
	Modelo string `json:"modelo" validate:"required,max=100"`
	Placa  string `json:"placa" validate:"required,max=20"`
}

// UpdateVehicleRequest entrada para actualizar un vehículo.
type UpdateVehicleRequest struct {
	Marca  *string `json:"marca"`
	Modelo *string `json:"modelo"`
	Placa  *string `json:"placa"`
}

// VehicleResponse salida de un vehículo.
type VehicleResponse struct {
	ID        string    `json:"id"`
	Marca     string    `json:"marca"`
	Modelo    string    `json:"modelo"`
	Placa     string    `json:"placa"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VehicleListResponse lista paginada de vehículos.
type VehicleListResponse struct {
	Items []VehicleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
