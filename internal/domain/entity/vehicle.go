package entity

import "time"

// Vehicle representa un vehículo de reparto; cada vehículo tiene su propio sub-inventario.
type Vehicle struct {
	ID        string
	Brand     string // marca
	Model     string // modelo
	Plate     string // placa, única
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Description texto corto usado en encabezados de exportación.
func (v *Vehicle) Description() string {
	return v.Brand + " " + v.Model + " (" + v.Plate + ")"
}

// Snapshot copia los datos del vehículo que se congelan en una carga.
func (v *Vehicle) Snapshot() VehicleSnapshot {
	return VehicleSnapshot{ID: v.ID, Brand: v.Brand, Model: v.Model, Plate: v.Plate}
}
