package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleStock sub-inventario de un producto en un vehículo (clave: VehicleID + ProductID).
// Quantity es el acumulado de todas las cargas conciliadas; los campos de detalle
// reflejan el último snapshot del producto.
type VehicleStock struct {
	VehicleID    string
	ProductID    string
	Name         string
	Presentation string
	Rubro        string
	Segmento     string
	Price        decimal.Decimal
	Quantity     int64
	UpdatedAt    time.Time
}

// StockFromLine arma la fila de sub-inventario a partir de una línea de carga;
// Quantity queda como el incremento a aplicar.
func StockFromLine(vehicleID string, line LoadLine) *VehicleStock {
	return &VehicleStock{
		VehicleID:    vehicleID,
		ProductID:    line.ProductID,
		Name:         line.Name,
		Presentation: line.Presentation,
		Rubro:        line.Rubro,
		Segmento:     line.Segmento,
		Price:        line.Price,
		Quantity:     line.Quantity,
	}
}
