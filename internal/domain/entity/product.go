package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo, clasificado por Rubro/Segmento.
// Quantity es el stock general; las cargas no lo modifican (ver sub-inventario por vehículo).
type Product struct {
	ID           string
	Name         string // Producto
	Presentation string // Presentacion (lata, botella, caja...)
	Rubro        string
	Segmento     string
	Price        decimal.Decimal // precio en USD
	Quantity     *int64          // opcional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
