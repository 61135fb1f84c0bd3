package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleSnapshot datos del vehículo copiados al momento de la carga.
type VehicleSnapshot struct {
	ID    string
	Brand string
	Model string
	Plate string
}

// Description texto corto usado en encabezados de exportación.
func (v VehicleSnapshot) Description() string {
	return v.Brand + " " + v.Model + " (" + v.Plate + ")"
}

// UserSnapshot datos del usuario que registró la carga.
type UserSnapshot struct {
	ID        string
	FirstName string // nombre
	LastName  string // apellido
}

// FullName nombre y apellido separados por espacio.
func (u UserSnapshot) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// LoadLine línea de una carga. Los campos del producto se copian por valor:
// cambios posteriores en el catálogo no alteran cargas ya registradas.
type LoadLine struct {
	ProductID    string
	Name         string
	Presentation string
	Rubro        string
	Segmento     string
	Price        decimal.Decimal
	Quantity     int64
}

// Subtotal Price * Quantity.
func (l LoadLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// Load registro inmutable de productos cargados en un vehículo.
type Load struct {
	ID        string
	Date      time.Time // fechaCarga
	Vehicle   VehicleSnapshot
	User      *UserSnapshot // nil si la carga no registra usuario
	Lines     []LoadLine
	CreatedAt time.Time
}

// TotalUnits suma de cantidades de todas las líneas.
func (l *Load) TotalUnits() int64 {
	var total int64
	for _, line := range l.Lines {
		total += line.Quantity
	}
	return total
}

// TotalValue suma de subtotales (precio capturado * cantidad).
func (l *Load) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
