package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoadItemRequest producto elegido y cantidad a cargar.
type LoadItemRequest struct {
	ProductID string `json:"idProducto"`
	Cantidad  int64  `json:"Cantidad"`
}

// RegisterLoadRequest body para POST /api/loads.
type RegisterLoadRequest struct {
	VehicleID string            `json:"vehiculoId"`
	Items     []LoadItemRequest `json:"productos"`
	Export    string            `json:"export,omitempty"` // "", csv, json, pdf
}

// VehicleSnapshotDTO vehículo tal como quedó en la carga.
type VehicleSnapshotDTO struct {
	ID     string `json:"id"`
	Marca  string `json:"marca"`
	Modelo string `json:"modelo"`
	Placa  string `json:"placa"`
}

// UserSnapshotDTO usuario tal como quedó en la carga.
type UserSnapshotDTO struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// LoadLineDTO línea de carga con los datos del producto copiados al momento de cargar.
type LoadLineDTO struct {
	ProductID    string          `json:"idProducto"`
	Producto     string          `json:"Producto"`
	Presentacion string          `json:"Presentacion"`
	Rubro        string          `json:"Rubro"`
	Segmento     string          `json:"Segmento"`
	Precio       decimal.Decimal `json:"Precio"`
	Cantidad     int64           `json:"Cantidad"`
}

// LoadResponse documento de carga.
type LoadResponse struct {
	ID         string             `json:"id"`
	FechaCarga time.Time          `json:"fechaCarga"`
	Vehiculo   VehicleSnapshotDTO `json:"vehiculo"`
	Usuario    *UserSnapshotDTO   `json:"usuario,omitempty"`
	Productos  []LoadLineDTO      `json:"productos"`
}

// LoadListResponse lista paginada de cargas.
type LoadListResponse struct {
	Items []LoadResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ReconcileFailureDTO producto cuyo sub-inventario no pudo actualizarse.
type ReconcileFailureDTO struct {
	ProductID string `json:"idProducto"`
	Producto  string `json:"Producto"`
	Cantidad  int64  `json:"Cantidad"`
	Error     string `json:"error"`
}

// ReconciledDTO cantidad resultante en el sub-inventario del vehículo.
type ReconciledDTO struct {
	ProductID string `json:"idProducto"`
	Cantidad  int64  `json:"Cantidad"`
}

// LoadResultResponse resultado de registrar una carga.
// Status "saved_with_warnings" indica que la carga se guardó pero algún producto
// no se concilió o la exportación falló; no hay rollback.
type LoadResultResponse struct {
	LoadID      string                `json:"loadId"`
	Status      string                `json:"status"`
	Load        LoadResponse          `json:"carga"`
	Reconciled  []ReconciledDTO       `json:"conciliados"`
	Failures    []ReconcileFailureDTO `json:"fallos,omitempty"`
	ExportKey   string                `json:"exportKey,omitempty"`
	ExportError string                `json:"exportError,omitempty"`
}

// VehicleStockDTO fila del sub-inventario de un vehículo.
type VehicleStockDTO struct {
	ProductID    string          `json:"idProducto"`
	Producto     string          `json:"Producto"`
	Presentacion string          `json:"Presentacion"`
	Rubro        string          `json:"Rubro"`
	Segmento     string          `json:"Segmento"`
	Precio       decimal.Decimal `json:"Precio"`
	Cantidad     int64           `json:"Cantidad"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// VehicleStockResponse sub-inventario completo de un vehículo.
type VehicleStockResponse struct {
	VehicleID string            `json:"vehiculoId"`
	Items     []VehicleStockDTO `json:"items"`
}
