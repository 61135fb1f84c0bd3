package repository

import (
	"context"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

// VehicleStockRepository puerto del sub-inventario por vehículo.
type VehicleStockRepository interface {
	// Increment suma stock.Quantity a la fila (VehicleID, ProductID) de forma atómica,
	// creándola si no existe, y actualiza los campos de detalle. Devuelve la fila resultante.
	Increment(ctx context.Context, stock *entity.VehicleStock) (*entity.VehicleStock, error)
	Get(ctx context.Context, vehicleID, productID string) (*entity.VehicleStock, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]*entity.VehicleStock, error)
}
