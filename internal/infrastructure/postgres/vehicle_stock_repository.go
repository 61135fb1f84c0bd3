package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/domain/repository"
)

var _ repository.VehicleStockRepository = (*VehicleStockRepo)(nil)

// VehicleStockRepo sub-inventario por vehículo sobre PostgreSQL (usable con pool o tx).
type VehicleStockRepo struct {
	q Querier
}

// NewVehicleStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleStockRepository(q Querier) *VehicleStockRepo {
	return &VehicleStockRepo{q: q}
}

const vehicleStockColumns = `vehicle_id, product_id, name, presentation, rubro, segmento, price, quantity, updated_at`

func scanVehicleStock(row pgx.Row) (*entity.VehicleStock, error) {
	var s entity.VehicleStock
	err := row.Scan(&s.VehicleID, &s.ProductID, &s.Name, &s.Presentation, &s.Rubro, &s.Segmento,
		&s.Price, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Increment suma la cantidad en una sola sentencia: la fila se crea o se incrementa sin
// lectura previa, así dos cargas concurrentes del mismo producto no pierden unidades.
func (r *VehicleStockRepo) Increment(ctx context.Context, s *entity.VehicleStock) (*entity.VehicleStock, error) {
	row := r.q.QueryRow(ctx, `
		INSERT INTO vehicle_stock (`+vehicleStockColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (vehicle_id, product_id)
		DO UPDATE SET
			quantity     = vehicle_stock.quantity + EXCLUDED.quantity,
			name         = EXCLUDED.name,
			presentation = EXCLUDED.presentation,
			rubro        = EXCLUDED.rubro,
			segmento     = EXCLUDED.segmento,
			price        = EXCLUDED.price,
			updated_at   = now()
		RETURNING `+vehicleStockColumns,
		s.VehicleID, s.ProductID, s.Name, s.Presentation, s.Rubro, s.Segmento, s.Price, s.Quantity,
	)
	out, err := scanVehicleStock(row)
	if err != nil {
		return nil, fmt.Errorf("increment vehicle stock: %w", err)
	}
	return out, nil
}

// Get obtiene la fila (vehículo, producto); nil si no existe.
func (r *VehicleStockRepo) Get(ctx context.Context, vehicleID, productID string) (*entity.VehicleStock, error) {
	if !validID(vehicleID) || !validID(productID) {
		return nil, nil
	}
	s, err := scanVehicleStock(r.q.QueryRow(ctx, `
		SELECT `+vehicleStockColumns+` FROM vehicle_stock
		WHERE vehicle_id = $1 AND product_id = $2`, vehicleID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle stock: %w", err)
	}
	return s, nil
}

// ListByVehicle sub-inventario completo del vehículo ordenado por rubro y producto.
func (r *VehicleStockRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]*entity.VehicleStock, error) {
	if !validID(vehicleID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+vehicleStockColumns+` FROM vehicle_stock
		WHERE vehicle_id = $1 ORDER BY rubro, segmento, name`, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("list vehicle stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.VehicleStock
	for rows.Next() {
		s, err := scanVehicleStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
