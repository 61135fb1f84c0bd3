package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cargas-api/internal/domain"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador de persistencia para vehículos.
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, brand, model, plate, created_at, updated_at`

// Create persiste un nuevo vehículo. ErrDuplicate si la placa ya existe.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO vehicles (`+vehicleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		v.ID, v.Brand, v.Model, v.Plate, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID; nil si no existe.
func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	if !validID(id) {
		return nil, nil
	}
	var v entity.Vehicle
	err := r.q.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id).Scan(
		&v.ID, &v.Brand, &v.Model, &v.Plate, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

// Update actualiza un vehículo existente.
func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE vehicles SET brand = $2, model = $3, plate = $4, updated_at = $5
		WHERE id = $1`,
		v.ID, v.Brand, v.Model, v.Plate, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vehicle: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista vehículos ordenados por placa.
func (r *VehicleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+vehicleColumns+` FROM vehicles
		ORDER BY plate LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Plate, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Delete elimina un vehículo. Su historial de cargas se conserva.
func (r *VehicleRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
