package repository

import (
	"context"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

// VehicleRepository define el puerto de persistencia para Vehicle (DIP).
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	List(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
