package repository

import (
	"context"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

// LoadRepository puerto de persistencia para cargas. Es de solo-agregar:
// no expone Update ni Delete porque una carga registrada es inmutable.
type LoadRepository interface {
	Create(ctx context.Context, load *entity.Load) error
	GetByID(ctx context.Context, id string) (*entity.Load, error)
	// List devuelve cargas de más reciente a más antigua; vehicleID vacío = todas.
	List(ctx context.Context, vehicleID string, limit, offset int) ([]*entity.Load, error)
}
