package repository

import (
	"context"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

// CategoryConfigRepository lee y guarda el documento completo de rubros/segmentos.
type CategoryConfigRepository interface {
	// Get devuelve la configuración; si nunca se guardó devuelve una vacía.
	Get(ctx context.Context) (*entity.CategoryConfig, error)
	// Save reemplaza el documento completo (último en escribir gana).
	Save(ctx context.Context, cfg *entity.CategoryConfig) error
}
