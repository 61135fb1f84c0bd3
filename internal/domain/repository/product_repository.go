package repository

import (
	"context"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para listar el catálogo.
type ProductFilter struct {
	Rubro    string
	Segmento string
	Search   string // coincidencia parcial en nombre o presentación
}

// ProductRepository define el puerto de persistencia para el catálogo (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs devuelve los productos encontrados indexados por ID; los faltantes no aparecen.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
