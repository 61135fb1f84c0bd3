package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	Producto     string          `json:"Producto" validate:"required,max=200"`
	Presentacion string          `json:"Presentacion"`
	Rubro        string          `json:"Rubro" validate:"required"`
	Segmento     string          `json:"Segmento"`
	Precio       decimal.Decimal `json:"Precio"`
	Cantidad     *int64          `json:"Cantidad,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto; los campos nil no se tocan.
type UpdateProductRequest struct {
	Producto     *string          `json:"Producto"`
	Presentacion *string          `json:"Presentacion"`
	Rubro        *string          `json:"Rubro"`
	Segmento     *string          `json:"Segmento"`
	Precio       *decimal.Decimal `json:"Precio"`
	Cantidad     *int64           `json:"Cantidad"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Producto     string          `json:"Producto"`
	Presentacion string          `json:"Presentacion"`
	Rubro        string          `json:"Rubro"`
	Segmento     string          `json:"Segmento"`
	Precio       decimal.Decimal `json:"Precio"`
	Cantidad     *int64          `json:"Cantidad,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
