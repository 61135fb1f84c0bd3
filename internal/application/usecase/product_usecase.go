package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cargas-api/internal/application/dto"
	"github.com/jhoicas/Cargas-api/internal/domain"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/domain/repository"
)

// CategoryValidator comprueba que un par rubro/segmento exista en la configuración.
type CategoryValidator interface {
	Validate(ctx context.Context, rubro, segmento string) (bool, error)
}

// ProductUseCase casos de uso CRUD para el catálogo.
// Cambiar Precio o cualquier otro campo no toca las cargas ya registradas (guardan su propia copia).
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories CategoryValidator
}

// NewProductUseCase construye el caso de uso. categories puede ser nil (sin validación de rubros).
func NewProductUseCase(repo repository.ProductRepository, categories CategoryValidator) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un producto. Rubro y Segmento deben existir en la configuración de rubros.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Producto)
	rubro, segmento := strings.TrimSpace(in.Rubro), strings.TrimSpace(in.Segmento)
	if name == "" || rubro == "" || in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Cantidad != nil && *in.Cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkCategory(ctx, rubro, segmento); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Presentation: strings.TrimSpace(in.Presentacion),
		Rubro:        rubro,
		Segmento:     segmento,
		Price:        in.Precio,
		Quantity:     in.Cantidad,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Si cambia Rubro o Segmento se validan contra la configuración.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Producto != nil {
		product.Name = strings.TrimSpace(*in.Producto)
	}
	if in.Presentacion != nil {
		product.Presentation = strings.TrimSpace(*in.Presentacion)
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Precio
	}
	if in.Cantidad != nil {
		if *in.Cantidad < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = in.Cantidad
	}
	if in.Rubro != nil || in.Segmento != nil {
		if in.Rubro != nil {
			product.Rubro = strings.TrimSpace(*in.Rubro)
		}
		if in.Segmento != nil {
			product.Segmento = strings.TrimSpace(*in.Segmento)
		}
		if err := uc.checkCategory(ctx, product.Rubro, product.Segmento); err != nil {
			return nil, err
		}
	}
	if product.Name == "" || product.Rubro == "" {
		return nil, domain.ErrInvalidInput
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo con filtros opcionales y paginación.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID. Las cargas que lo referencian conservan su copia.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) checkCategory(ctx context.Context, rubro, segmento string) error {
	if uc.categories == nil {
		return nil
	}
	ok, err := uc.categories.Validate(ctx, rubro, segmento)
	if err != nil {
		return err
	}
	if !ok {
		if segmento == "" {
			return domain.ErrCategoryNotFound
		}
		return domain.ErrSubcategoryNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Producto:     p.Name,
		Presentacion: p.Presentation,
		Rubro:        p.Rubro,
		Segmento:     p.Segmento,
		Precio:       p.Price,
		Cantidad:     p.Quantity,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
