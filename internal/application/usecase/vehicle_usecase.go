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

// VehicleUseCase casos de uso CRUD para vehículos.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Create registra un vehículo. La placa se normaliza a mayúsculas.
func (uc *VehicleUseCase) Create(ctx context.Context, in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	brand, model, plate := strings.TrimSpace(in.Marca), strings.TrimSpace(in.Modelo), normalizePlate(in.Placa)
	if brand == "" || model == "" || plate == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vehicle := &entity.Vehicle{
		ID:        uuid.New().String(),
		Brand:     brand,
		Model:     model,
		Plate:     plate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// GetByID obtiene un vehículo por ID.
func (uc *VehicleUseCase) GetByID(ctx context.Context, id string) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}
	return toVehicleResponse(vehicle), nil
}

// Update actualiza un vehículo. Las cargas ya registradas conservan los datos anteriores.
func (uc *VehicleUseCase) Update(ctx context.Context, id string, in dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}
	if in.Marca != nil {
		vehicle.Brand = strings.TrimSpace(*in.Marca)
	}
	if in.Modelo != nil {
		vehicle.Model = strings.TrimSpace(*in.Modelo)
	}
	if in.Placa != nil {
		vehicle.Plate = normalizePlate(*in.Placa)
	}
	if vehicle.Brand == "" || vehicle.Model == "" || vehicle.Plate == "" {
		return nil, domain.ErrInvalidInput
	}
	vehicle.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// List lista vehículos con paginación.
func (uc *VehicleUseCase) List(ctx context.Context, limit, offset int) (*dto.VehicleListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return &dto.VehicleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un vehículo por ID.
func (uc *VehicleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func normalizePlate(p string) string {
	return strings.ToUpper(strings.TrimSpace(p))
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	if v == nil {
		return nil
	}
	return &dto.VehicleResponse{
		ID:        v.ID,
		Marca:     v.Brand,
		Modelo:    v.Model,
		Placa:     v.Plate,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
