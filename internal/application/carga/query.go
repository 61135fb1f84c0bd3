package carga

import (
	"context"
	"strings"

	"github.com/jhoicas/Cargas-api/internal/application/dto"
	"github.com/jhoicas/Cargas-api/internal/domain"
	"github.com/jhoicas/Cargas-api/internal/domain/repository"
)

// LoadQueryUseCase consultas de solo lectura sobre cargas y sub-inventarios, y re-exportación.
type LoadQueryUseCase struct {
	loadRepo    repository.LoadRepository
	stockRepo   repository.VehicleStockRepository
	vehicleRepo repository.VehicleRepository
	exporter    Exporter
}

// NewLoadQueryUseCase construye el caso de uso. exporter puede ser nil (sin descargas).
func NewLoadQueryUseCase(
	loadRepo repository.LoadRepository,
	stockRepo repository.VehicleStockRepository,
	vehicleRepo repository.VehicleRepository,
	exporter Exporter,
) *LoadQueryUseCase {
	return &LoadQueryUseCase{loadRepo: loadRepo, stockRepo: stockRepo, vehicleRepo: vehicleRepo, exporter: exporter}
}

// GetLoad obtiene una carga por ID; nil si no existe.
func (uc *LoadQueryUseCase) GetLoad(ctx context.Context, id string) (*dto.LoadResponse, error) {
	load, err := uc.loadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if load == nil {
		return nil, nil
	}
	out := ToLoadResponse(load)
	return &out, nil
}

// ListLoads lista cargas, opcionalmente filtradas por vehículo.
func (uc *LoadQueryUseCase) ListLoads(ctx context.Context, vehicleID string, limit, offset int) (*dto.LoadListResponse, error) {
	list, err := uc.loadRepo.List(ctx, strings.TrimSpace(vehicleID), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LoadResponse, 0, len(list))
	for _, l := range list {
		items = append(items, ToLoadResponse(l))
	}
	return &dto.LoadListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// GetVehicleStock devuelve el sub-inventario del vehículo. ErrNotFound si el vehículo no existe.
func (uc *LoadQueryUseCase) GetVehicleStock(ctx context.Context, vehicleID string) (*dto.VehicleStockResponse, error) {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.stockRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleStockDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, toVehicleStockDTO(r))
	}
	return &dto.VehicleStockResponse{VehicleID: vehicleID, Items: items}, nil
}

// ExportLoad genera el archivo de una carga ya registrada para descarga directa.
func (uc *LoadQueryUseCase) ExportLoad(ctx context.Context, id, format string) (*ExportFile, error) {
	if uc.exporter == nil || !ValidFormat(format) {
		return nil, domain.ErrInvalidInput
	}
	load, err := uc.loadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if load == nil {
		return nil, domain.ErrNotFound
	}
	return uc.exporter.Render(load, format)
}
