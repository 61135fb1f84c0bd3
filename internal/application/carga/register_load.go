package carga

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Cargas-api/internal/domain"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/domain/repository"
)

// Estados de resultado de un registro de carga.
const (
	StatusOK                = "ok"
	StatusSavedWithWarnings = "saved_with_warnings"
	StatusFailed            = "failed"
)

// ItemInput producto elegido y cantidad a cargar.
type ItemInput struct {
	ProductID string
	Quantity  int64
}

// RegisterLoadInput entrada de RegisterLoad.
// User es opcional; Export vacío significa que no se genera archivo.
type RegisterLoadInput struct {
	VehicleID string
	User      *entity.UserSnapshot
	Items     []ItemInput
	Export    string
}

// ReconcileFailure producto cuyo sub-inventario no pudo actualizarse.
type ReconcileFailure struct {
	Line entity.LoadLine
	Err  error
}

// LoadResult resultado de un registro exitoso (la carga quedó guardada).
type LoadResult struct {
	Load       *entity.Load
	Status     string
	Reconciled []*entity.VehicleStock
	Failures   []ReconcileFailure
	ExportKey  string
	ExportErr  error
}

// HasWarnings true si algún producto no se concilió o la exportación falló.
func (r *LoadResult) HasWarnings() bool {
	return len(r.Failures) > 0 || r.ExportErr != nil
}

// RegisterLoadUseCase registra una carga de productos en un vehículo y la concilia
// con el sub-inventario del vehículo.
//
// La carga se guarda primero; luego cada producto se suma a su fila de sub-inventario
// con un incremento atómico independiente. Un fallo en un producto no revierte la carga
// ni a los demás productos: el resultado queda como StatusSavedWithWarnings.
type RegisterLoadUseCase struct {
	vehicleRepo repository.VehicleRepository
	productRepo repository.ProductRepository
	loadRepo    repository.LoadRepository
	stockRepo   repository.VehicleStockRepository
	exporter    Exporter
	recorder    Recorder
	log         zerolog.Logger
	now         func() time.Time
}

// Option configura dependencias opcionales del caso de uso.
type Option func(*RegisterLoadUseCase)

// WithExporter habilita la exportación opcional (paso 5).
func WithExporter(e Exporter) Option { return func(uc *RegisterLoadUseCase) { uc.exporter = e } }

// WithRecorder registra métricas de cada resultado.
func WithRecorder(r Recorder) Option { return func(uc *RegisterLoadUseCase) { uc.recorder = r } }

// WithLogger reemplaza el logger (por defecto no escribe nada).
func WithLogger(l zerolog.Logger) Option { return func(uc *RegisterLoadUseCase) { uc.log = l } }

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option { return func(uc *RegisterLoadUseCase) { uc.now = now } }

// NewRegisterLoadUseCase construye el caso de uso.
func NewRegisterLoadUseCase(
	vehicleRepo repository.VehicleRepository,
	productRepo repository.ProductRepository,
	loadRepo repository.LoadRepository,
	stockRepo repository.VehicleStockRepository,
	opts ...Option,
) *RegisterLoadUseCase {
	uc := &RegisterLoadUseCase{
		vehicleRepo: vehicleRepo,
		productRepo: productRepo,
		loadRepo:    loadRepo,
		stockRepo:   stockRepo,
		recorder:    noopRecorder{},
		log:         zerolog.Nop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RegisterLoad valida, toma snapshot del catálogo, guarda la carga y concilia el sub-inventario.
//
// Errores de validación (ErrVehicleRequired, ErrNoItems, ErrNotFound, ErrInvalidInput) se
// devuelven antes de cualquier escritura. Un error al guardar la carga se devuelve envuelto
// y no se concilia nada. Si la carga se guardó, el error es nil y el detalle de fallos
// parciales viaja en LoadResult.
func (uc *RegisterLoadUseCase) RegisterLoad(ctx context.Context, in RegisterLoadInput) (*LoadResult, error) {
	// 1. Validar
	vehicleID := strings.TrimSpace(in.VehicleID)
	if vehicleID == "" {
		return nil, domain.ErrVehicleRequired
	}
	if in.Export != "" && !ValidFormat(in.Export) {
		return nil, domain.ErrInvalidInput
	}
	items, err := mergeItems(in.Items)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNoItems
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("obtener vehículo: %w", err)
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	catalog, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("obtener productos: %w", err)
	}

	// 2. Snapshot de los campos del catálogo al momento de la llamada
	lines := make([]entity.LoadLine, 0, len(items))
	for _, it := range items {
		p, ok := catalog[it.ProductID]
		if !ok || p == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, entity.LoadLine{
			ProductID:    p.ID,
			Name:         p.Name,
			Presentation: p.Presentation,
			Rubro:        p.Rubro,
			Segmento:     p.Segmento,
			Price:        p.Price,
			Quantity:     it.Quantity,
		})
	}

	now := uc.now().UTC()
	load := &entity.Load{
		ID:        uuid.New().String(),
		Date:      now,
		Vehicle:   vehicle.Snapshot(),
		Lines:     lines,
		CreatedAt: now,
	}
	if in.User != nil {
		u := *in.User
		load.User = &u
	}

	log := uc.log.With().Str("load_id", load.ID).Str("vehicle_id", vehicle.ID).Logger()

	// 3. Guardar la carga (solo-agregar)
	if err := uc.loadRepo.Create(ctx, load); err != nil {
		log.Error().Err(err).Msg("no se pudo guardar la carga")
		uc.recorder.LoadRegistered(StatusFailed, len(lines))
		return nil, fmt.Errorf("guardar carga: %w", err)
	}

	// 4. Conciliar cada producto de forma independiente
	result := &LoadResult{Load: load}
	for _, line := range load.Lines {
		row, err := uc.stockRepo.Increment(ctx, entity.StockFromLine(vehicle.ID, line))
		if err != nil {
			log.Error().Err(err).Str("product_id", line.ProductID).Int64("cantidad", line.Quantity).
				Msg("no se pudo conciliar el sub-inventario del producto")
			uc.recorder.ReconcileFailed(line.ProductID)
			result.Failures = append(result.Failures, ReconcileFailure{Line: line, Err: err})
			continue
		}
		result.Reconciled = append(result.Reconciled, row)
	}

	// 5. Exportación opcional; no afecta el estado persistido
	if in.Export != "" && uc.exporter != nil {
		key, err := uc.exporter.Save(ctx, load, in.Export)
		if err != nil {
			log.Warn().Err(err).Str("format", in.Export).Msg("no se pudo exportar la carga")
			uc.recorder.ExportFailed(in.Export)
			result.ExportErr = err
		} else {
			result.ExportKey = key
		}
	}

	result.Status = StatusOK
	if result.HasWarnings() {
		result.Status = StatusSavedWithWarnings
	}
	uc.recorder.LoadRegistered(result.Status, len(lines))
	log.Info().
		Str("status", result.Status).
		Int("lineas", len(lines)).
		Int64("unidades", load.TotalUnits()).
		Int("fallos", len(result.Failures)).
		Msg("carga registrada")
	return result, nil
}

// mergeItems descarta cantidades <= 0 y une productos repetidos sumando cantidades,
// conservando la posición de la primera aparición. ErrInvalidInput si la suma desborda int64.
func mergeItems(items []ItemInput) ([]ItemInput, error) {
	out := make([]ItemInput, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" || it.Quantity <= 0 {
			continue
		}
		if i, ok := index[id]; ok {
			if out[i].Quantity > math.MaxInt64-it.Quantity {
				return nil, fmt.Errorf("%w: cantidad total de %s fuera de rango", domain.ErrInvalidInput, id)
			}
			out[i].Quantity += it.Quantity
			continue
		}
		index[id] = len(out)
		out = append(out, ItemInput{ProductID: id, Quantity: it.Quantity})
	}
	return out, nil
}
