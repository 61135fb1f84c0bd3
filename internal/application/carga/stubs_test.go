package carga_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cargas-api/internal/application/carga"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del caso de uso
// ──────────────────────────────────────────────────────────────────────────────

var errDB = errors.New("conexión perdida")

type stubVehicleRepo struct {
	vehicles map[string]*entity.Vehicle
}

func (r *stubVehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}
func (r *stubVehicleRepo) GetByID(_ context.Context, id string) (*entity.Vehicle, error) {
	return r.vehicles[id], nil
}
func (r *stubVehicleRepo) Update(_ context.Context, v *entity.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}
func (r *stubVehicleRepo) List(context.Context, int, int) ([]*entity.Vehicle, error) {
	return nil, nil
}
func (r *stubVehicleRepo) Delete(_ context.Context, id string) error {
	delete(r.vehicles, id)
	return nil
}

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (r *stubProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}
func (r *stubProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *stubProductRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Product, error) {
	out := make(map[string]*entity.Product)
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			cp := *p
			out[id] = &cp
		}
	}
	return out, nil
}
func (r *stubProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}
func (r *stubProductRepo) List(context.Context, repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type stubLoadRepo struct {
	mu      sync.Mutex
	loads   []*entity.Load
	failing bool
}

func (r *stubLoadRepo) Create(_ context.Context, l *entity.Load) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errDB
	}
	r.loads = append(r.loads, l)
	return nil
}
func (r *stubLoadRepo) GetByID(_ context.Context, id string) (*entity.Load, error) {
	for _, l := range r.loads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}
func (r *stubLoadRepo) List(_ context.Context, vehicleID string, _, _ int) ([]*entity.Load, error) {
	var out []*entity.Load
	for _, l := range r.loads {
		if vehicleID == "" || l.Vehicle.ID == vehicleID {
			out = append(out, l)
		}
	}
	return out, nil
}

type stubStockRepo struct {
	mu      sync.Mutex
	rows    map[string]*entity.VehicleStock
	failFor map[string]bool // productID -> falla
	calls   int
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{rows: make(map[string]*entity.VehicleStock), failFor: make(map[string]bool)}
}

func (r *stubStockRepo) Increment(_ context.Context, s *entity.VehicleStock) (*entity.VehicleStock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failFor[s.ProductID] {
		return nil, errDB
	}
	key := s.VehicleID + "/" + s.ProductID
	row, ok := r.rows[key]
	if !ok {
		cp := *s
		r.rows[key] = &cp
		out := cp
		return &out, nil
	}
	qty := row.Quantity + s.Quantity
	*row = *s
	row.Quantity = qty
	out := *row
	return &out, nil
}
func (r *stubStockRepo) Get(_ context.Context, vehicleID, productID string) (*entity.VehicleStock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[vehicleID+"/"+productID], nil
}
func (r *stubStockRepo) ListByVehicle(_ context.Context, vehicleID string) ([]*entity.VehicleStock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.VehicleStock
	for _, row := range r.rows {
		if row.VehicleID == vehicleID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

type stubExporter struct {
	err   error
	saved []string
}

func (e *stubExporter) Render(load *entity.Load, format string) (*carga.ExportFile, error) {
	if e.err != nil {
		return nil, e.err
	}
	return &carga.ExportFile{Name: load.ID + "." + format, ContentType: "text/plain", Body: []byte(load.ID)}, nil
}

func (e *stubExporter) Save(_ context.Context, load *entity.Load, format string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	key := "cargas/" + load.ID + "." + format
	e.saved = append(e.saved, key)
	return key, nil
}

type stubRecorder struct {
	statuses []string
	failed   []string
	exports  []string
}

func (r *stubRecorder) LoadRegistered(status string, _ int) { r.statuses = append(r.statuses, status) }
func (r *stubRecorder) ReconcileFailed(productID string)    { r.failed = append(r.failed, productID) }
func (r *stubRecorder) ExportFailed(format string)          { r.exports = append(r.exports, format) }

// fixture arma un vehículo y dos productos del catálogo.
type fixture struct {
	vehicles *stubVehicleRepo
	products *stubProductRepo
	loads    *stubLoadRepo
	stock    *stubStockRepo
}

func newFixture() *fixture {
	return &fixture{
		vehicles: &stubVehicleRepo{vehicles: map[string]*entity.Vehicle{
			"v1": {ID: "v1", Brand: "Ford", Model: "F350", Plate: "ABC-123"},
		}},
		products: &stubProductRepo{products: map[string]*entity.Product{
			"p1": {ID: "p1", Name: "Cerveza", Presentation: "Lata", Rubro: "Bebidas", Segmento: "Cerveza", Price: decimal.RequireFromString("1.5")},
			"p2": {ID: "p2", Name: "Agua", Presentation: "Botella 600ml", Rubro: "Bebidas", Segmento: "Aguas", Price: decimal.RequireFromString("0.80")},
		}},
		loads: &stubLoadRepo{},
		stock: newStubStockRepo(),
	}
}

func (f *fixture) useCase(opts ...carga.Option) *carga.RegisterLoadUseCase {
	return carga.NewRegisterLoadUseCase(f.vehicles, f.products, f.loads, f.stock, opts...)
}
