package usecase_test

import (
	"context"
	"strings"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/domain/repository"
)

type memVehicleRepo struct {
	items map[string]*entity.Vehicle
	order []string
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{items: make(map[string]*entity.Vehicle)}
}

func (r *memVehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	r.items[v.ID] = v
	r.order = append(r.order, v.ID)
	return nil
}
func (r *memVehicleRepo) GetByID(_ context.Context, id string) (*entity.Vehicle, error) {
	v, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}
func (r *memVehicleRepo) Update(_ context.Context, v *entity.Vehicle) error {
	r.items[v.ID] = v
	return nil
}
func (r *memVehicleRepo) List(_ context.Context, limit, offset int) ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for i, id := range r.order {
		if i < offset {
			continue
		}
		if v, ok := r.items[id]; ok && len(out) < limit {
			out = append(out, v)
		}
	}
	return out, nil
}
func (r *memVehicleRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memProductRepo struct {
	items map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.items[p.ID] = p
	return nil
}
func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memProductRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	out := make(map[string]*entity.Product)
	for _, id := range ids {
		if p, _ := r.GetByID(ctx, id); p != nil {
			out[id] = p
		}
	}
	return out, nil
}
func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.items[p.ID] = p
	return nil
}
func (r *memProductRepo) List(_ context.Context, f repository.ProductFilter, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		if f.Rubro != "" && p.Rubro != f.Rubro {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

// stubCategories valida contra un mapa fijo de rubros.
type stubCategories map[string][]string

func (s stubCategories) Validate(_ context.Context, rubro, segmento string) (bool, error) {
	segs, ok := s[rubro]
	if !ok {
		return false, nil
	}
	if segmento == "" {
		return true, nil
	}
	for _, seg := range segs {
		if seg == segmento {
			return true, nil
		}
	}
	return false, nil
}

type memUserRepo struct{ items map[string]*entity.User }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.items[u.ID] = u
	return nil
}
func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.items[id], nil
}
func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
