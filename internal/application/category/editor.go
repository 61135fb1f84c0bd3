package category

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Cargas-api/internal/application/dto"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/domain/repository"
)

// Editor edita el documento de rubros/segmentos.
//
// Cada mutación lee el documento completo, aplica el cambio sobre una copia y guarda el
// documento completo. Si la validación falla no se escribe nada. Con dos administradores
// editando a la vez gana el último en guardar.
type Editor struct {
	repo repository.CategoryConfigRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewEditor construye el editor.
func NewEditor(repo repository.CategoryConfigRepository, log zerolog.Logger) *Editor {
	return &Editor{repo: repo, log: log, now: time.Now}
}

// Get devuelve la configuración actual.
func (e *Editor) Get(ctx context.Context) (*dto.CategoryConfigResponse, error) {
	cfg, err := e.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer configuración de rubros: %w", err)
	}
	return ToResponse(cfg), nil
}

// AddCategory crea un rubro sin segmentos.
func (e *Editor) AddCategory(ctx context.Context, rubro string) (*dto.CategoryConfigResponse, error) {
	return e.mutate(ctx, "agregar rubro", func(c *entity.CategoryConfig) error {
		return c.AddRubro(rubro)
	})
}

// AddSubcategory agrega un segmento al rubro.
func (e *Editor) AddSubcategory(ctx context.Context, rubro, segmento string) (*dto.CategoryConfigResponse, error) {
	return e.mutate(ctx, "agregar segmento", func(c *entity.CategoryConfig) error {
		return c.AddSegmento(rubro, segmento)
	})
}

// RemoveCategory elimina el rubro y sus segmentos. Los productos conservan el nombre anterior.
func (e *Editor) RemoveCategory(ctx context.Context, rubro string) (*dto.CategoryConfigResponse, error) {
	return e.mutate(ctx, "eliminar rubro", func(c *entity.CategoryConfig) error {
		return c.RemoveRubro(rubro)
	})
}

// RemoveSubcategory quita un segmento del rubro.
func (e *Editor) RemoveSubcategory(ctx context.Context, rubro, segmento string) (*dto.CategoryConfigResponse, error) {
	return e.mutate(ctx, "eliminar segmento", func(c *entity.CategoryConfig) error {
		return c.RemoveSegmento(rubro, segmento)
	})
}

// Validate indica si el par rubro/segmento existe en la configuración. Segmento vacío
// solo valida el rubro.
func (e *Editor) Validate(ctx context.Context, rubro, segmento string) (bool, error) {
	cfg, err := e.repo.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("leer configuración de rubros: %w", err)
	}
	if segmento == "" {
		return cfg.HasRubro(rubro), nil
	}
	return cfg.HasSegmento(rubro, segmento), nil
}

func (e *Editor) mutate(ctx context.Context, op string, fn func(*entity.CategoryConfig) error) (*dto.CategoryConfigResponse, error) {
	current, err := e.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer configuración de rubros: %w", err)
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = e.now().UTC()
	if err := e.repo.Save(ctx, next); err != nil {
		e.log.Error().Err(err).Str("op", op).Msg("no se pudo guardar la configuración de rubros")
		return nil, fmt.Errorf("guardar configuración de rubros: %w", err)
	}
	e.log.Info().Str("op", op).Int("rubros", len(next.Rubros)).Msg("configuración de rubros actualizada")
	return ToResponse(next), nil
}

// ToResponse convierte la configuración a la salida HTTP.
func ToResponse(c *entity.CategoryConfig) *dto.CategoryConfigResponse {
	out := &dto.CategoryConfigResponse{
		Rubros:    make(map[string][]string, len(c.Rubros)),
		Orden:     c.RubroNames(),
		UpdatedAt: c.UpdatedAt,
	}
	for k, v := range c.Rubros {
		out.Rubros[k] = append([]string{}, v...)
	}
	return out
}
