package entity

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Cargas-api/internal/domain"
)

// CategoryConfig documento único con el mapa Rubro -> Segmentos usado para clasificar productos.
// Se lee completo y se guarda completo en cada mutación (último en escribir gana).
type CategoryConfig struct {
	Rubros    map[string][]string
	UpdatedAt time.Time
}

// NewCategoryConfig devuelve una configuración vacía.
func NewCategoryConfig() *CategoryConfig {
	return &CategoryConfig{Rubros: make(map[string][]string)}
}

// Clone copia profunda; las mutaciones se aplican sobre la copia para no tocar el original si fallan.
func (c *CategoryConfig) Clone() *CategoryConfig {
	out := &CategoryConfig{Rubros: make(map[string][]string, len(c.Rubros)), UpdatedAt: c.UpdatedAt}
	for k, v := range c.Rubros {
		out.Rubros[k] = append([]string(nil), v...)
	}
	return out
}

// RubroNames rubros ordenados alfabéticamente.
func (c *CategoryConfig) RubroNames() []string {
	names := make([]string, 0, len(c.Rubros))
	for k := range c.Rubros {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// HasRubro indica si el rubro existe.
func (c *CategoryConfig) HasRubro(rubro string) bool {
	_, ok := c.Rubros[rubro]
	return ok
}

// HasSegmento indica si el segmento existe dentro del rubro.
func (c *CategoryConfig) HasSegmento(rubro, segmento string) bool {
	for _, s := range c.Rubros[rubro] {
		if s == segmento {
			return true
		}
	}
	return false
}

// AddRubro inserta un rubro sin segmentos.
func (c *CategoryConfig) AddRubro(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	if c.HasRubro(name) {
		return domain.ErrCategoryExists
	}
	if c.Rubros == nil {
		c.Rubros = make(map[string][]string)
	}
	c.Rubros[name] = []string{}
	return nil
}

// AddSegmento agrega un segmento al final de la lista del rubro.
func (c *CategoryConfig) AddSegmento(rubro, segmento string) error {
	rubro, segmento = strings.TrimSpace(rubro), strings.TrimSpace(segmento)
	if rubro == "" || segmento == "" {
		return domain.ErrInvalidInput
	}
	if !c.HasRubro(rubro) {
		return domain.ErrCategoryNotFound
	}
	if c.HasSegmento(rubro, segmento) {
		return domain.ErrSubcategoryExists
	}
	c.Rubros[rubro] = append(c.Rubros[rubro], segmento)
	return nil
}

// RemoveRubro elimina el rubro con todos sus segmentos. Los productos que lo usan no se tocan.
func (c *CategoryConfig) RemoveRubro(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	if !c.HasRubro(name) {
		return domain.ErrCategoryNotFound
	}
	delete(c.Rubros, name)
	return nil
}

// RemoveSegmento quita un segmento del rubro.
func (c *CategoryConfig) RemoveSegmento(rubro, segmento string) error {
	rubro, segmento = strings.TrimSpace(rubro), strings.TrimSpace(segmento)
	if rubro == "" || segmento == "" {
		return domain.ErrInvalidInput
	}
	if !c.HasRubro(rubro) {
		return domain.ErrCategoryNotFound
	}
	segs := c.Rubros[rubro]
	for i, s := range segs {
		if s == segmento {
			c.Rubros[rubro] = append(segs[:i:i], segs[i+1:]...)
			return nil
		}
	}
	return domain.ErrSubcategoryNotFound
}
