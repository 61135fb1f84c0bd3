package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/domain/repository"
)

var _ repository.CategoryConfigRepository = (*CategoryConfigRepo)(nil)

// CategoryConfigRepo guarda el documento de rubros como JSONB en una única fila (id = 1).
type CategoryConfigRepo struct {
	q Querier
}

// NewCategoryConfigRepository construye el adaptador.
func NewCategoryConfigRepository(q Querier) *CategoryConfigRepo {
	return &CategoryConfigRepo{q: q}
}

// Get lee el documento; si nunca se guardó devuelve uno vacío.
func (r *CategoryConfigRepo) Get(ctx context.Context) (*entity.CategoryConfig, error) {
	var (
		raw []byte
		cfg = entity.NewCategoryConfig()
	)
	err := r.q.QueryRow(ctx, `SELECT rubros, updated_at FROM category_config WHERE id = 1`).Scan(&raw, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cfg, nil
		}
		return nil, fmt.Errorf("get category config: %w", err)
	}
	if err := json.Unmarshal(raw, &cfg.Rubros); err != nil {
		return nil, fmt.Errorf("decode category config: %w", err)
	}
	if cfg.Rubros == nil {
		cfg.Rubros = make(map[string][]string)
	}
	return cfg, nil
}

// Save reemplaza el documento completo.
func (r *CategoryConfigRepo) Save(ctx context.Context, cfg *entity.CategoryConfig) error {
	raw, err := json.Marshal(cfg.Rubros)
	if err != nil {
		return fmt.Errorf("encode category config: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO category_config (id, rubros, updated_at) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET rubros = EXCLUDED.rubros, updated_at = EXCLUDED.updated_at`,
		raw, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save category config: %w", err)
	}
	return nil
}
