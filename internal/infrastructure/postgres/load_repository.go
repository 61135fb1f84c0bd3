package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/domain/repository"
)

var _ repository.LoadRepository = (*LoadRepo)(nil)

// LoadRepo guarda cargas en loads + load_lines. Solo inserta: no hay UPDATE ni DELETE.
type LoadRepo struct {
	db txBeginner
	q  Querier
}

// DB lo satisface *pgxpool.Pool.
type DB interface {
	Querier
	txBeginner
}

// NewLoadRepository construye el adaptador de cargas.
func NewLoadRepository(db DB) *LoadRepo {
	return &LoadRepo{db: db, q: db}
}

// Create inserta la cabecera y sus líneas en una transacción: una carga nunca queda a medias.
func (r *LoadRepo) Create(ctx context.Context, l *entity.Load) error {
	return runInTx(ctx, r.db, func(tx pgx.Tx) error {
		var userID, first, last *string
		if l.User != nil {
			userID, first, last = &l.User.ID, &l.User.FirstName, &l.User.LastName
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO loads (id, fecha_carga, vehicle_id, vehicle_brand, vehicle_model, vehicle_plate,
				user_id, user_first_name, user_last_name, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			l.ID, l.Date, l.Vehicle.ID, l.Vehicle.Brand, l.Vehicle.Model, l.Vehicle.Plate,
			userID, first, last, l.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert load: %w", err)
		}
		batch := &pgx.Batch{}
		for i, line := range l.Lines {
			batch.Queue(`
				INSERT INTO load_lines (load_id, position, product_id, name, presentation, rubro, segmento, price, quantity)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				l.ID, i, line.ProductID, line.Name, line.Presentation, line.Rubro, line.Segmento, line.Price, line.Quantity,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert load lines: %w", err)
		}
		return nil
	})
}

const loadColumns = `id, fecha_carga, vehicle_id, vehicle_brand, vehicle_model, vehicle_plate,
	user_id, user_first_name, user_last_name, created_at`

func scanLoad(row pgx.Row) (*entity.Load, error) {
	var (
		l                 entity.Load
		userID, fn, lastN *string
	)
	err := row.Scan(&l.ID, &l.Date, &l.Vehicle.ID, &l.Vehicle.Brand, &l.Vehicle.Model, &l.Vehicle.Plate,
		&userID, &fn, &lastN, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	if userID != nil {
		l.User = &entity.UserSnapshot{ID: *userID}
		if fn != nil {
			l.User.FirstName = *fn
		}
		if lastN != nil {
			l.User.LastName = *lastN
		}
	}
	return &l, nil
}

// GetByID obtiene una carga con sus líneas; nil si no existe.
func (r *LoadRepo) GetByID(ctx context.Context, id string) (*entity.Load, error) {
	if !validID(id) {
		return nil, nil
	}
	l, err := scanLoad(r.q.QueryRow(ctx, `SELECT `+loadColumns+` FROM loads WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get load: %w", err)
	}
	if err := r.attachLines(ctx, []*entity.Load{l}); err != nil {
		return nil, err
	}
	return l, nil
}

// List devuelve cargas de más reciente a más antigua, con sus líneas.
func (r *LoadRepo) List(ctx context.Context, vehicleID string, limit, offset int) ([]*entity.Load, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+loadColumns+` FROM loads
		WHERE ($1 = '' OR vehicle_id::text = $1)
		ORDER BY fecha_carga DESC LIMIT $2 OFFSET $3`, vehicleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list loads: %w", err)
	}
	var list []*entity.Load
	for rows.Next() {
		l, err := scanLoad(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan load: %w", err)
		}
		list = append(list, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list loads: %w", err)
	}
	if err := r.attachLines(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *LoadRepo) attachLines(ctx context.Context, loads []*entity.Load) error {
	if len(loads) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Load, len(loads))
	ids := make([]string, 0, len(loads))
	for _, l := range loads {
		byID[l.ID] = l
		ids = append(ids, l.ID)
	}
	rows, err := r.q.Query(ctx, `
		SELECT load_id, product_id, name, presentation, rubro, segmento, price, quantity
		FROM load_lines WHERE load_id::text = ANY($1)
		ORDER BY load_id, position`, ids)
	if err != nil {
		return fmt.Errorf("get load lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			loadID string
			line   entity.LoadLine
		)
		if err := rows.Scan(&loadID, &line.ProductID, &line.Name, &line.Presentation, &line.Rubro,
			&line.Segmento, &line.Price, &line.Quantity); err != nil {
			return fmt.Errorf("scan load line: %w", err)
		}
		if l, ok := byID[loadID]; ok {
			l.Lines = append(l.Lines, line)
		}
	}
	return rows.Err()
}
