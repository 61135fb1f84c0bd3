package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

var errNoDB = errors.New("sin base de datos")

// recordingQuerier registra el SQL enviado y falla todas las operaciones.
type recordingQuerier struct {
	sqls []string
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.sqls = append(q.sqls, sql)
	return pgconn.CommandTag{}, errNoDB
}

func (q *recordingQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.sqls = append(q.sqls, sql)
	return nil, errNoDB
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.sqls = append(q.sqls, sql)
	return errRow{}
}

type errRow struct{}

func (errRow) Scan(...any) error { return errNoDB }

func newStockFixture() *entity.VehicleStock {
	return &entity.VehicleStock{
		VehicleID: "3f1c9a2e-8d4b-4e7a-9c1f-2b3d4e5f6a7b",
		ProductID: "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d",
		Name:      "Cerveza",
		Price:     decimal.RequireFromString("1.5"),
		Quantity:  10,
	}
}
