package carga_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cargas-api/internal/application/carga"
	"github.com/jhoicas/Cargas-api/internal/domain"
)

func TestLoadQuery_HistorialYSubInventario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := f.useCase()
	first, err := uc.RegisterLoad(ctx, carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 4}, {ProductID: "p2", Quantity: 1}}})
	require.NoError(t, err)
	_, err = uc.RegisterLoad(ctx, carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 6}}})
	require.NoError(t, err)

	q := carga.NewLoadQueryUseCase(f.loads, f.stock, f.vehicles, &stubExporter{})

	got, err := q.GetLoad(ctx, first.Load.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Productos, 2)

	missing, err := q.GetLoad(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := q.ListLoads(ctx, "v1", 20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	stock, err := q.GetVehicleStock(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, stock.Items, 2)
	assert.Equal(t, "p1", stock.Items[0].ProductID)
	assert.Equal(t, int64(10), stock.Items[0].Cantidad)
	assert.Equal(t, int64(1), stock.Items[1].Cantidad)

	_, err = q.GetVehicleStock(ctx, "v9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoadQuery_ExportLoad(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res, err := f.useCase().RegisterLoad(ctx, carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 1}}})
	require.NoError(t, err)

	q := carga.NewLoadQueryUseCase(f.loads, f.stock, f.vehicles, &stubExporter{})
	file, err := q.ExportLoad(ctx, res.Load.ID, carga.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, res.Load.ID+".json", file.Name)

	_, err = q.ExportLoad(ctx, res.Load.ID, "xlsx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = q.ExportLoad(ctx, "nope", carga.FormatCSV)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sinExporter := carga.NewLoadQueryUseCase(f.loads, f.stock, f.vehicles, nil)
	_, err = sinExporter.ExportLoad(ctx, res.Load.ID, carga.FormatCSV)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
