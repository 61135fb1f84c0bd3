package carga_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cargas-api/internal/application/carga"
	"github.com/jhoicas/Cargas-api/internal/domain"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

func TestRegisterLoad_CargaSimple(t *testing.T) {
	f := newFixture()
	fixed := time.Date(2026, 3, 4, 15, 30, 0, 0, time.FixedZone("COT", -5*3600))
	uc := f.useCase(carga.WithClock(func() time.Time { return fixed }))

	res, err := uc.RegisterLoad(context.Background(), carga.RegisterLoadInput{
		VehicleID: "v1",
		Items:     []carga.ItemInput{{ProductID: "p1", Quantity: 10}},
	})
	require.NoError(t, err)

	assert.Equal(t, carga.StatusOK, res.Status)
	require.Len(t, f.loads.loads, 1)
	load := f.loads.loads[0]
	assert.Equal(t, fixed.UTC(), load.Date, "fechaCarga se guarda en UTC")
	assert.Equal(t, entity.VehicleSnapshot{ID: "v1", Brand: "Ford", Model: "F350", Plate: "ABC-123"}, load.Vehicle)
	require.Len(t, load.Lines, 1)
	assert.Equal(t, "Cerveza", load.Lines[0].Name)
	assert.Equal(t, "Lata", load.Lines[0].Presentation)
	assert.True(t, load.Lines[0].Price.Equal(decimal.RequireFromString("1.5")))
	assert.Nil(t, load.User)

	row, _ := f.stock.Get(context.Background(), "v1", "p1")
	require.NotNil(t, row)
	assert.Equal(t, int64(10), row.Quantity)
	require.Len(t, res.Reconciled, 1)
	assert.Equal(t, int64(10), res.Reconciled[0].Quantity)
}

func TestRegisterLoad_SegundaCargaSuma(t *testing.T) {
	f := newFixture()
	uc := f.useCase()
	ctx := context.Background()

	_, err := uc.RegisterLoad(ctx, carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 10}}})
	require.NoError(t, err)
	res, err := uc.RegisterLoad(ctx, carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 5}}})
	require.NoError(t, err)

	row, _ := f.stock.Get(ctx, "v1", "p1")
	assert.Equal(t, int64(15), row.Quantity)
	assert.Len(t, f.loads.loads, 2)
	assert.Equal(t, int64(15), res.Reconciled[0].Quantity)

	// la primera carga no cambia con la segunda
	assert.Equal(t, int64(10), f.loads.loads[0].Lines[0].Quantity)
	assert.Equal(t, int64(5), f.loads.loads[1].Lines[0].Quantity)
}

func TestRegisterLoad_SinVehiculo_NoEscribe(t *testing.T) {
	f := newFixture()
	uc := f.useCase()

	_, err := uc.RegisterLoad(context.Background(), carga.RegisterLoadInput{
		VehicleID: "  ",
		Items:     []carga.ItemInput{{ProductID: "p1", Quantity: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrVehicleRequired)
	assert.Empty(t, f.loads.loads)
	assert.Zero(t, f.stock.calls)
}

func TestRegisterLoad_ValidacionSinEscrituras(t *testing.T) {
	cases := []struct {
		name  string
		in    carga.RegisterLoadInput
		isErr error
	}{
		{"sin productos", carga.RegisterLoadInput{VehicleID: "v1"}, domain.ErrNoItems},
		{"cantidades no positivas", carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 0}, {ProductID: "p2", Quantity: -3}}}, domain.ErrNoItems},
		{"vehiculo inexistente", carga.RegisterLoadInput{VehicleID: "v9", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 1}}}, domain.ErrNotFound},
		{"producto inexistente", carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 1}, {ProductID: "zz", Quantity: 1}}}, domain.ErrNotFound},
		{"formato de exportacion", carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 1}}, Export: "xlsx"}, domain.ErrInvalidInput},
		{"suma de repetidos desborda", carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: math.MaxInt64}, {ProductID: "p1", Quantity: 2}}}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			rec := &stubRecorder{}
			_, err := f.useCase(carga.WithRecorder(rec)).RegisterLoad(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.isErr)
			assert.True(t, carga.IsValidationError(err))
			assert.Empty(t, f.loads.loads)
			assert.Zero(t, f.stock.calls)
			assert.Empty(t, rec.statuses)
		})
	}
}

func TestRegisterLoad_DescartaCerosYUneRepetidos(t *testing.T) {
	f := newFixture()
	res, err := f.useCase().RegisterLoad(context.Background(), carga.RegisterLoadInput{
		VehicleID: "v1",
		Items: []carga.ItemInput{
			{ProductID: "p2", Quantity: 0},
			{ProductID: "p1", Quantity: 4},
			{ProductID: "p2", Quantity: 2},
			{ProductID: "p1", Quantity: 3},
		},
	})
	require.NoError(t, err)

	lines := res.Load.Lines
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, int64(7), lines[0].Quantity)
	assert.Equal(t, "p2", lines[1].ProductID)
	assert.Equal(t, int64(2), lines[1].Quantity)
	for _, l := range lines {
		assert.Positive(t, l.Quantity)
	}
}

func TestRegisterLoad_CambioDePrecioNoAfectaCargaGuardada(t *testing.T) {
	f := newFixture()
	uc := f.useCase()
	ctx := context.Background()

	res, err := uc.RegisterLoad(ctx, carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 1}}})
	require.NoError(t, err)

	f.products.products["p1"].Price = decimal.RequireFromString("9.99")
	f.products.products["p1"].Name = "Cerveza Premium"

	stored, _ := f.loads.GetByID(ctx, res.Load.ID)
	assert.True(t, stored.Lines[0].Price.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, "Cerveza", stored.Lines[0].Name)
}

func TestRegisterLoad_NoDescuentaInventarioGeneral(t *testing.T) {
	f := newFixture()
	qty := int64(100)
	f.products.products["p1"].Quantity = &qty

	_, err := f.useCase().RegisterLoad(context.Background(), carga.RegisterLoadInput{VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 40}}})
	require.NoError(t, err)
	assert.Equal(t, int64(100), *f.products.products["p1"].Quantity)
}

func TestRegisterLoad_ConUsuario(t *testing.T) {
	f := newFixture()
	user := &entity.UserSnapshot{ID: "u1", FirstName: "Ana", LastName: "Pérez"}
	res, err := f.useCase().RegisterLoad(context.Background(), carga.RegisterLoadInput{
		VehicleID: "v1", User: user, Items: []carga.ItemInput{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Load.User)
	assert.Equal(t, "Ana Pérez", res.Load.User.FullName())

	user.FirstName = "Otro"
	assert.Equal(t, "Ana", res.Load.User.FirstName, "la carga guarda su propia copia del usuario")
}

func TestRegisterLoad_FalloAlGuardar_NoConcilia(t *testing.T) {
	f := newFixture()
	f.loads.failing = true
	rec := &stubRecorder{}

	res, err := f.useCase(carga.WithRecorder(rec)).RegisterLoad(context.Background(), carga.RegisterLoadInput{
		VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 1}},
	})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, errDB))
	assert.False(t, carga.IsValidationError(err))
	assert.Zero(t, f.stock.calls)
	assert.Equal(t, []string{carga.StatusFailed}, rec.statuses)
}

func TestRegisterLoad_FalloParcialDeConciliacion(t *testing.T) {
	f := newFixture()
	f.stock.failFor["p1"] = true
	rec := &stubRecorder{}

	res, err := f.useCase(carga.WithRecorder(rec)).RegisterLoad(context.Background(), carga.RegisterLoadInput{
		VehicleID: "v1",
		Items:     []carga.ItemInput{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 3}},
	})
	require.NoError(t, err, "la carga quedó guardada")

	assert.Equal(t, carga.StatusSavedWithWarnings, res.Status)
	assert.True(t, res.HasWarnings())
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "p1", res.Failures[0].Line.ProductID)
	require.Len(t, res.Reconciled, 1)
	assert.Equal(t, "p2", res.Reconciled[0].ProductID)

	assert.Len(t, f.loads.loads, 1, "no hay rollback de la carga")
	assert.Equal(t, 2, f.stock.calls, "se intenta cada producto")
	assert.Equal(t, []string{"p1"}, rec.failed)
	assert.Equal(t, []string{carga.StatusSavedWithWarnings}, rec.statuses)
}

func TestRegisterLoad_Exportacion(t *testing.T) {
	f := newFixture()
	exp := &stubExporter{}

	res, err := f.useCase(carga.WithExporter(exp)).RegisterLoad(context.Background(), carga.RegisterLoadInput{
		VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 1}}, Export: carga.FormatCSV,
	})
	require.NoError(t, err)
	assert.Equal(t, carga.StatusOK, res.Status)
	assert.Equal(t, "cargas/"+res.Load.ID+".csv", res.ExportKey)
	assert.Len(t, exp.saved, 1)
}

func TestRegisterLoad_FalloDeExportacionEsAdvertencia(t *testing.T) {
	f := newFixture()
	exp := &stubExporter{err: errors.New("bucket no disponible")}
	rec := &stubRecorder{}

	res, err := f.useCase(carga.WithExporter(exp), carga.WithRecorder(rec)).RegisterLoad(context.Background(), carga.RegisterLoadInput{
		VehicleID: "v1", Items: []carga.ItemInput{{ProductID: "p1", Quantity: 1}}, Export: carga.FormatPDF,
	})
	require.NoError(t, err)
	assert.Equal(t, carga.StatusSavedWithWarnings, res.Status)
	assert.Empty(t, res.ExportKey)
	assert.Error(t, res.ExportErr)
	assert.Empty(t, res.Failures)
	assert.Len(t, f.loads.loads, 1)
	assert.Equal(t, []string{carga.FormatPDF}, rec.exports)
}

func TestToLoadResultResponse(t *testing.T) {
	f := newFixture()
	f.stock.failFor["p2"] = true
	res, err := f.useCase().RegisterLoad(context.Background(), carga.RegisterLoadInput{
		VehicleID: "v1",
		User:      &entity.UserSnapshot{ID: "u1", FirstName: "Ana"},
		Items:     []carga.ItemInput{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 3}},
	})
	require.NoError(t, err)

	out := carga.ToLoadResultResponse(res)
	assert.Equal(t, res.Load.ID, out.LoadID)
	assert.Equal(t, "saved_with_warnings", out.Status)
	assert.Equal(t, "ABC-123", out.Load.Vehiculo.Placa)
	require.NotNil(t, out.Load.Usuario)
	assert.Equal(t, "Ana", out.Load.Usuario.Nombre)
	require.Len(t, out.Load.Productos, 2)
	assert.Equal(t, "Cerveza", out.Load.Productos[0].Producto)
	require.Len(t, out.Failures, 1)
	assert.Equal(t, "p2", out.Failures[0].ProductID)
	assert.Equal(t, errDB.Error(), out.Failures[0].Error)
}
