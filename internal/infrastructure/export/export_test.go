package export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Cargas-api/internal/application/carga"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/blob/memory"
)

func sampleLoad() *entity.Load {
	return &entity.Load{
		ID:      "5f0c2d7e-1111-4222-8333-944455556666",
		Date:    time.Date(2026, 3, 4, 15, 6, 7, 0, time.UTC),
		Vehicle: entity.VehicleSnapshot{ID: "v1", Brand: "Ford", Model: "F350", Plate: "ABC-123"},
		User:    &entity.UserSnapshot{ID: "u1", FirstName: "Ana", LastName: "Pérez"},
		Lines: []entity.LoadLine{
			{ProductID: "p1", Name: `Cerveza "Pilsen"`, Presentation: "Lata", Rubro: "Bebidas", Segmento: "Cerveza", Price: decimal.RequireFromString("1.5"), Quantity: 10},
			{ProductID: "p2", Name: "Agua", Presentation: "Botella 600ml", Rubro: "Bebidas", Segmento: "Aguas", Price: decimal.RequireFromString("0.80"), Quantity: 5},
		},
	}
}

func TestRenderCSV_Formato(t *testing.T) {
	out, err := renderCSV(sampleLoad(), EncodingUTF8)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\r\n"), "\r\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `"Vehiculo: Ford F350 (ABC-123)"`, lines[0])
	assert.Equal(t, `"Usuario: Ana Pérez"`, lines[1])
	assert.Equal(t, `"ProductoID","ProductoNombre","ProductoPresentacion","ProductoRubro","ProductoSegmento","ProductoPrecioUSD","CantidadCargada"`, lines[2])
	assert.Equal(t, `"p1","Cerveza ""Pilsen""","Lata","Bebidas","Cerveza",1.50,10`, lines[3])
	assert.Equal(t, `"p2","Agua","Botella 600ml","Bebidas","Aguas",0.80,5`, lines[4])
}

func TestRenderCSV_SinUsuario(t *testing.T) {
	load := sampleLoad()
	load.User = nil

	out, err := renderCSV(load, "")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Usuario: -"`)
}

func TestRenderCSV_Windows1252(t *testing.T) {
	out, err := renderCSV(sampleLoad(), EncodingWindows1252)
	require.NoError(t, err)

	// é es un solo byte (0xE9) en Windows-1252.
	assert.True(t, bytes.Contains(out, []byte{'P', 0xE9, 'r', 'e', 'z'}))

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(out)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "Ana Pérez")
}

func TestRenderCSV_CodificacionDesconocida(t *testing.T) {
	_, err := renderCSV(sampleLoad(), "latin-9")
	assert.Error(t, err)
}

func TestRenderJSON_MismaFormaQueLaCarga(t *testing.T) {
	out, err := renderJSON(sampleLoad())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "5f0c2d7e-1111-4222-8333-944455556666", doc["id"])
	assert.Contains(t, doc, "fechaCarga")
	assert.Contains(t, doc, "vehiculo")
	productos, ok := doc["productos"].([]any)
	require.True(t, ok)
	assert.Len(t, productos, 2)
}

func TestRenderPDF_GeneraDocumento(t *testing.T) {
	out, err := renderPDF(sampleLoad())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFileName(t *testing.T) {
	load := sampleLoad()
	assert.Equal(t, "20260304-150607_ABC-123_"+load.ID+".csv", FileName(load, carga.FormatCSV))

	load.Vehicle.Plate = "AB C/12"
	assert.Equal(t, "20260304-150607_AB-C-12_"+load.ID+".pdf", FileName(load, carga.FormatPDF))

	load.Vehicle.Plate = " "
	assert.Contains(t, FileName(load, carga.FormatJSON), "_sin-placa_")
}

func TestService_Render(t *testing.T) {
	svc := NewService(nil, EncodingWindows1252)

	f, err := svc.Render(sampleLoad(), carga.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=windows-1252", f.ContentType)

	f, err = svc.Render(sampleLoad(), carga.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", f.ContentType)

	_, err = svc.Render(sampleLoad(), "xlsx")
	assert.Error(t, err)
}

func TestService_SaveGuardaBajoPrefijo(t *testing.T) {
	store := memory.New()
	svc := NewService(store, EncodingUTF8)
	load := sampleLoad()

	key, err := svc.Save(context.Background(), load, carga.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "cargas/20260304-150607_ABC-123_"+load.ID+".csv", key)

	info, rc, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", info.ContentType)
	assert.True(t, strings.HasPrefix(string(body), `"Vehiculo: Ford F350 (ABC-123)"`))
}

func TestService_SaveSinStore_Error(t *testing.T) {
	_, err := NewService(nil, "").Save(context.Background(), sampleLoad(), carga.FormatJSON)
	assert.Error(t, err)
}
