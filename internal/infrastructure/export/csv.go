package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

// Codificaciones de CSV soportadas.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

var csvHeaders = []string{
	"ProductoID", "ProductoNombre", "ProductoPresentacion", "ProductoRubro",
	"ProductoSegmento", "ProductoPrecioUSD", "CantidadCargada",
}

// renderCSV arma el archivo: línea 1 vehículo, línea 2 usuario, línea 3 encabezados y
// una línea por producto. Todo campo de texto va entre comillas dobles.
func renderCSV(load *entity.Load, encoding string) ([]byte, error) {
	var b strings.Builder
	writeRecord(&b, quote("Vehiculo: "+load.Vehicle.Description()))
	writeRecord(&b, quote("Usuario: "+userDescription(load.User)))

	header := make([]string, len(csvHeaders))
	for i, h := range csvHeaders {
		header[i] = quote(h)
	}
	writeRecord(&b, header...)

	for _, line := range load.Lines {
		writeRecord(&b,
			quote(line.ProductID),
			quote(line.Name),
			quote(line.Presentation),
			quote(line.Rubro),
			quote(line.Segmento),
			line.Price.StringFixed(2),
			strconv.FormatInt(line.Quantity, 10),
		)
	}

	switch encoding {
	case "", EncodingUTF8:
		return []byte(b.String()), nil
	case EncodingWindows1252:
		// Excel en Windows abre CSV como ANSI; las tildes se rompen en UTF-8.
		var out bytes.Buffer
		w := transform.NewWriter(&out, charmap.Windows1252.NewEncoder())
		if _, err := w.Write([]byte(b.String())); err != nil {
			return nil, fmt.Errorf("csv: codificar windows-1252: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("csv: codificar windows-1252: %w", err)
		}
		return out.Bytes(), nil
	default:
		return nil, fmt.Errorf("csv: codificación desconocida %q", encoding)
	}
}

func writeRecord(b *strings.Builder, fields ...string) {
	b.WriteString(strings.Join(fields, ","))
	b.WriteString("\r\n")
}

// quote encierra s entre comillas dobles duplicando las comillas internas.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func userDescription(u *entity.UserSnapshot) string {
	if u == nil {
		return "-"
	}
	return u.FullName()
}
