package carga

import (
	"context"

	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

// Formatos de exportación soportados.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// ValidFormat indica si f es un formato de exportación conocido.
func ValidFormat(f string) bool {
	switch f {
	case FormatCSV, FormatJSON, FormatPDF:
		return true
	}
	return false
}

// ExportFile archivo generado a partir de una carga.
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}

// Exporter genera y guarda la representación descargable de una carga.
// Ninguna de sus operaciones modifica el estado persistido de la carga.
type Exporter interface {
	Render(load *entity.Load, format string) (*ExportFile, error)
	// Save genera el archivo y lo guarda en el almacenamiento de objetos; devuelve la clave.
	Save(ctx context.Context, load *entity.Load, format string) (string, error)
}

// Recorder recibe los resultados de cada registro (métricas).
type Recorder interface {
	LoadRegistered(status string, lines int)
	ReconcileFailed(productID string)
	ExportFailed(format string)
}

type noopRecorder struct{}

func (noopRecorder) LoadRegistered(string, int) {}
func (noopRecorder) ReconcileFailed(string)     {}
func (noopRecorder) ExportFailed(string)        {}
