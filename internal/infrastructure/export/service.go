// Package export genera los archivos descargables de una carga (CSV, JSON, PDF)
// y los guarda en el almacenamiento de objetos.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Cargas-api/internal/application/carga"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/blob"
)

var _ carga.Exporter = (*Service)(nil)

// KeyPrefix prefijo de las exportaciones en el almacenamiento.
const KeyPrefix = "cargas/"

var contentTypes = map[string]string{
	carga.FormatCSV:  "text/csv",
	carga.FormatJSON: "application/json",
	carga.FormatPDF:  "application/pdf",
}

// Service implementa carga.Exporter.
type Service struct {
	store       blob.Store
	csvEncoding string
}

// NewService construye el exportador. store puede ser nil: Render funciona y Save falla.
func NewService(store blob.Store, csvEncoding string) *Service {
	return &Service{store: store, csvEncoding: csvEncoding}
}

// Render genera el archivo sin guardarlo.
func (s *Service) Render(load *entity.Load, format string) (*carga.ExportFile, error) {
	var (
		body []byte
		err  error
	)
	switch format {
	case carga.FormatCSV:
		body, err = renderCSV(load, s.csvEncoding)
	case carga.FormatJSON:
		body, err = renderJSON(load)
	case carga.FormatPDF:
		body, err = renderPDF(load)
	default:
		return nil, fmt.Errorf("export: formato desconocido %q", format)
	}
	if err != nil {
		return nil, err
	}
	ct := contentTypes[format]
	if format == carga.FormatCSV {
		ct += "; charset=" + nonEmpty(s.csvEncoding, EncodingUTF8)
	}
	return &carga.ExportFile{
		Name:        FileName(load, format),
		ContentType: ct,
		Body:        body,
	}, nil
}

// Save genera el archivo y lo sube bajo KeyPrefix. Devuelve la clave.
func (s *Service) Save(ctx context.Context, load *entity.Load, format string) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("export: almacenamiento no configurado")
	}
	file, err := s.Render(load, format)
	if err != nil {
		return "", err
	}
	key := KeyPrefix + file.Name
	if _, err := s.store.Put(ctx, key, bytes.NewReader(file.Body), blob.PutOptions{
		ContentType: file.ContentType,
		Metadata:    map[string]string{"load-id": load.ID, "vehicle-id": load.Vehicle.ID},
	}); err != nil {
		return "", fmt.Errorf("export: guardar %s: %w", key, err)
	}
	return key, nil
}

// FileName <YYYYMMDD-HHMMSS>_<placa>_<loadID>.<ext>, con la fecha de la carga en UTC.
func FileName(load *entity.Load, format string) string {
	return fmt.Sprintf("%s_%s_%s.%s",
		load.Date.UTC().Format("20060102-150405"),
		sanitize(load.Vehicle.Plate),
		load.ID,
		format,
	)
}

// sanitize deja solo caracteres seguros para una clave de objeto.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "sin-placa"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '-'
		}
	}, s)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
