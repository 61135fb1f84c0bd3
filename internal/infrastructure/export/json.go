package export

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Cargas-api/internal/application/carga"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

// renderJSON documento con la misma forma que la carga guardada.
func renderJSON(load *entity.Load) ([]byte, error) {
	b, err := json.MarshalIndent(carga.ToLoadResponse(load), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return b, nil
}
