package carga

import (
	"github.com/jhoicas/Cargas-api/internal/application/dto"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

// ToLoadResponse convierte una carga al documento de salida.
func ToLoadResponse(l *entity.Load) dto.LoadResponse {
	out := dto.LoadResponse{
		ID:         l.ID,
		FechaCarga: l.Date,
		Vehiculo: dto.VehicleSnapshotDTO{
			ID:     l.Vehicle.ID,
			Marca:  l.Vehicle.Brand,
			Modelo: l.Vehicle.Model,
			Placa:  l.Vehicle.Plate,
		},
		Productos: make([]dto.LoadLineDTO, 0, len(l.Lines)),
	}
	if l.User != nil {
		out.Usuario = &dto.UserSnapshotDTO{ID: l.User.ID, Nombre: l.User.FirstName, Apellido: l.User.LastName}
	}
	for _, line := range l.Lines {
		out.Productos = append(out.Productos, dto.LoadLineDTO{
			ProductID:    line.ProductID,
			Producto:     line.Name,
			Presentacion: line.Presentation,
			Rubro:        line.Rubro,
			Segmento:     line.Segmento,
			Precio:       line.Price,
			Cantidad:     line.Quantity,
		})
	}
	return out
}

// ToLoadResultResponse convierte el resultado de RegisterLoad a la salida HTTP.
func ToLoadResultResponse(r *LoadResult) dto.LoadResultResponse {
	out := dto.LoadResultResponse{
		LoadID:     r.Load.ID,
		Status:     r.Status,
		Load:       ToLoadResponse(r.Load),
		Reconciled: make([]dto.ReconciledDTO, 0, len(r.Reconciled)),
		ExportKey:  r.ExportKey,
	}
	for _, s := range r.Reconciled {
		out.Reconciled = append(out.Reconciled, dto.ReconciledDTO{ProductID: s.ProductID, Cantidad: s.Quantity})
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, dto.ReconcileFailureDTO{
			ProductID: f.Line.ProductID,
			Producto:  f.Line.Name,
			Cantidad:  f.Line.Quantity,
			Error:     f.Err.Error(),
		})
	}
	if r.ExportErr != nil {
		out.ExportError = r.ExportErr.Error()
	}
	return out
}

func toVehicleStockDTO(s *entity.VehicleStock) dto.VehicleStockDTO {
	return dto.VehicleStockDTO{
		ProductID:    s.ProductID,
		Producto:     s.Name,
		Presentacion: s.Presentation,
		Rubro:        s.Rubro,
		Segmento:     s.Segmento,
		Precio:       s.Price,
		Cantidad:     s.Quantity,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToDraftResponse convierte un borrador a la salida HTTP.
func ToDraftResponse(f LoadFlow) dto.DraftResponse {
	out := dto.DraftResponse{
		ID:         f.ID,
		Estado:     string(f.State),
		VehiculoID: f.VehicleID,
		Productos:  make([]dto.LoadItemRequest, 0, len(f.Items)),
		Eventos:    []string{},
		Error:      f.LastError,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
	for _, it := range f.Items {
		out.Productos = append(out.Productos, dto.LoadItemRequest{ProductID: it.ProductID, Cantidad: it.Quantity})
	}
	for _, ev := range AllowedEvents(f.State) {
		out.Eventos = append(out.Eventos, string(ev))
	}
	if f.Result != nil {
		r := ToLoadResultResponse(f.Result)
		out.Resultado = &r
	}
	return out
}
