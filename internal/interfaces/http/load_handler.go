package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cargas-api/internal/application/carga"
	"github.com/jhoicas/Cargas-api/internal/application/dto"
)

// LoadRegistrar lo implementa *carga.RegisterLoadUseCase.
type LoadRegistrar interface {
	RegisterLoad(ctx context.Context, in carga.RegisterLoadInput) (*carga.LoadResult, error)
}

// LoadQuerier lo implementa *carga.LoadQueryUseCase.
type LoadQuerier interface {
	GetLoad(ctx context.Context, id string) (*dto.LoadResponse, error)
	ListLoads(ctx context.Context, vehicleID string, limit, offset int) (*dto.LoadListResponse, error)
	GetVehicleStock(ctx context.Context, vehicleID string) (*dto.VehicleStockResponse, error)
	ExportLoad(ctx context.Context, id, format string) (*carga.ExportFile, error)
}

// LoadHandler registro y consulta de cargas.
type LoadHandler struct {
	register LoadRegistrar
	query    LoadQuerier
}

func NewLoadHandler(register LoadRegistrar, query LoadQuerier) *LoadHandler {
	return &LoadHandler{register: register, query: query}
}

// Register godoc
// @Summary      Registrar carga en un vehículo
// @Description  201 si todo se concilió; 207 si la carga se guardó con advertencias
// @Description  (productos sin conciliar o exportación fallida).
// @Tags         loads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterLoadRequest  true  "vehículo, productos y formato de exportación opcional"
// @Success      201   {object}  dto.LoadResultResponse
// @Success      207   {object}  dto.LoadResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/loads [post]
func (h *LoadHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterLoadRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	export := strings.ToLower(strings.TrimSpace(in.Export))
	if export != "" && !carga.ValidFormat(export) {
		return badRequest(c, "INVALID_FORMAT", "export debe ser csv, json o pdf")
	}
	items := make([]carga.ItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, carga.ItemInput{ProductID: it.ProductID, Quantity: it.Cantidad})
	}
	res, err := h.register.RegisterLoad(c.UserContext(), carga.RegisterLoadInput{
		VehicleID: in.VehicleID,
		User:      GetUserSnapshot(c),
		Items:     items,
		Export:    export,
	})
	if err != nil {
		if carga.IsValidationError(err) {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE_FAILED", Message: err.Error()})
	}
	status := fiber.StatusCreated
	if res.Status == carga.StatusSavedWithWarnings {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(carga.ToLoadResultResponse(res))
}

// GetByID godoc
// @Summary      Obtener carga
// @Tags         loads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la carga"
// @Success      200  {object}  dto.LoadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/loads/{id} [get]
func (h *LoadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetLoad(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "carga no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Historial de cargas
// @Tags         loads
// @Security     Bearer
// @Produce      json
// @Param        vehiculoId  query  string  false  "Filtrar por vehículo"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {object}  dto.LoadListResponse
// @Router       /api/loads [get]
func (h *LoadHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.query.ListLoads(c.UserContext(), c.Query("vehiculoId"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Descargar carga como archivo
// @Tags         loads
// @Security     Bearer
// @Produce      octet-stream
// @Param        id      path   string  true   "ID de la carga"
// @Param        format  query  string  false  "csv | json | pdf"  default(csv)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/loads/{id}/export [get]
func (h *LoadHandler) Export(c *fiber.Ctx) error {
	format := strings.ToLower(c.Query("format", carga.FormatCSV))
	if !carga.ValidFormat(format) {
		return badRequest(c, "INVALID_FORMAT", "format debe ser csv, json o pdf")
	}
	file, err := h.query.ExportLoad(c.UserContext(), c.Params("id"), format)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Send(file.Body)
}

// VehicleStock godoc
// @Summary      Sub-inventario del vehículo
// @Tags         vehicles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vehículo"
// @Success      200  {object}  dto.VehicleStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id}/stock [get]
func (h *LoadHandler) VehicleStock(c *fiber.Ctx) error {
	out, err := h.query.GetVehicleStock(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
