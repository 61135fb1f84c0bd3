package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cargas-api/internal/application/carga"
	"github.com/jhoicas/Cargas-api/internal/application/dto"
)

// DraftHandler borradores de carga guiados por estados.
type DraftHandler struct {
	store *carga.DraftStore
}

func NewDraftHandler(store *carga.DraftStore) *DraftHandler {
	return &DraftHandler{store: store}
}

// Create godoc
// @Summary      Abrir borrador de carga
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.DraftResponse
// @Router       /api/loads/drafts [post]
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	flow := h.store.Create(GetUserSnapshot(c))
	return c.Status(fiber.StatusCreated).JSON(carga.ToDraftResponse(flow))
}

// Get godoc
// @Summary      Estado del borrador
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/loads/drafts/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	flow, err := h.store.Get(c.Params("id"), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(carga.ToDraftResponse(flow))
}

// Event godoc
// @Summary      Aplicar evento al borrador
// @Description  Eventos: seleccionar_vehiculo, agregar_producto, quitar_producto, confirmar,
// @Description  volver, enviar, reintentar. 409 si el evento no es válido en el estado actual.
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.DraftEventRequest  true  "evento y datos"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/loads/drafts/{id}/events [post]
func (h *DraftHandler) Event(c *fiber.Ctx) error {
	var in dto.DraftEventRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Evento == "" {
		return badRequest(c, "VALIDATION", "evento es requerido")
	}
	export := strings.ToLower(strings.TrimSpace(in.Export))
	if export != "" && !carga.ValidFormat(export) {
		return badRequest(c, "INVALID_FORMAT", "export debe ser csv, json o pdf")
	}
	flow, err := h.store.Apply(c.UserContext(), c.Params("id"), GetUserID(c), carga.FlowCommand{
		Event:     carga.FlowEvent(in.Evento),
		VehicleID: in.VehiculoID,
		ProductID: in.ProductoID,
		Quantity:  in.Cantidad,
		Export:    export,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(carga.ToDraftResponse(flow))
}

// Delete godoc
// @Summary      Descartar borrador
// @Tags         drafts
// @Security     Bearer
// @Param        id   path  string  true  "ID del borrador"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/loads/drafts/{id} [delete]
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.Delete(c.Params("id"), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
