package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cargas-api/internal/application/dto"
	"github.com/jhoicas/Cargas-api/internal/application/usecase"
)

// VehicleHandler CRUD de vehículos (protegido).
type VehicleHandler struct {
	uc *usecase.VehicleUseCase
}

func NewVehicleHandler(uc *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear vehículo
// @Tags         vehicles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVehicleRequest  true  "marca, modelo, placa"
// @Success      201   {object}  dto.VehicleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vehicles [post]
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener vehículo
// @Tags         vehicles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vehículo"
// @Success      200  {object}  dto.VehicleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "vehículo no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar vehículos
// @Tags         vehicles
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.VehicleListResponse
// @Router       /api/vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar vehículo
// @Tags         vehicles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vehículo"
// @Param        body  body  dto.UpdateVehicleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.VehicleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [put]
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "vehículo no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vehículo (solo admin)
// @Tags         vehicles
// @Security     Bearer
// @Param        id   path  string  true  "ID del vehículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
