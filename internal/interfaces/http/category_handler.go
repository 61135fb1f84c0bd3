package http

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cargas-api/internal/application/dto"
)

// CategoryEditor lo implementa *category.Editor.
type CategoryEditor interface {
	Get(ctx context.Context) (*dto.CategoryConfigResponse, error)
	AddCategory(ctx context.Context, rubro string) (*dto.CategoryConfigResponse, error)
	AddSubcategory(ctx context.Context, rubro, segmento string) (*dto.CategoryConfigResponse, error)
	RemoveCategory(ctx context.Context, rubro string) (*dto.CategoryConfigResponse, error)
	RemoveSubcategory(ctx context.Context, rubro, segmento string) (*dto.CategoryConfigResponse, error)
}

// CategoryHandler edición del mapa Rubro -> Segmentos. Cada respuesta trae la configuración completa.
type CategoryHandler struct {
	editor CategoryEditor
}

func NewCategoryHandler(editor CategoryEditor) *CategoryHandler {
	return &CategoryHandler{editor: editor}
}

// Get godoc
// @Summary      Configuración de rubros y segmentos
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryConfigResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.editor.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddCategory godoc
// @Summary      Agregar rubro
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "rubro"
// @Success      201   {object}  dto.CategoryConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) AddCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.editor.AddCategory(c.UserContext(), in.Rubro)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveCategory godoc
// @Summary      Eliminar rubro y sus segmentos
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        rubro  path  string  true  "Rubro"
// @Success      200    {object}  dto.CategoryConfigResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/categories/{rubro} [delete]
func (h *CategoryHandler) RemoveCategory(c *fiber.Ctx) error {
	rubro, err := pathParam(c, "rubro")
	if err != nil {
		return badRequest(c, "INVALID_PATH", "rubro mal codificado")
	}
	out, err := h.editor.RemoveCategory(c.UserContext(), rubro)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddSubcategory godoc
// @Summary      Agregar segmento a un rubro
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        rubro  path  string  true  "Rubro"
// @Param        body   body  dto.CreateSubcategoryRequest  true  "segmento"
// @Success      201    {object}  dto.CategoryConfigResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/categories/{rubro}/segments [post]
func (h *CategoryHandler) AddSubcategory(c *fiber.Ctx) error {
	rubro, err := pathParam(c, "rubro")
	if err != nil {
		return badRequest(c, "INVALID_PATH", "rubro mal codificado")
	}
	var in dto.CreateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.editor.AddSubcategory(c.UserContext(), rubro, in.Segmento)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveSubcategory godoc
// @Summary      Eliminar segmento de un rubro
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        rubro     path  string  true  "Rubro"
// @Param        segmento  path  string  true  "Segmento"
// @Success      200       {object}  dto.CategoryConfigResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/categories/{rubro}/segments/{segmento} [delete]
func (h *CategoryHandler) RemoveSubcategory(c *fiber.Ctx) error {
	rubro, err := pathParam(c, "rubro")
	if err != nil {
		return badRequest(c, "INVALID_PATH", "rubro mal codificado")
	}
	segmento, err := pathParam(c, "segmento")
	if err != nil {
		return badRequest(c, "INVALID_PATH", "segmento mal codificado")
	}
	out, err := h.editor.RemoveSubcategory(c.UserContext(), rubro, segmento)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// pathParam fiber no decodifica %XX en los parámetros de ruta.
func pathParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
