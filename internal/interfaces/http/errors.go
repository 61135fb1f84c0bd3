package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cargas-api/internal/application/dto"
	"github.com/jhoicas/Cargas-api/internal/domain"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorTable el primer error que coincide (errors.Is) define status y código.
var errorTable = []errorMapping{
	{domain.ErrVehicleRequired, fiber.StatusBadRequest, "VEHICLE_REQUIRED"},
	{domain.ErrNoItems, fiber.StatusBadRequest, "NO_ITEMS"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrCategoryNotFound, fiber.StatusNotFound, "CATEGORY_NOT_FOUND"},
	{domain.ErrSubcategoryNotFound, fiber.StatusNotFound, "SUBCATEGORY_NOT_FOUND"},
	{domain.ErrCategoryExists, fiber.StatusConflict, "CATEGORY_EXISTS"},
	{domain.ErrSubcategoryExists, fiber.StatusConflict, "SUBCATEGORY_EXISTS"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrBackendUnavailable, fiber.StatusServiceUnavailable, "BACKEND_UNAVAILABLE"},
}

// writeError responde con el status correspondiente a err; 500 si no es un error de dominio.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}

// page lee limit/offset de la query: limit por defecto 20, máximo 100.
func page(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
