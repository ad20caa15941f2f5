package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/objectid"
)

// Mensajes de error de la API en inglés: el contrato público del catálogo
// los expone así, independiente del idioma del código.

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Error: message})
}

func failValidation(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
		Success: false,
		Error:   "Validation failed",
		Errors:  errs,
	})
}

// requireObjectID valida el formato de un ID de ruta antes de tocar la base.
func requireObjectID(c *fiber.Ctx, id, resource string) error {
	if objectid.IsValid(id) {
		return nil
	}
	return fail(c, fiber.StatusBadRequest,
		fmt.Sprintf("Invalid %s ID format. Must be a 24-character hex string.", resource))
}

// respondDomainError traduce errores de dominio a códigos HTTP. Cualquier
// error no reconocido se propaga al ErrorHandler central (500).
func respondDomainError(c *fiber.Ctx, err error) error {
	var inUse *domain.CategoryInUseError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return fail(c, fiber.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrCategoryNotFound):
		return fail(c, fiber.StatusNotFound, "Category not found")
	case errors.Is(err, domain.ErrVariantNotFound):
		return fail(c, fiber.StatusNotFound, "Variant not found")
	case errors.Is(err, domain.ErrDuplicateSKU):
		return fail(c, fiber.StatusBadRequest, "A variant with this SKU already exists")
	case errors.Is(err, domain.ErrDuplicateSlug):
		return fail(c, fiber.StatusBadRequest, "A product with this name already exists")
	case errors.As(err, &inUse):
		return fail(c, fiber.StatusConflict,
			fmt.Sprintf("Cannot delete category. It has %d associated products.", inUse.ProductCount))
	default:
		return err
	}
}
