package handlers

import (
	"errors"
	"fmt"
	"log"

	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// serviceError translates service and repository errors into structured
// JSON responses. Nothing here leaks internals: unknown errors become a
// bare 500.
func serviceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fiber.Map{validationErr.Field: validationErr.Message},
		})
	}

	var notEmptyErr *services.CategoryNotEmptyError
	if errors.As(err, &notEmptyErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": notEmptyErr.Error(),
		})
	}

	if errors.Is(err, repositories.ErrCategoryNotFound) ||
		errors.Is(err, repositories.ErrProductNotFound) ||
		errors.Is(err, repositories.ErrImageNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Printf("Unhandled service error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

// bodyParseError is the uniform 400 for an unreadable request body.
func bodyParseError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// structValidationError turns validator errors into the field-error map
// used across all 400 validation responses.
func structValidationError(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return bodyParseError(c, err)
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
