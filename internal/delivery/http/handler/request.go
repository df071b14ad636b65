package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-navigator/internal/pkg/errors"
	"github.com/campus-navigator/internal/pkg/validator"
)

// parseBody - разбор и валидация JSON тела запроса
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	return validate(req)
}

// parseQuery - разбор и валидация query-параметров. Перечисленные ключи обязательны
func parseQuery(c *fiber.Ctx, req interface{}, required ...string) error {
	for _, key := range required {
		if c.Query(key) == "" {
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{key: "required"})
		}
	}
	if err := c.QueryParser(req); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid query parameters")
	}
	return validate(req)
}

func validate(req interface{}) error {
	if err := validator.Validate(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(validator.Details(err))
	}
	return nil
}
