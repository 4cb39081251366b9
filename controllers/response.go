package controllers

import (
	"errors"
	"inspection-app/logger"
	"inspection-app/services"

	"github.com/gofiber/fiber/v2"
)

func success(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func failure(ctx *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return ctx.Status(status).JSON(body)
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return failure(ctx, fiber.StatusBadRequest, "Invalid request body", err)
}

// respondError maps a service error onto the response envelope.
func respondError(ctx *fiber.Ctx, notFound string, err error) error {
	var (
		ve *services.ValidationError
		ce *services.ConflictError
		se *services.StorageError
	)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return failure(ctx, fiber.StatusNotFound, notFound, nil)
	case errors.As(err, &ve):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": ve.Message,
			"error":   ve.Error(),
			"fields":  ve.Fields,
		})
	case errors.As(err, &ce):
		return failure(ctx, fiber.StatusConflict, ce.Message, nil)
	case errors.As(err, &se) && se.Conflict:
		return failure(ctx, fiber.StatusConflict, "Record already exists", err)
	default:
		logger.New("controllers").Function("respondError").Er("request failed", err, "path", ctx.Path())
		return failure(ctx, fiber.StatusInternalServerError, "Internal server error", err)
	}
}
