package controllers

import (
	"inspection-app/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Health reports whether the database answers a ping.
func (c *HealthController) Health(ctx *fiber.Ctx) error {
	if err := database.Ping(ctx.UserContext(), c.DB); err != nil {
		return failure(ctx, fiber.StatusServiceUnavailable, "Database unavailable", err)
	}
	return success(ctx, "OK", fiber.Map{"status": "up"})
}
