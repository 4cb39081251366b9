package routes

import (
	"inspection-app/config"
	"inspection-app/controllers"
	"inspection-app/middleware"
	"inspection-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Deps are the long lived objects the routes are built from.
type Deps struct {
	DB        *gorm.DB
	Registry  *prometheus.Registry
	Forms     *services.InspectionFormService
	Export    *services.ExportService
	Schedules *services.ScheduleService
}

func SetupRoutes(app *fiber.App, cfg config.Config, deps Deps) {
	app.Use(middleware.RequestMetrics(deps.Registry))

	health := controllers.NewHealthController(deps.DB)
	app.Get("/health", health.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	auth := middleware.AuthMiddleware(cfg.JWTSecret)
	SetupInspectionFormRoutes(app, cfg, auth, controllers.NewInspectionFormController(deps.Forms, deps.Export))
	SetupScheduleRoutes(app, cfg, auth, controllers.NewScheduleController(deps.Schedules))
}
