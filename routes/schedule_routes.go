package routes

import (
	"inspection-app/config"
	"inspection-app/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupScheduleRoutes(app *fiber.App, cfg config.Config, auth fiber.Handler, controller *controllers.ScheduleController) {
	api := app.Group(cfg.MainRoutes+"/inspection-schedule", auth)
	api.Post("/schedule", controller.Schedule)
	api.Put("/reschedule", controller.Reschedule)
	api.Get("/", controller.GetAll)
	api.Get("/count-by-date", controller.CountByDate)
	api.Get("/history/:callNo", controller.GetHistory)
	api.Get("/check/:callNo", controller.IsScheduled)
	api.Get("/:callNo", controller.GetByCallNo)
}
