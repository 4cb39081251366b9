package routes

import (
	"inspection-app/config"
	"inspection-app/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupInspectionFormRoutes(app *fiber.App, cfg config.Config, auth fiber.Handler, controller *controllers.InspectionFormController) {
	api := app.Group(cfg.MainRoutes+"/inspection-form", auth)

	// static prefixes first, /:callNo would swallow them
	api.Get("/history/:callNo", controller.GetHistory)
	api.Get("/history", controller.MissingCallNo)

	po := api.Group("/po-details")
	po.Get("/", controller.MissingCallNo)
	po.Get("/:callNo", controller.GetPODetails)
	po.Post("/", controller.SavePODetails)
	po.Put("/verify/:callNo", controller.VerifyPODetails)

	calls := api.Group("/call-details")
	calls.Get("/", controller.ListCallDetails)
	calls.Get("/:callNo", controller.GetCallDetails)
	calls.Post("/", controller.SaveCallDetails)
	calls.Put("/", controller.UpdateCallDetails)
	calls.Put("/verify/:callNo", controller.VerifyCallDetails)

	sub := api.Group("/sub-po-details")
	sub.Get("/", controller.MissingCallNo)
	sub.Get("/:callNo", controller.GetSubPODetails)
	sub.Post("/", controller.SaveSubPODetails)
	sub.Put("/verify/:callNo", controller.VerifySubPODetails)

	lines := api.Group("/production-lines")
	lines.Get("/", controller.MissingCallNo)
	lines.Get("/:callNo", controller.GetProductionLines)
	lines.Post("/:callNo", controller.SaveProductionLines)
	lines.Put("/verify/:callNo", controller.VerifyProductionLines)

	api.Get("/:callNo/export", controller.ExportFormData)
	api.Get("/:callNo", controller.GetFormData)
}
