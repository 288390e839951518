package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/controllers"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
)

// Setup registers every API route
func Setup(app *fiber.App, ctl *controllers.Controller) {
	app.Get("/health", ctl.GetHealth)

	UserRoutes(app, ctl)
	ExperienceRoutes(app, ctl)
	ConnectionRoutes(app, ctl)
	PostRoutes(app, ctl)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Route " + c.Method() + " " + c.Path() + " not found"))
	})
}
