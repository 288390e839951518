package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/controllers"
)

func ExperienceRoutes(app *fiber.App, ctl *controllers.Controller) {
	experience := app.Group("/users/:userId/experiences")

	experience.Get("/", ctl.GetExperiences)
	experience.Post("/", ctl.CreateExperience)
	// registered before /:id so "CSV" is not read as an id
	experience.Get("/CSV", ctl.DownloadExperiencesCSV)
	experience.Get("/:id", ctl.GetExperience)
	experience.Put("/:id", ctl.UpdateExperience)
	experience.Delete("/:id", ctl.DeleteExperience)
}
