package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/controllers"
)

func UserRoutes(app *fiber.App, ctl *controllers.Controller) {
	user := app.Group("/users")

	user.Get("/", ctl.GetUsers)
	user.Post("/", ctl.CreateUser)
	user.Get("/:id", ctl.GetUserByID)
	user.Put("/:id", ctl.UpdateUser)
	user.Delete("/:id", ctl.DeleteUser)
	user.Post("/:id/image", ctl.UploadUserImage)
	user.Get("/:id/CV", ctl.GetUserCV)

	user.Get("/:id/notifications", ctl.GetUserNotifications)
	user.Put("/:id/notifications/:notificationId/read", ctl.MarkNotificationAsRead)
	user.Delete("/:id/notifications/:notificationId", ctl.DeleteNotification)
}
