package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/controllers"
)

// ConnectionRoutes sets up the friend request routes: sending, answering, listing and status
func ConnectionRoutes(app *fiber.App, ctl *controllers.Controller) {
	user := app.Group("/users")

	user.Get("/:id/receivedRequests", ctl.GetReceivedRequests)
	user.Get("/:id/sentRequests", ctl.GetSentRequests)
	user.Get("/:id/connections", ctl.GetUserConnections)
	user.Get("/:id/connections/:otherId/status", ctl.GetConnectionStatus)
	user.Post("/:id/manageRequest", ctl.ManageConnectionRequest)
	user.Post("/:senderId/sendRequest", ctl.SendConnectionRequest)

	// older clients post to the root path
	app.Post("/:senderId/sendRequest", ctl.SendConnectionRequest)
}
