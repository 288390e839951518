package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/controllers"
)

func PostRoutes(app *fiber.App, ctl *controllers.Controller) {
	post := app.Group("/posts")

	post.Get("/", ctl.GetPosts)
	post.Post("/", ctl.CreatePost)
	post.Get("/:id", ctl.GetPostByID)
	post.Put("/:id", ctl.UpdatePost)
	post.Delete("/:id", ctl.DeletePost)
	post.Post("/:id/image", ctl.UploadPostImage)
	post.Get("/:id/like", ctl.GetPostLikes)
	post.Post("/:id/like", ctl.LikePost)

	post.Get("/:postId/comments", ctl.GetComments)
	post.Post("/:postId/comments", ctl.CreateComment)
	post.Get("/:postId/comments/:id", ctl.GetComment)
	post.Put("/:postId/comments/:id", ctl.UpdateComment)
	post.Delete("/:postId/comments/:id", ctl.DeleteComment)
}
