package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (ctl *Controller) findPost(c *fiber.Ctx) (models.Post, error) {
	postID, err := lib.ParamObjectID(c, "postId")
	if err != nil {
		return models.Post{}, err
	}
	post, err := ctl.Posts.FindByID(c.Context(), postID)
	if err != nil {
		return post, notFound(err, "Post with id %s not found!", postID.Hex())
	}
	return post, nil
}

// GetComments returns the post's comments, oldest first, with authors populated
func (ctl *Controller) GetComments(c *fiber.Ctx) error {
	post, err := ctl.findPost(c)
	if err != nil {
		return err
	}

	comments, err := ctl.Comments.ListByPost(c.Context(), post.Id)
	if err != nil {
		return err
	}

	populated, err := ctl.populateComments(c, comments)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(populated)
}

func (ctl *Controller) GetComment(c *fiber.Ctx) error {
	postID, err := lib.ParamObjectID(c, "postId")
	if err != nil {
		return err
	}
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	comment, err := ctl.Comments.FindInPost(c.Context(), postID, id)
	if err != nil {
		return notFound(err, "Comment with id %s not found!", id.Hex())
	}

	populated, err := ctl.populateComments(c, []models.Comment{comment})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(populated[0])
}

func (ctl *Controller) CreateComment(c *fiber.Ctx) error {
	post, err := ctl.findPost(c)
	if err != nil {
		return err
	}

	var in models.CreateCommentInput
	if err := lib.ParseBody(c, &in); err != nil {
		return err
	}
	userID, err := lib.ObjectIDFromInput("user", in.User)
	if err != nil {
		return err
	}
	if err := ctl.userExists(c, userID); err != nil {
		return err
	}

	now := time.Now().UTC()
	comment := models.Comment{
		Comment:   in.Comment,
		User:      userID,
		Post:      post.Id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ctl.Comments.Create(c.Context(), &comment); err != nil {
		return err
	}

	ctl.Notifier.Notify(c.Context(), post.User, models.NotificationTypeComment, userID, post.Id)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": comment.Id})
}

func (ctl *Controller) UpdateComment(c *fiber.Ctx) error {
	postID, err := lib.ParamObjectID(c, "postId")
	if err != nil {
		return err
	}
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	var in models.UpdateCommentInput
	if err := lib.ParseBody(c, &in); err != nil {
		return err
	}

	comment, err := ctl.Comments.Update(c.Context(), postID, id, lib.PatchDocument(&in))
	if err != nil {
		return notFound(err, "Comment with id %s not found!", id.Hex())
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}

func (ctl *Controller) DeleteComment(c *fiber.Ctx) error {
	postID, err := lib.ParamObjectID(c, "postId")
	if err != nil {
		return err
	}
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := ctl.Comments.Delete(c.Context(), postID, id); err != nil {
		return notFound(err, "Comment with id %s not found!", id.Hex())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *Controller) populateComments(c *fiber.Ctx, comments []models.Comment) ([]models.CommentDto, error) {
	userIDs := make([]primitive.ObjectID, 0, len(comments))
	for _, cm := range comments {
		userIDs = append(userIDs, cm.User)
	}

	users, err := ctl.populateUsers(c, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]models.CommentDto, 0, len(comments))
	for _, cm := range comments {
		out = append(out, models.CommentDto{
			ID:        cm.Id,
			Comment:   cm.Comment,
			User:      users[cm.User],
			Post:      cm.Post,
			CreatedAt: cm.CreatedAt,
			UpdatedAt: cm.UpdatedAt,
		})
	}
	return out, nil
}
