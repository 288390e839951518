package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetPosts returns a page of posts with their authors populated
func (ctl *Controller) GetPosts(c *fiber.Ctx) error {
	q, err := ctl.parseQuery(c, "user", "likes")
	if err != nil {
		return err
	}

	posts, total, err := ctl.Posts.List(c.Context(), q)
	if err != nil {
		return err
	}

	populated, err := ctl.populatePosts(c, posts)
	if err != nil {
		return err
	}

	meta := q.Meta(ctl.PublicURL+"/posts", total)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"links":         meta.Links,
		"total":         meta.Total,
		"numberOfPages": meta.NumberOfPages,
		"posts":         populated,
	})
}

func (ctl *Controller) GetPostByID(c *fiber.Ctx) error {
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	post, err := ctl.Posts.FindByID(c.Context(), id)
	if err != nil {
		return notFound(err, "Post with id %s not found!", id.Hex())
	}

	populated, err := ctl.populatePosts(c, []models.Post{post})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(populated[0])
}

func (ctl *Controller) CreatePost(c *fiber.Ctx) error {
	var in models.CreatePostInput
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

	image := in.Image
	if image == "" {
		image = models.DefaultPostImage
	}

	now := time.Now().UTC()
	post := models.Post{
		Text:      in.Text,
		Image:     image,
		User:      userID,
		Likes:     []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ctl.Posts.Create(c.Context(), &post); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": post.Id})
}

func (ctl *Controller) UpdatePost(c *fiber.Ctx) error {
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	var in models.UpdatePostInput
	if err := lib.ParseBody(c, &in); err != nil {
		return err
	}

	post, err := ctl.Posts.Update(c.Context(), id, lib.PatchDocument(&in))
	if err != nil {
		return notFound(err, "Post with id %s not found!", id.Hex())
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost leaves the post's comments in place
func (ctl *Controller) DeletePost(c *fiber.Ctx) error {
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := ctl.Posts.Delete(c.Context(), id); err != nil {
		return notFound(err, "Post with id %s not found!", id.Hex())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *Controller) UploadPostImage(c *fiber.Ctx) error {
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}
	if _, err := ctl.Posts.FindByID(c.Context(), id); err != nil {
		return notFound(err, "Post with id %s not found!", id.Hex())
	}

	url, err := ctl.uploadImage(c, storage.PostsFolder)
	if err != nil {
		return err
	}

	post, err := ctl.Posts.Update(c.Context(), id, bson.M{"image": url})
	if err != nil {
		return notFound(err, "Post with id %s not found!", id.Hex())
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// LikePost adds the user's like, or removes it if the user already liked the post
func (ctl *Controller) LikePost(c *fiber.Ctx) error {
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	var in models.LikeInput
	if err := lib.ParseBody(c, &in); err != nil {
		return err
	}
	userID, err := lib.ObjectIDFromInput("userId", in.UserID)
	if err != nil {
		return err
	}
	if err := ctl.userExists(c, userID); err != nil {
		return err
	}

	post, err := ctl.Posts.ToggleLike(c.Context(), id, userID)
	if err != nil {
		return notFound(err, "Post with id %s not found!", id.Hex())
	}

	liked := post.HasLike(userID)
	if liked {
		ctl.Notifier.Notify(c.Context(), post.User, models.NotificationTypeLike, userID, post.Id)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"_id":   post.Id,
		"liked": liked,
		"count": len(post.Likes),
		"likes": post.Likes,
	})
}

// GetPostLikes returns the users who liked the post
func (ctl *Controller) GetPostLikes(c *fiber.Ctx) error {
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	post, err := ctl.Posts.FindByID(c.Context(), id)
	if err != nil {
		return notFound(err, "Post with id %s not found!", id.Hex())
	}

	users, err := ctl.Users.FindDtos(c.Context(), post.Likes)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(models.LikesDto{
		PostID: post.Id,
		Count:  len(post.Likes),
		Likes:  users,
	})
}

func (ctl *Controller) populatePosts(c *fiber.Ctx, posts []models.Post) ([]models.PostDto, error) {
	authorIDs := make([]primitive.ObjectID, 0, len(posts))
	for _, p := range posts {
		authorIDs = append(authorIDs, p.User)
	}

	authors, err := ctl.populateUsers(c, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]models.PostDto, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Dto(authors[p.User]))
	}
	return out, nil
}
