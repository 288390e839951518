package controllers

import (
	"context"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/apperr"
	"github.com/hardika-spec-610/linkedIn-BE/src/documents"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/storage"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"
)

// GetUsers returns a page of users filtered and sorted by the query string
func (ctl *Controller) GetUsers(c *fiber.Ctx) error {
	q, err := ctl.parseQuery(c)
	if err != nil {
		return err
	}

	users, total, err := ctl.Users.List(c.Context(), q)
	if err != nil {
		return err
	}

	meta := q.Meta(ctl.PublicURL+"/users", total)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"links":         meta.Links,
		"total":         meta.Total,
		"numberOfPages": meta.NumberOfPages,
		"users":         users,
	})
}

func (ctl *Controller) GetUserByID(c *fiber.Ctx) error {
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	user, err := ctl.Users.FindByID(c.Context(), id)
	if err != nil {
		return notFound(err, "User with id %s not found!", id.Hex())
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (ctl *Controller) CreateUser(c *fiber.Ctx) error {
	var in models.CreateUserInput
	if err := lib.ParseBody(c, &in); err != nil {
		return err
	}

	now := time.Now().UTC()
	user := models.User{
		Name:      in.Name,
		Surname:   in.Surname,
		Email:     in.Email,
		Bio:       in.Bio,
		Title:     in.Title,
		Area:      in.Area,
		Image:     in.Image,
		Address:   in.Address,
		Website:   in.Website,
		Phone:     in.Phone,
		Skills:    in.Skills,
		Education: in.Education,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ctl.Users.Create(c.Context(), &user); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": user.Id})
}

func (ctl *Controller) UpdateUser(c *fiber.Ctx) error {
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	var in models.UpdateUserInput
	if err := lib.ParseBody(c, &in); err != nil {
		return err
	}

	user, err := ctl.Users.Update(c.Context(), id, lib.PatchDocument(&in))
	if err != nil {
		return notFound(err, "User with id %s not found!", id.Hex())
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser does not remove the user's posts, comments or experiences
func (ctl *Controller) DeleteUser(c *fiber.Ctx) error {
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := ctl.Users.Delete(c.Context(), id); err != nil {
		return notFound(err, "User with id %s not found!", id.Hex())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadUserImage stores the multipart "image" file and sets it as the user's image
func (ctl *Controller) UploadUserImage(c *fiber.Ctx) error {
	id, err := ctl.findUser(c, "id")
	if err != nil {
		return err
	}

	url, err := ctl.uploadImage(c, storage.UsersFolder)
	if err != nil {
		return err
	}

	user, err := ctl.Users.Update(c.Context(), id, bson.M{"image": url})
	if err != nil {
		return notFound(err, "User with id %s not found!", id.Hex())
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// GetUserCV streams the user's CV as a PDF attachment
func (ctl *Controller) GetUserCV(c *fiber.Ctx) error {
	id, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	var (
		user        models.User
		experiences []models.Experience
	)
	g, gctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		u, err := ctl.Users.FindByID(gctx, id)
		if err != nil {
			return notFound(err, "User with id %s not found!", id.Hex())
		}
		user = u
		return nil
	})
	g.Go(func() error {
		exps, err := ctl.Experiences.ListByUser(gctx, id)
		experiences = exps
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	pr, pw := io.Pipe()
	go func() {
		err := documents.RenderCV(pw, user, experiences)
		if err != nil {
			ctl.Logger.Error().Err(err).Str("user", id.Hex()).Msg("render CV")
		}
		pw.CloseWithError(err)
	}()

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(documents.CVFileName(user))
	return c.SendStream(pr)
}

// uploadImage reads the multipart "image" field and hands it to the uploader
func (ctl *Controller) uploadImage(c *fiber.Ctx, folder string) (string, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return "", apperr.Validation("Validation failed", "image file is required")
	}
	if err := storage.CheckImage(header.Filename, header.Header.Get(fiber.HeaderContentType)); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()
	return ctl.Uploader.Upload(ctx, file, header.Filename, folder)
}
