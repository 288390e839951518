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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// csvStreamTimeout bounds a CSV download once the handler has returned
const csvStreamTimeout = 2 * time.Minute

func (ctl *Controller) GetExperiences(c *fiber.Ctx) error {
	userID, err := ctl.findUser(c, "userId")
	if err != nil {
		return err
	}

	experiences, err := ctl.Experiences.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(experiences)
}

func (ctl *Controller) GetExperience(c *fiber.Ctx) error {
	userID, id, err := experienceParams(c)
	if err != nil {
		return err
	}

	exp, err := ctl.Experiences.FindForUser(c.Context(), userID, id)
	if err != nil {
		return notFound(err, "Experience with id %s not found!", id.Hex())
	}
	return c.Status(fiber.StatusOK).JSON(exp)
}

func (ctl *Controller) CreateExperience(c *fiber.Ctx) error {
	userID, err := ctl.findUser(c, "userId")
	if err != nil {
		return err
	}

	var in models.CreateExperienceInput
	if err := lib.ParseBody(c, &in); err != nil {
		return err
	}

	start, err := lib.ParseDate("startDate", in.StartDate)
	if err != nil {
		return err
	}
	var end *time.Time
	if in.EndDate != nil && *in.EndDate != "" {
		d, err := lib.ParseDate("endDate", *in.EndDate)
		if err != nil {
			return err
		}
		end = &d
	}
	if err := checkDateRange(start, end); err != nil {
		return err
	}

	image := in.Image
	if image == "" {
		image = models.DefaultExperienceImage
	}

	now := time.Now().UTC()
	exp := models.Experience{
		Role:        in.Role,
		Company:     in.Company,
		StartDate:   start,
		EndDate:     end,
		Description: in.Description,
		Area:        in.Area,
		Image:       image,
		User:        userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := ctl.Experiences.Create(c.Context(), &exp); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": exp.Id})
}

// UpdateExperience applies the given fields; an empty endDate marks the experience as ongoing
func (ctl *Controller) UpdateExperience(c *fiber.Ctx) error {
	userID, id, err := experienceParams(c)
	if err != nil {
		return err
	}

	var in models.UpdateExperienceInput
	if err := lib.ParseBody(c, &in); err != nil {
		return err
	}

	current, err := ctl.Experiences.FindForUser(c.Context(), userID, id)
	if err != nil {
		return notFound(err, "Experience with id %s not found!", id.Hex())
	}

	set := lib.PatchDocument(&in)
	start, end := current.StartDate, current.EndDate
	if in.StartDate != nil {
		if start, err = lib.ParseDate("startDate", *in.StartDate); err != nil {
			return err
		}
		set["startDate"] = start
	}
	if in.EndDate != nil {
		if *in.EndDate == "" {
			end = nil
		} else {
			d, err := lib.ParseDate("endDate", *in.EndDate)
			if err != nil {
				return err
			}
			end = &d
		}
		set["endDate"] = end
	}
	if err := checkDateRange(start, end); err != nil {
		return err
	}

	exp, err := ctl.Experiences.Update(c.Context(), userID, id, set)
	if err != nil {
		return notFound(err, "Experience with id %s not found!", id.Hex())
	}
	return c.Status(fiber.StatusOK).JSON(exp)
}

func (ctl *Controller) DeleteExperience(c *fiber.Ctx) error {
	userID, id, err := experienceParams(c)
	if err != nil {
		return err
	}

	if err := ctl.Experiences.Delete(c.Context(), userID, id); err != nil {
		return notFound(err, "Experience with id %s not found!", id.Hex())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadExperiencesCSV streams the user's experiences from the cursor to the
// response. The pipe blocks the cursor while the client is not reading, and a
// client that goes away closes the pipe, which ends the cursor loop.
func (ctl *Controller) DownloadExperiencesCSV(c *fiber.Ctx) error {
	userID, err := ctl.findUser(c, "userId")
	if err != nil {
		return err
	}

	pr, pw := io.Pipe()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), csvStreamTimeout)
		defer cancel()

		w := documents.NewExperienceCSV(pw)
		err := ctl.Experiences.EachByUser(ctx, userID, w.Write)
		if err == nil {
			err = w.Close()
		}
		if err != nil && err != io.ErrClosedPipe {
			ctl.Logger.Error().Err(err).Str("user", userID.Hex()).Msg("stream experiences CSV")
		}
		pw.CloseWithError(err)
	}()

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="experiences.csv"`)
	return c.SendStream(pr)
}

func experienceParams(c *fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, error) {
	userID, err := lib.ParamObjectID(c, "userId")
	if err != nil {
		return userID, primitive.NilObjectID, err
	}
	id, err := lib.ParamObjectID(c, "id")
	return userID, id, err
}

func checkDateRange(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return apperr.Validation("Validation failed", "endDate must not be before startDate")
	}
	return nil
}
