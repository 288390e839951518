package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/apperr"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/query"
	"github.com/hardika-spec-610/linkedIn-BE/src/repositories"
	"github.com/hardika-spec-610/linkedIn-BE/src/services"
	"github.com/hardika-spec-610/linkedIn-BE/src/storage"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

type Deps struct {
	Users         repositories.UserStore
	Posts         repositories.PostStore
	Comments      repositories.CommentStore
	Experiences   repositories.ExperienceStore
	Notifications repositories.NotificationStore
	Relationships *services.RelationshipService
	Notifier      *services.Notifier
	Uploader      storage.Uploader
	HealthChecks  map[string]HealthCheck

	PageDefaultLimit int
	PageMaxLimit     int
	// PublicURL prefixes the pagination links
	PublicURL string
	Logger    zerolog.Logger
}

type Controller struct {
	Deps
}

func New(deps Deps) *Controller {
	return &Controller{Deps: deps}
}

func (ctl *Controller) parseQuery(c *fiber.Ctx, objectIDFields ...string) (*query.Query, error) {
	return query.Parse(string(c.Request().URI().QueryString()), query.Options{
		DefaultLimit:   int64(ctl.PageDefaultLimit),
		MaxLimit:       int64(ctl.PageMaxLimit),
		ObjectIDFields: objectIDFields,
	})
}

// notFound turns a missing document into a NotFoundError with message
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, lib.ErrNotFound) {
		return apperr.NotFound(format, args...)
	}
	return err
}

func (ctl *Controller) findUser(c *fiber.Ctx, param string) (primitive.ObjectID, error) {
	id, err := lib.ParamObjectID(c, param)
	if err != nil {
		return id, err
	}
	if err := ctl.userExists(c, id); err != nil {
		return id, err
	}
	return id, nil
}

func (ctl *Controller) userExists(c *fiber.Ctx, id primitive.ObjectID) error {
	ok, err := ctl.Users.Exists(c.Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("User with id %s not found!", id.Hex())
	}
	return nil
}

// populateUsers resolves user references to their dto, keyed by id
func (ctl *Controller) populateUsers(c *fiber.Ctx, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.UserDto, error) {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	unique := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	users, err := ctl.Users.FindDtos(c.Context(), unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*models.UserDto, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	return byID, nil
}
