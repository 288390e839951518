package controllers_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/controllers"
	"github.com/hardika-spec-610/linkedIn-BE/src/lock"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/repositories/repotest"
	"github.com/hardika-spec-610/linkedIn-BE/src/routes"
	"github.com/hardika-spec-610/linkedIn-BE/src/services"
	"github.com/hardika-spec-610/linkedIn-BE/src/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const publicURL = "http://localhost:3000"

type harness struct {
	app           *fiber.App
	users         *repotest.Users
	posts         *repotest.Posts
	comments      *repotest.Comments
	experiences   *repotest.Experiences
	notifications *repotest.Notifications
	connections   *repotest.Connections
	uploadDir     string
	health        map[string]controllers.HealthCheck
}

func newHarness(t *testing.T, users ...models.User) *harness {
	t.Helper()
	logger := zerolog.Nop()

	h := &harness{
		users:         repotest.NewUsers(users...),
		posts:         repotest.NewPosts(),
		comments:      repotest.NewComments(),
		experiences:   repotest.NewExperiences(),
		notifications: repotest.NewNotifications(),
		connections:   repotest.NewConnections(),
		uploadDir:     t.TempDir(),
		health: map[string]controllers.HealthCheck{
			"mongo": func(context.Context) error { return nil },
		},
	}

	tx := repotest.NewTransactor(false, h.connections, h.notifications)
	ctl := controllers.New(controllers.Deps{
		Users:         h.users,
		Posts:         h.posts,
		Comments:      h.comments,
		Experiences:   h.experiences,
		Notifications: h.notifications,
		Relationships: services.NewRelationshipService(
			h.users, h.connections, h.notifications, tx, lock.NewKeyedMutex(), logger,
		),
		Notifier:         services.NewNotifier(h.notifications, logger),
		Uploader:         storage.NewDiskUploader(h.uploadDir, publicURL),
		HealthChecks:     h.health,
		PageDefaultLimit: 10,
		PageMaxLimit:     100,
		PublicURL:        publicURL,
		Logger:           logger,
	})

	h.app = routes.NewApp(ctl, routes.AppOptions{UploadDir: h.uploadDir, Logger: logger})
	return h
}

func newUser(name, surname string) models.User {
	return models.User{
		Id:      primitive.NewObjectID(),
		Name:    name,
		Surname: surname,
		Email:   name + "@example.com",
		Title:   "Engineer",
		Area:    "Berlin",
	}
}

func (h *harness) send(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// do sends body as JSON when it is not nil
func (h *harness) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return h.send(t, req)
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

type errorBody struct {
	Message    string   `json:"message"`
	ErrorsList []string `json:"errorsList"`
}

type createdBody struct {
	ID string `json:"_id"`
}
