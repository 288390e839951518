package routes

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/hardika-spec-610/linkedIn-BE/src/controllers"
	"github.com/hardika-spec-610/linkedIn-BE/src/middleware"
	"github.com/rs/zerolog"
)

type AppOptions struct {
	// AllowedOrigins is the CORS whitelist; empty allows every origin
	AllowedOrigins []string
	// UploadDir is served at /uploads when set
	UploadDir string
	Logger    zerolog.Logger
}

// NewApp builds the fiber app with the middleware stack and every route
func NewApp(ctl *controllers.Controller, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "linkedin-be",
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          middleware.ErrorHandler(opts.Logger),
		BodyLimit:             10 * 1024 * 1024,
		StreamRequestBody:     false,
		DisableStartupMessage: true,
	})

	origins := "*"
	if len(opts.AllowedOrigins) > 0 {
		origins = strings.Join(opts.AllowedOrigins, ",")
	}

	app.Use(
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		middleware.Recover(opts.Logger),
		cors.New(cors.Config{
			AllowOrigins:  origins,
			AllowHeaders:  "Origin, Content-Type, Accept, X-Request-ID",
			ExposeHeaders: "X-Request-ID, Content-Disposition",
		}),
	)

	if opts.UploadDir != "" {
		app.Static("/uploads", opts.UploadDir)
	}

	Setup(app, ctl)
	return app
}
