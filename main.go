package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hardika-spec-610/linkedIn-BE/src/config"
	"github.com/hardika-spec-610/linkedIn-BE/src/controllers"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/lock"
	"github.com/hardika-spec-610/linkedIn-BE/src/repositories"
	"github.com/hardika-spec-610/linkedIn-BE/src/routes"
	"github.com/hardika-spec-610/linkedIn-BE/src/services"
	"github.com/hardika-spec-610/linkedIn-BE/src/storage"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional, the environment wins
	_ = godotenv.Load()

	cfg := config.Load()
	logger := lib.InitLogger(cfg.LogLevel, cfg.IsDevelopment())

	ctx := context.Background()
	client, err := lib.ConnectDB(ctx, cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()

	if err := lib.EnsureIndexes(ctx, lib.DB); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create indexes")
	}

	healthChecks := map[string]controllers.HealthCheck{
		"mongo": func(ctx context.Context) error { return client.Ping(ctx, nil) },
	}

	var locker lock.Locker = lock.NewKeyedMutex()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Invalid REDIS_URL")
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		locker = lock.NewRedisLocker(rdb, cfg.LockTTL)
		healthChecks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		logger.Info().Msg("Using Redis for relationship locks")
	}

	var uploader storage.Uploader = storage.NewDiskUploader(cfg.UploadDir, cfg.PublicURL)
	if cfg.CloudinaryURL != "" {
		cld, err := storage.NewCloudinaryUploader(cfg.CloudinaryURL, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to configure Cloudinary")
		}
		uploader = cld
	}

	users := repositories.NewUserStore(lib.DB)
	notifications := repositories.NewNotificationStore(lib.DB)
	tx := lib.NewTransactor(client, cfg.MongoTransactions)

	ctl := controllers.New(controllers.Deps{
		Users:         users,
		Posts:         repositories.NewPostStore(lib.DB),
		Comments:      repositories.NewCommentStore(lib.DB),
		Experiences:   repositories.NewExperienceStore(lib.DB),
		Notifications: notifications,
		Relationships: services.NewRelationshipService(
			users,
			repositories.NewConnectionStore(lib.DB),
			notifications,
			tx,
			locker,
			logger,
		),
		Notifier:         services.NewNotifier(notifications, logger),
		Uploader:         uploader,
		HealthChecks:     healthChecks,
		PageDefaultLimit: cfg.PageDefaultLimit,
		PageMaxLimit:     cfg.PageMaxLimit,
		PublicURL:        cfg.PublicURL,
		Logger:           logger,
	})

	uploadDir := ""
	if cfg.CloudinaryURL == "" {
		uploadDir = cfg.UploadDir
	}
	app := routes.NewApp(ctl, routes.AppOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		UploadDir:      uploadDir,
		Logger:         logger,
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info().Dur("timeout", shutdownTimeout).Msg("Shutting down server")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error().Err(err).Msg("Error shutting down")
		}
	}()

	logger.Info().
		Str("port", cfg.Port).
		Bool("transactions", cfg.MongoTransactions).
		Msg("Server is running on http://localhost:" + cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
