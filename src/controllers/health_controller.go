package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (ctl *Controller) GetHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	status := fiber.StatusOK
	checks := make(fiber.Map, len(ctl.HealthChecks))
	for name, check := range ctl.HealthChecks {
		if err := check(ctx); err != nil {
			ctl.Logger.Warn().Err(err).Str("check", name).Msg("health check failed")
			checks[name] = "down"
			status = fiber.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	overall := "ok"
	if status != fiber.StatusOK {
		overall = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{"status": overall, "checks": checks})
}
