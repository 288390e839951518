package middleware

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const RequestIDKey = "request_id"

// RequestID reuses the caller's X-Request-ID or generates one
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(RequestIDKey, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)
		return c.Next()
	}
}

// RequestLogger logs every request once the response status is known.
func RequestLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// let the error handler set the final status before logging
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			err = nil
		}

		requestID, _ := c.Locals(RequestIDKey).(string)
		status := c.Response().StatusCode()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		default:
			event = logger.Info()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")

		return err
	}
}

// Recover turns a panic into an error so it is answered by the ErrorHandler
func Recover(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				requestID, _ := c.Locals(RequestIDKey).(string)
				logger.Error().
					Str("request_id", requestID).
					Str("method", c.Method()).
					Str("path", c.Path()).
					Str("stack", string(debug.Stack())).
					Msgf("panic recovered: %v", r)
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return c.Next()
	}
}
