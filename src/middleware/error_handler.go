package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/apperr"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	castErrorMessage    = "You've sent a wrong _id in request params"
	genericErrorMessage = "Something went wrong! Please try again later"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message    string   `json:"message"`
	ErrorsList []string `json:"errorsList,omitempty"`
	RequestID  string   `json:"requestId,omitempty"`
}

// errorTranslator writes a response when it recognises err and reports whether it did
type errorTranslator func(c *fiber.Ctx, err error) (bool, error)

// ErrorHandler tries each translator in order; the generic one always matches.
func ErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	chain := []errorTranslator{
		badRequestHandler,
		notFoundHandler,
		conflictHandler,
		fiberErrorHandler,
		genericErrorHandler(logger),
	}

	return func(c *fiber.Ctx, err error) error {
		for _, translate := range chain {
			if handled, sendErr := translate(c, err); handled {
				return sendErr
			}
		}
		return nil
	}
}

func respond(c *fiber.Ctx, status int, message string, list []string) error {
	requestID, _ := c.Locals(RequestIDKey).(string)
	return c.Status(status).JSON(ErrorResponse{
		Message:    message,
		ErrorsList: list,
		RequestID:  requestID,
	})
}

func badRequestHandler(c *fiber.Ctx, err error) (bool, error) {
	switch {
	case apperr.Is(err, apperr.KindValidation):
		var appErr *apperr.AppError
		errors.As(err, &appErr)
		return true, respond(c, fiber.StatusBadRequest, appErr.Message, appErr.Errors)
	case apperr.Is(err, apperr.KindCast), errors.Is(err, primitive.ErrInvalidHex):
		return true, respond(c, fiber.StatusBadRequest, castErrorMessage, nil)
	}
	return false, nil
}

func notFoundHandler(c *fiber.Ctx, err error) (bool, error) {
	if apperr.Is(err, apperr.KindNotFound) {
		var appErr *apperr.AppError
		errors.As(err, &appErr)
		return true, respond(c, fiber.StatusNotFound, appErr.Message, nil)
	}
	if errors.Is(err, lib.ErrNotFound) {
		return true, respond(c, fiber.StatusNotFound, "Resource not found", nil)
	}
	return false, nil
}

func conflictHandler(c *fiber.Ctx, err error) (bool, error) {
	if apperr.Is(err, apperr.KindConflict) {
		var appErr *apperr.AppError
		errors.As(err, &appErr)
		return true, respond(c, fiber.StatusConflict, appErr.Message, nil)
	}
	if errors.Is(err, lib.ErrConflict) || lib.IsDuplicateKey(err) {
		return true, respond(c, fiber.StatusConflict, "The resource was modified by another request, please retry", nil)
	}
	return false, nil
}

func fiberErrorHandler(c *fiber.Ctx, err error) (bool, error) {
	var fiberErr *fiber.Error
	if !errors.As(err, &fiberErr) {
		return false, nil
	}
	if fiberErr.Code >= fiber.StatusInternalServerError {
		return true, respond(c, fiberErr.Code, genericErrorMessage, nil)
	}
	return true, respond(c, fiberErr.Code, fiberErr.Message, nil)
}

func genericErrorHandler(logger zerolog.Logger) errorTranslator {
	return func(c *fiber.Ctx, err error) (bool, error) {
		requestID, _ := c.Locals(RequestIDKey).(string)
		message := genericErrorMessage

		var appErr *apperr.AppError
		if errors.As(err, &appErr) && appErr.Kind == apperr.KindPartialUpdate {
			message = appErr.Message
		}

		logger.Error().
			Err(err).
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("Unhandled error")

		return true, respond(c, fiber.StatusInternalServerError, message, nil)
	}
}
