package lib

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/apperr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Returns a map with a message key for API responses
func MessageResponse(message string) fiber.Map {
	return fiber.Map{
		"message": message,
	}
}

// ParamObjectID reads a route param as an ObjectID, failing with a cast error
func ParamObjectID(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	value := c.Params(name)
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, apperr.Cast(name, value).WithError(err)
	}
	return id, nil
}

// ObjectIDFromInput converts an already validated body field
func ObjectIDFromInput(field, value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Invalid request body", field+" must be a valid id")
	}
	return id, nil
}
