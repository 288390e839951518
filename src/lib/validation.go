package lib

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/fatih/structs"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/apperr"
	"go.mongodb.org/mongo-driver/bson"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseBody strictly decodes the JSON body into dst (unknown fields are rejected)
// and runs the struct's validate tags.
func ParseBody(c *fiber.Ctx, dst any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return apperr.Validation("Request body is missing")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.Validation("Invalid request body", err.Error())
	}

	return Validate(dst)
}

// Validate checks v against its validate tags
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperr.Validation("Invalid request body", err.Error())
	}

	list := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		list = append(list, describeFieldError(fe))
	}
	return apperr.Validation("Validation failed", list...)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "mongodb":
		return fmt.Sprintf("%s must be a valid id", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid url", fe.Field())
	case "min":
		if fe.Param() == "1" {
			return fmt.Sprintf("%s must not be empty", fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}

// PatchDocument turns a partial-update input (pointer fields tagged
// `structs:"name,omitempty"`) into a $set document; nil fields are left untouched.
func PatchDocument(input any) bson.M {
	set := bson.M{}
	for key, value := range structs.Map(input) {
		set[key] = value
	}
	set["updatedAt"] = time.Now().UTC()
	return set
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts a calendar date or an RFC 3339 timestamp
func ParseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.Validation("Validation failed", field+" must be a date (yyyy-mm-dd)")
}
