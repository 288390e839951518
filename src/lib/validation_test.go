package lib

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name   string `json:"name" validate:"required"`
	UserID string `json:"userId" validate:"required,mongodb"`
}

type samplePatch struct {
	Name *string `json:"name" structs:"name,omitempty"`
	Bio  *string `json:"bio" structs:"bio,omitempty"`
}

func parse(t *testing.T, body string) error {
	t.Helper()
	app := fiber.New()
	var result error
	app.Post("/", func(c *fiber.Ctx) error {
		var in sampleInput
		result = ParseBody(c, &in)
		return nil
	})
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)
	require.NoError(t, err)
	return result
}

func TestParseBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantList []string
	}{
		{"valid", `{"name":"Ada","userId":"64b7f0c2a1b2c3d4e5f60718"}`, false, nil},
		{"empty body", ``, true, nil},
		{"unknown field", `{"name":"Ada","userId":"64b7f0c2a1b2c3d4e5f60718","admin":true}`, true, nil},
		{"missing name", `{"userId":"64b7f0c2a1b2c3d4e5f60718"}`, true, []string{"name is required"}},
		{"bad id", `{"name":"Ada","userId":"123"}`, true, []string{"userId must be a valid id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parse(t, tt.body)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			if tt.wantList != nil {
				appErr := err.(*apperr.AppError)
				assert.Equal(t, tt.wantList, appErr.Errors)
			}
		})
	}
}

func TestPatchDocument_SkipsNilFields(t *testing.T) {
	bio := "Gopher"
	set := PatchDocument(&samplePatch{Bio: &bio})

	assert.NotContains(t, set, "name")
	assert.Equal(t, &bio, set["bio"])
	assert.Contains(t, set, "updatedAt")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("startDate", "2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("startDate", "2021-06-15T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, 8, d.Hour())

	_, err = ParseDate("startDate", "15/06/2021")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
