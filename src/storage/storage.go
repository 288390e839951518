// Package storage uploads user and post images and returns their public URL.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/hardika-spec-610/linkedIn-BE/src/apperr"
)

const (
	UsersFolder = "LinkedIn-BE-Users"
	PostsFolder = "LinkedIn-BE-Posts"
)

type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename, folder string) (url string, err error)
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// CheckImage accepts jpg and png files only
func CheckImage(filename, contentType string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return apperr.Validation("Validation failed", "image must be a jpg or png file")
	}
	if contentType != "" && contentType != "application/octet-stream" &&
		contentType != "image/jpeg" && contentType != "image/png" {
		return apperr.Validation("Validation failed", "image must be a jpg or png file")
	}
	return nil
}
