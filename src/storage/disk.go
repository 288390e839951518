package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DiskUploader stores images under dir; main serves dir at /uploads.
type DiskUploader struct {
	dir     string
	baseURL string
}

func NewDiskUploader(dir, publicURL string) *DiskUploader {
	return &DiskUploader{
		dir:     dir,
		baseURL: strings.TrimRight(publicURL, "/") + "/uploads",
	}
}

func (u *DiskUploader) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	folderPath := filepath.Join(u.dir, folder)
	if err := os.MkdirAll(folderPath, 0o755); err != nil {
		return "", errors.Wrap(err, "create upload folder")
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(folderPath, name)

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "create upload file")
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", errors.Wrap(err, "write upload file")
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", errors.Wrap(err, "close upload file")
	}

	return u.baseURL + "/" + folder + "/" + name, nil
}
