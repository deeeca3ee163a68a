// Package storage implements image persistence for sweet uploads on the
// local filesystem. Files are stored under a configurable directory with
// generated names and served statically by the router under /uploads.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
)

// MaxImageSize is the upload size ceiling (5 MB).
const MaxImageSize = 5 << 20

var ErrImageTooLarge = errors.New("image exceeds the 5MB size limit")
var ErrUnsupportedImage = errors.New("only image files (jpeg, jpg, png, gif, webp) are allowed")

// allowedExtensions is the set of accepted image file extensions.
var allowedExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// LocalImageStore writes uploads to a directory on disk.
type LocalImageStore struct {
	dir    string
	logger zerolog.Logger
}

// NewLocalImageStore ensures dir exists and returns a store rooted there.
// When dir cannot be created (read-only filesystem), it falls back to a
// directory under the OS temp dir so uploads still work.
func NewLocalImageStore(dir string, logger zerolog.Logger) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fallback := filepath.Join(os.TempDir(), "sweet-shop-uploads")
		logger.Warn().Err(err).Str("dir", dir).Str("fallback", fallback).
			Msg("could not create uploads dir, falling back to temp dir")
		if ferr := os.MkdirAll(fallback, 0o755); ferr != nil {
			return nil, fmt.Errorf("create uploads dir: %w", ferr)
		}
		dir = fallback
	}
	return &LocalImageStore{dir: dir, logger: logger}, nil
}

// Dir returns the directory uploads are written to, for static serving.
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Save validates and persists an uploaded image, returning its public path.
// Rejects non-image content and files above MaxImageSize.
func (s *LocalImageStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxImageSize {
		metrics.UploadsRejectedTotal.WithLabelValues("too_large").Inc()
		return "", ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		metrics.UploadsRejectedTotal.WithLabelValues("mime_type").Inc()
		return "", ErrUnsupportedImage
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		metrics.UploadsRejectedTotal.WithLabelValues("mime_type").Inc()
		return "", ErrUnsupportedImage
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("sweet-%s%s", uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, MaxImageSize)); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	s.logger.Debug().Str("file", name).Int64("size", file.Size).Msg("image stored")
	return "/uploads/" + name, nil
}
