package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/makyelver-commits/eventor/internal/apperr"
)

// MaxImageSize caps uploads at 5MB; validated before anything is written.
const MaxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// LocalStore writes uploads under BaseDir/<owner>/ and returns public
// URLs under BaseURL/uploads/<owner>/<name>. It stands in for the
// original's managed blob service.
type LocalStore struct {
	BaseDir string
	BaseURL string
}

func NewLocalStore(baseDir, baseURL string) *LocalStore {
	return &LocalStore{BaseDir: baseDir, BaseURL: baseURL}
}

// SaveImage validates and stores one uploaded image, returning its URL.
func (s *LocalStore) SaveImage(ownerID string, header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return "", apperr.New(apperr.Validation, "file type not allowed: images only")
	}
	if header.Size > MaxImageSize {
		return "", apperr.New(apperr.Validation, "file too large (5MB max)")
	}

	src, err := header.Open()
	if err != nil {
		return "", apperr.Wrap(apperr.Upstream, "failed to read upload", err)
	}
	defer src.Close()

	dir := filepath.Join(s.BaseDir, sanitize(ownerID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperr.Wrap(apperr.Upstream, "failed to create upload directory", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(filepath.Base(header.Filename)))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", apperr.Wrap(apperr.Upstream, "failed to store upload", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperr.Wrap(apperr.Upstream, "failed to store upload", err)
	}

	return fmt.Sprintf("%s/uploads/%s/%s", strings.TrimSuffix(s.BaseURL, "/"), sanitize(ownerID), name), nil
}

// sanitize strips path separators so an owner ID or filename can never
// escape the upload directory.
func sanitize(raw string) string {
	cleaned := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(raw)
	if cleaned == "" {
		cleaned = "file"
	}
	return cleaned
}
