package blob

import (
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"kairo-server/internal/pkg/config"
	"kairo-server/internal/pkg/errs"
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("file exceeds size limit")
)

var extensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// LocalStore writes uploaded images under a public directory with generated
// names and returns the URL path the site serves them from.
type LocalStore struct {
	dir          string
	publicPrefix string
	maxSize      int64
}

func NewLocalStore(cfg config.UploadConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create upload directory")
	}
	return &LocalStore{
		dir:          cfg.Dir,
		publicPrefix: cfg.PublicPrefix,
		maxSize:      cfg.MaxSizeBytes,
	}, nil
}

// Save stores the image and returns its public URL path.
func (s *LocalStore) Save(r io.Reader, contentType string, size int64) (string, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}
	if size > s.maxSize {
		return "", ErrTooLarge
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errs.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	// LimitReader guards against a lying Content-Length.
	if _, err := io.Copy(dst, io.LimitReader(r, s.maxSize+1)); err != nil {
		os.Remove(dst.Name())
		return "", errs.Wrap(err, "failed to write upload")
	}

	info, err := dst.Stat()
	if err == nil && info.Size() > s.maxSize {
		os.Remove(dst.Name())
		return "", ErrTooLarge
	}

	return path.Join(s.publicPrefix, name), nil
}
