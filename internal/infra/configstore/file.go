package configstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"kairo-server/internal/pkg/errs"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// FileBackend stores each document as <dir>/<key>.json. Writes go through a
// temp file and rename so readers never see a half-written document.
type FileBackend struct {
	dir string
	mu  sync.RWMutex
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create content directory")
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) Read(_ context.Context, key string) (map[string]any, error) {
	if !keyPattern.MatchString(key) {
		return nil, ErrNotFound
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "failed to read document")
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errs.Wrap(err, "failed to decode document")
	}
	return doc, nil
}

func (b *FileBackend) Write(_ context.Context, key string, doc map[string]any) error {
	if !keyPattern.MatchString(key) {
		return errs.New("invalid document key")
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errs.Wrap(err, "failed to encode document")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tmp, err := os.CreateTemp(b.dir, key+"-*.tmp")
	if err != nil {
		return errs.Wrap(err, "failed to create temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errs.Wrap(err, "failed to write document")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errs.Wrap(err, "failed to close temp file")
	}
	if err := os.Rename(tmp.Name(), b.path(key)); err != nil {
		os.Remove(tmp.Name())
		return errs.Wrap(err, "failed to replace document")
	}
	return nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}
