package configstore

import (
	"context"
	"errors"

	"dario.cat/mergo"

	"kairo-server/internal/pkg/errs"
)

var ErrNotFound = errors.New("document not found")

// Backend is the injected storage for JSON documents keyed by name. The
// file backend serves production; the memory backend serves tests.
type Backend interface {
	Read(ctx context.Context, key string) (map[string]any, error)
	Write(ctx context.Context, key string, doc map[string]any) error
}

// Store exposes get/replace/merge semantics over a Backend. Page content is
// replaced wholesale; site settings are merged field by field, nested maps
// included.
type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) Get(ctx context.Context, key string) (map[string]any, error) {
	doc, err := s.backend.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) Replace(ctx context.Context, key string, doc map[string]any) error {
	if err := s.backend.Write(ctx, key, doc); err != nil {
		return errs.Wrap(err, "failed to replace document")
	}
	return nil
}

// Merge deep-merges patch into the stored document, creating it when absent.
func (s *Store) Merge(ctx context.Context, key string, patch map[string]any) (map[string]any, error) {
	current, err := s.backend.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		current = map[string]any{}
	}

	if err := mergo.Merge(&current, patch, mergo.WithOverride); err != nil {
		return nil, errs.Wrap(err, "failed to merge document")
	}

	if err := s.backend.Write(ctx, key, current); err != nil {
		return nil, errs.Wrap(err, "failed to write merged document")
	}
	return current, nil
}
