package configstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryBackend keeps documents in a map; used by tests.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (b *MemoryBackend) Read(_ context.Context, key string) (map[string]any, error) {
	b.mu.RLock()
	data, ok := b.docs[key]
	b.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (b *MemoryBackend) Write(_ context.Context, key string, doc map[string]any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.docs[key] = data
	b.mu.Unlock()
	return nil
}
