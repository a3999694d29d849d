package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/asketsystem/lifebook/internal/content"
)

// memoryStore is the in-process store used in local mode and in tests.
type memoryStore struct {
	mu   sync.RWMutex
	docs map[string]content.DailyContent
}

func NewMemoryStore() content.Store {
	return &memoryStore{docs: map[string]content.DailyContent{}}
}

func (s *memoryStore) Put(_ context.Context, doc *content.DailyContent) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("daily content document requires an id")
	}
	s.mu.Lock()
	s.docs[doc.ID] = *doc
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*content.DailyContent, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, content.ErrNotFound
	}
	out := doc
	return &out, nil
}
