package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// MemoryCartStore はプロセス内だけで持つ実装。テストと使い捨て用途。
type MemoryCartStore struct {
	mu    sync.Mutex
	saved bool
	items []model.CartItem
	total string
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{}
}

func (s *MemoryCartStore) Save(ctx context.Context, items []model.CartItem, total string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]model.CartItem, len(items))
	copy(s.items, items)
	s.total = total
	s.saved = true

	return nil
}

func (s *MemoryCartStore) Load(ctx context.Context) ([]model.CartItem, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.saved {
		return nil, "", repo.ErrNotFound
	}

	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)

	return items, s.total, nil
}
