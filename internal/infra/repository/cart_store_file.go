package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// FileCartStore はブラウザのlocalStorage相当。
// cartItems／cartTotalの2キーを1つのJSONファイルに持つ。
// cartItemsの値は元のレイアウトどおりJSON配列のテキスト。
type FileCartStore struct {
	mu   sync.Mutex
	path string
}

// DI
func NewFileCartStore(path string) *FileCartStore {
	return &FileCartStore{path: path}
}

type storedCart struct {
	CartItems string `json:"cartItems"`
	CartTotal string `json:"cartTotal"`
}

func (s *FileCartStore) Save(ctx context.Context, items []model.CartItem, total string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []model.CartItem{}
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return err
	}

	data, err := json.Marshal(storedCart{
		CartItems: string(itemsJSON),
		CartTotal: total,
	})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(s.path, data, 0o644)
}

func (s *FileCartStore) Load(ctx context.Context) ([]model.CartItem, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", repo.ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	var stored storedCart
	if err := json.Unmarshal(data, &stored); err != nil {
		// 壊れた保存データは未保存扱い
		return nil, "", repo.ErrNotFound
	}
	if stored.CartItems == "" {
		return nil, "", repo.ErrNotFound
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(stored.CartItems), &items); err != nil {
		return nil, "", repo.ErrNotFound
	}

	return items, stored.CartTotal, nil
}
