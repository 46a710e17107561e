package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// CartStore はカートの永続化。
// 明細（cartItems相当）と合計表示（cartTotal相当）の2キー構成をそのまま保存する。
type CartStore interface {
	Save(ctx context.Context, items []model.CartItem, total string) error
	// Load は保存済みの明細と合計表示を返す。未保存ならErrNotFound。
	Load(ctx context.Context) ([]model.CartItem, string, error)
}
