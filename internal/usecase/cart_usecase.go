package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"app/internal/domain/model"
	"app/internal/pricing"
	repo "app/internal/repository"
)

// 同一タイトルの二重追加
var ErrDuplicateItem = errors.New("item already in cart")

// CartUsecase はカート本体の業務ロジックです。
// タイトルをキーにした順序付きの明細集合を持ち、
// 変更のたびに合計を再計算してストアへ書き戻します。
// 元のUIはイベントループで直列に動いていたので、ここではmutexで同じ保証をします。
type CartUsecase struct {
	mu    sync.Mutex
	store repo.CartStore
	items []model.CartItem
	index map[string]int
}

// DI
func NewCartUsecase(store repo.CartStore) *CartUsecase {
	return &CartUsecase{
		store: store,
		index: map[string]int{},
	}
}

// Restore は保存済みカートを復元する。保存データが無い・壊れている場合は空カート扱い。
// 明細は追加経路を通してから保存数量を当て直し、最後に合計を計算して保存し直す
// （復元直後に状態を正規化するための二重書き込み）。
func (u *CartUsecase) Restore(ctx context.Context) (model.CartSnapshot, error) {
	saved, _, err := u.store.Load(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()

	if err != nil {
		return u.snapshotLocked(), nil
	}

	for _, it := range saved {
		if _, ok := u.index[it.Title]; ok {
			continue
		}
		u.appendLocked(it.Title, it.Price, it.ProductImg)
		u.items[u.index[it.Title]].Quantity = coerceQuantity(it.Quantity)
	}

	if err := u.saveLocked(ctx); err != nil {
		return u.snapshotLocked(), err
	}

	return u.snapshotLocked(), nil
}

// AddItem は明細を追加する。既に同じタイトルがあればErrDuplicateItemで状態は変えない。
func (u *CartUsecase) AddItem(ctx context.Context, title, price, productImg string) (model.CartSnapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.index[title]; ok {
		return u.snapshotLocked(), ErrDuplicateItem
	}

	u.appendLocked(title, price, productImg)

	return u.snapshotLocked(), u.saveLocked(ctx)
}

// RemoveItem は明細を削除する。無ければ何もしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, title string) (model.CartSnapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	i, ok := u.index[title]
	if !ok {
		return u.snapshotLocked(), nil
	}

	u.items = append(u.items[:i], u.items[i+1:]...)
	delete(u.index, title)
	for j := i; j < len(u.items); j++ {
		u.index[u.items[j].Title] = j
	}

	return u.snapshotLocked(), u.saveLocked(ctx)
}

// SetQuantity は数量を変更する。数字でない・0以下は1に矯正、少数は切り捨て。
// タイトルが無ければ何もしない。
func (u *CartUsecase) SetQuantity(ctx context.Context, title, raw string) (model.CartSnapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	i, ok := u.index[title]
	if !ok {
		return u.snapshotLocked(), nil
	}

	u.items[i].Quantity = parseQuantity(raw)

	return u.snapshotLocked(), u.saveLocked(ctx)
}

// Snapshot は現在の明細と合計を表示順で返す。
func (u *CartUsecase) Snapshot(ctx context.Context) model.CartSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

// TotalDisplay は合計の表示文字列（"$25.50"）。
func (u *CartUsecase) TotalDisplay(ctx context.Context) string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return pricing.FormatMinorUnits(u.snapshotLocked().Total)
}

func (u *CartUsecase) appendLocked(title, price, productImg string) {
	u.items = append(u.items, model.CartItem{
		Title:      title,
		Price:      price,
		ProductImg: productImg,
		Quantity:   1,
	})
	u.index[title] = len(u.items) - 1
}

func (u *CartUsecase) snapshotLocked() model.CartSnapshot {
	items := make([]model.CartItem, len(u.items))
	copy(items, u.items)

	var total int64
	for _, it := range u.items {
		amount, err := pricing.ParsePriceToMinorUnits(it.Price)
		if err != nil {
			// 壊れた表示価格は合計に含めない
			continue
		}
		total += amount * it.Quantity
	}

	return model.CartSnapshot{Items: items, Total: total}
}

func (u *CartUsecase) saveLocked(ctx context.Context) error {
	snap := u.snapshotLocked()
	return u.store.Save(ctx, snap.Items, pricing.FormatMinorUnits(snap.Total))
}

func parseQuantity(raw string) int64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 1
	}
	return coerceQuantity(int64(f))
}

func coerceQuantity(q int64) int64 {
	if q < 1 {
		return 1
	}
	return q
}
