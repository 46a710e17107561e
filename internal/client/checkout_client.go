package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"app/internal/domain/model"
)

// 送信中の二重クリック防止
var ErrCheckoutInFlight = errors.New("checkout already in flight")

// CheckoutClient はカートのスナップショットを /stripe-checkout へ送る側。
// 元のストアフロントでブラウザが担っていた役割で、
// 成功レスポンスのurlがそのままリダイレクト先になる。
type CheckoutClient struct {
	baseURL  string
	http     *http.Client
	inFlight atomic.Bool
}

func NewCheckoutClient(baseURL string) *CheckoutClient {
	return &CheckoutClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type checkoutItem struct {
	Title      string `json:"title"`
	Price      string `json:"price"`
	ProductImg string `json:"productImg"`
	Quantity   int64  `json:"quantity"`
}

type checkoutRequest struct {
	Items []checkoutItem `json:"items"`
}

type checkoutResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// Submit はクリック時点のスナップショットを送信してリダイレクト先URLを返す。
// 前回の送信が未完了の間はErrCheckoutInFlight。
func (c *CheckoutClient) Submit(ctx context.Context, snap model.CartSnapshot) (string, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return "", ErrCheckoutInFlight
	}
	defer c.inFlight.Store(false)

	reqBody := checkoutRequest{Items: make([]checkoutItem, 0, len(snap.Items))}
	for _, it := range snap.Items {
		reqBody.Items = append(reqBody.Items, checkoutItem{
			Title:      it.Title,
			Price:      it.Price,
			ProductImg: it.ProductImg,
			Quantity:   it.Quantity,
		})
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/stripe-checkout", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var out checkoutResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("invalid checkout response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", fmt.Errorf("checkout failed: %s", out.Error)
		}
		return "", fmt.Errorf("checkout failed: status %d", resp.StatusCode)
	}

	return out.URL, nil
}
