package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"app/internal/client"
	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func snapshot() model.CartSnapshot {
	return model.CartSnapshot{
		Items: []model.CartItem{
			{Title: "Widget", Price: "$12.99", ProductImg: "http://x/y.png", Quantity: 3},
		},
		Total: 3897,
	}
}

func TestCheckoutClient_Submit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stripe-checkout", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://pay.example.com/cs_test"}`))
	}))
	defer srv.Close()

	cc := client.NewCheckoutClient(srv.URL)
	url, err := cc.Submit(context.Background(), snapshot())
	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_test", url)
}

func TestCheckoutClient_Submit_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to create checkout session"}`))
	}))
	defer srv.Close()

	cc := client.NewCheckoutClient(srv.URL)
	_, err := cc.Submit(context.Background(), snapshot())
	assert.ErrorContains(t, err, "failed to create checkout session")
}

func TestCheckoutClient_Submit_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 接続先がいない

	cc := client.NewCheckoutClient(srv.URL)
	_, err := cc.Submit(context.Background(), snapshot())
	assert.Error(t, err)
}

// 送信中の二重送信はErrCheckoutInFlight
func TestCheckoutClient_Submit_DoubleSubmitGuard(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var enterOnce sync.Once

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		enterOnce.Do(func() { close(entered) })
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://pay.example.com/cs_test"}`))
	}))
	defer srv.Close()

	cc := client.NewCheckoutClient(srv.URL)

	type result struct {
		url string
		err error
	}
	done := make(chan result, 1)
	go func() {
		url, err := cc.Submit(context.Background(), snapshot())
		done <- result{url: url, err: err}
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("first submit never reached the server")
	}

	//1本目が未完了の間は拒否される
	_, err := cc.Submit(context.Background(), snapshot())
	assert.ErrorIs(t, err, client.ErrCheckoutInFlight)

	close(release)

	select {
	case res := <-done:
		assert.NoError(t, res.err)
		assert.Equal(t, "https://pay.example.com/cs_test", res.url)
	case <-time.After(5 * time.Second):
		t.Fatal("first submit never finished")
	}

	//完了後はまた送れる（2本目はそのまま成功レスポンス）
	url, err := cc.Submit(context.Background(), snapshot())
	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_test", url)
}
