package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/pricing"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// チェックアウト対象の1行（クライアントから届いた形のまま）
type CheckoutItem struct {
	Title      string
	Price      string
	ProductImg string
	Quantity   int64
}

// 冪等キー用
type IDGenerator interface {
	NewID() string
}

// CheckoutUsecase はカートのスナップショットをゲートウェイのセッションに変換します。
// 価格変換は pricing.ParsePriceToMinorUnits に一本化してあります。
type CheckoutUsecase struct {
	gateway repo.PaymentGateway
	idGen   IDGenerator
	domain  string
}

// DI
func NewCheckoutUsecase(gateway repo.PaymentGateway, idGen IDGenerator, domain string) *CheckoutUsecase {
	return &CheckoutUsecase{
		gateway: gateway,
		idGen:   idGen,
		domain:  domain,
	}
}

// CreateSession は明細をline itemへ変換してセッションを作り、リダイレクト先URLを返す。
// 空カート・不正数量・読めない価格は400。ゲートウェイ失敗は500。
func (u *CheckoutUsecase) CreateSession(ctx context.Context, items []CheckoutItem) (string, error) {
	if len(items) == 0 {
		return "", NewHTTPError(http.StatusBadRequest, "empty cart")
	}

	lineItems := make([]repo.CheckoutLineItem, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return "", NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}

		amount, err := pricing.ParsePriceToMinorUnits(it.Price)
		if err != nil || amount < 0 {
			return "", NewHTTPError(http.StatusBadRequest, "invalid price")
		}

		lineItems = append(lineItems, repo.CheckoutLineItem{
			Currency:      "usd",
			ProductName:   it.Title,
			ProductImages: []string{it.ProductImg},
			UnitAmount:    amount,
			Quantity:      it.Quantity,
		})
	}

	//二重送信がすり抜けてもセッションが重複しないよう冪等キーを付ける
	sess, err := u.gateway.CreateCheckoutSession(ctx, repo.CheckoutSessionParams{
		LineItems:      lineItems,
		SuccessURL:     u.domain + "/success",
		CancelURL:      u.domain + "/cancel",
		IdempotencyKey: u.idGen.NewID(),
	})
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "failed to create checkout session")
	}

	return sess.URL, nil
}
