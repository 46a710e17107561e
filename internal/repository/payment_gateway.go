package repository

import "context"

// ゲートウェイへ渡すline item。UnitAmountはセント単位。
type CheckoutLineItem struct {
	Currency      string
	ProductName   string
	ProductImages []string
	UnitAmount    int64
	Quantity      int64
}

type CheckoutSessionParams struct {
	LineItems      []CheckoutLineItem
	SuccessURL     string
	CancelURL      string
	IdempotencyKey string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentGateway はホスト型チェックアウトの作成。実装はinfra側。
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutSessionParams) (CheckoutSession, error)
}
