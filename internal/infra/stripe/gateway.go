package stripe

import (
	"context"

	stripesdk "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	repo "app/internal/repository"
)

// Gateway はStripeのhosted checkout実装。
// カード払い・単発決済・請求先住所必須の固定構成。
type Gateway struct {
	api *client.API
}

// DI
func NewGateway(apiKey string) *Gateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &Gateway{api: api}
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, p repo.CheckoutSessionParams) (repo.CheckoutSession, error) {
	params := &stripesdk.CheckoutSessionParams{
		PaymentMethodTypes:       stripesdk.StringSlice([]string{"card"}),
		Mode:                     stripesdk.String(string(stripesdk.CheckoutSessionModePayment)),
		BillingAddressCollection: stripesdk.String(string(stripesdk.CheckoutSessionBillingAddressCollectionRequired)),
		SuccessURL:               stripesdk.String(p.SuccessURL),
		CancelURL:                stripesdk.String(p.CancelURL),
	}
	params.Context = ctx

	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}

	for _, li := range p.LineItems {
		params.LineItems = append(params.LineItems, &stripesdk.CheckoutSessionLineItemParams{
			PriceData: &stripesdk.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripesdk.String(li.Currency),
				UnitAmount: stripesdk.Int64(li.UnitAmount),
				ProductData: &stripesdk.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:   stripesdk.String(li.ProductName),
					Images: stripesdk.StringSlice(li.ProductImages),
				},
			},
			Quantity: stripesdk.Int64(li.Quantity),
		})
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return repo.CheckoutSession{}, err
	}

	return repo.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}
