package main

import (
	"log"

	"app/internal/config"
	"app/internal/handler"
	stripeinfra "app/internal/infra/stripe"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	//.envが無ければ環境変数だけで動かす
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//決済ゲートウェイ
	gateway := stripeinfra.NewGateway(cfg.StripeAPIKey)
	idGen := &uuidGenerator{}

	//Usecase生成
	checkoutUC := usecase.NewCheckoutUsecase(gateway, idGen, cfg.Domain)

	//Handler生成
	checkoutH := handler.NewCheckoutHandler(checkoutUC)
	pageH := handler.NewPageHandler(cfg.PublicDir)

	//Server起動
	addr := ":" + cfg.Port
	if cfg.Port[0] == ':' {
		addr = cfg.Port
	}

	if err := server.Start(addr, pageH, checkoutH); err != nil {
		log.Fatal(err)
	}
}
