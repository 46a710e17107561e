package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（3000）

	StripeAPIKey string // Stripeのシークレットキー
	Domain       string // リダイレクトURLを組み立てるベースドメイン

	PublicDir string // 静的ページの置き場所
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:         getenv("PORT", "3000"),
		StripeAPIKey: os.Getenv("STRIPE_API_KEY"),
		Domain:       os.Getenv("DOMAIN"),
		PublicDir:    getenv("PUBLIC_DIR", "public"),
	}

	//必須チェック
	if cfg.StripeAPIKey == "" {
		return Config{}, fmt.Errorf("STRIPE_API_KEY is required")
	}
	if cfg.Domain == "" {
		return Config{}, fmt.Errorf("DOMAIN is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
