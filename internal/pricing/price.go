package pricing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidPrice = errors.New("invalid price")

// ParsePriceToMinorUnits は表示価格（"$12.99"など）をセント単位に変換する。
// 合計計算・リクエスト組み立て・エンドポイントのline item生成が
// すべてこの1本を使う（表示額と請求額のズレ防止）。
// 数字として読めない文字列はErrInvalidPrice。
func ParsePriceToMinorUnits(display string) (int64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, display)

	if cleaned == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, display)
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, display)
	}

	return int64(math.Round(f * 100)), nil
}

// FormatMinorUnits はセント単位を2桁固定の表示（"$25.50"）にする。
func FormatMinorUnits(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s$%d.%02d", sign, amount/100, amount%100)
}
