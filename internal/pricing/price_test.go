package pricing_test

import (
	"testing"

	"app/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceToMinorUnits(t *testing.T) {
	cases := []struct {
		name    string
		display string
		want    int64
		wantErr bool
	}{
		{name: "dollar sign", display: "$12.99", want: 1299},
		{name: "whole amount", display: "$10.00", want: 1000},
		{name: "fifty cents", display: "$5.50", want: 550},
		{name: "no symbol", display: "7.25", want: 725},
		{name: "currency prefix", display: "USD 3.10", want: 310},
		{name: "rounds instead of truncating", display: "$19.99", want: 1999},
		{name: "zero", display: "$0.00", want: 0},
		{name: "negative", display: "-$5.00", want: -500},
		{name: "dash only", display: "$-", wantErr: true},
		{name: "empty", display: "", wantErr: true},
		{name: "letters only", display: "abc", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pricing.ParsePriceToMinorUnits(tc.display)
			if tc.wantErr {
				assert.ErrorIs(t, err, pricing.ErrInvalidPrice)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "$25.50", pricing.FormatMinorUnits(2550))
	assert.Equal(t, "$0.00", pricing.FormatMinorUnits(0))
	assert.Equal(t, "$0.05", pricing.FormatMinorUnits(5))
	assert.Equal(t, "$12.99", pricing.FormatMinorUnits(1299))
	assert.Equal(t, "-$1.50", pricing.FormatMinorUnits(-150))
}
