package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNormalizePrices(t *testing.T) {
	d := decimal.RequireFromString
	testCases := []struct {
		name                         string
		sale, normal, savings        string
		hasSavings                   bool
		wantSale, wantNormal, wantSv string
	}{
		{name: "upstream savings kept", sale: "3.99", normal: "19.99", savings: "80.04", hasSavings: true, wantSale: "3.99", wantNormal: "19.99", wantSv: "80.04"},
		{name: "derived savings", sale: "5", normal: "20", wantSale: "5.00", wantNormal: "20.00", wantSv: "75.00"},
		{name: "missing normal raised to sale", sale: "9.99", normal: "0", wantSale: "9.99", wantNormal: "9.99", wantSv: "0.00"},
		{name: "normal below sale raised", sale: "10", normal: "8", wantSale: "10.00", wantNormal: "10.00", wantSv: "0.00"},
		{name: "negative savings clamped", sale: "10", normal: "10", savings: "-5", hasSavings: true, wantSale: "10.00", wantNormal: "10.00", wantSv: "0.00"},
		{name: "free game", sale: "0", normal: "0", wantSale: "0.00", wantNormal: "0.00", wantSv: "0.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			savings := decimal.Zero
			if tc.hasSavings {
				savings = d(tc.savings)
			}
			sale, normal, sv := normalizePrices(d(tc.sale), d(tc.normal), savings, tc.hasSavings)
			require.Equal(t, tc.wantSale, sale.StringFixed(2))
			require.Equal(t, tc.wantNormal, normal.StringFixed(2))
			require.Equal(t, tc.wantSv, sv.StringFixed(2))
			require.True(t, sale.LessThanOrEqual(normal))
		})
	}
}
