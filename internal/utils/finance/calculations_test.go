package finance_test

import (
	"testing"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/otecpro/otec_erp_backend/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemSubtotal(t *testing.T) {
	tests := []struct {
		name        string
		unitPrice   string
		headcount   int
		discountPct string
		want        string
	}{
		{name: "no discount", unitPrice: "50000", headcount: 10, discountPct: "0", want: "500000"},
		{name: "ten percent discount", unitPrice: "85000", headcount: 15, discountPct: "10", want: "1147500"},
		{name: "full discount", unitPrice: "85000", headcount: 15, discountPct: "100", want: "0"},
		{name: "single participant", unitPrice: "120000", headcount: 1, discountPct: "5", want: "114000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finance.ItemSubtotal(
				decimal.RequireFromString(tt.unitPrice),
				tt.headcount,
				decimal.RequireFromString(tt.discountPct),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got.String(), tt.want)
		})
	}
}

func TestQuoteTotals(t *testing.T) {
	items := []domain.QuoteItem{
		{Subtotal: decimal.RequireFromString("1147500")},
		{Subtotal: decimal.RequireFromString("300000")},
	}

	subtotal, tax, total := finance.QuoteTotals(items)

	assert.True(t, subtotal.Equal(decimal.RequireFromString("1447500")))
	assert.True(t, tax.Equal(decimal.RequireFromString("275025")))
	assert.True(t, total.Equal(decimal.RequireFromString("1722525")))
}

func TestSplitGross(t *testing.T) {
	amount := finance.SplitGross(decimal.RequireFromString("119000"))

	assert.True(t, amount.Net.Round(2).Equal(decimal.RequireFromString("100000")),
		"net was %s", amount.Net.String())
	assert.True(t, amount.Net.Add(amount.Tax).Equal(amount.Total))
	assert.True(t, amount.Total.Equal(decimal.RequireFromString("119000")))
}

func TestPercentage(t *testing.T) {
	pct := finance.Percentage(decimal.RequireFromString("300160"), decimal.RequireFromString("700000"))
	assert.True(t, pct.Round(2).Equal(decimal.RequireFromString("42.88")), "pct was %s", pct.String())

	assert.True(t, finance.Percentage(decimal.RequireFromString("100"), decimal.Zero).IsZero())
	assert.True(t, finance.Percentage(decimal.RequireFromString("100"), decimal.NewFromInt(-5)).IsZero())
}

func TestValidateAmount(t *testing.T) {
	valid := domain.Amount{
		Net:   decimal.RequireFromString("100000"),
		Tax:   decimal.RequireFromString("19000"),
		Total: decimal.RequireFromString("119000"),
	}
	require.NoError(t, finance.ValidateAmount(valid))

	assert.Error(t, finance.ValidateAmount(domain.Amount{
		Net:   decimal.RequireFromString("100000"),
		Tax:   decimal.RequireFromString("19000"),
		Total: decimal.RequireFromString("120000"),
	}))
	assert.Error(t, finance.ValidateAmount(domain.Amount{Total: decimal.Zero}))
	assert.Error(t, finance.ValidateAmount(domain.Amount{
		Net:   decimal.RequireFromString("-100"),
		Tax:   decimal.RequireFromString("219"),
		Total: decimal.RequireFromString("119"),
	}))
}
