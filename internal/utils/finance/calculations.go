package finance

import (
	"fmt"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// ItemSubtotal computes a quote line subtotal:
// unitPrice * headcount * (1 - discountPct/100).
func ItemSubtotal(unitPrice decimal.Decimal, headcount int, discountPct decimal.Decimal) decimal.Decimal {
	gross := unitPrice.Mul(decimal.NewFromInt(int64(headcount)))
	factor := one.Sub(discountPct.Div(hundred))
	return gross.Mul(factor)
}

// QuoteTotals recomputes quote-level subtotal, tax and total from line items.
func QuoteTotals(items []domain.QuoteItem) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	tax = subtotal.Mul(domain.IVARate)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

// SplitGross decomposes a tax-inclusive amount into net and tax parts:
// net = gross / (1 + IVA), tax = gross - net. Used for credit notes, which
// are issued against gross invoice amounts.
func SplitGross(gross decimal.Decimal) domain.Amount {
	net := gross.Div(one.Add(domain.IVARate))
	return domain.Amount{
		Net:   net,
		Tax:   gross.Sub(net),
		Total: gross,
	}
}

// Percentage returns part/whole*100, guarding against non-positive
// denominators so callers never see a division error or an absurd ratio.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// ValidateAmount checks the net/tax/total consistency of a transaction amount.
func ValidateAmount(a domain.Amount) error {
	if a.Total.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction total must be positive, got %s", a.Total.String())
	}
	if a.Net.IsNegative() || a.Tax.IsNegative() {
		return fmt.Errorf("net and tax must not be negative")
	}
	if !a.Net.Add(a.Tax).Equal(a.Total) {
		return fmt.Errorf("total %s does not equal net %s plus tax %s",
			a.Total.String(), a.Net.String(), a.Tax.String())
	}
	return nil
}
