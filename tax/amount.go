package tax

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundAmount rounds a monetary amount to the document precision of two
// decimal places, half away from zero.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RateAmount computes base * percent / 100 rounded to the document precision.
func RateAmount(base, percent decimal.Decimal) decimal.Decimal {
	return RoundAmount(base.Mul(percent).Div(hundred))
}
