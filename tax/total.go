package tax

import "github.com/shopspring/decimal"

// RateTotal accumulates the taxable base and tax amount for one
// (scheme, percent) combination.
type RateTotal struct {
	Scheme   Scheme          `json:"scheme"`
	Category Category        `json:"category"`
	Percent  decimal.Decimal `json:"percent"`
	Base     decimal.Decimal `json:"base"`
	Amount   decimal.Decimal `json:"amount"`
}

// Total is the document-level tax total: one rate total per distinct
// (scheme, percent) pair, in the order first encountered, plus their sum.
type Total struct {
	Sum   decimal.Decimal `json:"sum"`
	Rates []*RateTotal    `json:"rates,omitempty"`
}

// LineInput is one line's contribution to the document total.
type LineInput struct {
	// Base is the line extension amount.
	Base decimal.Decimal
	// Taxes are the schemes enabled on the line.
	Taxes Set
}

// ChargeInput is a document-level allowance or charge. Taxable entries are
// folded into the VAT group for their rate, as allowances and charges carry
// no scheme of their own. Charges add to the group, allowances subtract.
type ChargeInput struct {
	Charge  bool
	Amount  decimal.Decimal
	Taxable bool
	Percent decimal.Decimal
}

// CalculateTotal aggregates per-line taxes and taxable allowances or charges
// into a document total. Lines are grouped by (scheme, percent); each group's
// tax amount is recomputed from the aggregated base so the subtotal always
// satisfies amount == round(base * percent / 100).
func CalculateTotal(lines []LineInput, charges []ChargeInput) *Total {
	t := new(Total)

	for _, line := range lines {
		for _, c := range line.Taxes {
			rt := t.rate(c.Scheme, c.Percent)
			rt.Base = rt.Base.Add(line.Base)
		}
	}

	for _, ch := range charges {
		if !ch.Taxable {
			continue
		}
		rt := t.rate(SchemeVAT, ch.Percent)
		if ch.Charge {
			rt.Base = rt.Base.Add(ch.Amount)
		} else {
			rt.Base = rt.Base.Sub(ch.Amount)
		}
	}

	t.Sum = decimal.Zero
	for _, rt := range t.Rates {
		rt.Amount = RateAmount(rt.Base, rt.Percent)
		t.Sum = t.Sum.Add(rt.Amount)
	}

	return t
}

// rate finds the total's entry for the given scheme and percent, appending a
// fresh one the first time the pair is seen. Insertion order is preserved so
// output is stable across invocations.
func (t *Total) rate(scheme Scheme, percent decimal.Decimal) *RateTotal {
	for _, rt := range t.Rates {
		if rt.Scheme == scheme && rt.Percent.Equal(percent) {
			return rt
		}
	}
	c := &Combo{Scheme: scheme, Percent: percent}
	rt := &RateTotal{
		Scheme:   scheme,
		Category: c.Category(),
		Percent:  percent,
		Base:     decimal.Zero,
		Amount:   decimal.Zero,
	}
	t.Rates = append(t.Rates, rt)
	return rt
}

// Rate returns the total's entry for the given scheme and percent, or nil.
func (t *Total) Rate(scheme Scheme, percent decimal.Decimal) *RateTotal {
	for _, rt := range t.Rates {
		if rt.Scheme == scheme && rt.Percent.Equal(percent) {
			return rt
		}
	}
	return nil
}
