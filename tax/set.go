package tax

import (
	"github.com/invopop/validation"
	"github.com/shopspring/decimal"
)

// Category classifies a rate for document output purposes.
type Category string

// Supported categories.
const (
	// CategoryStandard marks a standard-rated combo.
	CategoryStandard Category = "S"
	// CategoryZero marks a zero-rated combo.
	CategoryZero Category = "Z"
)

// Combo represents a single tax scheme enabled on an invoice line together
// with the percentage rate to apply.
type Combo struct {
	Scheme  Scheme          `json:"scheme"`
	Percent decimal.Decimal `json:"percent"`
}

// Set is the ordered collection of schemes enabled on a single line. A line
// may carry zero, one or several combos; each is computed independently on
// the full line amount.
type Set []*Combo

// Category derives the output category from the rate.
func (c *Combo) Category() Category {
	if c.Percent.IsZero() {
		return CategoryZero
	}
	return CategoryStandard
}

// Validate ensures the combo references a known scheme.
func (c *Combo) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Scheme, validation.Required, validation.By(checkScheme)),
	)
}

func checkScheme(value any) error {
	s, _ := value.(Scheme)
	_, err := SchemeByCode(s)
	return err
}

// Validate checks every combo in the set.
func (s Set) Validate() error {
	for _, c := range s {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the combo for the given scheme, or nil when the scheme is not
// enabled on the line.
func (s Set) Get(scheme Scheme) *Combo {
	for _, c := range s {
		if c.Scheme == scheme {
			return c
		}
	}
	return nil
}

// Calculate computes one rate total per enabled combo. Every combo uses the
// full base as its taxable amount: schemes are additive, never compounding.
func (s Set) Calculate(base decimal.Decimal) []*RateTotal {
	if len(s) == 0 {
		return nil
	}
	out := make([]*RateTotal, 0, len(s))
	for _, c := range s {
		out = append(out, &RateTotal{
			Scheme:   c.Scheme,
			Category: c.Category(),
			Percent:  c.Percent,
			Base:     base,
			Amount:   RateAmount(base, c.Percent),
		})
	}
	return out
}

// Sum adds up the tax amounts of a list of rate totals.
func Sum(rates []*RateTotal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rates {
		total = total.Add(r.Amount)
	}
	return total
}
