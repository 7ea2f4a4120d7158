package bill

import (
	"github.com/invoclear/ubl/tax"
	"github.com/invopop/validation"
	"github.com/shopspring/decimal"
)

// Line is a single invoice line. Quantity, item and taxes come from the
// caller; Index and Total are filled in by Calculate.
type Line struct {
	// Index is the 1-based position of the line, assigned during calculation.
	Index int `json:"index,omitempty"`
	// Quantity of the item invoiced.
	Quantity decimal.Decimal `json:"quantity"`
	// Item describes what is being billed.
	Item *Item `json:"item"`
	// Taxes contains the schemes enabled on this line.
	Taxes tax.Set `json:"taxes,omitempty"`
	// Total is the line extension amount, quantity times price, calculated.
	Total decimal.Decimal `json:"total,omitempty"`
}

// Item is the thing a line bills for.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Unit is the UN/ECE unit of measure code, e.g. "EA", "HUR", "KGM".
	Unit string `json:"unit,omitempty"`
	// Price is the unit price before tax.
	Price decimal.Decimal `json:"price"`
}

// calculate computes the line extension amount at document precision.
func (l *Line) calculate(index int) {
	l.Index = index
	if l.Item == nil {
		return
	}
	l.Total = tax.RoundAmount(l.Quantity.Mul(l.Item.Price))
}

// Validate checks the line's structure and that every tax scheme on it is
// recognized. Numeric ranges are the upstream form layer's concern.
func (l *Line) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Item, validation.Required),
		validation.Field(&l.Taxes),
	)
}

// Validate checks the item has a name.
func (i *Item) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Name, validation.Required),
	)
}
