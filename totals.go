package ubl

import (
	"github.com/invoclear/ubl/bill"
	"github.com/invoclear/ubl/tax"
)

// TaxTotal represents a tax total
type TaxTotal struct {
	TaxAmount   Amount        `xml:"cbc:TaxAmount"`
	TaxSubtotal []TaxSubtotal `xml:"cac:TaxSubtotal,omitempty"`
}

// TaxSubtotal represents a tax subtotal
type TaxSubtotal struct {
	TaxableAmount Amount      `xml:"cbc:TaxableAmount"`
	TaxAmount     Amount      `xml:"cbc:TaxAmount"`
	TaxCategory   TaxCategory `xml:"cac:TaxCategory"`
}

// TaxCategory represents a tax category
type TaxCategory struct {
	ID        *IDType    `xml:"cbc:ID,omitempty"`
	Percent   *string    `xml:"cbc:Percent,omitempty"`
	TaxScheme *TaxScheme `xml:"cac:TaxScheme,omitempty"`
}

// MonetaryTotal represents the monetary totals of the invoice
type MonetaryTotal struct {
	LineExtensionAmount  Amount  `xml:"cbc:LineExtensionAmount"`
	TaxExclusiveAmount   Amount  `xml:"cbc:TaxExclusiveAmount"`
	TaxInclusiveAmount   Amount  `xml:"cbc:TaxInclusiveAmount"`
	AllowanceTotalAmount *Amount `xml:"cbc:AllowanceTotalAmount,omitempty"`
	ChargeTotalAmount    *Amount `xml:"cbc:ChargeTotalAmount,omitempty"`
	PrepaidAmount        *Amount `xml:"cbc:PrepaidAmount,omitempty"`
	PayableAmount        *Amount `xml:"cbc:PayableAmount,omitempty"`
}

func (ui *Invoice) addTotals(inv *bill.Invoice) {
	if inv == nil || inv.Totals == nil {
		return
	}
	t := inv.Totals
	currency := inv.Currency

	ui.LegalMonetaryTotal = MonetaryTotal{
		LineExtensionAmount: newAmount(t.Sum, currency),
		TaxExclusiveAmount:  newAmount(t.Total, currency),
		TaxInclusiveAmount:  newAmount(t.TotalWithTax, currency),
	}
	payable := newAmount(t.Payable, currency)
	ui.LegalMonetaryTotal.PayableAmount = &payable

	if t.Discount != nil {
		a := newAmount(*t.Discount, currency)
		ui.LegalMonetaryTotal.AllowanceTotalAmount = &a
	}
	if t.Charge != nil {
		a := newAmount(*t.Charge, currency)
		ui.LegalMonetaryTotal.ChargeTotalAmount = &a
	}
	if t.Advances != nil {
		a := newAmount(*t.Advances, currency)
		ui.LegalMonetaryTotal.PrepaidAmount = &a
	}

	ui.TaxTotal = []TaxTotal{
		{
			TaxAmount: newAmount(t.Tax, currency),
		},
	}
	if t.Taxes != nil {
		for _, rt := range t.Taxes.Rates {
			ui.TaxTotal[0].TaxSubtotal = append(ui.TaxTotal[0].TaxSubtotal, newSubtotal(rt, currency))
		}
	}
}

// newSubtotal renders one aggregated (scheme, rate) group.
func newSubtotal(rt *tax.RateTotal, currency string) TaxSubtotal {
	sub := TaxSubtotal{
		TaxableAmount: newAmount(rt.Base, currency),
		TaxAmount:     newAmount(rt.Amount, currency),
	}
	cat := TaxCategory{
		ID: &IDType{Value: string(rt.Category)},
	}
	p := percentString(rt.Percent)
	cat.Percent = &p
	cat.TaxScheme = newTaxScheme(rt.Scheme)
	sub.TaxCategory = cat
	return sub
}

// newTaxScheme renders a scheme reference, including its display name when
// the scheme is part of the registry.
func newTaxScheme(s tax.Scheme) *TaxScheme {
	ts := &TaxScheme{ID: IDType{Value: s.String()}}
	if def := s.Def(); def != nil {
		n := def.Name
		ts.Name = &n
	}
	return ts
}
