package ubl

import (
	"github.com/invoclear/ubl/bill"
	"github.com/invoclear/ubl/tax"
)

// AllowanceCharge represents an allowance or charge
type AllowanceCharge struct {
	ChargeIndicator       bool           `xml:"cbc:ChargeIndicator"`
	AllowanceChargeReason *string        `xml:"cbc:AllowanceChargeReason,omitempty"`
	Amount                Amount         `xml:"cbc:Amount"`
	TaxCategory           []*TaxCategory `xml:"cac:TaxCategory,omitempty"`
}

func (ui *Invoice) addCharges(inv *bill.Invoice) {
	if len(inv.AllowanceCharges) == 0 {
		return
	}
	ui.AllowanceCharge = make([]AllowanceCharge, len(inv.AllowanceCharges))
	for i, ac := range inv.AllowanceCharges {
		ui.AllowanceCharge[i] = makeAllowanceCharge(ac, inv.Currency)
	}
}

func makeAllowanceCharge(ac *bill.AllowanceCharge, ccy string) AllowanceCharge {
	c := AllowanceCharge{
		ChargeIndicator: ac.Charge,
		Amount:          newAmount(ac.Amount, ccy),
	}
	if ac.Reason != "" {
		r := ac.Reason
		c.AllowanceChargeReason = &r
	}
	if ac.Taxable {
		// Allowances and charges are not scheme-tagged; VAT is assumed.
		p := percentString(ac.TaxPercent)
		combo := &tax.Combo{Scheme: tax.SchemeVAT, Percent: ac.TaxPercent}
		c.TaxCategory = []*TaxCategory{
			{
				ID:        &IDType{Value: string(combo.Category())},
				Percent:   &p,
				TaxScheme: newTaxScheme(tax.SchemeVAT),
			},
		}
	}
	return c
}
