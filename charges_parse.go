package ubl

import (
	"fmt"

	"github.com/invoclear/ubl/bill"
)

func (ui *Invoice) parseCharges(out *bill.Invoice) error {
	for _, ac := range ui.AllowanceCharge {
		parsed, err := parseAllowanceCharge(&ac)
		if err != nil {
			return err
		}
		out.AllowanceCharges = append(out.AllowanceCharges, parsed)
	}
	return nil
}

func parseAllowanceCharge(ac *AllowanceCharge) (*bill.AllowanceCharge, error) {
	out := &bill.AllowanceCharge{
		Charge: ac.ChargeIndicator,
	}
	if ac.AllowanceChargeReason != nil {
		out.Reason = *ac.AllowanceChargeReason
	}

	amount, err := parseAmount(ac.Amount.Value)
	if err != nil {
		return nil, fmt.Errorf("allowance charge amount: %w", err)
	}
	out.Amount = amount

	if len(ac.TaxCategory) > 0 {
		out.Taxable = true
		if p := ac.TaxCategory[0].Percent; p != nil {
			percent, err := parseAmount(*p)
			if err != nil {
				return nil, fmt.Errorf("allowance charge percent: %w", err)
			}
			out.TaxPercent = percent
		}
	}

	return out, nil
}
