package ubl

import (
	"github.com/invoclear/ubl/bill"
)

// PaymentTerms represents the terms of payment
type PaymentTerms struct {
	Note []string `xml:"cbc:Note,omitempty"`
}

// PrepaidPayment represents a prepaid payment
type PrepaidPayment struct {
	ID         string  `xml:"cbc:ID,omitempty"`
	PaidAmount *Amount `xml:"cbc:PaidAmount"`
}

func (ui *Invoice) addPayment(inv *bill.Invoice) {
	if inv.PaymentTermsNote != "" {
		ui.PaymentTerms = []PaymentTerms{
			{Note: []string{inv.PaymentTermsNote}},
		}
	}

	if inv.Prepaid != nil && !inv.Prepaid.IsZero() {
		a := newAmount(*inv.Prepaid, inv.Currency)
		ui.PrepaidPayment = []PrepaidPayment{
			{PaidAmount: &a},
		}
	}
}
