package bill

import (
	"github.com/invopop/validation"
	"github.com/shopspring/decimal"
)

// AllowanceCharge is a document-level discount (allowance) or surcharge
// (charge). Taxable entries contribute to the document tax total under the
// VAT scheme at the given rate; entries carry no scheme of their own.
type AllowanceCharge struct {
	// Charge discriminates: true for a charge, false for an allowance.
	Charge bool `json:"charge,omitempty"`
	// Reason describes why the amount is applied.
	Reason string `json:"reason,omitempty"`
	// Amount of the allowance or charge, always positive.
	Amount decimal.Decimal `json:"amount"`
	// Taxable marks the entry as subject to VAT at TaxPercent.
	Taxable bool `json:"taxable,omitempty"`
	// TaxPercent is the VAT rate applied when Taxable is set.
	TaxPercent decimal.Decimal `json:"tax_percent,omitempty"`
}

// Validate checks the entry has a reason to show on the document.
func (ac *AllowanceCharge) Validate() error {
	return validation.ValidateStruct(ac,
		validation.Field(&ac.Reason, validation.Required),
	)
}
