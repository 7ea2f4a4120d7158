package bill

import (
	"github.com/invoclear/ubl/tax"
	"github.com/shopspring/decimal"
)

// Totals carries the calculated monetary totals of an invoice. Optional
// amounts are nil, not zero, when the document has no value for them, so
// that serialization can omit the matching elements entirely.
type Totals struct {
	// Sum of all line extension amounts.
	Sum decimal.Decimal `json:"sum"`
	// Discount is the total of document allowances, absent when zero.
	Discount *decimal.Decimal `json:"discount,omitempty"`
	// Charge is the total of document charges, absent when zero.
	Charge *decimal.Decimal `json:"charge,omitempty"`
	// Total is the tax-exclusive amount: sum plus charges minus discounts.
	Total decimal.Decimal `json:"total"`
	// Tax is the total tax on the document.
	Tax decimal.Decimal `json:"tax"`
	// TotalWithTax is the tax-inclusive amount.
	TotalWithTax decimal.Decimal `json:"total_with_tax"`
	// Advances is the prepaid amount, absent when zero.
	Advances *decimal.Decimal `json:"advances,omitempty"`
	// Payable is what remains to be paid.
	Payable decimal.Decimal `json:"payable"`
	// Taxes breaks the tax total down by scheme and rate.
	Taxes *tax.Total `json:"taxes,omitempty"`
}
