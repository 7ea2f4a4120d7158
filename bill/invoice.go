// Package bill defines the invoice document model consumed by the UBL
// serialization layer: parties, lines, allowances and charges, and the
// calculation step that derives tax and monetary totals from them.
//
// The model assumes pre-validated input. Validate enforces the structural
// rules the clearance schema needs (required fields, recognized tax
// schemes); it does not range-check amounts, which remain the caller's
// responsibility.
package bill

import (
	"github.com/invoclear/ubl/tax"
	"github.com/invopop/validation"
	"github.com/shopspring/decimal"
)

// InvoiceType distinguishes the supported document kinds.
type InvoiceType string

// Supported invoice types.
const (
	InvoiceTypeStandard   InvoiceType = "standard"
	InvoiceTypeCreditNote InvoiceType = "credit-note"
	InvoiceTypeDebitNote  InvoiceType = "debit-note"
)

var invoiceTypes = []any{
	InvoiceTypeStandard,
	InvoiceTypeCreditNote,
	InvoiceTypeDebitNote,
}

// Invoice is a single billing document. Construct one per generation call
// from upstream data, Calculate it, then hand it to the ubl package.
type Invoice struct {
	// UUID is an optional globally unique document identifier.
	UUID string `json:"uuid,omitempty"`
	// Series prefixes the code in the document identifier.
	Series string `json:"series,omitempty"`
	// Code is the sequential document number.
	Code string `json:"code"`
	// Type of the document, standard when empty.
	Type InvoiceType `json:"type,omitempty"`
	// IssueDate is when the document was issued.
	IssueDate Date `json:"issue_date"`
	// DueDate is when payment falls due.
	DueDate *Date `json:"due_date,omitempty"`
	// Currency is the ISO 4217 document currency code.
	Currency string `json:"currency"`
	// ExchangeRate optionally records the rate to the national currency.
	// It is propagated to the output untouched; no conversion is performed.
	ExchangeRate *ExchangeRate `json:"exchange_rate,omitempty"`
	// Supplier issues the invoice.
	Supplier *Party `json:"supplier"`
	// Customer receives the invoice.
	Customer *Party `json:"customer"`
	// Lines being billed.
	Lines []*Line `json:"lines"`
	// AllowanceCharges at document level.
	AllowanceCharges []*AllowanceCharge `json:"allowance_charges,omitempty"`
	// Prepaid is the amount already received, absent when none.
	Prepaid *decimal.Decimal `json:"prepaid,omitempty"`
	// PaymentTermsNote is free text describing the payment terms.
	PaymentTermsNote string `json:"payment_terms_note,omitempty"`
	// References lists additional supporting documents.
	References []*Reference `json:"references,omitempty"`
	// Totals are filled in by Calculate.
	Totals *Totals `json:"totals,omitempty"`
}

// ExchangeRate records a conversion rate between the document currency and
// another currency.
type ExchangeRate struct {
	// Source currency code, normally the document currency.
	Source string `json:"source"`
	// Target currency code.
	Target string `json:"target"`
	// Rate multiplies a source amount into the target currency.
	Rate decimal.Decimal `json:"rate"`
}

// Reference points at an additional supporting document.
type Reference struct {
	// ID of the referenced document.
	ID string `json:"id"`
	// Description of what the document contains.
	Description string `json:"description,omitempty"`
	// URI where the document can be retrieved.
	URI string `json:"uri,omitempty"`
}

// GetType returns the document type, defaulting to standard.
func (inv *Invoice) GetType() InvoiceType {
	if inv.Type == "" {
		return InvoiceTypeStandard
	}
	return inv.Type
}

// Number combines series and code into the document identifier.
func (inv *Invoice) Number() string {
	if inv.Series == "" {
		return inv.Code
	}
	return inv.Series + "-" + inv.Code
}

// Calculate assigns line indexes, computes line extension amounts, and
// derives the document tax and monetary totals. It is deterministic and may
// be called repeatedly; each call rebuilds Totals from scratch.
func (inv *Invoice) Calculate() error {
	taxLines := make([]tax.LineInput, 0, len(inv.Lines))
	sum := decimal.Zero
	for i, l := range inv.Lines {
		l.calculate(i + 1)
		sum = sum.Add(l.Total)
		taxLines = append(taxLines, tax.LineInput{Base: l.Total, Taxes: l.Taxes})
	}

	charges := make([]tax.ChargeInput, 0, len(inv.AllowanceCharges))
	allowanceTotal := decimal.Zero
	chargeTotal := decimal.Zero
	for _, ac := range inv.AllowanceCharges {
		if ac.Charge {
			chargeTotal = chargeTotal.Add(ac.Amount)
		} else {
			allowanceTotal = allowanceTotal.Add(ac.Amount)
		}
		charges = append(charges, tax.ChargeInput{
			Charge:  ac.Charge,
			Amount:  ac.Amount,
			Taxable: ac.Taxable,
			Percent: ac.TaxPercent,
		})
	}

	taxes := tax.CalculateTotal(taxLines, charges)

	t := &Totals{
		Sum:   sum,
		Total: sum.Add(chargeTotal).Sub(allowanceTotal),
		Tax:   taxes.Sum,
		Taxes: taxes,
	}
	if !allowanceTotal.IsZero() {
		t.Discount = &allowanceTotal
	}
	if !chargeTotal.IsZero() {
		t.Charge = &chargeTotal
	}
	t.TotalWithTax = t.Total.Add(t.Tax)
	t.Payable = t.TotalWithTax
	if inv.Prepaid != nil && !inv.Prepaid.IsZero() {
		advances := *inv.Prepaid
		t.Advances = &advances
		t.Payable = t.TotalWithTax.Sub(advances)
	}
	inv.Totals = t

	return nil
}

// Validate checks the structural rules the clearance schema requires. Run it
// after Calculate so computed fields are present.
func (inv *Invoice) Validate() error {
	return validation.ValidateStruct(inv,
		validation.Field(&inv.Code, validation.Required),
		validation.Field(&inv.Type, validation.In(invoiceTypes...)),
		validation.Field(&inv.IssueDate, validation.Required, validation.By(checkDate)),
		validation.Field(&inv.Currency, validation.Required, validation.Length(3, 3)),
		validation.Field(&inv.Supplier, validation.Required),
		validation.Field(&inv.Customer, validation.Required),
		validation.Field(&inv.Lines, validation.Required),
		validation.Field(&inv.AllowanceCharges),
	)
}

func checkDate(value any) error {
	d, ok := value.(Date)
	if !ok || d.IsZero() {
		return validation.ErrRequired
	}
	return nil
}
