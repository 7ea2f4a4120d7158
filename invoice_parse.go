package ubl

import (
	"fmt"

	"github.com/invoclear/ubl/bill"
	"github.com/shopspring/decimal"
)

var invoiceTypeMap = map[string]bill.InvoiceType{
	TypeCodeStandard:   bill.InvoiceTypeStandard,
	TypeCodeCreditNote: bill.InvoiceTypeCreditNote,
	TypeCodeDebitNote:  bill.InvoiceTypeDebitNote,
}

// Convert converts the UBL document back into the billing model. Totals are
// recalculated from the parsed lines so the result is always internally
// consistent, regardless of what the source document claimed.
func (ui *Invoice) Convert() (*bill.Invoice, error) {
	out := &bill.Invoice{
		UUID:     ui.UUID,
		Code:     ui.ID,
		Currency: ui.DocumentCurrencyCode,
		Supplier: parseParty(ui.AccountingSupplierParty.Party),
		Customer: parseParty(ui.AccountingCustomerParty.Party),
	}

	typeCode := ui.InvoiceTypeCode
	if typeCode == "" {
		typeCode = ui.CreditNoteTypeCode
	}
	t, ok := invoiceTypeMap[typeCode]
	if !ok {
		return nil, fmt.Errorf("%w: type code %q", ErrUnknownDocumentType, typeCode)
	}
	out.Type = t

	if ui.IssueDate != "" {
		d, err := bill.ParseDate(ui.IssueDate)
		if err != nil {
			return nil, err
		}
		out.IssueDate = d
	}
	if ui.DueDate != "" {
		d, err := bill.ParseDate(ui.DueDate)
		if err != nil {
			return nil, err
		}
		out.DueDate = &d
	}

	if len(ui.PaymentTerms) > 0 && len(ui.PaymentTerms[0].Note) > 0 {
		out.PaymentTermsNote = ui.PaymentTerms[0].Note[0]
	}

	if pp := ui.PrepaidPayment; len(pp) > 0 && pp[0].PaidAmount != nil {
		amount, err := parseAmount(pp[0].PaidAmount.Value)
		if err != nil {
			return nil, fmt.Errorf("prepaid amount: %w", err)
		}
		out.Prepaid = &amount
	} else if pa := ui.LegalMonetaryTotal.PrepaidAmount; pa != nil {
		amount, err := parseAmount(pa.Value)
		if err != nil {
			return nil, fmt.Errorf("prepaid amount: %w", err)
		}
		out.Prepaid = &amount
	}

	if er := ui.TaxExchangeRate; er != nil && er.CalculationRate != nil {
		rate, err := parseAmount(*er.CalculationRate)
		if err != nil {
			return nil, fmt.Errorf("exchange rate: %w", err)
		}
		x := &bill.ExchangeRate{Rate: rate}
		if er.SourceCurrencyCode != nil {
			x.Source = *er.SourceCurrencyCode
		}
		if er.TargetCurrencyCode != nil {
			x.Target = *er.TargetCurrencyCode
		}
		out.ExchangeRate = x
	}

	for _, ref := range ui.AdditionalDocumentReference {
		r := &bill.Reference{ID: ref.ID.Value}
		if ref.DocumentDescription != nil {
			r.Description = *ref.DocumentDescription
		}
		if ref.Attachment != nil && ref.Attachment.ExternalReference != nil {
			r.URI = ref.Attachment.ExternalReference.URI
		}
		out.References = append(out.References, r)
	}

	if err := ui.parseLines(out); err != nil {
		return nil, err
	}
	if err := ui.parseCharges(out); err != nil {
		return nil, err
	}

	if err := out.Calculate(); err != nil {
		return nil, err
	}

	return out, nil
}

// parseAmount reads a decimal from document chardata.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(normalizeNumericString(s))
}
