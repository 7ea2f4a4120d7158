package ubl

import (
	"encoding/xml"
	"fmt"

	"github.com/invoclear/ubl/bill"
)

// Main UBL Invoice Namespace
const (
	NamespaceUBLInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NamespaceUBLCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
)

// Schema location constants
const (
	SchemaLocationInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2 http://docs.oasis-open.org/ubl/os-UBL-2.1/xsd/maindoc/UBL-Invoice-2.1.xsd"
	SchemaLocationCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2 https://docs.oasis-open.org/ubl/os-UBL-2.1/xsd/maindoc/UBL-CreditNote-2.1.xsd"
)

// Document type codes from UNTDID 1001 as fixed by the clearance schema.
const (
	TypeCodeStandard   = "388"
	TypeCodeCreditNote = "381"
	TypeCodeDebitNote  = "383"
)

// Invoice represents the root element of a UBL Invoice **or** Credit Note;
// the structures between the two types are so similar, that it doesn't make
// much sense to separate. Field order follows the schema's element order and
// must not be rearranged: the clearance system checks elements positionally.
type Invoice struct {
	// Attributes
	XMLName        xml.Name
	CACNamespace   string `xml:"xmlns:cac,attr"`
	CBCNamespace   string `xml:"xmlns:cbc,attr"`
	QDTNamespace   string `xml:"xmlns:qdt,attr"`
	UDTNamespace   string `xml:"xmlns:udt,attr"`
	CCTSNamespace  string `xml:"xmlns:ccts,attr"`
	UBLNamespace   string `xml:"xmlns,attr"`
	XSINamespace   string `xml:"xmlns:xsi,attr"`
	SchemaLocation string `xml:"xsi:schemaLocation,attr"`

	UBLVersionID    string `xml:"cbc:UBLVersionID,omitempty"`
	CustomizationID string `xml:"cbc:CustomizationID,omitempty"`
	ProfileID       string `xml:"cbc:ProfileID,omitempty"`
	ID              string `xml:"cbc:ID"`
	UUID            string `xml:"cbc:UUID,omitempty"`
	IssueDate       string `xml:"cbc:IssueDate"`
	DueDate         string `xml:"cbc:DueDate,omitempty"`

	InvoiceTypeCode    string `xml:"cbc:InvoiceTypeCode,omitempty"`
	CreditNoteTypeCode string `xml:"cbc:CreditNoteTypeCode,omitempty"`

	Note                        []string          `xml:"cbc:Note,omitempty"`
	DocumentCurrencyCode        string            `xml:"cbc:DocumentCurrencyCode,omitempty"`
	AdditionalDocumentReference []Reference       `xml:"cac:AdditionalDocumentReference,omitempty"`
	AccountingSupplierParty     SupplierParty     `xml:"cac:AccountingSupplierParty"`
	AccountingCustomerParty     CustomerParty     `xml:"cac:AccountingCustomerParty"`
	PaymentTerms                []PaymentTerms    `xml:"cac:PaymentTerms,omitempty"`
	PrepaidPayment              []PrepaidPayment  `xml:"cac:PrepaidPayment,omitempty"`
	AllowanceCharge             []AllowanceCharge `xml:"cac:AllowanceCharge,omitempty"`
	TaxExchangeRate             *ExchangeRate     `xml:"cac:TaxExchangeRate,omitempty"`
	TaxTotal                    []TaxTotal        `xml:"cac:TaxTotal,omitempty"`
	LegalMonetaryTotal          MonetaryTotal     `xml:"cac:LegalMonetaryTotal"`
	InvoiceLines                []InvoiceLine     `xml:"cac:InvoiceLine,omitempty"`
	CreditNoteLines             []InvoiceLine     `xml:"cac:CreditNoteLine,omitempty"`
}

func newInvoice(inv *bill.Invoice, o *options) (*Invoice, error) {
	tc, err := typeCode(inv)
	if err != nil {
		return nil, err
	}

	out := &Invoice{
		XMLName:                 xml.Name{Local: "Invoice"},
		CACNamespace:            NamespaceCAC,
		CBCNamespace:            NamespaceCBC,
		QDTNamespace:            NamespaceQDT,
		UDTNamespace:            NamespaceUDT,
		UBLNamespace:            NamespaceUBLInvoice,
		CCTSNamespace:           NamespaceCCTS,
		XSINamespace:            NamespaceXSI,
		SchemaLocation:          SchemaLocationInvoice,
		UBLVersionID:            Version,
		CustomizationID:         o.context.CustomizationID,
		ProfileID:               o.context.ProfileID,
		ID:                      inv.Number(),
		UUID:                    inv.UUID,
		IssueDate:               inv.IssueDate.String(),
		InvoiceTypeCode:         tc,
		DocumentCurrencyCode:    inv.Currency,
		AccountingSupplierParty: SupplierParty{Party: newParty(inv.Supplier)},
		AccountingCustomerParty: CustomerParty{Party: newParty(inv.Customer)},
	}

	if inv.GetType() == bill.InvoiceTypeCreditNote {
		out.XMLName = xml.Name{Local: "CreditNote"}
		out.UBLNamespace = NamespaceUBLCreditNote
		out.SchemaLocation = SchemaLocationCreditNote
		out.InvoiceTypeCode = ""
		out.CreditNoteTypeCode = tc
	}

	// credit notes carry no due date by schema
	if inv.DueDate != nil && out.CreditNoteTypeCode == "" {
		out.DueDate = inv.DueDate.String()
	}

	if er := inv.ExchangeRate; er != nil {
		rate := er.Rate.String()
		out.TaxExchangeRate = &ExchangeRate{
			SourceCurrencyCode: &er.Source,
			TargetCurrencyCode: &er.Target,
			CalculationRate:    &rate,
		}
	}

	out.addReferences(inv.References)
	out.addCharges(inv)
	out.addTotals(inv)
	out.addLines(inv)
	out.addPayment(inv)

	return out, nil
}

func typeCode(inv *bill.Invoice) (string, error) {
	switch inv.GetType() {
	case bill.InvoiceTypeStandard:
		return TypeCodeStandard, nil
	case bill.InvoiceTypeCreditNote:
		return TypeCodeCreditNote, nil
	case bill.InvoiceTypeDebitNote:
		return TypeCodeDebitNote, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDocumentType, inv.Type)
	}
}

func (ui *Invoice) addReferences(refs []*bill.Reference) {
	for _, ref := range refs {
		r := Reference{
			ID: IDType{Value: ref.ID},
		}
		if ref.Description != "" {
			d := ref.Description
			r.DocumentDescription = &d
		}
		if ref.URI != "" {
			r.Attachment = &Attachment{
				ExternalReference: &ExternalReference{URI: ref.URI},
			}
		}
		ui.AdditionalDocumentReference = append(ui.AdditionalDocumentReference, r)
	}
}
