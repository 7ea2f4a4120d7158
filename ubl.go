// Package ubl converts billing documents into UBL 2.1 Invoice, CreditNote
// and DebitNote documents shaped for a government e-invoicing clearance
// system, and parses such documents back into the billing model.
package ubl

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/invoclear/ubl/bill"
	"github.com/invopop/xmlctx"
)

var (
	// ErrUnknownDocumentType is returned when the document type
	// is not recognized during parsing.
	ErrUnknownDocumentType = fmt.Errorf("unknown document type")

	// ErrUnsupportedDocumentType is returned when the document type
	// is not supported for conversion.
	ErrUnsupportedDocumentType = fmt.Errorf("unsupported document type")
)

// Version is the version of UBL documents that will be generated
// by this package.
const Version = "2.1"

// Parse parses a raw UBL Invoice or CreditNote document and returns the
// in-memory representation.
//
// Example usage:
//
//	doc, err := ubl.Parse(xmlData)
//	if err != nil {
//	    // handle error
//	}
//	inv, err := doc.Convert()
//	// ...
func Parse(data []byte) (*Invoice, error) {
	ns, err := extractRootNamespace(data)
	if err != nil {
		return nil, err
	}

	switch ns {
	case NamespaceUBLInvoice, NamespaceUBLCreditNote:
		in := new(Invoice)
		if err := xmlctx.Unmarshal(data, in, xmlctx.WithNamespaces(map[string]string{
			"":     ns,
			"cbc":  NamespaceCBC,
			"cac":  NamespaceCAC,
			"qdt":  NamespaceQDT,
			"udt":  NamespaceUDT,
			"ccts": NamespaceCCTS,
			"xsi":  NamespaceXSI,
		})); err != nil {
			return nil, err
		}
		return in, nil

	default:
		return nil, ErrUnknownDocumentType
	}
}

// Convert turns a billing invoice into a UBL document ready for
// serialization. The invoice is calculated first when totals are missing,
// then validated, so a document that converts is always complete.
//
// Add a WithContext option to select the clearance profile to declare in the
// output. ContextStandard is used by default.
func Convert(inv *bill.Invoice, opts ...Option) (*Invoice, error) {
	o := &options{
		context: ContextStandard,
	}
	for _, opt := range opts {
		opt(o)
	}

	if inv.Totals == nil {
		if err := inv.Calculate(); err != nil {
			return nil, fmt.Errorf("calculating invoice: %w", err)
		}
	}
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("invalid invoice: %w", err)
	}

	return newInvoice(inv, o)
}

func extractRootNamespace(data []byte) (string, error) {
	dc := xml.NewDecoder(bytes.NewReader(data))
	for {
		tk, err := dc.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error parsing XML: %w", err)
		}
		switch t := tk.(type) {
		case xml.StartElement:
			return t.Name.Space, nil // Extract and return the namespace
		}
	}
	return "", ErrUnknownDocumentType
}

// Bytes returns the raw XML of the UBL document including
// the XML Header.
func Bytes(in *Invoice) ([]byte, error) {
	b, err := xml.MarshalIndent(in, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}
