package ubl

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UBL schema constants
const (
	NamespaceCBC  = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	NamespaceCAC  = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceQDT  = "urn:oasis:names:specification:ubl:schema:xsd:QualifiedDataTypes-2"
	NamespaceUDT  = "urn:oasis:names:specification:ubl:schema:xsd:UnqualifiedDataTypes-2"
	NamespaceCCTS = "urn:un:unece:uncefact:documentation:2"
	NamespaceXSI  = "http://www.w3.org/2001/XMLSchema-instance"
)

// IDType represents an ID with optional scheme attributes
type IDType struct {
	SchemeID   *string `xml:"schemeID,attr"`
	SchemeName *string `xml:"schemeName,attr"`
	Name       *string `xml:"name,attr"`
	Value      string  `xml:",chardata"`
}

// Amount represents a monetary amount
type Amount struct {
	CurrencyID *string `xml:"currencyID,attr"`
	Value      string  `xml:",chardata"`
}

// Quantity represents a quantity with a unit code
type Quantity struct {
	UnitCode string `xml:"unitCode,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// ExchangeRate represents an exchange rate
type ExchangeRate struct {
	SourceCurrencyCode *string `xml:"cbc:SourceCurrencyCode"`
	TargetCurrencyCode *string `xml:"cbc:TargetCurrencyCode"`
	CalculationRate    *string `xml:"cbc:CalculationRate"`
	Date               *string `xml:"cbc:Date"`
}

// Reference represents a document reference
type Reference struct {
	ID                  IDType      `xml:"cbc:ID"`
	DocumentDescription *string     `xml:"cbc:DocumentDescription,omitempty"`
	Attachment          *Attachment `xml:"cac:Attachment,omitempty"`
}

// Attachment points at an attached or externally referenced document
type Attachment struct {
	ExternalReference *ExternalReference `xml:"cac:ExternalReference,omitempty"`
}

// ExternalReference is the location of an externally held document
type ExternalReference struct {
	URI string `xml:"cbc:URI"`
}

// Item represents an item in an invoice line
type Item struct {
	Description           *string                 `xml:"cbc:Description"`
	Name                  string                  `xml:"cbc:Name"`
	ClassifiedTaxCategory []ClassifiedTaxCategory `xml:"cac:ClassifiedTaxCategory,omitempty"`
}

// ClassifiedTaxCategory represents a classified tax category
type ClassifiedTaxCategory struct {
	ID        *IDType    `xml:"cbc:ID,omitempty"`
	Percent   *string    `xml:"cbc:Percent,omitempty"`
	TaxScheme *TaxScheme `xml:"cac:TaxScheme,omitempty"`
}

// Price represents the price of an item
type Price struct {
	PriceAmount  Amount    `xml:"cbc:PriceAmount"`
	BaseQuantity *Quantity `xml:"cbc:BaseQuantity,omitempty"`
}

// newAmount renders a decimal at document precision with its currency.
func newAmount(v decimal.Decimal, ccy string) Amount {
	c := ccy
	return Amount{Value: v.StringFixed(2), CurrencyID: &c}
}

// percentString renders a rate without padding or symbol, e.g. "16" or "7.5".
func percentString(p decimal.Decimal) string {
	return p.String()
}

// normalizeNumericString cleans up numeric strings to ensure they can be parsed correctly.
// It handles:
// - Leading/trailing whitespace (e.g., " 123.45 " -> "123.45")
// - Numbers starting with decimal point (e.g., ".07" -> "0.07")
func normalizeNumericString(s string) string {
	// Trim whitespace
	s = strings.TrimSpace(s)

	// Add leading zero if string starts with decimal point
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	return s
}
