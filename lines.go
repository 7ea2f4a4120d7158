package ubl

import (
	"strconv"

	"github.com/invoclear/ubl/bill"
	"github.com/invoclear/ubl/tax"
)

// InvoiceLine represents a line item in an invoice and credit note
type InvoiceLine struct {
	ID                  string     `xml:"cbc:ID"`
	InvoicedQuantity    *Quantity  `xml:"cbc:InvoicedQuantity,omitempty"`
	CreditedQuantity    *Quantity  `xml:"cbc:CreditedQuantity,omitempty"`
	LineExtensionAmount Amount     `xml:"cbc:LineExtensionAmount"`
	TaxTotal            []TaxTotal `xml:"cac:TaxTotal,omitempty"`
	Item                *Item      `xml:"cac:Item"`
	Price               *Price     `xml:"cac:Price"`
}

func (ui *Invoice) addLines(inv *bill.Invoice) {
	if len(inv.Lines) == 0 {
		return
	}
	ccy := inv.Currency
	credit := inv.GetType() == bill.InvoiceTypeCreditNote

	var lines []InvoiceLine
	for _, l := range inv.Lines {
		invLine := InvoiceLine{
			ID:                  strconv.Itoa(l.Index),
			LineExtensionAmount: newAmount(l.Total, ccy),
		}

		// Always set quantity (mandatory field)
		iq := &Quantity{
			Value: l.Quantity.String(),
		}
		if l.Item != nil && l.Item.Unit != "" {
			iq.UnitCode = l.Item.Unit
		}
		if credit {
			invLine.CreditedQuantity = iq
		} else {
			invLine.InvoicedQuantity = iq
		}

		invLine.TaxTotal = makeLineTaxTotal(l, ccy)

		if l.Item != nil {
			it := &Item{
				Name: l.Item.Name,
			}
			if l.Item.Description != "" {
				d := l.Item.Description
				it.Description = &d
			}
			for _, combo := range l.Taxes {
				it.ClassifiedTaxCategory = append(it.ClassifiedTaxCategory, newClassifiedTaxCategory(combo))
			}
			invLine.Item = it

			invLine.Price = &Price{
				PriceAmount: newAmount(l.Item.Price, ccy),
			}
		}

		lines = append(lines, invLine)
	}
	if credit {
		ui.CreditNoteLines = lines
	} else {
		ui.InvoiceLines = lines
	}
}

// makeLineTaxTotal renders the line's own nested tax total. Every enabled
// scheme taxes the full line extension amount independently.
func makeLineTaxTotal(line *bill.Line, ccy string) []TaxTotal {
	if line == nil || len(line.Taxes) == 0 {
		return nil
	}

	rates := line.Taxes.Calculate(line.Total)
	taxTotal := TaxTotal{
		TaxAmount: newAmount(tax.Sum(rates), ccy),
	}
	for _, rt := range rates {
		taxTotal.TaxSubtotal = append(taxTotal.TaxSubtotal, newSubtotal(rt, ccy))
	}

	return []TaxTotal{taxTotal}
}

func newClassifiedTaxCategory(combo *tax.Combo) ClassifiedTaxCategory {
	p := percentString(combo.Percent)
	return ClassifiedTaxCategory{
		ID:        &IDType{Value: string(combo.Category())},
		Percent:   &p,
		TaxScheme: newTaxScheme(combo.Scheme),
	}
}
