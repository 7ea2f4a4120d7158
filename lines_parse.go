package ubl

import (
	"fmt"

	"github.com/invoclear/ubl/bill"
	"github.com/invoclear/ubl/tax"
)

func (ui *Invoice) parseLines(out *bill.Invoice) error {
	docLines := ui.InvoiceLines
	if len(docLines) == 0 {
		docLines = ui.CreditNoteLines
	}

	for _, docLine := range docLines {
		line, err := parseLine(&docLine)
		if err != nil {
			return fmt.Errorf("line %s: %w", docLine.ID, err)
		}
		out.Lines = append(out.Lines, line)
	}

	return nil
}

func parseLine(docLine *InvoiceLine) (*bill.Line, error) {
	line := &bill.Line{
		Item: new(bill.Item),
	}

	quantity := docLine.InvoicedQuantity
	if quantity == nil {
		quantity = docLine.CreditedQuantity
	}
	if quantity != nil {
		q, err := parseAmount(quantity.Value)
		if err != nil {
			return nil, fmt.Errorf("quantity: %w", err)
		}
		line.Quantity = q
		line.Item.Unit = quantity.UnitCode
	}

	if docLine.Item != nil {
		line.Item.Name = docLine.Item.Name
		if docLine.Item.Description != nil {
			line.Item.Description = *docLine.Item.Description
		}
		for _, ct := range docLine.Item.ClassifiedTaxCategory {
			combo, err := parseCombo(ct)
			if err != nil {
				return nil, err
			}
			if combo != nil {
				line.Taxes = append(line.Taxes, combo)
			}
		}
	}

	if docLine.Price != nil {
		price, err := parseAmount(docLine.Price.PriceAmount.Value)
		if err != nil {
			return nil, fmt.Errorf("price: %w", err)
		}
		line.Item.Price = price
	}

	return line, nil
}

func parseCombo(ct ClassifiedTaxCategory) (*tax.Combo, error) {
	if ct.TaxScheme == nil {
		return nil, nil
	}
	combo := &tax.Combo{
		Scheme: tax.Scheme(ct.TaxScheme.ID.Value),
	}
	if _, err := tax.SchemeByCode(combo.Scheme); err != nil {
		return nil, err
	}
	if ct.Percent != nil {
		p, err := parseAmount(*ct.Percent)
		if err != nil {
			return nil, fmt.Errorf("percent: %w", err)
		}
		combo.Percent = p
	}
	return combo, nil
}
