package ubl

import (
	"github.com/invoclear/ubl/bill"
	"github.com/invoclear/ubl/tax"
)

func parseParty(party *Party) *bill.Party {
	if party == nil {
		return nil
	}
	p := &bill.Party{
		Address: parseAddress(party.PostalAddress),
	}

	if party.PartyName != nil {
		p.Name = party.PartyName.Name
	}

	if party.EndpointID != nil {
		p.EndpointID = &bill.EndpointID{
			SchemeID: party.EndpointID.SchemeID,
			Value:    party.EndpointID.Value,
		}
	}

	if len(party.PartyTaxScheme) > 0 {
		pts := party.PartyTaxScheme[0]
		if pts.CompanyID != nil {
			tid := &bill.TaxID{Code: pts.CompanyID.Value}
			if pts.TaxScheme != nil {
				tid.Scheme = tax.Scheme(pts.TaxScheme.ID.Value)
			}
			p.TaxID = tid
		}
	}

	if le := party.PartyLegalEntity; le != nil {
		entity := &bill.LegalEntity{}
		if le.RegistrationName != nil {
			entity.Name = *le.RegistrationName
		}
		if le.CompanyID != nil {
			entity.CompanyID = le.CompanyID.Value
		}
		p.LegalEntity = entity
		if p.Name == "" {
			p.Name = entity.Name
		}
	}

	if c := party.Contact; c != nil {
		contact := &bill.Contact{}
		if c.Telephone != nil {
			contact.Telephone = *c.Telephone
		}
		if c.ElectronicMail != nil {
			contact.Email = *c.ElectronicMail
		}
		if contact.Telephone != "" || contact.Email != "" {
			p.Contact = contact
		}
	}

	return p
}

func parseAddress(address *PostalAddress) *bill.Address {
	if address == nil {
		return nil
	}

	a := new(bill.Address)
	if address.Floor != nil {
		a.Floor = *address.Floor
	}
	if address.Room != nil {
		a.Room = *address.Room
	}
	if address.StreetName != nil {
		a.Street = *address.StreetName
	}
	if address.AdditionalStreetName != nil {
		a.AdditionalStreet = *address.AdditionalStreetName
	}
	if address.BuildingName != nil {
		a.Building = *address.BuildingName
	}
	if address.CityName != nil {
		a.City = *address.CityName
	}
	if address.PostalZone != nil {
		a.PostalZone = *address.PostalZone
	}
	if address.Country != nil {
		a.Country = address.Country.IdentificationCode
	}

	return a
}
