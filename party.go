package ubl

import (
	"github.com/invoclear/ubl/bill"
)

// SupplierParty represents the supplier party in a transaction
type SupplierParty struct {
	Party *Party `xml:"cac:Party"`
}

// CustomerParty represents the customer party in a transaction
type CustomerParty struct {
	Party *Party `xml:"cac:Party"`
}

// Party represents a party involved in a transaction
type Party struct {
	EndpointID       *EndpointID       `xml:"cbc:EndpointID,omitempty"`
	PartyName        *PartyName        `xml:"cac:PartyName,omitempty"`
	PostalAddress    *PostalAddress    `xml:"cac:PostalAddress,omitempty"`
	PartyTaxScheme   []PartyTaxScheme  `xml:"cac:PartyTaxScheme,omitempty"`
	PartyLegalEntity *PartyLegalEntity `xml:"cac:PartyLegalEntity,omitempty"`
	Contact          *Contact          `xml:"cac:Contact,omitempty"`
}

// EndpointID represents an endpoint identifier
type EndpointID struct {
	SchemeID string `xml:"schemeID,attr"`
	Value    string `xml:",chardata"`
}

// PartyName represents the name of a party
type PartyName struct {
	Name string `xml:"cbc:Name"`
}

// PostalAddress represents a postal address. Field order follows the UBL
// PostalAddress sequence.
type PostalAddress struct {
	Floor                *string  `xml:"cbc:Floor,omitempty"`
	Room                 *string  `xml:"cbc:Room,omitempty"`
	StreetName           *string  `xml:"cbc:StreetName,omitempty"`
	AdditionalStreetName *string  `xml:"cbc:AdditionalStreetName,omitempty"`
	BuildingName         *string  `xml:"cbc:BuildingName,omitempty"`
	CityName             *string  `xml:"cbc:CityName,omitempty"`
	PostalZone           *string  `xml:"cbc:PostalZone,omitempty"`
	Country              *Country `xml:"cac:Country,omitempty"`
}

// Country represents a country
type Country struct {
	IdentificationCode string `xml:"cbc:IdentificationCode"`
}

// PartyTaxScheme represents a party's tax scheme
type PartyTaxScheme struct {
	CompanyID *IDType    `xml:"cbc:CompanyID"`
	TaxScheme *TaxScheme `xml:"cac:TaxScheme"`
}

// TaxScheme represents a tax scheme
type TaxScheme struct {
	ID   IDType  `xml:"cbc:ID"`
	Name *string `xml:"cbc:Name,omitempty"`
}

// PartyLegalEntity represents the legal entity of a party
type PartyLegalEntity struct {
	RegistrationName *string `xml:"cbc:RegistrationName,omitempty"`
	CompanyID        *IDType `xml:"cbc:CompanyID,omitempty"`
}

// Contact represents contact information
type Contact struct {
	Telephone      *string `xml:"cbc:Telephone,omitempty"`
	ElectronicMail *string `xml:"cbc:ElectronicMail,omitempty"`
}

// CountryCode tries to determine the most appropriate tax country code
// for the party.
func (p *Party) CountryCode() string {
	if pa := p.PostalAddress; pa != nil {
		if c := pa.Country; c != nil {
			return c.IdentificationCode
		}
	}
	return ""
}

// newParty builds the UBL party block. Supplier and customer go through the
// same routine so the two blocks always share one structure.
func newParty(party *bill.Party) *Party {
	if party == nil {
		return nil
	}
	p := &Party{
		PostalAddress: newAddress(party.Address),
	}

	if party.EndpointID != nil {
		p.EndpointID = &EndpointID{
			SchemeID: party.EndpointID.SchemeID,
			Value:    party.EndpointID.Value,
		}
	}

	// Only add PartyName if name is not empty
	if party.Name != "" {
		p.PartyName = &PartyName{
			Name: party.Name,
		}
	}

	if tID := party.TaxID; tID != nil && tID.Code != "" {
		scheme := tID.GetScheme()
		pts := PartyTaxScheme{
			CompanyID: &IDType{Value: tID.Code},
			TaxScheme: &TaxScheme{
				ID: IDType{Value: scheme.String()},
			},
		}
		p.PartyTaxScheme = []PartyTaxScheme{pts}
	}

	if le := party.LegalEntity; le != nil {
		entity := &PartyLegalEntity{}
		if le.Name != "" {
			n := le.Name
			entity.RegistrationName = &n
		}
		if le.CompanyID != "" {
			entity.CompanyID = &IDType{Value: le.CompanyID}
		}
		p.PartyLegalEntity = entity
	} else if party.Name != "" {
		n := party.Name
		p.PartyLegalEntity = &PartyLegalEntity{
			RegistrationName: &n,
		}
	}

	contact := &Contact{}
	if c := party.Contact; c != nil {
		if c.Telephone != "" {
			contact.Telephone = &c.Telephone
		}
		if c.Email != "" {
			contact.ElectronicMail = &c.Email
		}
	}
	if contact.Telephone != nil || contact.ElectronicMail != nil {
		p.Contact = contact
	}

	return p
}

func newAddress(a *bill.Address) *PostalAddress {
	if a == nil {
		return nil
	}

	addr := &PostalAddress{}

	if a.Floor != "" {
		f := a.Floor
		addr.Floor = &f
	}
	if a.Room != "" {
		r := a.Room
		addr.Room = &r
	}
	if a.Street != "" {
		s := a.Street
		addr.StreetName = &s
	}
	if a.AdditionalStreet != "" {
		s := a.AdditionalStreet
		addr.AdditionalStreetName = &s
	}
	if a.Building != "" {
		b := a.Building
		addr.BuildingName = &b
	}
	if a.City != "" {
		c := a.City
		addr.CityName = &c
	}
	if a.PostalZone != "" {
		z := a.PostalZone
		addr.PostalZone = &z
	}
	if a.Country != "" {
		addr.Country = &Country{IdentificationCode: a.Country}
	}

	return addr
}
