package bill

import (
	"github.com/invoclear/ubl/tax"
	"github.com/invopop/validation"
)

// Party is one of the two legal parties on an invoice. Parties arrive from
// upstream registration data already resolved; they are constructed once per
// document and never mutated afterwards.
type Party struct {
	// EndpointID identifies the party on the clearance network.
	EndpointID *EndpointID `json:"endpoint_id,omitempty"`
	// Name is the trading name shown on the document.
	Name string `json:"name"`
	// Address is the party's postal address.
	Address *Address `json:"address,omitempty"`
	// TaxID is the party's tax registration.
	TaxID *TaxID `json:"tax_id,omitempty"`
	// LegalEntity is the official company registration.
	LegalEntity *LegalEntity `json:"legal_entity,omitempty"`
	// Contact carries optional phone and email details.
	Contact *Contact `json:"contact,omitempty"`
}

// EndpointID is a network endpoint identifier with its scheme.
type EndpointID struct {
	SchemeID string `json:"scheme_id,omitempty"`
	Value    string `json:"value"`
}

// Address is a postal address. Only street, city and country are expected to
// be present on every address; the remaining fields are optional.
type Address struct {
	Street           string `json:"street,omitempty"`
	AdditionalStreet string `json:"additional_street,omitempty"`
	Building         string `json:"building,omitempty"`
	Floor            string `json:"floor,omitempty"`
	Room             string `json:"room,omitempty"`
	City             string `json:"city,omitempty"`
	PostalZone       string `json:"postal_zone,omitempty"`
	// Country is the ISO 3166-1 alpha-2 country code.
	Country string `json:"country"`
}

// TaxID is a party's registration under a tax scheme.
type TaxID struct {
	// Code is the registered company identifier.
	Code string `json:"code"`
	// Scheme the registration belongs to; VAT when empty.
	Scheme tax.Scheme `json:"scheme,omitempty"`
}

// LegalEntity is the official registration of a company.
type LegalEntity struct {
	// Name is the registered legal name.
	Name string `json:"name"`
	// CompanyID is the company registration number.
	CompanyID string `json:"company_id,omitempty"`
}

// Contact carries a party's contact details.
type Contact struct {
	Telephone string `json:"telephone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// GetScheme returns the registration scheme, defaulting to VAT.
func (t *TaxID) GetScheme() tax.Scheme {
	if t == nil || t.Scheme == "" {
		return tax.SchemeVAT
	}
	return t.Scheme
}

// Validate checks the party holds the fields the clearance schema requires.
func (p *Party) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Address),
		validation.Field(&p.TaxID),
		validation.Field(&p.LegalEntity),
	)
}

// Validate ensures the address carries a country code.
func (a *Address) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Country, validation.Required, validation.Length(2, 2)),
	)
}

// Validate checks the registration code and scheme.
func (t *TaxID) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Code, validation.Required),
		validation.Field(&t.Scheme, validation.By(func(value any) error {
			s, _ := value.(tax.Scheme)
			if s == "" {
				return nil
			}
			_, err := tax.SchemeByCode(s)
			return err
		})),
	)
}

// Validate checks the legal registration name is present.
func (l *LegalEntity) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Name, validation.Required),
	)
}
