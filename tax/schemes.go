// Package tax computes invoice taxes: per-line subtotals for each enabled
// scheme, document-level aggregation by scheme and rate, and the amounts the
// legal monetary totals are built from. All arithmetic is decimal with a
// uniform rounding rule of two places, half away from zero, to match the
// clearance system's currency precision.
//
// The package performs no validation of its numeric inputs; callers are
// expected to validate quantities, prices and rates before computing.
package tax

import "fmt"

// Scheme identifies one of the tax schemes accepted by the clearance system.
// The set is closed: any other value is a configuration error.
type Scheme string

// Supported schemes.
const (
	SchemeVAT            Scheme = "VAT"
	SchemeExcise         Scheme = "EXC"
	SchemePublicLighting Scheme = "PLT"
	SchemeAccommodation  Scheme = "ACM"
)

// SchemeDef carries the immutable reference data for a single scheme.
type SchemeDef struct {
	// Code is the scheme identifier used in generated documents.
	Code Scheme
	// Name is the short display name.
	Name string
	// Description explains what the scheme covers.
	Description string
}

// schemes is ordered; the order is reflected anywhere the full set is listed.
var schemes = []*SchemeDef{
	{
		Code:        SchemeVAT,
		Name:        "Value Added Tax",
		Description: "General consumption tax applied to most goods and services.",
	},
	{
		Code:        SchemeExcise,
		Name:        "Excise Tax",
		Description: "Selective tax on specific goods such as fuel, tobacco and alcohol.",
	},
	{
		Code:        SchemePublicLighting,
		Name:        "Public Lighting Tax",
		Description: "Municipal levy funding public street lighting.",
	},
	{
		Code:        SchemeAccommodation,
		Name:        "Accommodation Tax",
		Description: "Levy on hotel and short-stay accommodation services.",
	},
}

// Schemes returns the full set of supported scheme definitions.
func Schemes() []*SchemeDef {
	out := make([]*SchemeDef, len(schemes))
	copy(out, schemes)
	return out
}

// SchemeByCode looks up the definition for a scheme code. Unknown codes are
// an error so that bad configuration surfaces immediately instead of being
// silently dropped from totals.
func SchemeByCode(code Scheme) (*SchemeDef, error) {
	for _, def := range schemes {
		if def.Code == code {
			return def, nil
		}
	}
	return nil, fmt.Errorf("unknown tax scheme %q", code)
}

// Valid reports whether the scheme is part of the supported set.
func (s Scheme) Valid() bool {
	_, err := SchemeByCode(s)
	return err == nil
}

// Def returns the scheme's definition, or nil when the scheme is unknown.
func (s Scheme) Def() *SchemeDef {
	def, err := SchemeByCode(s)
	if err != nil {
		return nil
	}
	return def
}

// String implements fmt.Stringer.
func (s Scheme) String() string {
	return string(s)
}
