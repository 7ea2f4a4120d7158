package ubl

// Context is used to ensure that the generated UBL document declares the
// CustomizationID and ProfileID of a specific clearance profile.
type Context struct {
	// CustomizationID identifies the clearance ruleset the document
	// conforms to.
	CustomizationID string
	// ProfileID determines the business process: cleared before issue for
	// standard documents, reported after issue for simplified ones.
	ProfileID string
}

// Is checks if two contexts are the same.
func (c *Context) Is(c2 Context) bool {
	return c.CustomizationID == c2.CustomizationID && c.ProfileID == c2.ProfileID
}

// FindContext looks up a context by CustomizationID and optionally ProfileID.
// Returns nil if no matching context is found.
func FindContext(customizationID string, profileID string) *Context {
	for _, ctx := range contexts {
		if ctx.CustomizationID == customizationID {
			if ctx.ProfileID != "" && profileID != "" && ctx.ProfileID != profileID {
				continue
			}
			return &ctx
		}
	}
	return nil
}

type options struct {
	context Context
}

// Option is used to define configuration options to use during
// conversion processes.
type Option func(*options)

// WithContext sets the context to use for the configuration
// and business profile.
func WithContext(c Context) Option {
	return func(o *options) {
		o.context = c
	}
}

// ContextStandard is the default context: B2B documents cleared by the tax
// authority before being issued to the customer.
var ContextStandard = Context{
	CustomizationID: "urn:invoclear:einvoicing:standard:1.0",
	ProfileID:       "clearance:1.0",
}

// ContextSimplified covers B2C documents reported to the authority after
// issue.
var ContextSimplified = Context{
	CustomizationID: "urn:invoclear:einvoicing:simplified:1.0",
	ProfileID:       "reporting:1.0",
}

// contexts is used internally for reverse lookups during parsing.
// When adding new contexts, remember to add them here AND as exported
// variables above.
var contexts = []Context{ContextStandard, ContextSimplified}
