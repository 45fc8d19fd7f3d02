package enum

import "strings"

// PropertyType controls which conditional field group applies to a job
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "Residential"
	PropertyTypeCommercial  PropertyType = "Commercial"
)

// NormalizePropertyType converts free-form input ("commercial", "RESIDENTIAL")
// to the canonical title-cased value. Empty input stays empty so the caller
// can apply its own default.
func NormalizePropertyType(s string) PropertyType {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	return PropertyType(s)
}

// IsCommercial reports whether the commercial field group applies
func (p PropertyType) IsCommercial() bool {
	return p == PropertyTypeCommercial
}
