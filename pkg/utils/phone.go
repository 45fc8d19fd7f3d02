package utils

import "strings"

// NormalizePhone strips every non-digit character so that "615-555-0100",
// "(615) 555 0100" and "6155550100" all compare equal. The digits-only
// form is what gets stored and matched against.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
