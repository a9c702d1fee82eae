package location

import "strings"

// DefaultLocation is used whenever the caller supplies no usable location.
const DefaultLocation = "Seattle, WA"

// Normalize trims the input and substitutes DefaultLocation when the input
// is empty or whitespace-only. Pure function, never fails.
func Normalize(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return DefaultLocation
	}
	return s
}
