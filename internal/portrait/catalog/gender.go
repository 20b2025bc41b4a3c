package catalog

import "strings"

// Gender selects which sprite variants are available.
type Gender string

const (
	// GenderAny disables gender filtering in availability queries.
	GenderAny    Gender = ""
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ParseGender accepts "male"/"female" in any case. Empty input maps to
// GenderAny; anything else is rejected.
func ParseGender(raw string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return GenderAny, true
	case "male", "m":
		return GenderMale, true
	case "female", "f":
		return GenderFemale, true
	default:
		return GenderAny, false
	}
}

// IsFemale reports whether female-only sprites may be shown.
func (g Gender) IsFemale() bool {
	return g == GenderFemale
}

// strict maps GenderAny to GenderMale for checks that must hold for the
// rendered sprite, where an unspecified gender never unlocks female assets.
func (g Gender) strict() Gender {
	if g == GenderFemale {
		return GenderFemale
	}
	return GenderMale
}
