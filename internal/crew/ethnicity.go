package crew

import (
	"strings"

	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
)

// Ethnicity steers the skin tones drawn for a member.
type Ethnicity string

const (
	EthnicityEuropean      Ethnicity = "European"
	EthnicityAfrican       Ethnicity = "African"
	EthnicityAsian         Ethnicity = "Asian"
	EthnicityMiddleEastern Ethnicity = "MiddleEastern"
	EthnicityHispanic      Ethnicity = "Hispanic"
	EthnicityMixed         Ethnicity = "Mixed"
)

// skinRanges index into the skin palette: 0 Very Light through 6 Dark Brown.
var skinRanges = map[Ethnicity]appearance.SkinRange{
	EthnicityEuropean:      {Min: 0, Max: 2},
	EthnicityAfrican:       {Min: 5, Max: 6},
	EthnicityAsian:         {Min: 1, Max: 3},
	EthnicityMiddleEastern: {Min: 3, Max: 4},
	EthnicityHispanic:      {Min: 2, Max: 4},
	EthnicityMixed:         {Min: 0, Max: 6},
}

// Ethnicities lists the accepted values.
func Ethnicities() []Ethnicity {
	return []Ethnicity{EthnicityEuropean, EthnicityAfrican, EthnicityAsian, EthnicityMiddleEastern, EthnicityHispanic, EthnicityMixed}
}

// ParseEthnicity matches case-insensitively. A blank value means European;
// anything unrecognised means Mixed.
func ParseEthnicity(raw string) Ethnicity {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EthnicityEuropean
	}
	compact := strings.ReplaceAll(trimmed, " ", "")
	for _, e := range Ethnicities() {
		if strings.EqualFold(compact, string(e)) {
			return e
		}
	}
	return EthnicityMixed
}

// SkinRangeFor returns the skin palette range for an ethnicity. Unknown
// values get the full palette.
func SkinRangeFor(e Ethnicity) appearance.SkinRange {
	if r, ok := skinRanges[e]; ok {
		return r
	}
	return appearance.FullSkinRange()
}
