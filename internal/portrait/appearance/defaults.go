package appearance

import "github.com/louisbranch/crewportrait/internal/portrait/catalog"

// Default returns the baseline character for gender. GenderAny yields the
// male baseline. Hair and HairBack share an index so the default passes
// the hair back rule.
func Default(gender catalog.Gender) Character {
	if gender != catalog.GenderFemale {
		gender = catalog.GenderMale
	}
	hair := 4
	if gender == catalog.GenderFemale {
		hair = 8
	}
	ch := Character{
		Gender:    gender,
		BodyShape: 1,
		Parts: map[catalog.LayerName]PartSelection{
			catalog.LayerBody:        Part(0, 0),
			catalog.LayerHeadshape:   Part(0, 0),
			catalog.LayerEars:        Part(0, 0),
			catalog.LayerEyes:        Part(0, 0),
			catalog.LayerNose:        Part(0, 0),
			catalog.LayerMouth:       Part(0, 0),
			catalog.LayerEyebrows:    Part(0, 0),
			catalog.LayerHair:        Part(hair, 0),
			catalog.LayerHairBack:    Part(hair, 0),
			catalog.LayerClothes:     Part(0, 0),
			catalog.LayerClothesBack: Part(0, 0),
		},
		Colors: map[catalog.ColorClass]int{
			catalog.ColorSkin:      2,
			catalog.ColorHair:      3,
			catalog.ColorEye:       2,
			catalog.ColorAccessory: 1,
		},
	}
	return ch.Normalized()
}
