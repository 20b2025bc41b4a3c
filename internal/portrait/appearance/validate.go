package appearance

import (
	"errors"
	"fmt"

	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
)

var (
	// ErrInvalidGender reports a character that is neither Male nor Female.
	ErrInvalidGender = errors.New("character gender must be Male or Female")
	// ErrInvalidSelection reports a layer selection the catalog does not offer.
	ErrInvalidSelection = errors.New("character selection is not in the catalog")
	// ErrMissingLayer reports an empty layer that may not be empty.
	ErrMissingLayer = errors.New("character is missing a required layer")
	// ErrInvalidColor reports a missing or out-of-palette color.
	ErrInvalidColor = errors.New("character color is outside its palette")
	// ErrInvalidBodyShape reports an unknown body shape.
	ErrInvalidBodyShape = errors.New("character body shape is unknown")
)

// Validate reports every problem with a character without repairing any of
// them. The result joins all findings, so errors.Is matches each sentinel.
func Validate(c *catalog.Catalog, ch Character) error {
	var errs []error
	if ch.Gender != catalog.GenderMale && ch.Gender != catalog.GenderFemale {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidGender, ch.Gender))
	}
	if ch.BodyShape < 0 || ch.BodyShape >= len(c.BodyShapes()) {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidBodyShape, ch.BodyShape))
	}
	for _, palette := range c.Palettes() {
		index, ok := ch.Color(palette.Class)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s color is missing", ErrInvalidColor, palette.Class))
			continue
		}
		if _, ok := palette.Color(index); !ok {
			errs = append(errs, fmt.Errorf("%w: %s color %d", ErrInvalidColor, palette.Class, index))
		}
	}
	for layer := range ch.Parts {
		if _, ok := catalog.LayerByName(layer); !ok {
			errs = append(errs, fmt.Errorf("%w: unknown layer %q", ErrInvalidSelection, layer))
		}
	}
	for _, layer := range catalog.Layers() {
		sel := ch.Part(layer.Name)
		if !sel.wellFormed() {
			errs = append(errs, fmt.Errorf("%w: %s index %d variant %d", ErrInvalidSelection, layer.Name, sel.Index, sel.Variant))
			continue
		}
		if sel.IsAbsent() {
			if !layer.CanBeNone && !derivedAbsenceAllowed(layer.Name, ch) {
				errs = append(errs, fmt.Errorf("%w: %s", ErrMissingLayer, layer.Name))
			}
			continue
		}
		if !c.IsValidSelection(layer.Name, sel.Index, sel.Variant, ch.Gender) {
			errs = append(errs, fmt.Errorf("%w: %s %d/%d for %s", ErrInvalidSelection, layer.Name, sel.Index, sel.Variant, ch.Gender))
		}
	}
	if ch.Gender == catalog.GenderFemale {
		for _, layer := range []catalog.LayerName{catalog.LayerBeard, catalog.LayerMoustache} {
			if ch.Has(layer) {
				errs = append(errs, violation("FemaleFacialHair", "%s present on a female character", layer))
			}
		}
	}
	if err := CheckRules(c, ch); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// derivedAbsenceAllowed covers required layers whose presence follows
// another layer: a clothes back is only needed while clothes are worn.
func derivedAbsenceAllowed(layer catalog.LayerName, ch Character) bool {
	return layer == catalog.LayerClothesBack && !ch.Has(catalog.LayerClothes)
}
