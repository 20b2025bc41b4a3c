// Package appearance builds and checks portrait characters on top of the
// sprite catalog: the character value type, the cross-layer dependency
// rules, the constrained random generator, and the per-gender defaults.
package appearance

import (
	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
)

// PartSelection picks one sprite for a layer. Index and Variant are both -1
// when the layer is empty.
type PartSelection struct {
	Index   int `json:"index"`
	Variant int `json:"variant"`
}

// Absent is the empty selection.
var Absent = PartSelection{Index: -1, Variant: -1}

// Part builds a present selection.
func Part(index, variant int) PartSelection {
	return PartSelection{Index: index, Variant: variant}
}

// IsAbsent reports whether the layer is empty.
func (p PartSelection) IsAbsent() bool {
	return p.Index == -1 && p.Variant == -1
}

// wellFormed reports whether absence is all-or-nothing and nothing is below -1.
func (p PartSelection) wellFormed() bool {
	if p.IsAbsent() {
		return true
	}
	return p.Index >= 0 && p.Variant >= 0
}

// Character is a complete portrait description. Values are treated as
// immutable: use With and WithColor to derive changed copies.
type Character struct {
	Gender    catalog.Gender                      `json:"gender"`
	BodyShape int                                 `json:"bodyShape"`
	Parts     map[catalog.LayerName]PartSelection `json:"parts"`
	Colors    map[catalog.ColorClass]int          `json:"colors"`
}

// Part returns the selection for a layer; missing layers are absent.
func (c Character) Part(layer catalog.LayerName) PartSelection {
	if sel, ok := c.Parts[layer]; ok {
		return sel
	}
	return Absent
}

// Has reports whether a layer is present.
func (c Character) Has(layer catalog.LayerName) bool {
	return !c.Part(layer).IsAbsent()
}

// Color returns the palette index for a color class.
func (c Character) Color(class catalog.ColorClass) (int, bool) {
	index, ok := c.Colors[class]
	return index, ok
}

// With returns a copy with one layer replaced.
func (c Character) With(layer catalog.LayerName, sel PartSelection) Character {
	out := c.Clone()
	out.Parts[layer] = sel
	return out
}

// WithColor returns a copy with one color replaced.
func (c Character) WithColor(class catalog.ColorClass, index int) Character {
	out := c.Clone()
	out.Colors[class] = index
	return out
}

// Clone deep-copies the character.
func (c Character) Clone() Character {
	out := Character{
		Gender:    c.Gender,
		BodyShape: c.BodyShape,
		Parts:     make(map[catalog.LayerName]PartSelection, len(c.Parts)),
		Colors:    make(map[catalog.ColorClass]int, len(c.Colors)),
	}
	for layer, sel := range c.Parts {
		out.Parts[layer] = sel
	}
	for class, index := range c.Colors {
		out.Colors[class] = index
	}
	return out
}

// Normalized fills every registry layer, writing Absent for missing ones.
func (c Character) Normalized() Character {
	out := c.Clone()
	for _, layer := range catalog.Layers() {
		if _, ok := out.Parts[layer.Name]; !ok {
			out.Parts[layer.Name] = Absent
		}
	}
	return out
}
