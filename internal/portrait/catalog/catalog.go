// Package catalog holds the portrait sprite catalog: the layer registry, the
// per-category variant tables with their gender exceptions, the tint
// palettes, and the rules that turn a selection into a sprite filename.
//
// All tables are loaded once from embedded JSON and never mutated, so every
// query is safe for concurrent use.
package catalog

import (
	"errors"
	"sort"
)

var (
	// ErrCatalogInvalid reports malformed embedded catalog data.
	ErrCatalogInvalid = errors.New("portrait catalog is invalid")
	// ErrLayerUnknown reports a layer name missing from the registry.
	ErrLayerUnknown = errors.New("portrait layer is unknown")
)

const defaultFemaleSuffix = "_female.png"

// Category is the variant table shared by every layer mapped to it.
type Category struct {
	Name               string
	FemaleSuffix       string
	variants           map[int]VariantSet
	femaleOnlyIndices  map[int]bool
	genderSpecific     map[int]bool
	femaleOnlyVariants map[int]map[int]bool
}

// Indices returns every catalogued index in ascending order.
func (c *Category) Indices() []int {
	out := make([]int, 0, len(c.variants))
	for index := range c.variants {
		out = append(out, index)
	}
	sort.Ints(out)
	return out
}

// VariantSet returns the declared set for an index.
func (c *Category) VariantSet(index int) (VariantSet, bool) {
	set, ok := c.variants[index]
	return set, ok
}

// IsFemaleOnlyIndex reports whether every sprite of the index is female.
func (c *Category) IsFemaleOnlyIndex(index int) bool {
	return c.femaleOnlyIndices[index]
}

// IsGenderSpecific reports whether the index ships a separate female sprite.
func (c *Category) IsGenderSpecific(index int) bool {
	return c.genderSpecific[index]
}

// IsFemaleOnlyVariant reports whether one variant of the index is female-only.
func (c *Category) IsFemaleOnlyVariant(index, variant int) bool {
	return c.femaleOnlyVariants[index][variant]
}

// excluded is the gender exclusion predicate applied on top of a variant set.
func (c *Category) excluded(index, variant int, gender Gender) bool {
	if gender != GenderMale {
		return false
	}
	return c.femaleOnlyIndices[index] || c.femaleOnlyVariants[index][variant]
}

func (c *Category) suffixFor(index int, gender Gender) string {
	if !gender.IsFemale() {
		return ".png"
	}
	if !c.femaleOnlyIndices[index] && !c.genderSpecific[index] {
		return ".png"
	}
	if c.FemaleSuffix != "" {
		return c.FemaleSuffix
	}
	return defaultFemaleSuffix
}

// BodyShape names one body silhouette.
type BodyShape struct {
	Index int
	Name  string
}

// Catalog is the immutable, decoded sprite catalog.
type Catalog struct {
	ID                 string
	SpriteRoot         string
	bodyShapes         []BodyShape
	palettes           map[ColorClass]Palette
	categories         map[string]*Category
	clothesBackMapping map[int]int
}

// Layers returns the layer registry back to front.
func (c *Catalog) Layers() []Layer {
	return Layers()
}

// BodyShapes returns the body shapes by index.
func (c *Catalog) BodyShapes() []BodyShape {
	out := make([]BodyShape, len(c.bodyShapes))
	copy(out, c.bodyShapes)
	return out
}

// Palettes returns every palette-bearing color class.
func (c *Catalog) Palettes() []Palette {
	out := make([]Palette, 0, len(c.palettes))
	for _, class := range paletteOrder {
		if palette, ok := c.palettes[class]; ok {
			out = append(out, palette.clone())
		}
	}
	return out
}

// Palette returns the palette for one color class.
func (c *Catalog) Palette(class ColorClass) (Palette, bool) {
	palette, ok := c.palettes[class]
	if !ok {
		return Palette{}, false
	}
	return palette.clone(), true
}

// Category returns the variant table behind a layer.
func (c *Catalog) Category(layer LayerName) (*Category, bool) {
	entry, ok := LayerByName(layer)
	if !ok {
		return nil, false
	}
	category, ok := c.categories[entry.Category]
	return category, ok
}

// ClothesBackFor returns the ClothesBack index paired with a Clothes index.
func (c *Catalog) ClothesBackFor(clothesIndex int) (int, bool) {
	index, ok := c.clothesBackMapping[clothesIndex]
	return index, ok
}
