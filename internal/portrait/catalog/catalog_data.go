package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/portrait_catalog.v1.json
var portraitCatalogJSON []byte

var (
	loadCatalogOnce  sync.Once
	embeddedCatalog  *Catalog
	catalogLoadError error
)

type catalogJSONDocument struct {
	ID                 string          `json:"id"`
	SpriteRoot         string          `json:"sprite_root"`
	FemaleSuffix       string          `json:"female_suffix"`
	BodyShapes         []bodyShapeJSON `json:"body_shapes"`
	Palettes           []paletteJSON   `json:"palettes"`
	Categories         []categoryJSON  `json:"categories"`
	ClothesBackMapping map[int]int     `json:"clothes_back_mapping"`
}

type bodyShapeJSON struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type paletteJSON struct {
	Class  string      `json:"class"`
	Colors []colorJSON `json:"colors"`
}

type colorJSON struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type categoryJSON struct {
	Name                  string        `json:"name"`
	FemaleSuffix          string        `json:"female_suffix"`
	FemaleOnlyIndices     []int         `json:"female_only_indices"`
	GenderSpecificIndices []int         `json:"gender_specific_indices"`
	FemaleOnlyVariants    map[int][]int `json:"female_only_variants"`
	Variants              []variantJSON `json:"variants"`
}

type variantJSON struct {
	Index int   `json:"index"`
	Count int   `json:"count"`
	Set   []int `json:"set"`
}

// ValidateEmbedded returns any decoding error from the embedded catalog.
func ValidateEmbedded() error {
	_, err := loadEmbedded()
	return err
}

// Embedded returns the built-in catalog. A broken embedded bundle yields an
// empty catalog; call ValidateEmbedded at startup to surface the cause.
func Embedded() *Catalog {
	c, err := loadEmbedded()
	if err != nil {
		return emptyCatalog()
	}
	return c
}

func loadEmbedded() (*Catalog, error) {
	loadCatalogOnce.Do(func() {
		embeddedCatalog, catalogLoadError = Decode(portraitCatalogJSON)
	})
	return embeddedCatalog, catalogLoadError
}

func emptyCatalog() *Catalog {
	return &Catalog{
		palettes:           map[ColorClass]Palette{},
		categories:         map[string]*Category{},
		clothesBackMapping: map[int]int{},
	}
}

// Decode parses and validates one catalog document.
func Decode(raw []byte) (*Catalog, error) {
	var doc catalogJSONDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}
	id := strings.TrimSpace(doc.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: catalog id is required", ErrCatalogInvalid)
	}
	root := strings.TrimSpace(doc.SpriteRoot)
	if root == "" {
		return nil, fmt.Errorf("%w: sprite root is required", ErrCatalogInvalid)
	}
	defaultSuffix := strings.TrimSpace(doc.FemaleSuffix)
	if defaultSuffix == "" {
		defaultSuffix = defaultFemaleSuffix
	}

	out := emptyCatalog()
	out.ID = id
	out.SpriteRoot = root

	for i, shape := range doc.BodyShapes {
		if shape.Index != i {
			return nil, fmt.Errorf("%w: body shape %q has index %d, want %d", ErrCatalogInvalid, shape.Name, shape.Index, i)
		}
		out.bodyShapes = append(out.bodyShapes, BodyShape{Index: shape.Index, Name: shape.Name})
	}

	for _, rawPalette := range doc.Palettes {
		class := ColorClass(strings.TrimSpace(rawPalette.Class))
		if _, exists := out.palettes[class]; exists {
			return nil, fmt.Errorf("%w: duplicate palette %q", ErrCatalogInvalid, class)
		}
		if len(rawPalette.Colors) == 0 {
			return nil, fmt.Errorf("%w: palette %q is empty", ErrCatalogInvalid, class)
		}
		palette := Palette{Class: class}
		for i, color := range rawPalette.Colors {
			palette.Colors = append(palette.Colors, Color{Index: i, Name: color.Name, Hex: strings.ToUpper(color.Hex)})
		}
		out.palettes[class] = palette
	}
	for _, class := range paletteOrder {
		if _, ok := out.palettes[class]; !ok {
			return nil, fmt.Errorf("%w: palette %q is missing", ErrCatalogInvalid, class)
		}
	}

	for _, rawCategory := range doc.Categories {
		category, err := decodeCategory(rawCategory, defaultSuffix)
		if err != nil {
			return nil, err
		}
		if _, exists := out.categories[category.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrCatalogInvalid, category.Name)
		}
		out.categories[category.Name] = category
	}
	for _, layer := range registry {
		if _, ok := out.categories[layer.Category]; !ok {
			return nil, fmt.Errorf("%w: layer %s references missing category %q", ErrCatalogInvalid, layer.Name, layer.Category)
		}
	}

	clothesBack := out.categories["ClothesBack"]
	clothes := out.categories["Clothes"]
	for clothesIndex, backIndex := range doc.ClothesBackMapping {
		if _, ok := clothes.variants[clothesIndex]; !ok {
			return nil, fmt.Errorf("%w: clothes back mapping uses unknown clothes index %d", ErrCatalogInvalid, clothesIndex)
		}
		if _, ok := clothesBack.variants[backIndex]; !ok {
			return nil, fmt.Errorf("%w: clothes back mapping uses unknown back index %d", ErrCatalogInvalid, backIndex)
		}
		out.clothesBackMapping[clothesIndex] = backIndex
	}
	return out, nil
}

func decodeCategory(raw categoryJSON, defaultSuffix string) (*Category, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrCatalogInvalid)
	}
	suffix := strings.TrimSpace(raw.FemaleSuffix)
	if suffix == "" {
		suffix = defaultSuffix
	}
	category := &Category{
		Name:               name,
		FemaleSuffix:       suffix,
		variants:           make(map[int]VariantSet, len(raw.Variants)),
		femaleOnlyIndices:  map[int]bool{},
		genderSpecific:     map[int]bool{},
		femaleOnlyVariants: map[int]map[int]bool{},
	}
	for _, entry := range raw.Variants {
		if entry.Index < 0 {
			return nil, fmt.Errorf("%w: %s index %d is negative", ErrCatalogInvalid, name, entry.Index)
		}
		if _, exists := category.variants[entry.Index]; exists {
			return nil, fmt.Errorf("%w: %s index %d is duplicated", ErrCatalogInvalid, name, entry.Index)
		}
		var set VariantSet
		switch {
		case len(entry.Set) > 0 && entry.Count > 0:
			return nil, fmt.Errorf("%w: %s index %d declares both count and set", ErrCatalogInvalid, name, entry.Index)
		case len(entry.Set) > 0:
			for _, v := range entry.Set {
				if v < 0 {
					return nil, fmt.Errorf("%w: %s index %d has negative variant", ErrCatalogInvalid, name, entry.Index)
				}
			}
			set = Sparse(entry.Set...)
		case entry.Count > 0:
			set = Dense(entry.Count)
		default:
			return nil, fmt.Errorf("%w: %s index %d has no variants", ErrCatalogInvalid, name, entry.Index)
		}
		category.variants[entry.Index] = set
	}
	for _, index := range raw.FemaleOnlyIndices {
		if _, ok := category.variants[index]; !ok {
			return nil, fmt.Errorf("%w: %s female-only index %d is not catalogued", ErrCatalogInvalid, name, index)
		}
		category.femaleOnlyIndices[index] = true
	}
	for _, index := range raw.GenderSpecificIndices {
		if _, ok := category.variants[index]; !ok {
			return nil, fmt.Errorf("%w: %s gender-specific index %d is not catalogued", ErrCatalogInvalid, name, index)
		}
		category.genderSpecific[index] = true
	}
	for index, variants := range raw.FemaleOnlyVariants {
		set, ok := category.variants[index]
		if !ok {
			return nil, fmt.Errorf("%w: %s female-only variants reference index %d", ErrCatalogInvalid, name, index)
		}
		excluded := make(map[int]bool, len(variants))
		for _, v := range variants {
			if !set.Contains(v) {
				return nil, fmt.Errorf("%w: %s index %d has no variant %d", ErrCatalogInvalid, name, index, v)
			}
			excluded[v] = true
		}
		if len(excluded) >= set.Len() {
			return nil, fmt.Errorf("%w: %s index %d has no variants left for male", ErrCatalogInvalid, name, index)
		}
		category.femaleOnlyVariants[index] = excluded
	}
	return category, nil
}
