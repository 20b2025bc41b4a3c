package appearance

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
)

var (
	// ErrInvalidRange reports a skin range with nothing left after clamping.
	ErrInvalidRange = errors.New("skin range is empty")
	// ErrGeneratorMisconfigured reports a generator built without a catalog or source.
	ErrGeneratorMisconfigured = errors.New("generator requires a catalog and a random source")
)

// Policy holds the presence probabilities the generator rolls against.
// A layer is present when a uniform draw in [0,1) is below its chance, so 0
// never and 1 always draws the layer.
type Policy struct {
	// PresenceChance applies to every optional layer the generator picks directly.
	PresenceChance float64
	// MouthChance applies to the mouth when no moustache hides it.
	MouthChance float64
	// HairBackChance applies when the chosen hair has a matching back.
	HairBackChance float64
}

// DefaultPolicy draws each optional layer 70% of the time.
func DefaultPolicy() Policy {
	return Policy{PresenceChance: 0.7, MouthChance: 0.7, HairBackChance: 0.7}
}

// SkinRange is an inclusive range of skin palette indices.
type SkinRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FullSkinRange covers the whole skin palette.
func FullSkinRange() SkinRange {
	return SkinRange{Min: 0, Max: 6}
}

// Options tunes one Generate call.
type Options struct {
	// SkinRange restricts the skin color; nil means the whole palette.
	SkinRange *SkinRange
}

// Generator draws random characters that satisfy the catalog and the
// dependency rules. It is safe for concurrent use.
type Generator struct {
	catalog *catalog.Catalog
	policy  Policy

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator builds a generator over an injected random source. Seeded
// sources produce reproducible characters.
func NewGenerator(c *catalog.Catalog, rng *rand.Rand, policy Policy) *Generator {
	return &Generator{catalog: c, policy: policy, rng: rng}
}

// skippedLayers are derived by the dependency rules instead of drawn.
var skippedLayers = map[catalog.LayerName]bool{
	catalog.LayerMouth:       true,
	catalog.LayerClothesBack: true,
	catalog.LayerHairBack:    true,
}

// Generate draws one character. GenderAny picks Male or Female uniformly.
func (g *Generator) Generate(gender catalog.Gender, opts Options) (Character, error) {
	if g == nil || g.catalog == nil || g.rng == nil {
		return Character{}, ErrGeneratorMisconfigured
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if gender != catalog.GenderMale && gender != catalog.GenderFemale {
		if g.rng.Intn(2) == 0 {
			gender = catalog.GenderMale
		} else {
			gender = catalog.GenderFemale
		}
	}

	skin := FullSkinRange()
	if opts.SkinRange != nil {
		skin = *opts.SkinRange
	}
	palette, _ := g.catalog.Palette(catalog.ColorSkin)
	lo, hi, ok := palette.Clamp(skin.Min, skin.Max)
	if !ok {
		return Character{}, fmt.Errorf("%w: %d..%d", ErrInvalidRange, skin.Min, skin.Max)
	}

	ch := Character{
		Gender: gender,
		Parts:  make(map[catalog.LayerName]PartSelection),
		Colors: make(map[catalog.ColorClass]int),
	}
	for _, class := range catalog.PaletteClasses() {
		if class == catalog.ColorSkin {
			ch.Colors[class] = lo + g.rng.Intn(hi-lo+1)
			continue
		}
		p, ok := g.catalog.Palette(class)
		if !ok || p.Len() == 0 {
			continue
		}
		ch.Colors[class] = g.rng.Intn(p.Len())
	}
	if shapes := g.catalog.BodyShapes(); len(shapes) > 0 {
		ch.BodyShape = g.rng.Intn(len(shapes))
	}

	for _, layer := range catalog.Layers() {
		if skippedLayers[layer.Name] {
			continue
		}
		ch.Parts[layer.Name] = g.drawLayer(layer, gender)
	}

	for _, rule := range DependencyRules(g.catalog, g.policy) {
		ch = rule.Derive(ch, g.rng)
	}
	return ch, nil
}

func (g *Generator) drawLayer(layer catalog.Layer, gender catalog.Gender) PartSelection {
	if gender == catalog.GenderFemale && isFacialHair(layer.Name) {
		return Absent
	}
	if layer.CanBeNone && !chance(g.rng, g.policy.PresenceChance) {
		return Absent
	}
	return pickPart(g.catalog, layer.Name, gender, g.rng)
}

func isFacialHair(layer catalog.LayerName) bool {
	return layer == catalog.LayerBeard || layer == catalog.LayerMoustache
}
