package appearance

import (
	"errors"
	"fmt"

	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
)

// ErrRuleViolation reports a character that breaks a cross-layer rule.
var ErrRuleViolation = errors.New("character breaks a layer dependency rule")

// Picker is the randomness a rule needs to fill in a dependent layer.
// *math/rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
	Float64() float64
}

// Rule couples two layers.
//
// Check reports a violation without repairing it. Derive decides the
// dependent layer from scratch. Enforce keeps a satisfied character
// unchanged and derives otherwise, so applying it twice is the same as once.
type Rule interface {
	Name() string
	Check(c Character) error
	Derive(c Character, pick Picker) Character
	Enforce(c Character, pick Picker) Character
}

// Rule names, in application order.
const (
	RuleMoustacheMouth = "moustache_mouth"
	RuleClothesBack    = "clothes_back"
	RuleHairBack       = "hair_back"
)

// DependencyRules returns the rules in the order they must be applied.
func DependencyRules(c *catalog.Catalog, policy Policy) []Rule {
	return []Rule{
		moustacheMouthRule{catalog: c, policy: policy},
		clothesBackRule{catalog: c},
		hairBackRule{catalog: c, policy: policy},
	}
}

func enforce(r Rule, c Character, pick Picker) Character {
	if r.Check(c) == nil {
		return c
	}
	return r.Derive(c, pick)
}

func violation(rule, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrRuleViolation, rule, fmt.Sprintf(format, args...))
}

// moustacheMouthRule hides the mouth under a moustache.
type moustacheMouthRule struct {
	catalog *catalog.Catalog
	policy  Policy
}

func (moustacheMouthRule) Name() string { return RuleMoustacheMouth }

func (r moustacheMouthRule) Check(c Character) error {
	if c.Has(catalog.LayerMoustache) && c.Has(catalog.LayerMouth) {
		return violation(r.Name(), "mouth must be absent while a moustache is present")
	}
	return nil
}

func (r moustacheMouthRule) Derive(c Character, pick Picker) Character {
	if c.Has(catalog.LayerMoustache) || !chance(pick, r.policy.MouthChance) {
		return c.With(catalog.LayerMouth, Absent)
	}
	return c.With(catalog.LayerMouth, pickPart(r.catalog, catalog.LayerMouth, c.Gender, pick))
}

func (r moustacheMouthRule) Enforce(c Character, pick Picker) Character {
	return enforce(r, c, pick)
}

// clothesBackRule pairs the back half of an outfit with its front.
type clothesBackRule struct {
	catalog *catalog.Catalog
}

func (clothesBackRule) Name() string { return RuleClothesBack }

func (r clothesBackRule) Check(c Character) error {
	clothes := c.Part(catalog.LayerClothes)
	back := c.Part(catalog.LayerClothesBack)
	if clothes.IsAbsent() {
		if !back.IsAbsent() {
			return violation(r.Name(), "clothes back present without clothes")
		}
		return nil
	}
	if back.IsAbsent() {
		return violation(r.Name(), "clothes %d need a clothes back", clothes.Index)
	}
	if mapped, ok := r.catalog.ClothesBackFor(clothes.Index); ok && back.Index != mapped {
		return violation(r.Name(), "clothes %d need clothes back %d, got %d", clothes.Index, mapped, back.Index)
	}
	return nil
}

func (r clothesBackRule) Derive(c Character, pick Picker) Character {
	clothes := c.Part(catalog.LayerClothes)
	if clothes.IsAbsent() {
		return c.With(catalog.LayerClothesBack, Absent)
	}
	if mapped, ok := r.catalog.ClothesBackFor(clothes.Index); ok {
		variants := r.catalog.AvailableVariants(catalog.LayerClothesBack, mapped, c.Gender)
		if len(variants) == 0 {
			return c.With(catalog.LayerClothesBack, Absent)
		}
		return c.With(catalog.LayerClothesBack, Part(mapped, variants[0]))
	}
	return c.With(catalog.LayerClothesBack, pickPart(r.catalog, catalog.LayerClothesBack, c.Gender, pick))
}

func (r clothesBackRule) Enforce(c Character, pick Picker) Character {
	return enforce(r, c, pick)
}

// hairBackRule draws the back of a hairstyle only when it matches the front.
type hairBackRule struct {
	catalog *catalog.Catalog
	policy  Policy
}

func (hairBackRule) Name() string { return RuleHairBack }

func (r hairBackRule) Check(c Character) error {
	back := c.Part(catalog.LayerHairBack)
	if back.IsAbsent() {
		return nil
	}
	hair := c.Part(catalog.LayerHair)
	if hair.IsAbsent() {
		return violation(r.Name(), "hair back present without hair")
	}
	if back.Index != hair.Index {
		return violation(r.Name(), "hair back %d does not match hair %d", back.Index, hair.Index)
	}
	return nil
}

func (r hairBackRule) Derive(c Character, pick Picker) Character {
	hair := c.Part(catalog.LayerHair)
	if hair.IsAbsent() {
		return c.With(catalog.LayerHairBack, Absent)
	}
	variants := r.catalog.AvailableVariants(catalog.LayerHairBack, hair.Index, c.Gender)
	if len(variants) == 0 || !chance(pick, r.policy.HairBackChance) {
		return c.With(catalog.LayerHairBack, Absent)
	}
	return c.With(catalog.LayerHairBack, Part(hair.Index, variants[pick.Intn(len(variants))]))
}

func (r hairBackRule) Enforce(c Character, pick Picker) Character {
	return enforce(r, c, pick)
}

// CheckRules runs every rule and joins the violations.
func CheckRules(c *catalog.Catalog, ch Character) error {
	var errs []error
	for _, rule := range DependencyRules(c, DefaultPolicy()) {
		if err := rule.Check(ch); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// EnforceRules applies every rule in order.
func EnforceRules(c *catalog.Catalog, policy Policy, ch Character, pick Picker) Character {
	for _, rule := range DependencyRules(c, policy) {
		ch = rule.Enforce(ch, pick)
	}
	return ch
}

// chance reports a success with probability p. p <= 0 never draws.
func chance(pick Picker, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return pick.Float64() < p
}

// pickPart draws a uniform index and then a uniform variant for it.
func pickPart(c *catalog.Catalog, layer catalog.LayerName, gender catalog.Gender, pick Picker) PartSelection {
	indices := c.AvailableIndices(layer, gender)
	if len(indices) == 0 {
		return Absent
	}
	index := indices[pick.Intn(len(indices))]
	variants := c.AvailableVariants(layer, index, gender)
	if len(variants) == 0 {
		return Absent
	}
	return Part(index, variants[pick.Intn(len(variants))])
}
