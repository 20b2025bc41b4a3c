package catalog

// AvailableIndices lists the indices a layer offers for gender, ascending.
// Male drops female-only indices; Female and GenderAny see everything.
// An unknown layer yields nil.
func (c *Catalog) AvailableIndices(layer LayerName, gender Gender) []int {
	category, ok := c.Category(layer)
	if !ok {
		return nil
	}
	all := category.Indices()
	if gender != GenderMale {
		return all
	}
	out := all[:0]
	for _, index := range all {
		if !category.femaleOnlyIndices[index] {
			out = append(out, index)
		}
	}
	return out
}

// AvailableVariants lists the variants of one index for gender, ascending.
// An unknown layer or index, or a female-only index asked for Male, yields nil.
func (c *Catalog) AvailableVariants(layer LayerName, index int, gender Gender) []int {
	category, ok := c.Category(layer)
	if !ok {
		return nil
	}
	set, ok := category.variants[index]
	if !ok {
		return nil
	}
	if gender == GenderMale && category.femaleOnlyIndices[index] {
		return nil
	}
	out := set.Without(func(variant int) bool {
		return category.excluded(index, variant, gender)
	})
	if len(out) == 0 {
		return nil
	}
	return out
}

// IsValidSelection reports whether a present selection names a sprite that
// exists for gender. GenderAny is checked as Male. Absence (-1) is never a
// valid selection here; callers decide whether the layer may be empty.
func (c *Catalog) IsValidSelection(layer LayerName, index, variant int, gender Gender) bool {
	if index < 0 || variant < 0 {
		return false
	}
	category, ok := c.Category(layer)
	if !ok {
		return false
	}
	set, ok := category.variants[index]
	if !ok || !set.Contains(variant) {
		return false
	}
	return !category.excluded(index, variant, gender.strict())
}

// Selection is one (layer, index, variant) triple.
type Selection struct {
	Layer   LayerName
	Index   int
	Variant int
}

// Selections enumerates every valid selection for gender in registry order.
func (c *Catalog) Selections(gender Gender) []Selection {
	var out []Selection
	for _, layer := range registry {
		for _, index := range c.AvailableIndices(layer.Name, gender.strict()) {
			for _, variant := range c.AvailableVariants(layer.Name, index, gender.strict()) {
				out = append(out, Selection{Layer: layer.Name, Index: index, Variant: variant})
			}
		}
	}
	return out
}
