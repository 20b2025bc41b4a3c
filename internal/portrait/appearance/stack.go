package appearance

import "github.com/louisbranch/crewportrait/internal/portrait/catalog"

// StackEntry is one sprite of a composited portrait.
type StackEntry struct {
	Layer catalog.Layer
	Part  PartSelection
	Asset catalog.AssetID
	// Tint is the palette hex for the layer's color class, empty when the
	// class has no palette.
	Tint string
}

// Stack lists the sprites to draw back to front. Empty layers, selections
// that do not resolve, and a mouth covered by a moustache are left out.
func Stack(c *catalog.Catalog, ch Character) []StackEntry {
	var out []StackEntry
	hideMouth := ch.Has(catalog.LayerMoustache)
	for _, layer := range catalog.Layers() {
		if layer.Name == catalog.LayerMouth && hideMouth {
			continue
		}
		sel := ch.Part(layer.Name)
		asset, ok := c.Resolve(layer.Name, sel.Index, sel.Variant, ch.Gender)
		if !ok {
			continue
		}
		out = append(out, StackEntry{Layer: layer, Part: sel, Asset: asset, Tint: tint(c, ch, layer.ColorClass)})
	}
	return out
}

func tint(c *catalog.Catalog, ch Character, class catalog.ColorClass) string {
	palette, ok := c.Palette(class)
	if !ok {
		return ""
	}
	index, ok := ch.Color(class)
	if !ok {
		return ""
	}
	color, ok := palette.Color(index)
	if !ok {
		return ""
	}
	return color.Hex
}
