package catalog

// Color is one palette entry.
type Color struct {
	Index int
	Name  string
	Hex   string
}

// Palette lists the tints available to one color class.
type Palette struct {
	Class  ColorClass
	Colors []Color
}

// paletteOrder is the order palettes are reported in.
var paletteOrder = []ColorClass{ColorSkin, ColorHair, ColorEye, ColorAccessory}

// PaletteClasses returns the color classes a character carries a color for.
func PaletteClasses() []ColorClass {
	out := make([]ColorClass, len(paletteOrder))
	copy(out, paletteOrder)
	return out
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.Colors)
}

// Color returns the color at index.
func (p Palette) Color(index int) (Color, bool) {
	if index < 0 || index >= len(p.Colors) {
		return Color{}, false
	}
	return p.Colors[index], true
}

// Clamp limits an inclusive range to the palette bounds. ok is false when
// nothing of the range survives.
func (p Palette) Clamp(lo, hi int) (int, int, bool) {
	if lo < 0 {
		lo = 0
	}
	if last := len(p.Colors) - 1; hi > last {
		hi = last
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

func (p Palette) clone() Palette {
	colors := make([]Color, len(p.Colors))
	copy(colors, p.Colors)
	return Palette{Class: p.Class, Colors: colors}
}
