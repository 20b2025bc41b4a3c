// Package postcard lays out crew portraits on the printable postcard
// templates. Coordinates are percentages of the template size.
package postcard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxCrewSize is the largest crew a postcard has slots for.
const MaxCrewSize = 10

// DefaultColor is the template used when no color is given.
const DefaultColor = "blue"

var (
	// ErrCrewSizeOutOfRange reports a character count outside 1..MaxCrewSize.
	ErrCrewSizeOutOfRange = errors.New("postcard character count is out of range")
	// ErrUnknownTemplate reports a template color that is not configured.
	ErrUnknownTemplate = errors.New("postcard template is unknown")
)

// Slot is one portrait frame on a template.
type Slot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Template describes one postcard design.
type Template struct {
	Color        string `json:"color"`
	Name         string `json:"name"`
	TemplatePath string `json:"templatePath"`
	BgColor      string `json:"bgColor"`
	// SingleSlot replaces the grid when exactly one character is placed.
	SingleSlot *Slot `json:"singleSlot,omitempty"`
}

// Layout is a template with the slots for one crew.
type Layout struct {
	Template Template `json:"template"`
	Slots    []Slot   `json:"slots"`
}

const (
	slotWidth  = 13.0
	slotHeight = 26.0
)

// baseSlots fills the top row left to right, then the bottom row.
var baseSlots = []Slot{
	{X: 5.5, Y: 5.5, Width: slotWidth, Height: slotHeight},
	{X: 19.5, Y: 5.5, Width: slotWidth, Height: slotHeight},
	{X: 33.5, Y: 5.5, Width: slotWidth, Height: slotHeight},
	{X: 47.5, Y: 5.5, Width: slotWidth, Height: slotHeight},
	{X: 61.5, Y: 5.5, Width: slotWidth, Height: slotHeight},
	{X: 75.5, Y: 5.5, Width: slotWidth, Height: slotHeight},
	{X: 89.5, Y: 5.5, Width: slotWidth, Height: slotHeight},
	{X: 5.5, Y: 33.0, Width: slotWidth, Height: slotHeight},
	{X: 19.5, Y: 33.0, Width: slotWidth, Height: slotHeight},
	{X: 33.5, Y: 33.0, Width: slotWidth, Height: slotHeight},
}

var templates = map[string]Template{
	"blue": {
		Color:        "blue",
		Name:         "R.A.F. Lichfield",
		TemplatePath: "/PostcardTemplates/goa_postcard_greetingsfromlichfield_noboxes_720.png",
		BgColor:      "#3A9BB5",
		SingleSlot:   &Slot{X: 5.5, Y: 9.0, Width: 28.0, Height: 52.0},
	},
	"orange": {
		Color:        "orange",
		Name:         "Lichfield Crew",
		TemplatePath: "/PostcardTemplates/goa_postcard_greetingsfromlichfieldcrew_noboxes.png",
		BgColor:      "#E67E22",
	},
}

// Slots returns the grid slots for count characters.
func Slots(count int) ([]Slot, error) {
	if count < 1 || count > MaxCrewSize {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrCrewSizeOutOfRange, count, MaxCrewSize)
	}
	out := make([]Slot, count)
	copy(out, baseSlots[:count])
	return out, nil
}

// Colors lists the configured template colors.
func Colors() []string {
	out := make([]string, 0, len(templates))
	for color := range templates {
		out = append(out, color)
	}
	sort.Strings(out)
	return out
}

// LookupTemplate returns a template by color, case-insensitively. A blank
// color selects DefaultColor.
func LookupTemplate(color string) (Template, error) {
	key := strings.ToLower(strings.TrimSpace(color))
	if key == "" {
		key = DefaultColor
	}
	template, ok := templates[key]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, color)
	}
	if template.SingleSlot != nil {
		single := *template.SingleSlot
		template.SingleSlot = &single
	}
	return template, nil
}

// Config lays out count characters on the template of the given color.
func Config(color string, count int) (Layout, error) {
	template, err := LookupTemplate(color)
	if err != nil {
		return Layout{}, err
	}
	slots, err := Slots(count)
	if err != nil {
		return Layout{}, err
	}
	if count == 1 && template.SingleSlot != nil {
		slots = []Slot{*template.SingleSlot}
	}
	return Layout{Template: template, Slots: slots}, nil
}
