// Package worldbuilder provides wartime name and biography generation
// for drafting crews without a language model.
package worldbuilder

import (
	"fmt"
	"math/rand"
	"time"
)

// WorldBuilder generates 1940s airfield names and content.
type WorldBuilder struct {
	rng *rand.Rand
}

// New creates a WorldBuilder with the given random source.
func New(rng *rand.Rand) *WorldBuilder {
	return &WorldBuilder{rng: rng}
}

// Origin keys the name tables. Unknown origins fall back to British names.
type Origin string

const (
	OriginBritish       Origin = "British"
	OriginCaribbean     Origin = "Caribbean"
	OriginChinese       Origin = "Chinese"
	OriginMiddleEastern Origin = "MiddleEastern"
	OriginSpanish       Origin = "Spanish"
)

// FirstName picks a first name for the origin. Female names are used when
// female is true.
func (w *WorldBuilder) FirstName(origin Origin, female bool) string {
	table := namesFor(origin)
	if female {
		return table.female[w.rng.Intn(len(table.female))]
	}
	return table.male[w.rng.Intn(len(table.male))]
}

// LastName picks a surname for the origin.
func (w *WorldBuilder) LastName(origin Origin) string {
	table := namesFor(origin)
	return table.surnames[w.rng.Intn(len(table.surnames))]
}

// Nickname picks a mess-hall nickname.
func (w *WorldBuilder) Nickname() string {
	return nicknames[w.rng.Intn(len(nicknames))]
}

// Hometown picks a wartime hometown for the origin.
func (w *WorldBuilder) Hometown(origin Origin) string {
	table := namesFor(origin)
	return table.towns[w.rng.Intn(len(table.towns))]
}

// BirthDate returns a date between 1 January 1915 and 31 December 1921.
func (w *WorldBuilder) BirthDate() time.Time {
	start := time.Date(1915, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(1921, time.December, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, w.rng.Intn(days+1))
}

// Biography writes a short English biography.
func (w *WorldBuilder) Biography(first, hometown, duty string) string {
	template := biographyTemplates[w.rng.Intn(len(biographyTemplates))]
	return fmt.Sprintf(template, first, hometown, duty)
}

// Intn exposes the shared random source for skill rolls.
func (w *WorldBuilder) Intn(n int) int {
	return w.rng.Intn(n)
}

func namesFor(origin Origin) nameTable {
	if table, ok := nameTables[origin]; ok {
		return table
	}
	return nameTables[OriginBritish]
}
