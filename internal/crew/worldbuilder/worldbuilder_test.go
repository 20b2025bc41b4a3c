package worldbuilder

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestWorldBuilder_Deterministic(t *testing.T) {
	a := New(rand.New(rand.NewSource(42)))
	b := New(rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		if got, want := a.FirstName(OriginBritish, i%2 == 0), b.FirstName(OriginBritish, i%2 == 0); got != want {
			t.Fatalf("first name = %q, want %q", got, want)
		}
		if got, want := a.LastName(OriginChinese), b.LastName(OriginChinese); got != want {
			t.Fatalf("last name = %q, want %q", got, want)
		}
	}
}

func TestWorldBuilder_BirthDateRange(t *testing.T) {
	w := New(rand.New(rand.NewSource(7)))
	lower := time.Date(1915, time.January, 1, 0, 0, 0, 0, time.UTC)
	upper := time.Date(1922, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		got := w.BirthDate()
		if got.Before(lower) || !got.Before(upper) {
			t.Fatalf("birth date %s out of range", got.Format("2006-01-02"))
		}
	}
}

func TestWorldBuilder_UnknownOriginFallsBack(t *testing.T) {
	w := New(rand.New(rand.NewSource(1)))
	name := w.LastName(Origin("Atlantis"))
	found := false
	for _, surname := range nameTables[OriginBritish].surnames {
		if surname == name {
			found = true
		}
	}
	if !found {
		t.Fatalf("surname %q not from british table", name)
	}
}

func TestWorldBuilder_Biography(t *testing.T) {
	w := New(rand.New(rand.NewSource(3)))
	for i := 0; i < len(biographyTemplates)*4; i++ {
		bio := w.Biography("Joan", "Leeds", "a radio operator")
		if !strings.Contains(bio, "Joan") || !strings.Contains(bio, "Leeds") || !strings.Contains(bio, "a radio operator") {
			t.Fatalf("biography missing a field: %q", bio)
		}
		if strings.Contains(bio, "%!") {
			t.Fatalf("biography has a formatting error: %q", bio)
		}
	}
}
