package postcard

import (
	"errors"
	"reflect"
	"testing"
)

func TestSlots_Counts(t *testing.T) {
	for _, count := range []int{0, -1, 11} {
		if _, err := Slots(count); !errors.Is(err, ErrCrewSizeOutOfRange) {
			t.Fatalf("Slots(%d) error = %v, want ErrCrewSizeOutOfRange", count, err)
		}
	}
	for count := 1; count <= MaxCrewSize; count++ {
		slots, err := Slots(count)
		if err != nil {
			t.Fatalf("Slots(%d): %v", count, err)
		}
		if len(slots) != count {
			t.Fatalf("Slots(%d) returned %d slots", count, len(slots))
		}
	}
}

func TestSlots_ReturnsCopy(t *testing.T) {
	slots, _ := Slots(2)
	slots[0].X = 99
	again, _ := Slots(2)
	if again[0].X != 5.5 {
		t.Fatalf("slot storage was shared: x = %v", again[0].X)
	}
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name      string
		color     string
		count     int
		wantName  string
		wantFirst Slot
		wantLen   int
	}{
		{name: "blue single", color: "blue", count: 1, wantName: "R.A.F. Lichfield", wantFirst: Slot{X: 5.5, Y: 9.0, Width: 28.0, Height: 52.0}, wantLen: 1},
		{name: "blue pair", color: "Blue", count: 2, wantName: "R.A.F. Lichfield", wantFirst: Slot{X: 5.5, Y: 5.5, Width: 13.0, Height: 26.0}, wantLen: 2},
		{name: "orange single", color: "orange", count: 1, wantName: "Lichfield Crew", wantFirst: Slot{X: 5.5, Y: 5.5, Width: 13.0, Height: 26.0}, wantLen: 1},
		{name: "orange full", color: "orange", count: 10, wantName: "Lichfield Crew", wantFirst: Slot{X: 5.5, Y: 5.5, Width: 13.0, Height: 26.0}, wantLen: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := Config(tt.color, tt.count)
			if err != nil {
				t.Fatalf("config: %v", err)
			}
			if layout.Template.Name != tt.wantName {
				t.Fatalf("template = %q, want %q", layout.Template.Name, tt.wantName)
			}
			if len(layout.Slots) != tt.wantLen {
				t.Fatalf("slots = %d, want %d", len(layout.Slots), tt.wantLen)
			}
			if !reflect.DeepEqual(layout.Slots[0], tt.wantFirst) {
				t.Fatalf("first slot = %+v, want %+v", layout.Slots[0], tt.wantFirst)
			}
		})
	}
	last, _ := Config("orange", 10)
	if got := last.Slots[9]; got.X != 33.5 || got.Y != 33.0 {
		t.Fatalf("tenth slot = %+v", got)
	}
}

func TestConfig_Rejects(t *testing.T) {
	if _, err := Config("green", 2); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
	if _, err := Config("blue", 11); !errors.Is(err, ErrCrewSizeOutOfRange) {
		t.Fatalf("expected ErrCrewSizeOutOfRange, got %v", err)
	}
	if got := Colors(); !reflect.DeepEqual(got, []string{"blue", "orange"}) {
		t.Fatalf("colors = %v", got)
	}
}

func TestConfig_DefaultColor(t *testing.T) {
	layout, err := Config(" ", 3)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if layout.Template.Color != DefaultColor {
		t.Fatalf("color = %q, want %q", layout.Template.Color, DefaultColor)
	}
}
