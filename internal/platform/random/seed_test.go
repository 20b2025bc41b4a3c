package random

import "testing"

func TestNewSourceReplaysSeed(t *testing.T) {
	a, seed, err := NewSource(42)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	if seed != 42 {
		t.Fatalf("seed = %d, want 42", seed)
	}
	b, _, _ := NewSource(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestNewSourceDrawsFreshSeed(t *testing.T) {
	_, seed, err := NewSource(0)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	if seed == 0 {
		t.Fatal("expected a non-zero seed")
	}
}
