package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := 0; i < 64; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("bit %d differs for identical seeds", i)
		}
	}

	a.Seed(5)
	first := make([]bool, 32)
	for i := range first {
		first[i] = a.Bool()
	}
	a.Seed(5)
	for i := range first {
		if a.Bool() != first[i] {
			t.Fatalf("reseeding did not replay bit %d", i)
		}
	}
}

func TestScriptedSourceWraps(t *testing.T) {
	s := NewScriptedSource(true, false, false)
	want := []bool{true, false, false, true, false}
	for i, w := range want {
		if got := s.Bool(); got != w {
			t.Fatalf("bit %d = %v, want %v", i, got, w)
		}
	}
	if s.Drawn() != 2 {
		t.Fatalf("Drawn = %d, want 2", s.Drawn())
	}

	empty := NewScriptedSource()
	if empty.Bool() {
		t.Fatal("empty script must yield false")
	}
}
