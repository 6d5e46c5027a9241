package domain

import (
	"math"
	"testing"
)

func TestNewBox(t *testing.T) {
	tests := []struct {
		lo, hi   [3]float64
		periodic [3]bool
		dim      int
		valid    bool
	}{
		{[3]float64{0, 0, 0}, [3]float64{10, 10, 10}, [3]bool{}, 3, true},
		{[3]float64{0, 0, 0}, [3]float64{10, 10, 10}, [3]bool{}, 4, false},
		{[3]float64{0, 0, 0}, [3]float64{10, 0, 10}, [3]bool{}, 3, false},
		{[3]float64{0, 0, -1}, [3]float64{10, 10, 1},
			[3]bool{false, false, true}, 2, true},
		{[3]float64{0, 0, -1}, [3]float64{10, 10, 1}, [3]bool{}, 2, false},
	}

	for i := range tests {
		_, err := NewBox(tests[i].lo, tests[i].hi,
			tests[i].periodic, tests[i].dim)
		if tests[i].valid && err != nil {
			t.Errorf("%d) Expected valid box, got error '%s'.", i, err.Error())
		} else if !tests[i].valid && err == nil {
			t.Errorf("%d) Expected invalid box, got no error.", i)
		}
	}
}

func TestBoxWrapContains(t *testing.T) {
	b, err := NewBox([3]float64{0, 0, 0}, [3]float64{10, 10, 10},
		[3]bool{true, false, false}, 3)
	if err != nil {
		t.Fatalf("Expected valid box, got error '%s'.", err.Error())
	}

	x := [3]float64{-2, 5, 5}
	b.Wrap(&x)
	if x != [3]float64{8, 5, 5} {
		t.Errorf("Expected Wrap() to give %v, got %v.",
			[3]float64{8, 5, 5}, x)
	}

	for _, x0 := range []float64{-35, -10, -1e-17, 10, 25.5, 1e6} {
		x := [3]float64{x0, 5, 5}
		b.Wrap(&x)
		if x[0] < 0 || x[0] >= 10 || x[1] != 5 {
			t.Errorf("Expected Wrap(%g) to be inside [0, 10), got %v.", x0, x)
		}
	}

	if !b.Contains([3]float64{100, 5, 5}) {
		t.Errorf("Expected periodic axis to be ignored by Contains().")
	}
	if b.Contains([3]float64{5, 10, 5}) {
		t.Errorf("Expected Contains() to exclude the upper y bound.")
	}
}

func TestNewLattice(t *testing.T) {
	tests := []struct {
		style    string
		constant float64
		reduced  bool
		spacing  float64
		valid    bool
	}{
		{"none", 2.5, false, 2.5, true},
		{"sc", 3, false, 3, true},
		{"fcc", 4, true, 1, true},
		{"bcc", 0.25, true, 2, true},
		{"hcp", 1, false, 0, false},
		{"fcc", -1, false, 0, false},
	}

	for i := range tests {
		l, err := NewLattice(tests[i].style, tests[i].constant,
			tests[i].reduced)
		if !tests[i].valid {
			if err == nil {
				t.Errorf("%d) Expected error, got none.", i)
			}
			continue
		} else if err != nil {
			t.Errorf("%d) Expected no error, got '%s'.", i, err.Error())
			continue
		}

		for dim := 0; dim < 3; dim++ {
			if math.Abs(l.Spacing(dim)-tests[i].spacing) > 1e-12 {
				t.Errorf("%d) Expected Spacing(%d) = %g, got %g.", i, dim,
					tests[i].spacing, l.Spacing(dim))
			}
		}
	}
}
