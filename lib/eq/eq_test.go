package eq

import (
	"testing"
)

func TestGeneric(t *testing.T) {
	tests := []struct {
		x, y interface{}
		eq   bool
	}{
		{[]int{1, 2}, []int{1, 2}, true},
		{[]int{1, 2}, []int{1, 3}, false},
		{[]int{1, 2}, []int32{1, 2}, false},
		{[]int32{1}, []int32{1}, true},
		{[]string{"a"}, []string{"a", "b"}, false},
		{[]float64{1.5}, []float64{1.5}, true},
		{[][3]float64{{1, 2, 3}}, [][3]float64{{1, 2, 3}}, true},
		{[][3]float64{{1, 2, 3}}, [][3]float64{{1, 2, 4}}, false},
		{[]byte{1}, []byte{1}, false},
	}

	for i := range tests {
		if Generic(tests[i].x, tests[i].y) != tests[i].eq {
			t.Errorf("%d) Expected Generic(%v, %v) = %v, got %v.", i,
				tests[i].x, tests[i].y, tests[i].eq, !tests[i].eq)
		}
	}
}

func TestVec64sEps(t *testing.T) {
	x := [][3]float64{{1, 2, 3}, {4, 5, 6}}
	y := [][3]float64{{1.001, 2, 3}, {4, 5, 5.999}}
	if !Vec64sEps(x, y, 0.01) {
		t.Errorf("Expected %v and %v to be equal within 0.01.", x, y)
	}
	if Vec64sEps(x, y, 1e-4) {
		t.Errorf("Expected %v and %v to differ at 1e-4.", x, y)
	}
}
