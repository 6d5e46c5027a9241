/*package eq is a simple package for telling whether two arrays are equal to
one another. It is mostly used by tests.*/
package eq

// Generic returns true if two arrays are the same type and have the same values
// and false otherwise. Only []int, []int32, []string, []float64, and
// [][3]float64 are supported.
func Generic(x, y interface{}) bool {
	switch xx := x.(type) {
	case []int:
		yy, ok := y.([]int)
		return ok && Ints(xx, yy)
	case []int32:
		yy, ok := y.([]int32)
		return ok && Int32s(xx, yy)
	case []string:
		yy, ok := y.([]string)
		return ok && Strings(xx, yy)
	case []float64:
		yy, ok := y.([]float64)
		return ok && Float64s(xx, yy)
	case [][3]float64:
		yy, ok := y.([][3]float64)
		return ok && Vec64s(xx, yy)
	}
	return false
}

// Strings returns true if two []string arrays are the same and false otherwise.
func Strings(x, y []string) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Ints returns true if two []int arrays are the same and false otherwise.
func Ints(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Int32s returns true if two []int32 arrays are the same and false otherwise.
func Int32s(x, y []int32) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Float64s returns true if two []float64 arrays are the same and false
// otherwise.
func Float64s(x, y []float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Vec64s returns true if two [][3]float64 arrays are the same and false
// otherwise.
func Vec64s(x, y [][3]float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Float64sEps returns true if the two []float64 arrays are within eps of one
// another and false otherwise.
func Float64sEps(x, y []float64, eps float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i]+eps < y[i] || x[i]-eps > y[i] {
			return false
		}
	}
	return true
}

// Vec64sEps returns true if every component of the two [][3]float64 arrays is
// within eps of one another and false otherwise.
func Vec64sEps(x, y [][3]float64, eps float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Float64sEps(x[i][:], y[i][:], eps) {
			return false
		}
	}
	return true
}
