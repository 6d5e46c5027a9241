package domain

import (
	"fmt"
	"math"
)

// Lattice converts lattice-relative lengths into absolute units. The spacing
// along each axis is the side length of the cubic unit cell.
type Lattice struct {
	Style    string
	Constant float64
	spacing  [3]float64
}

// basisAtoms gives the number of basis atoms per unit cell for each
// supported style.
var basisAtoms = map[string]int{
	"none": 1,
	"sc":   1,
	"bcc":  2,
	"fcc":  4,
}

// NewLattice creates a lattice of the given style. For the "none" style the
// constant is used directly as the spacing. For cubic styles the constant is
// the lattice constant unless reduced is true, in which case it is a reduced
// number density and the spacing is (nBasis/rho)^(1/3).
func NewLattice(style string, constant float64, reduced bool) (*Lattice, error) {
	nBasis, ok := basisAtoms[style]
	if !ok {
		return nil, fmt.Errorf("The lattice style '%s' is not recognized. "+
			"Valid styles are 'none', 'sc', 'bcc', and 'fcc'.", style)
	}
	if constant <= 0 || math.IsInf(constant, 0) || math.IsNaN(constant) {
		return nil, fmt.Errorf("The lattice constant for style '%s' is %g, "+
			"but it must be positive.", style, constant)
	}

	a := constant
	if reduced && style != "none" {
		a = math.Cbrt(float64(nBasis) / constant)
	}

	return &Lattice{style, constant, [3]float64{a, a, a}}, nil
}

// Spacing returns the lattice spacing along dimension dim.
func (l *Lattice) Spacing(dim int) float64 { return l.spacing[dim] }
