/*package domain describes the simulation volume that walls live in: the box
boundaries, which axes are periodic, and the lattice used to convert
lattice-relative lengths into absolute simulation units.*/
package domain

import (
	"fmt"
	"math"
)

// AxisNames maps dimension indices to axis names.
var AxisNames = [3]string{"x", "y", "z"}

// Box is an orthogonal simulation box.
type Box struct {
	BoxLo, BoxHi [3]float64
	Periodicity  [3]bool
	Dim          int
}

// NewBox creates a Box and checks that it is well-formed. In a 2D box the z
// axis is required to be periodic, since nothing can move along it.
func NewBox(lo, hi [3]float64, periodic [3]bool, dim int) (*Box, error) {
	b := &Box{lo, hi, periodic, dim}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate returns an error if the box is degenerate.
func (b *Box) Validate() error {
	if b.Dim != 2 && b.Dim != 3 {
		return fmt.Errorf("The box dimension is %d, but only 2 and 3 are "+
			"supported.", b.Dim)
	}
	for dim := 0; dim < 3; dim++ {
		if b.BoxHi[dim] <= b.BoxLo[dim] {
			return fmt.Errorf("The upper %s bound of the box, %g, is not "+
				"larger than the lower bound, %g.", AxisNames[dim],
				b.BoxHi[dim], b.BoxLo[dim])
		}
	}
	if b.Dim == 2 && !b.Periodicity[2] {
		return fmt.Errorf("The z axis of a 2D box must be periodic.")
	}
	return nil
}

func (b *Box) Lo(dim int) float64    { return b.BoxLo[dim] }
func (b *Box) Hi(dim int) float64    { return b.BoxHi[dim] }
func (b *Box) Periodic(dim int) bool { return b.Periodicity[dim] }
func (b *Box) Dimension() int        { return b.Dim }
func (b *Box) Width(dim int) float64 { return b.BoxHi[dim] - b.BoxLo[dim] }

// Contains returns true if x is inside the half-open box [lo, hi) along
// every non-periodic axis.
func (b *Box) Contains(x [3]float64) bool {
	for dim := 0; dim < b.Dim; dim++ {
		if b.Periodicity[dim] {
			continue
		}
		if x[dim] < b.BoxLo[dim] || x[dim] >= b.BoxHi[dim] {
			return false
		}
	}
	return true
}

// Wrap maps x back into the half-open box [lo, hi) along every periodic
// axis.
func (b *Box) Wrap(x *[3]float64) {
	for dim := 0; dim < 3; dim++ {
		if !b.Periodicity[dim] {
			continue
		}
		lo, L := b.BoxLo[dim], b.Width(dim)
		x[dim] -= L * math.Floor((x[dim]-lo)/L)
		if x[dim] >= b.BoxHi[dim] {
			x[dim] = lo
		}
	}
}
