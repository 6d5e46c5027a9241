/*package particles contains the locally owned particle store that walls act on
and the group registry used to select which particles a wall applies to.*/
package particles

import (
	"fmt"
)

// Local is the set of particles owned by this process. X, V, and Mask are
// indexed consistently: particle i has position X[i], velocity V[i], and
// group membership bitmask Mask[i].
type Local struct {
	X, V [][3]float64
	Mask []int32
}

// New creates a Local with n particles, all at the origin, at rest, and in
// the "all" group.
func New(n int) *Local {
	p := &Local{
		X:    make([][3]float64, n),
		V:    make([][3]float64, n),
		Mask: make([]int32, n),
	}
	for i := range p.Mask {
		p.Mask[i] = AllBit
	}
	return p
}

// FromArrays creates a Local which wraps x and v. Every particle is placed
// in the "all" group.
func FromArrays(x, v [][3]float64) (*Local, error) {
	if len(x) != len(v) {
		return nil, fmt.Errorf("%d positions were given, but %d velocities.",
			len(x), len(v))
	}
	mask := make([]int32, len(x))
	for i := range mask {
		mask[i] = AllBit
	}
	return &Local{X: x, V: v, Mask: mask}, nil
}

func (p *Local) NLocal() int              { return len(p.X) }
func (p *Local) Positions() [][3]float64  { return p.X }
func (p *Local) Velocities() [][3]float64 { return p.V }
func (p *Local) Masks() []int32           { return p.Mask }

// Drift advances every particle along its velocity for a time dt.
func (p *Local) Drift(dt float64) {
	for i := range p.X {
		for dim := 0; dim < 3; dim++ {
			p.X[i][dim] += p.V[i][dim] * dt
		}
	}
}

// Count returns the number of particles whose mask intersects groupBit.
func (p *Local) Count(groupBit int32) int {
	n := 0
	for _, m := range p.Mask {
		if m&groupBit != 0 {
			n++
		}
	}
	return n
}
