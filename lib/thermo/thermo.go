/*package thermo computes the summary statistics mirror reports while a run
is in progress and when inspecting dumps.*/
package thermo

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/phil-mansfield/mirror/lib/particles"
)

// Summary is a snapshot of the state of a group of particles.
type Summary struct {
	N int
	// KE is the total kinetic energy, 1/2 m sum |v|^2.
	KE float64
	// Momentum is the total momentum, m sum v.
	Momentum [3]float64
	// MeanV and StdV are the mean and standard deviation of each velocity
	// component.
	MeanV, StdV [3]float64
	// Min and Max are the extents of the particle positions.
	Min, Max [3]float64
}

// Compute summarizes the particles in p whose mask intersects groupBit.
// Every particle is assumed to have the given mass.
func Compute(p *particles.Local, groupBit int32, mass float64) Summary {
	n := p.Count(groupBit)
	s := Summary{N: n}
	if n == 0 {
		for dim := 0; dim < 3; dim++ {
			s.Min[dim], s.Max[dim] = math.NaN(), math.NaN()
		}
		return s
	}

	x, v := make([]float64, n), make([]float64, n)
	for dim := 0; dim < 3; dim++ {
		j := 0
		for i := range p.X {
			if p.Mask[i]&groupBit == 0 {
				continue
			}
			x[j], v[j] = p.X[i][dim], p.V[i][dim]
			j++
		}

		s.KE += 0.5 * mass * floats.Dot(v, v)
		s.Momentum[dim] = mass * floats.Sum(v)
		s.MeanV[dim], s.StdV[dim] = stat.MeanStdDev(v, nil)
		s.Min[dim], s.Max[dim] = floats.Min(x), floats.Max(x)
	}

	return s
}

// Temperature returns the kinetic temperature of a group of particles in
// units where Boltzmann's constant is 1, given the number of dimensions
// particles move in.
func (s Summary) Temperature(dim int) float64 {
	dof := float64(dim*s.N - dim)
	if dof <= 0 {
		return 0
	}
	return 2 * s.KE / dof
}
