package particles

import (
	"math"
)

var xorshiftMax = float64(math.MaxUint32)

// RNG is an xorshift random number generator. Sequences depend only on the
// seed, so generated particle sets are reproducible across platforms. It is
// not thread safe.
type RNG struct {
	w, x, y, z uint32
}

// NewRNG creates an RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{uint32(seed) ^ uint32(seed>>32), 123456789, 362436069, 521288629}
}

// Uniform generates a single random number in the range [0, 1).
func (gen *RNG) Uniform() float64 {
	for {
		t := gen.x ^ (gen.x << 11)
		gen.x, gen.y, gen.z = gen.y, gen.z, gen.w
		gen.w = gen.w ^ (gen.w >> 19) ^ (t ^ (t >> 8))
		res := float64(math.MaxUint32-gen.w) / xorshiftMax
		if res < 1 {
			return res
		}
	}
}

// Normal generates a single normally distributed number with zero mean and
// unit variance.
func (gen *RNG) Normal() float64 {
	u1 := 1 - gen.Uniform()
	u2 := gen.Uniform()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Random creates n particles placed uniformly inside the block [lo, hi) with
// velocity components drawn from a normal distribution with standard
// deviation sigma. For 2d runs, z positions are set to lo[2] and z
// velocities are zero. Every particle is placed in the "all" group.
func Random(
	n int, lo, hi [3]float64, dim int, sigma float64, seed uint64,
) *Local {
	gen := NewRNG(seed)
	p := New(n)
	for i := 0; i < n; i++ {
		for k := 0; k < dim; k++ {
			p.X[i][k] = lo[k] + (hi[k]-lo[k])*gen.Uniform()
			p.V[i][k] = sigma * gen.Normal()
		}
		for k := dim; k < 3; k++ {
			p.X[i][k] = lo[k]
		}
	}
	return p
}
