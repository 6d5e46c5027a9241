/*package wall implements moving reflecting walls: axis-aligned planes which
mirror particles that have crossed them back into the simulation domain.

A WallSet is built once from a list of wall declarations, in the same style
as a simulation input script:

   xlo EDGE xhi 8.0 zlo v_piston units box v0 0 0 0 v1 0.5 0 0

Each wall is pinned to the domain edge (EDGE), sits at a constant coordinate,
or follows an equal-style variable (v_<name>) which is re-evaluated every
step. All low walls move with the velocity v0 and all high walls move with
the velocity v1. A particle found outside a wall is mirrored across it and
its velocity is reflected relative to the wall's velocity:

   x' = 2 c - x
   v' = 2 v_wall - v

Particles are only reflected once per wall per step, so walls are only
reliable when particles move a small fraction of the domain width each step.*/
package wall

import (
	"fmt"

	"github.com/rs/zerolog"
)

// MaxWalls is the number of faces on an orthogonal box.
const MaxWalls = 6

// Axis is a Cartesian axis.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Side is the side of the domain a wall bounds.
type Side int

const (
	// Low walls bound the domain from below and keep particles above them.
	Low Side = iota
	// High walls bound the domain from above and keep particles below them.
	High
)

func (s Side) String() string {
	if s == Low {
		return "lo"
	}
	return "hi"
}

// Mode is the way a wall's coordinate is determined.
type Mode int

const (
	// Edge walls sit on the domain boundary observed at construction.
	Edge Mode = iota
	// Constant walls sit at a fixed, scaled coordinate.
	Constant
	// Variable walls follow an equal-style variable, re-evaluated every step.
	Variable
)

func (m Mode) String() string {
	switch m {
	case Edge:
		return "EDGE"
	case Constant:
		return "CONSTANT"
	case Variable:
		return "VARIABLE"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Wall is a single planar wall.
type Wall struct {
	Axis Axis
	Side Side
	Mode Mode
	// Coord is the current position of the wall along Axis in absolute
	// units. For Variable walls it is overwritten every step.
	Coord float64
	// VarName is the name of the variable driving a Variable wall.
	VarName string

	handle int
	bound  bool
}

// Name returns the keyword used to declare the wall, e.g. "xlo".
func (w *Wall) Name() string { return w.Axis.String() + w.Side.String() }

// Domain is the simulation box the walls live in.
type Domain interface {
	Lo(dim int) float64
	Hi(dim int) float64
	Periodic(dim int) bool
	Dimension() int
}

// Scaler converts lattice-relative lengths to absolute units.
type Scaler interface {
	Spacing(dim int) float64
}

// Resolver looks up variables by name.
type Resolver interface {
	// Find returns a handle for the named variable, or false if it does not
	// exist.
	Find(name string) (int, bool)
	// IsEqualStyle returns true if the variable evaluates to one scalar per
	// step rather than one value per particle.
	IsEqualStyle(handle int) bool
}

// Evaluator computes the current value of an equal-style variable.
type Evaluator interface {
	ComputeEqual(handle int) (float64, error)
}

// Scheduler controls when the evaluator recomputes cached values.
type Scheduler interface {
	// ClearStep invalidates values cached during earlier steps.
	ClearStep()
	// AddStep records that values will be needed again at step.
	AddStep(step int64)
}

// Variables is everything Step needs from the variable system.
type Variables interface {
	Evaluator
	Scheduler
}

// Particles is the store of locally owned particles.
type Particles interface {
	NLocal() int
	Positions() [][3]float64
	Velocities() [][3]float64
	Masks() []int32
}

// WallSet is a collection of at most one wall per box face, along with the
// velocities of the low and high walls.
type WallSet struct {
	walls [MaxWalls]Wall
	n     int

	// V0 and V1 are the velocities of the low and high walls in absolute
	// units.
	V0, V1 [3]float64
	// Scale holds the per-axis unit conversion factors.
	Scale [3]float64
	// HasVariableWalls is true if any wall follows a variable.
	HasVariableWalls bool
	// Workers is the number of goroutines the particle loop is split across.
	Workers int

	log zerolog.Logger
}

// Len returns the number of walls.
func (ws *WallSet) Len() int { return ws.n }

// Walls returns a copy of the walls in declaration order.
func (ws *WallSet) Walls() []Wall {
	out := make([]Wall, ws.n)
	copy(out, ws.walls[:ws.n])
	return out
}

// Wall returns the wall on the given face and true, or false if no such wall
// was declared.
func (ws *WallSet) Wall(axis Axis, side Side) (Wall, bool) {
	for m := 0; m < ws.n; m++ {
		if ws.walls[m].Axis == axis && ws.walls[m].Side == side {
			return ws.walls[m], true
		}
	}
	return Wall{}, false
}

// SetLogger sets the logger used for diagnostics.
func (ws *WallSet) SetLogger(log zerolog.Logger) {
	ws.log = log.With().Str("component", "wall").Logger()
}
