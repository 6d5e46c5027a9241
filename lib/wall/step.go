package wall

import (
	"fmt"

	"github.com/phil-mansfield/mirror/lib/thread"
)

// Refresh evaluates the variable walls for the given step without moving
// any particles: cached values are cleared, each variable wall is evaluated
// exactly once, and the evaluator is told the values will be needed again at
// step+1. vars may be nil if there are no variable walls. If any evaluation
// fails, no wall coordinate is changed and AddStep is not called.
func (ws *WallSet) Refresh(step int64, vars Variables) error {
	if !ws.HasVariableWalls {
		return nil
	}
	if vars == nil {
		return fmt.Errorf("%w: no evaluator was supplied at step %d",
			ErrUnbound, step)
	}
	vars.ClearStep()

	coords := [MaxWalls]float64{}
	for m := 0; m < ws.n; m++ {
		w := &ws.walls[m]
		if w.Mode != Variable {
			continue
		}
		if !w.bound {
			return fmt.Errorf("%w: wall %s", ErrUnbound, w.Name())
		}

		coord, err := vars.ComputeEqual(w.handle)
		if err != nil {
			return fmt.Errorf("Could not evaluate variable '%s' for wall %s "+
				"at step %d: %w", w.VarName, w.Name(), step, err)
		}
		coords[m] = coord * ws.Scale[w.Axis]
	}

	for m := 0; m < ws.n; m++ {
		if ws.walls[m].Mode == Variable {
			ws.walls[m].Coord = coords[m]
		}
	}
	vars.AddStep(step + 1)
	return nil
}

// Step applies the walls to every particle in p whose mask intersects
// groupBit. It should be called once per step, after positions have been
// advanced by the integrator. Variable walls are first updated with Refresh,
// and evaluation errors are returned before any particle is modified.
func (ws *WallSet) Step(
	p Particles, groupBit int32, step int64, vars Variables,
) error {
	if err := ws.Refresh(step, vars); err != nil {
		return err
	}

	x, v, mask := p.Positions(), p.Velocities(), p.Masks()
	n := p.NLocal()
	if len(x) < n || len(v) < n || len(mask) < n {
		return fmt.Errorf("The particle store reports %d local particles, "+
			"but has %d positions, %d velocities, and %d masks.",
			n, len(x), len(v), len(mask))
	}

	workers := ws.Workers
	if workers < 1 {
		workers = 1
	}
	thread.Parallel(thread.Chunks(n, workers), func(c thread.Chunk) {
		ws.reflect(x[c.Start:c.End], v[c.Start:c.End],
			mask[c.Start:c.End], groupBit)
	})

	return nil
}

// reflect applies every wall, in declaration order, to a contiguous block of
// particles.
func (ws *WallSet) reflect(x, v [][3]float64, mask []int32, groupBit int32) {
	for m := 0; m < ws.n; m++ {
		w := &ws.walls[m]
		dim, coord := int(w.Axis), w.Coord

		if w.Side == Low {
			v0 := ws.V0
			for i := range x {
				if mask[i]&groupBit == 0 || x[i][dim] >= coord {
					continue
				}
				x[i][dim] = coord + (coord - x[i][dim])
				v[i][0] = 2*v0[0] - v[i][0]
				v[i][1] = 2*v0[1] - v[i][1]
				v[i][2] = 2*v0[2] - v[i][2]
			}
		} else {
			v1 := ws.V1
			for i := range x {
				if mask[i]&groupBit == 0 || x[i][dim] <= coord {
					continue
				}
				x[i][dim] = coord - (x[i][dim] - coord)
				v[i][0] = 2*v1[0] - v[i][0]
				v[i][1] = 2*v1[1] - v[i][1]
				v[i][2] = 2*v1[2] - v[i][2]
			}
		}
	}
}
