/*package run drives a mirror simulation: particles free-stream through the
box and are reflected by the configured walls, with thermodynamic summaries
logged and dumps written along the way.*/
package run

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/phil-mansfield/mirror/lib/config"
	"github.com/phil-mansfield/mirror/lib/domain"
	"github.com/phil-mansfield/mirror/lib/dump"
	"github.com/phil-mansfield/mirror/lib/format"
	"github.com/phil-mansfield/mirror/lib/particles"
	"github.com/phil-mansfield/mirror/lib/thermo"
	"github.com/phil-mansfield/mirror/lib/thread"
	"github.com/phil-mansfield/mirror/lib/variable"
	"github.com/phil-mansfield/mirror/lib/wall"
)

// Simulation is a fully initialized run.
type Simulation struct {
	Config    *config.Config
	Box       *domain.Box
	Lattice   *domain.Lattice
	Store     *variable.Store
	Particles *particles.Local
	Groups    *particles.Groups
	Walls     *wall.WallSet
	// GroupBit selects the particles the walls act on.
	GroupBit int32

	output      *format.FileFormat
	outputSteps format.StepSet
	log         zerolog.Logger
}

// Setup reads the particle catalog named by the config, or generates random
// particles if requested, and initializes a simulation from them.
func Setup(cfg *config.Config, log zerolog.Logger) (*Simulation, error) {
	if cfg.Run.RandomParticles > 0 {
		box, err := cfg.NewBox()
		if err != nil {
			return nil, err
		}
		sigma := math.Sqrt(cfg.Run.Temperature / cfg.Run.Mass)
		p := particles.Random(cfg.Run.RandomParticles, box.BoxLo, box.BoxHi,
			box.Dim, sigma, uint64(cfg.Run.Seed))
		log.Info().Int("n", p.NLocal()).Int64("seed", cfg.Run.Seed).
			Float64("temp", cfg.Run.Temperature).Msg("generated particles")
		return New(cfg, p, log)
	}

	p, err := particles.ReadText(cfg.Run.Particles)
	if err != nil {
		return nil, fmt.Errorf("Could not read particles from %s: %w",
			cfg.Run.Particles, err)
	}
	log.Info().Str("file", cfg.Run.Particles).Int("n", p.NLocal()).
		Msg("read particles")
	return New(cfg, p, log)
}

// New initializes a simulation of the particles in p. Group masks in p are
// reset from the config's [group] sections.
func New(
	cfg *config.Config, p *particles.Local, log zerolog.Logger,
) (*Simulation, error) {
	s := &Simulation{Config: cfg, Particles: p, log: log}
	var err error

	if s.Box, err = cfg.NewBox(); err != nil {
		return nil, err
	}
	if s.Lattice, err = cfg.NewLattice(); err != nil {
		return nil, err
	}
	if s.Store, err = cfg.NewStore(); err != nil {
		return nil, err
	}

	for i := range p.X {
		s.Box.Wrap(&p.X[i])
	}
	if err = s.assignGroups(); err != nil {
		return nil, err
	}
	if s.GroupBit, err = s.Groups.Bit(cfg.Walls.Group); err != nil {
		return nil, fmt.Errorf("[walls] Group: %w", err)
	}

	if _, err = thread.Set(cfg.Run.Threads); err != nil {
		return nil, err
	}

	if s.Walls, err = wall.Parse(cfg.Walls.Args, s.Box, s.Lattice); err != nil {
		return nil, err
	}
	s.Walls.Workers = thread.Workers()
	s.Walls.SetLogger(log)
	if err = s.Walls.BindVariables(s.Store); err != nil {
		return nil, err
	}
	s.Walls.Diagnostics(cfg.Walls.RigidBodies)

	if cfg.Run.Output != "" {
		if s.output, err = format.ParseFileFormat(cfg.Run.Output); err != nil {
			return nil, err
		}
	}
	if s.outputSteps, err = cfg.Run.OutputSet(); err != nil {
		return nil, err
	}

	for _, name := range cfg.VariableNames() {
		h, _ := s.Store.Find(name)
		log.Info().Str("variable", s.Store.Name(h)).
			Stringer("kind", s.Store.Kind(h)).Msg("defined variable")
	}
	for _, w := range s.Walls.Walls() {
		ev := log.Info().Str("wall", w.Name()).Stringer("mode", w.Mode)
		switch w.Mode {
		case wall.Constant:
			ev = ev.Float64("coord", w.Coord)
		case wall.Variable:
			ev = ev.Str("variable", w.VarName)
		}
		ev.Msg("declared wall")
	}
	log.Info().Int("workers", s.Walls.Workers).Int64("steps", cfg.Run.Steps).
		Float64("dt", cfg.Run.Dt).Msg("initialized simulation")

	return s, nil
}

func (s *Simulation) assignGroups() error {
	s.Groups = particles.NewGroups()
	for i := range s.Particles.Mask {
		s.Particles.Mask[i] = particles.AllBit
	}

	for _, name := range s.Config.GroupNames() {
		lo, hi, err := s.Config.Group[name].Block()
		if err != nil {
			return fmt.Errorf("[group \"%s\"]: %w", name, err)
		}
		n, err := s.Groups.AssignBlock(s.Particles, name, lo, hi)
		if err != nil {
			return err
		}
		s.log.Info().Str("group", name).Int("n", n).Msg("assigned group")
	}
	return nil
}

// Run integrates the simulation for the configured number of steps and
// returns a summary of the final state of the wall group. It stops early if
// ctx is cancelled.
func (s *Simulation) Run(ctx context.Context) (thermo.Summary, error) {
	steps, dt := s.Config.Run.Steps, s.Config.Run.Dt
	s.Store.SetRun(0, steps, dt)
	s.Store.SetStep(0)
	if err := s.Walls.Refresh(0, s.Store); err != nil {
		return thermo.Summary{}, fmt.Errorf("step 0: %w", err)
	}

	if err := s.writeDump(0); err != nil {
		return thermo.Summary{}, err
	}
	s.thermo(0)

	for step := int64(1); step <= steps; step++ {
		if err := ctx.Err(); err != nil {
			return thermo.Summary{}, err
		}
		if err := s.Step(step); err != nil {
			return thermo.Summary{}, fmt.Errorf("step %d: %w", step, err)
		}

		if err := s.writeDump(step); err != nil {
			return thermo.Summary{}, err
		}
		if every := s.Config.Run.ThermoEvery; every > 0 && step%every == 0 {
			s.thermo(step)
		}
	}

	return s.Summary(), nil
}

// Step advances the simulation to the given step: particles drift along
// their velocities, are wrapped back into the box along periodic axes, and
// are then reflected by the walls.
func (s *Simulation) Step(step int64) error {
	s.Store.SetStep(step)
	s.Particles.Drift(s.Config.Run.Dt)
	for i := range s.Particles.X {
		s.Box.Wrap(&s.Particles.X[i])
	}
	return s.Walls.Step(s.Particles, s.GroupBit, step, s.Store)
}

// Escaped returns the number of particles in the wall group which are
// outside the box along a non-periodic axis. Walls reflect a particle at
// most once per step, so particles which move further than the box width
// in a single step can escape.
func (s *Simulation) Escaped() int {
	n := 0
	for i := range s.Particles.X {
		if s.Particles.Mask[i]&s.GroupBit != 0 &&
			!s.Box.Contains(s.Particles.X[i]) {
			n++
		}
	}
	return n
}

// Summary returns a summary of the current state of the wall group.
func (s *Simulation) Summary() thermo.Summary {
	return thermo.Compute(s.Particles, s.GroupBit, s.Config.Run.Mass)
}

func (s *Simulation) thermo(step int64) {
	sum := s.Summary()
	ev := s.log.Info().Int64("step", step).Int("n", sum.N).
		Float64("ke", sum.KE).
		Float64("temp", sum.Temperature(s.Box.Dimension())).
		Int("escaped", s.Escaped())
	for _, w := range s.Walls.Walls() {
		if w.Mode != wall.Edge {
			ev = ev.Float64(w.Name(), w.Coord)
		}
	}
	ev.Msg("thermo")
}

func (s *Simulation) writeDump(step int64) error {
	if s.output == nil || !s.outputSteps.Contains(step) {
		return nil
	}
	fname := s.output.Expand(step)
	hd := dump.Header{
		Step: step, BoxLo: s.Box.BoxLo, BoxHi: s.Box.BoxHi,
		Dt: s.Config.Run.Dt,
	}
	if err := dump.WriteFile(fname, hd, s.Particles); err != nil {
		return fmt.Errorf("Could not write dump %s: %w", fname, err)
	}
	s.log.Debug().Int64("step", step).Str("file", fname).Msg("wrote dump")
	return nil
}

// Check initializes a simulation without running it, reporting any error
// which would prevent the run from starting.
func Check(cfg *config.Config, log zerolog.Logger) error {
	_, err := Setup(cfg, log)
	return err
}
