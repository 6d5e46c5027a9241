package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phil-mansfield/mirror/lib/domain"
	"github.com/phil-mansfield/mirror/lib/format"
	"github.com/phil-mansfield/mirror/lib/variable"
	"github.com/phil-mansfield/mirror/lib/wall"
)

// Validate checks that every variable in the config has a legal value. It
// does not interact with any external files.
func (c *Config) Validate() error {
	box, err := c.NewBox()
	if err != nil {
		return err
	}
	lattice, err := c.NewLattice()
	if err != nil {
		return err
	}

	if _, err := c.NewStore(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Walls.Args) == "" {
		return fmt.Errorf("[walls] Args was not set.")
	} else if _, err := wall.Parse(c.Walls.Args, box, lattice); err != nil {
		return err
	}
	if c.Walls.Group == "" {
		return fmt.Errorf("[walls] Group was set to an empty string.")
	}
	if c.Walls.RigidBodies < 0 {
		return fmt.Errorf("[walls] RigidBodies was set to %d.", c.Walls.RigidBodies)
	}

	for name, g := range c.Group {
		if _, _, err := g.Block(); err != nil {
			return fmt.Errorf("[group \"%s\"]: %w", name, err)
		}
	}

	return c.Run.validate()
}

func (r *RunConfig) validate() error {
	switch {
	case r.Steps < 0:
		return fmt.Errorf("[run] Steps was set to %d.", r.Steps)
	case r.Dt <= 0:
		return fmt.Errorf("[run] Dt was set to %g, but must be positive.", r.Dt)
	case r.Mass <= 0:
		return fmt.Errorf("[run] Mass was set to %g, but must be positive.", r.Mass)
	case r.Threads == 0 || r.Threads < -1:
		return fmt.Errorf("[run] Threads was set to %d, but must be "+
			"positive or -1.", r.Threads)
	case r.Particles == "" && r.RandomParticles == 0:
		return fmt.Errorf("[run] Neither Particles nor RandomParticles " +
			"was set.")
	case r.Particles != "" && r.RandomParticles != 0:
		return fmt.Errorf("[run] Particles and RandomParticles cannot " +
			"both be set.")
	case r.RandomParticles < 0:
		return fmt.Errorf("[run] RandomParticles was set to %d.",
			r.RandomParticles)
	case r.Temperature < 0:
		return fmt.Errorf("[run] Temperature was set to %g.", r.Temperature)
	case r.ThermoEvery < 0:
		return fmt.Errorf("[run] ThermoEvery was set to %d.", r.ThermoEvery)
	}

	if r.Output == "" {
		return nil
	}
	if _, err := format.ParseFileFormat(r.Output); err != nil {
		return fmt.Errorf("[run] Output: %w", err)
	}
	if _, err := r.OutputSet(); err != nil {
		return fmt.Errorf("[run] OutputSteps: %w", err)
	}
	return nil
}

// OutputSet returns the set of steps at which dumps are written. If no
// output is requested, the set is empty.
func (r *RunConfig) OutputSet() (format.StepSet, error) {
	if r.Output == "" || strings.TrimSpace(r.OutputSteps) == "" {
		return format.StepSet{}, nil
	}
	return format.ExpandStepFormat(r.OutputSteps)
}

// NewBox creates the simulation box described by the [box] section.
func (c *Config) NewBox() (*domain.Box, error) {
	lo, err := ParseVector(c.Box.Lo)
	if err != nil {
		return nil, fmt.Errorf("[box] Lo: %w", err)
	}
	hi, err := ParseVector(c.Box.Hi)
	if err != nil {
		return nil, fmt.Errorf("[box] Hi: %w", err)
	}
	periodic, err := ParsePeriodic(c.Box.Periodic)
	if err != nil {
		return nil, fmt.Errorf("[box] Periodic: %w", err)
	}
	return domain.NewBox(lo, hi, periodic, c.Box.Dimension)
}

// NewLattice creates the lattice described by the [lattice] section.
func (c *Config) NewLattice() (*domain.Lattice, error) {
	l, err := domain.NewLattice(c.Lattice.Style, c.Lattice.Constant,
		c.Lattice.Reduced)
	if err != nil {
		return nil, fmt.Errorf("[lattice]: %w", err)
	}
	return l, nil
}

// NewStore creates a variable store containing every [variable] section.
func (c *Config) NewStore() (*variable.Store, error) {
	store := variable.NewStore()
	for _, name := range c.VariableNames() {
		v := c.Variable[name]
		if err := store.Define(name, v.Style, strings.Fields(v.Args)); err != nil {
			return nil, fmt.Errorf("[variable \"%s\"]: %w", name, err)
		}
	}
	return store, nil
}

// VariableNames returns the names of the [variable] sections in sorted
// order.
func (c *Config) VariableNames() []string {
	return sortedKeys(c.Variable)
}

// GroupNames returns the names of the [group] sections in sorted order.
func (c *Config) GroupNames() []string {
	return sortedKeys(c.Group)
}

// Block returns the corners of the group's block.
func (g *GroupConfig) Block() (lo, hi [3]float64, err error) {
	if lo, err = ParseVector(g.Lo); err != nil {
		return lo, hi, fmt.Errorf("Lo: %w", err)
	}
	if hi, err = ParseVector(g.Hi); err != nil {
		return lo, hi, fmt.Errorf("Hi: %w", err)
	}
	return lo, hi, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
