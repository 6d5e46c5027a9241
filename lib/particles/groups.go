package particles

import (
	"fmt"
)

const (
	// MaxGroups is the largest number of groups a Groups registry can hold.
	MaxGroups = 32
	// AllBit is the bit of the "all" group, which every particle is in.
	AllBit int32 = 1
)

// Groups maps group names to mask bits. Group i has bit 1 << i. The "all"
// group is always group 0.
type Groups struct {
	names []string
}

// NewGroups returns a registry containing only the "all" group.
func NewGroups() *Groups {
	return &Groups{names: []string{"all"}}
}

// Add registers a new group and returns its bit.
func (g *Groups) Add(name string) (int32, error) {
	if name == "" {
		return 0, fmt.Errorf("Groups must have non-empty names.")
	}
	for _, n := range g.names {
		if n == name {
			return 0, fmt.Errorf("The group '%s' already exists.", name)
		}
	}
	if len(g.names) == MaxGroups {
		return 0, fmt.Errorf("Cannot create group '%s': there are already "+
			"%d groups, the maximum.", name, MaxGroups)
	}

	g.names = append(g.names, name)
	return int32(1) << uint(len(g.names)-1), nil
}

// Bit returns the bit of the named group.
func (g *Groups) Bit(name string) (int32, error) {
	for i, n := range g.names {
		if n == name {
			return int32(1) << uint(i), nil
		}
	}
	return 0, fmt.Errorf("The group '%s' does not exist.", name)
}

// Names returns the names of all groups in bit order.
func (g *Groups) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// AssignBlock adds every particle inside the block [lo, hi) to the named
// group, creating the group if needed. It returns the number of particles
// which were added.
func (g *Groups) AssignBlock(
	p *Local, name string, lo, hi [3]float64,
) (int, error) {
	bit, err := g.Bit(name)
	if err != nil {
		if bit, err = g.Add(name); err != nil {
			return 0, err
		}
	}

	n := 0
	for i := range p.X {
		inside := true
		for dim := 0; dim < 3; dim++ {
			if p.X[i][dim] < lo[dim] || p.X[i][dim] >= hi[dim] {
				inside = false
				break
			}
		}
		if inside {
			p.Mask[i] |= bit
			n++
		}
	}
	return n, nil
}
