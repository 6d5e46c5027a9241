/*package variable is a small store of named, time-dependent variables. Equal
style variables evaluate to a single scalar per step and can drive wall
positions. Atom style variables have one value per particle; they can be
defined and looked up, but not evaluated as scalars.

Values are cached for the duration of a step. Callers which need fresh values
must call ClearStep before evaluating, and can record the next step at which
a value is needed with AddStep.*/
package variable

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the evaluation style of a variable.
type Kind int

const (
	// Equal variables produce one scalar per step.
	Equal Kind = iota
	// Atom variables produce one value per particle.
	Atom
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Atom:
		return "atom"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Clock is the time information equal-style variables are evaluated against.
type Clock struct {
	Step, BeginStep, EndStep int64
	Dt                       float64
}

// Elapsed returns the simulation time elapsed since BeginStep.
func (c Clock) Elapsed() float64 {
	return float64(c.Step-c.BeginStep) * c.Dt
}

// Func is a Go function which can back an equal-style variable.
type Func func(c Clock) (float64, error)

type variable struct {
	name   string
	kind   Kind
	style  string
	f      Func
	cached bool
	value  float64
	evals  int
}

// Store holds named variables and the clock they are evaluated against.
// A Store is not safe for concurrent use.
type Store struct {
	vars     []*variable
	index    map[string]int
	clock    Clock
	nextStep int64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{index: map[string]int{}, nextStep: -1}
}

// Define creates a variable from a style name and its arguments. Supported
// equal styles are:
//
//   constant v         - v
//   ramp a b           - linear from a at BeginStep to b at EndStep
//   swiggle x0 A T     - x0 + A sin(2 pi t / T)
//   cwiggle x0 A T     - x0 + A (1 - cos(2 pi t / T))
//   vdisplace x0 v     - x0 + v t
//
// where t is the time elapsed since BeginStep. The "atom" style takes any
// arguments and creates a per-particle variable.
func (s *Store) Define(name, style string, args []string) error {
	if style == "atom" {
		return s.add(name, Atom, style, nil)
	}

	nArgs, ok := styleArgs[style]
	if !ok {
		return fmt.Errorf("The variable '%s' has the unrecognized style "+
			"'%s'.", name, style)
	} else if len(args) != nArgs {
		return fmt.Errorf("The variable '%s' has style '%s', which takes %d "+
			"arguments, but %d were given.", name, style, nArgs, len(args))
	}

	p := make([]float64, len(args))
	for i := range args {
		var err error
		p[i], err = strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("Argument %d of variable '%s', '%s', is not a "+
				"number.", i+1, name, args[i])
		}
	}

	var f Func
	switch style {
	case "constant":
		f = func(c Clock) (float64, error) { return p[0], nil }
	case "ramp":
		f = func(c Clock) (float64, error) {
			if c.EndStep == c.BeginStep {
				return 0, fmt.Errorf("ramp() in variable '%s' was "+
					"evaluated outside of a run.", name)
			}
			frac := float64(c.Step-c.BeginStep) /
				float64(c.EndStep-c.BeginStep)
			return p[0] + (p[1]-p[0])*frac, nil
		}
	case "swiggle", "cwiggle":
		if p[2] <= 0 {
			return fmt.Errorf("The period of variable '%s' is %g, but it "+
				"must be positive.", name, p[2])
		}
		cos := style == "cwiggle"
		f = func(c Clock) (float64, error) {
			omega := 2 * math.Pi / p[2]
			if cos {
				return p[0] + p[1]*(1-math.Cos(omega*c.Elapsed())), nil
			}
			return p[0] + p[1]*math.Sin(omega*c.Elapsed()), nil
		}
	case "vdisplace":
		f = func(c Clock) (float64, error) {
			return p[0] + p[1]*c.Elapsed(), nil
		}
	}

	return s.add(name, Equal, style, f)
}

var styleArgs = map[string]int{
	"constant":  1,
	"ramp":      2,
	"swiggle":   3,
	"cwiggle":   3,
	"vdisplace": 2,
}

// DefineFunc creates an equal-style variable backed by f.
func (s *Store) DefineFunc(name string, f Func) error {
	return s.add(name, Equal, "func", f)
}

func (s *Store) add(name string, kind Kind, style string, f Func) error {
	if name == "" {
		return fmt.Errorf("Variables must have non-empty names.")
	} else if _, ok := s.index[name]; ok {
		return fmt.Errorf("The variable '%s' is defined more than once.", name)
	}
	s.index[name] = len(s.vars)
	s.vars = append(s.vars, &variable{name: name, kind: kind, style: style, f: f})
	return nil
}

// Find returns the handle of the named variable and true, or false if there
// is no such variable.
func (s *Store) Find(name string) (int, bool) {
	h, ok := s.index[name]
	return h, ok
}

// IsEqualStyle returns true if the variable with handle h produces a single
// scalar per step.
func (s *Store) IsEqualStyle(h int) bool {
	return h >= 0 && h < len(s.vars) && s.vars[h].kind == Equal
}

// Kind returns the Kind of the variable with handle h.
func (s *Store) Kind(h int) Kind { return s.vars[h].kind }

// Name returns the name of the variable with handle h.
func (s *Store) Name(h int) string { return s.vars[h].name }

// ComputeEqual evaluates the equal-style variable with handle h at the
// current step. The value is cached until the next ClearStep.
func (s *Store) ComputeEqual(h int) (float64, error) {
	if h < 0 || h >= len(s.vars) {
		return 0, fmt.Errorf("Variable handle %d is out of range.", h)
	}
	v := s.vars[h]
	if v.kind != Equal {
		return 0, fmt.Errorf("The variable '%s' is %s-style and cannot be "+
			"evaluated as a scalar.", v.name, v.kind)
	}
	if v.cached {
		return v.value, nil
	}

	x, err := v.f(s.clock)
	if err != nil {
		return 0, err
	}
	v.value, v.cached = x, true
	v.evals++
	return x, nil
}

// Evaluations returns the number of times the variable with handle h has
// actually been computed (cache hits are not counted).
func (s *Store) Evaluations(h int) int { return s.vars[h].evals }

// ClearStep invalidates every cached value.
func (s *Store) ClearStep() {
	for _, v := range s.vars {
		v.cached = false
	}
}

// AddStep records that variable values will be needed again at step.
func (s *Store) AddStep(step int64) {
	if s.nextStep < 0 || step < s.nextStep || s.nextStep <= s.clock.Step {
		s.nextStep = step
	}
}

// NextStep returns the earliest step requested through AddStep which has not
// yet been reached, or -1 if there is none.
func (s *Store) NextStep() int64 {
	if s.nextStep <= s.clock.Step {
		return -1
	}
	return s.nextStep
}

// SetRun sets the step range and timestep of the current run and moves the
// clock to beginStep.
func (s *Store) SetRun(beginStep, endStep int64, dt float64) {
	s.clock = Clock{beginStep, beginStep, endStep, dt}
	s.nextStep = -1
	s.ClearStep()
}

// SetStep moves the clock to step. Cached values are invalidated if the step
// changes.
func (s *Store) SetStep(step int64) {
	if step != s.clock.Step {
		s.ClearStep()
	}
	s.clock.Step = step
}

// Clock returns the current clock.
func (s *Store) Clock() Clock { return s.clock }
