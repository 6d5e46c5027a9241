package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phil-mansfield/mirror/lib/eq"
)

func TestExampleConfig(t *testing.T) {
	for _, f := range []Format{INI, TOML} {
		cfg, err := LoadString(ExampleConfig(f), f)
		if err != nil {
			t.Fatalf("%d) Got error %s.", f, err.Error())
		}

		if cfg.Box.Periodic != "p p f" || cfg.Box.Dimension != 3 {
			t.Errorf("%d) Expected box 'p p f' with dimension 3, got %+v.",
				f, cfg.Box)
		}
		if cfg.Walls.Args != "zlo EDGE zhi v_piston units box" {
			t.Errorf("%d) Got walls args '%s'.", f, cfg.Walls.Args)
		}
		v, ok := cfg.Variable["piston"]
		if !ok || v.Style != "swiggle" || v.Args != "9.0 0.5 2.0" {
			t.Errorf("%d) Got variables %v.", f, cfg.Variable)
		}
		if !eq.Strings(cfg.GroupNames(), []string{"bottom"}) {
			t.Errorf("%d) Expected groups [bottom], got %v.",
				f, cfg.GroupNames())
		}
		if cfg.Run.Steps != 1000 || cfg.Run.Dt != 0.005 ||
			cfg.Run.Threads != -1 || cfg.Run.ThermoEvery != 100 {
			t.Errorf("%d) Got run section %+v.", f, cfg.Run)
		}

		steps, err := cfg.Run.OutputSet()
		if err != nil {
			t.Errorf("%d) Got error %s.", f, err.Error())
		} else if !steps.Contains(0) || !steps.Contains(500) ||
			!steps.Contains(1000) || steps.Contains(1) || len(steps) != 3 {
			t.Errorf("%d) Got %d output steps.", f, len(steps))
		}
	}
}

func TestDefaults(t *testing.T) {
	text := `[walls]
Args = xlo 0.5 units box

[run]
Particles = p.txt
`
	cfg, err := LoadString(text, INI)
	if err != nil {
		t.Fatalf("Got error %s.", err.Error())
	}
	def := Default()
	if cfg.Box != def.Box || cfg.Lattice != def.Lattice {
		t.Errorf("Expected default box and lattice, got %+v and %+v.",
			cfg.Box, cfg.Lattice)
	}
	if cfg.Walls.Group != "all" || cfg.Run.Mass != 1 || cfg.Run.Threads != -1 {
		t.Errorf("Expected defaults to be kept, got %+v and %+v.",
			cfg.Walls, cfg.Run)
	}
	steps, err := cfg.Run.OutputSet()
	if err != nil || len(steps) != 0 {
		t.Errorf("Expected no output steps, got %v, %v.", steps, err)
	}
}

func TestValidateErrors(t *testing.T) {
	base := func() *Config {
		cfg := Default()
		cfg.Walls.Args = "xlo 0.5 units box"
		cfg.Run.Particles = "p.txt"
		return cfg
	}

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"box vector", func(c *Config) { c.Box.Lo = "0 0" }},
		{"box number", func(c *Config) { c.Box.Hi = "1 x 1" }},
		{"periodic", func(c *Config) { c.Box.Periodic = "p q f" }},
		{"dimension", func(c *Config) { c.Box.Dimension = 4 }},
		{"lattice", func(c *Config) { c.Lattice.Style = "hcp" }},
		{"no walls", func(c *Config) { c.Walls.Args = "  " }},
		{"bad walls", func(c *Config) { c.Walls.Args = "xlo" }},
		{"periodic wall", func(c *Config) {
			c.Box.Periodic = "p f f"
		}},
		{"group", func(c *Config) { c.Walls.Group = "" }},
		{"rigid", func(c *Config) { c.Walls.RigidBodies = -1 }},
		{"variable", func(c *Config) {
			c.Variable = map[string]*VariableConfig{
				"a": {Style: "swiggle", Args: "1 2"},
			}
		}},
		{"group block", func(c *Config) {
			c.Group = map[string]*GroupConfig{"a": {Lo: "0 0 0", Hi: "1"}}
		}},
		{"steps", func(c *Config) { c.Run.Steps = -1 }},
		{"dt", func(c *Config) { c.Run.Dt = 0 }},
		{"mass", func(c *Config) { c.Run.Mass = -1 }},
		{"threads", func(c *Config) { c.Run.Threads = 0 }},
		{"particles", func(c *Config) { c.Run.Particles = "" }},
		{"both particles", func(c *Config) { c.Run.RandomParticles = 10 }},
		{"random particles", func(c *Config) {
			c.Run.Particles, c.Run.RandomParticles = "", -10
		}},
		{"temperature", func(c *Config) { c.Run.Temperature = -1 }},
		{"thermo", func(c *Config) { c.Run.ThermoEvery = -5 }},
		{"output", func(c *Config) { c.Run.Output = "snap_{%s,step}" }},
		{"output steps", func(c *Config) {
			c.Run.Output = "snap_{%d,step}"
			c.Run.OutputSteps = "0..10 +"
		}},
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("Base config failed validation: %s", err.Error())
	}

	for i := range tests {
		cfg := base()
		tests[i].modify(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%d) Expected '%s' to fail validation.", i, tests[i].name)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []Format{INI, TOML} {
		fname := filepath.Join(dir, "mirror.config")
		if f == TOML {
			fname = filepath.Join(dir, "mirror.TOML")
		}
		if FormatOf(fname) != f {
			t.Errorf("%d) Expected %s to have format %d.", f, fname, f)
		}

		err := os.WriteFile(fname, []byte(ExampleConfig(f)), 0644)
		if err != nil {
			t.Fatalf("%d) Got error %s.", f, err.Error())
		}
		if _, err := Load(fname); err != nil {
			t.Errorf("%d) Got error %s.", f, err.Error())
		}
	}

	_, err := Load(filepath.Join(dir, "missing.config"))
	if err == nil {
		t.Errorf("Expected an error for a missing file.")
	}

	bad := filepath.Join(dir, "bad.config")
	os.WriteFile(bad, []byte("[walls]\nArgs = xlo 0.5\nNotAVariable = 3\n"), 0644)
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("Expected an error naming %s, got %v.", bad, err)
	}
}

func TestParseVector(t *testing.T) {
	v, err := ParseVector(" 1  -2.5\t3e2 ")
	if err != nil || v != [3]float64{1, -2.5, 300} {
		t.Errorf("Expected [1 -2.5 300], got %v, %v.", v, err)
	}
	p, err := ParsePeriodic("f p p")
	if err != nil || p != [3]bool{false, true, true} {
		t.Errorf("Expected [false true true], got %v, %v.", p, err)
	}
}
