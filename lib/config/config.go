/*package config reads the files which describe a mirror run. Config files
may be written either in the INI-like gcfg format or in TOML. The format is
chosen by file extension: ".toml" files are read as TOML and everything else
is read as gcfg.*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/gcfg.v1"
)

// Format identifies the syntax of a config file.
type Format int

const (
	INI Format = iota
	TOML
)

// Config is the full contents of a config file. Vector-valued variables are
// stored as whitespace-separated strings so that both file formats can
// express them the same way.
type Config struct {
	Box      BoxConfig                  `toml:"box"`
	Lattice  LatticeConfig              `toml:"lattice"`
	Walls    WallsConfig                `toml:"walls"`
	Variable map[string]*VariableConfig `toml:"variable"`
	Group    map[string]*GroupConfig    `toml:"group"`
	Run      RunConfig                  `toml:"run"`
}

type BoxConfig struct {
	Lo string `toml:"lo"`
	Hi string `toml:"hi"`

	// Periodic gives the boundary style of each axis, "p" for periodic and
	// "f" for fixed, e.g. "p p f".
	Periodic string `toml:"periodic"`

	Dimension int `toml:"dimension"`
}

type LatticeConfig struct {
	Style    string  `toml:"style"`
	Constant float64 `toml:"constant"`
	Reduced  bool    `toml:"reduced"`
}

type WallsConfig struct {
	// Args is the wall declaration, e.g. "zlo 0.0 zhi v_top units box".
	Args        string `toml:"args"`
	Group       string `toml:"group"`
	RigidBodies int    `toml:"rigidbodies"`
}

type VariableConfig struct {
	Style string `toml:"style"`
	Args  string `toml:"args"`
}

// GroupConfig assigns every particle inside the block [Lo, Hi) to a group.
type GroupConfig struct {
	Lo string `toml:"lo"`
	Hi string `toml:"hi"`
}

type RunConfig struct {
	Steps       int64   `toml:"steps"`
	Dt          float64 `toml:"dt"`
	Mass        float64 `toml:"mass"`
	Threads     int     `toml:"threads"`
	Particles   string  `toml:"particles"`
	Output      string  `toml:"output"`
	OutputSteps string  `toml:"outputsteps"`
	ThermoEvery int64   `toml:"thermoevery"`

	// RandomParticles, Temperature, and Seed generate particles uniformly
	// in the box with Maxwellian velocities instead of reading a catalog.
	RandomParticles int     `toml:"randomparticles"`
	Temperature     float64 `toml:"temperature"`
	Seed            int64   `toml:"seed"`
}

// Default returns a Config with every optional variable set to its default
// value.
func Default() *Config {
	return &Config{
		Box: BoxConfig{
			Lo: "0 0 0", Hi: "1 1 1", Periodic: "f f f", Dimension: 3,
		},
		Lattice: LatticeConfig{Style: "none", Constant: 1},
		Walls:   WallsConfig{Group: "all"},
		Run: RunConfig{
			Dt: 0.005, Mass: 1, Threads: -1, ThermoEvery: 100,
			Temperature: 1, Seed: 1,
		},
	}
}

// FormatOf returns the format a config file is expected to be written in.
func FormatOf(fname string) Format {
	if strings.ToLower(filepath.Ext(fname)) == ".toml" {
		return TOML
	}
	return INI
}

// Load reads the config file fname on top of the default values and
// validates the result.
func Load(fname string) (*Config, error) {
	text, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadString(string(text), FormatOf(fname))
	if err != nil {
		return nil, fmt.Errorf("Could not load config file %s: %w", fname, err)
	}
	return cfg, nil
}

// LoadString parses config text of the given format on top of the default
// values and validates the result.
func LoadString(text string, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case TOML:
		if err := toml.Unmarshal([]byte(text), cfg); err != nil {
			return nil, err
		}
	default:
		if err := gcfg.ReadStringInto(cfg, text); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseVector parses a three-component vector written as whitespace
// separated numbers.
func ParseVector(s string) ([3]float64, error) {
	out := [3]float64{}
	tok := strings.Fields(s)
	if len(tok) != 3 {
		return out, fmt.Errorf("The vector '%s' does not have three components.", s)
	}
	for i := range tok {
		x, err := strconv.ParseFloat(tok[i], 64)
		if err != nil {
			return out, fmt.Errorf("Component %d of the vector '%s' is not a number.", i, s)
		}
		out[i] = x
	}
	return out, nil
}

// ParsePeriodic parses a boundary string of three "p" or "f" tokens.
func ParsePeriodic(s string) ([3]bool, error) {
	out := [3]bool{}
	tok := strings.Fields(s)
	if len(tok) != 3 {
		return out, fmt.Errorf("The boundary '%s' does not have three components.", s)
	}
	for i := range tok {
		switch tok[i] {
		case "p":
			out[i] = true
		case "f":
		default:
			return out, fmt.Errorf("Boundary component %d, '%s', is not 'p' or 'f'.", i, tok[i])
		}
	}
	return out, nil
}
