package wall

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// VariablePrefix marks a wall position which is read from a variable.
const VariablePrefix = "v_"

var wallKeywords = map[string]struct {
	axis Axis
	side Side
}{
	"xlo": {X, Low}, "xhi": {X, High},
	"ylo": {Y, Low}, "yhi": {Y, High},
	"zlo": {Z, Low}, "zhi": {Z, High},
}

// New parses a list of wall declarations and creates a WallSet. args has the
// form
//
//   face pos [face pos ...] [units box|lattice] [v0 vx vy vz] [v1 vx vy vz]
//
// where face is one of xlo, xhi, ylo, yhi, zlo, zhi and pos is EDGE, a
// number, or v_<name>. Units default to lattice, in which case scale must be
// non-nil. Constant coordinates and both wall velocities are multiplied by
// the lattice spacing of their axis. Edge coordinates are read from domain
// and are never scaled.
//
// Every error returned by New wraps ErrConfiguration.
func New(args []string, domain Domain, scale Scaler) (*WallSet, error) {
	ws := &WallSet{Workers: 1, log: zerolog.Nop()}
	lattice := true

	for i := 0; i < len(args); {
		switch arg := args[i]; arg {
		case "xlo", "xhi", "ylo", "yhi", "zlo", "zhi":
			if i+2 > len(args) {
				return nil, configErrorf(i, "'%s' requires a position.", arg)
			}
			kw := wallKeywords[arg]
			for m := 0; m < ws.n; m++ {
				if ws.walls[m].Axis == kw.axis && ws.walls[m].Side == kw.side {
					return nil, configErrorf(i, "Wall %s defined twice.", arg)
				}
			}

			w := Wall{Axis: kw.axis, Side: kw.side}
			pos := args[i+1]
			switch {
			case pos == "EDGE":
				w.Mode = Edge
				if kw.side == Low {
					w.Coord = domain.Lo(int(kw.axis))
				} else {
					w.Coord = domain.Hi(int(kw.axis))
				}
			case strings.HasPrefix(pos, VariablePrefix):
				w.Mode = Variable
				w.VarName = pos[len(VariablePrefix):]
				if w.VarName == "" {
					return nil, configErrorf(i+1, "Wall %s has an empty "+
						"variable name.", arg)
				}
			default:
				x, err := parseNumber(pos)
				if err != nil {
					return nil, configErrorf(i+1, "The position of wall %s, "+
						"'%s', is not EDGE, a variable, or a number.", arg, pos)
				}
				w.Mode = Constant
				w.Coord = x
			}

			ws.walls[ws.n] = w
			ws.n++
			i += 2

		case "units":
			if i+2 > len(args) {
				return nil, configErrorf(i, "'units' requires a value.")
			}
			switch args[i+1] {
			case "box":
				lattice = false
			case "lattice":
				lattice = true
			default:
				return nil, configErrorf(i+1, "Units must be 'box' or "+
					"'lattice', not '%s'.", args[i+1])
			}
			i += 2

		case "v0", "v1":
			if i+4 > len(args) {
				return nil, configErrorf(i, "'%s' requires three components.",
					arg)
			}
			v := &ws.V0
			if arg == "v1" {
				v = &ws.V1
			}
			for dim := 0; dim < 3; dim++ {
				x, err := parseNumber(args[i+1+dim])
				if err != nil {
					return nil, configErrorf(i+1+dim, "Component %d of %s, "+
						"'%s', is not a number.", dim, arg, args[i+1+dim])
				}
				v[dim] = x
			}
			i += 4

		default:
			return nil, configErrorf(i, "Unrecognized keyword '%s'.", arg)
		}
	}

	if ws.n == 0 {
		return nil, configErrorf(-1, "No walls were declared.")
	}

	for m := 0; m < ws.n; m++ {
		w := &ws.walls[m]
		if w.Axis == Z && domain.Dimension() == 2 {
			return nil, configErrorf(-1, "Cannot use wall %s for a 2d "+
				"simulation.", w.Name())
		}
		if domain.Periodic(int(w.Axis)) {
			return nil, configErrorf(-1, "Cannot use wall %s in periodic "+
				"dimension.", w.Name())
		}
	}

	if lattice {
		if scale == nil {
			return nil, configErrorf(-1, "Lattice units were requested, "+
				"but no lattice is defined. Use 'units box' instead.")
		}
		for dim := 0; dim < 3; dim++ {
			ws.Scale[dim] = scale.Spacing(dim)
		}
	} else {
		ws.Scale = [3]float64{1, 1, 1}
	}

	for dim := 0; dim < 3; dim++ {
		ws.V0[dim] *= ws.Scale[dim]
		ws.V1[dim] *= ws.Scale[dim]
	}

	for m := 0; m < ws.n; m++ {
		w := &ws.walls[m]
		switch w.Mode {
		case Constant:
			w.Coord *= ws.Scale[w.Axis]
		case Variable:
			ws.HasVariableWalls = true
		}
	}

	return ws, nil
}

// Parse splits a declaration string on whitespace and calls New.
func Parse(decl string, domain Domain, scale Scaler) (*WallSet, error) {
	return New(strings.Fields(decl), domain, scale)
}

// parseNumber parses a finite float.
func parseNumber(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	} else if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, strconv.ErrRange
	}
	return x, nil
}
