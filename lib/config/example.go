package config

// ExampleConfig returns a documented config file in the given format which
// can be used as a starting point for new runs.
func ExampleConfig(f Format) string {
	if f == TOML {
		return exampleTOML
	}
	return exampleINI
}

const exampleINI = `[box]
# Corners of the simulation box.
Lo = 0 0 0
Hi = 10 10 10
# Boundary style of each axis: p (periodic) or f (fixed). Walls can only be
# placed on fixed axes.
Periodic = p p f
Dimension = 3

[lattice]
# Style is one of none, sc, bcc, or fcc. Lattice units in [walls] are
# multiples of the lattice spacing.
Style = none
Constant = 1.0
Reduced = false

[walls]
# Each face keyword is followed by EDGE, a number, or v_name, the name of an
# equal-style variable. units box|lattice and v0/v1 are also accepted.
Args = zlo EDGE zhi v_piston units box
Group = all
RigidBodies = 0

# The wall position driven by v_piston.
[variable "piston"]
Style = swiggle
Args = 9.0 0.5 2.0

# Particles inside the block [Lo, Hi) are added to the group.
[group "bottom"]
Lo = 0 0 0
Hi = 10 10 5

[run]
Steps = 1000
Dt = 0.005
Mass = 1.0
# -1 uses every core.
Threads = -1
# Text catalog with columns x y z vx vy vz. Alternatively, set
# RandomParticles, Temperature, and Seed to generate particles.
Particles = particles.txt
Output = out/snap_{%05d,step}.dump
OutputSteps = 0 + 500 + 1000
ThermoEvery = 100
`

const exampleTOML = `[box]
# Corners of the simulation box.
lo = "0 0 0"
hi = "10 10 10"
# Boundary style of each axis: p (periodic) or f (fixed). Walls can only be
# placed on fixed axes.
periodic = "p p f"
dimension = 3

[lattice]
# style is one of none, sc, bcc, or fcc. Lattice units in [walls] are
# multiples of the lattice spacing.
style = "none"
constant = 1.0
reduced = false

[walls]
# Each face keyword is followed by EDGE, a number, or v_name, the name of an
# equal-style variable. units box|lattice and v0/v1 are also accepted.
args = "zlo EDGE zhi v_piston units box"
group = "all"
rigidbodies = 0

# The wall position driven by v_piston.
[variable.piston]
style = "swiggle"
args = "9.0 0.5 2.0"

# Particles inside the block [lo, hi) are added to the group.
[group.bottom]
lo = "0 0 0"
hi = "10 10 5"

[run]
steps = 1000
dt = 0.005
mass = 1.0
# -1 uses every core.
threads = -1
# Text catalog with columns x y z vx vy vz. Alternatively, set
# randomparticles, temperature, and seed to generate particles.
particles = "particles.txt"
output = "out/snap_{%05d,step}.dump"
outputsteps = "0 + 500 + 1000"
thermoevery = 100
`
