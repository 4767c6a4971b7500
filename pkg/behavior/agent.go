package behavior

import (
	"math"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
)

// Steering and containment constants. They set how tight a school looks on
// screen and must not be tuned per species.
const (
	SeparationBase   = 4.0  // minimum gap kept between two agents, before radii
	NeighborDistance = 50.0 // alignment and cohesion perception range

	SeparationWeight = 1.5
	AlignmentWeight  = 1.0
	CohesionWeight   = 1.0

	WallMargin     = 3.0 // distance kept from every wall, before radius
	FloorClearance = 3.0 // extra clearance above the tank floor
	BoundaryForce  = 0.2 // velocity nudge applied when crossing a margin

	TurnSpeedThreshold = 0.01 // below this speed orientation is frozen
	TurnRate           = 0.1  // slerp factor toward the heading, per tick

	RadiusPerScale = 2.0
)

// Spawn constants.
const (
	SpawnMargin   = 8.0
	SpawnLift     = 2.0
	InitialSpread = 0.1
)

// Default behavioural parameters of an agent with no species override.
const (
	DefaultMaxSpeed = 1.0
	DefaultMaxForce = 0.1
	DefaultScale    = 0.3
)

// Forward is the axis a model faces before any rotation.
var Forward = geometry.Vector3{X: 0, Y: 0, Z: 1}

// Random is the source used to spawn agents. *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
}

// Params are the per-species behavioural overrides.
type Params struct {
	MaxSpeed float64
	MaxForce float64
	Scale    float64 // visual scale factor, radius = Scale * RadiusPerScale
}

// DefaultParams returns the parameters used when a species does not override them.
func DefaultParams() Params {
	return Params{MaxSpeed: DefaultMaxSpeed, MaxForce: DefaultMaxForce, Scale: DefaultScale}
}

// Agent holds the kinematic and behavioural state of one boid.
// It owns no rendering resource: a Drawable is fed from it after each tick.
type Agent struct {
	Position     geometry.Vector3
	Velocity     geometry.Vector3
	Acceleration geometry.Vector3
	Orientation  geometry.Quaternion

	MaxSpeed float64
	MaxForce float64
	Radius   float64

	// Bounds are the full extents (width, height, depth) of the tank,
	// centered on the origin.
	Bounds geometry.Vector3
}

// NewAgent creates an agent at a random position inside bounds with a small random velocity.
func NewAgent(bounds geometry.Vector3, p Params, rng Random) Agent {
	spread := func(extent float64) float64 {
		return (rng.Float64() - 0.5) * (extent - SpawnMargin)
	}
	a := Agent{
		Position: geometry.Vector3{
			X: spread(bounds.X),
			Y: spread(bounds.Y) + SpawnLift,
			Z: spread(bounds.Z),
		},
		Velocity: geometry.Vector3{
			X: (rng.Float64() - 0.5) * InitialSpread,
			Y: (rng.Float64() - 0.5) * InitialSpread,
			Z: (rng.Float64() - 0.5) * InitialSpread,
		},
		Orientation: geometry.Identity,
		MaxSpeed:    p.MaxSpeed,
		MaxForce:    p.MaxForce,
		Radius:      p.Scale * RadiusPerScale,
		Bounds:      bounds,
	}
	a.Position = a.Position.Clamp(a.ContainmentBox())
	return a
}

// ApplyForce accumulates a steering force into the acceleration of this tick.
func (a *Agent) ApplyForce(force geometry.Vector3) {
	a.Acceleration = a.Acceleration.Add(force)
}

// Integrate consumes the accumulated acceleration:
// velocity += acceleration, capped to MaxSpeed, then position += velocity.
func (a *Agent) Integrate() {
	a.Velocity = a.Velocity.Add(a.Acceleration).ClampLen(a.MaxSpeed)
	a.Position = a.Position.Add(a.Velocity)
	a.Acceleration = geometry.Zero
}

// ContainmentBox returns the lowest and highest position the agent may occupy.
// The floor keeps an extra FloorClearance.
func (a *Agent) ContainmentBox() (lo, hi geometry.Vector3) {
	margin := WallMargin + a.Radius
	half := a.Bounds.Mul(0.5)
	lo = geometry.Vector3{X: -half.X + margin, Y: -half.Y + margin + FloorClearance, Z: -half.Z + margin}
	hi = geometry.Vector3{X: half.X - margin, Y: half.Y - margin, Z: half.Z - margin}
	return lo, hi
}

// Contain keeps the agent inside its tank. On each axis a crossed margin nudges
// the velocity back inward and forbids it from pointing outward, then the position
// itself is clamped so a large step can never leave the tank.
func (a *Agent) Contain() {
	lo, hi := a.ContainmentBox()

	a.Velocity.X = nudge(a.Position.X, a.Velocity.X, lo.X, hi.X)
	a.Velocity.Y = nudge(a.Position.Y, a.Velocity.Y, lo.Y, hi.Y)
	a.Velocity.Z = nudge(a.Position.Z, a.Velocity.Z, lo.Z, hi.Z)
	// the nudge can push a component past the speed cap
	a.Velocity = a.Velocity.ClampLen(a.MaxSpeed)

	a.Position = a.Position.Clamp(lo, hi)
}

func nudge(pos, vel, lo, hi float64) float64 {
	switch {
	case pos < lo:
		return math.Max(vel+BoundaryForce, 0)
	case pos > hi:
		return math.Min(vel-BoundaryForce, 0)
	default:
		return vel
	}
}

// Turn blends the orientation toward the current heading.
// Nearly motionless agents keep their orientation to avoid jitter.
func (a *Agent) Turn() {
	if a.Velocity.Len() <= TurnSpeedThreshold {
		return
	}
	target := geometry.QuaternionFromUnitVectors(Forward, a.Velocity.Normalize())
	a.Orientation = a.Orientation.Slerp(target, TurnRate)
}

// Update runs the integrate and contain phases of a tick and refreshes the orientation.
func (a *Agent) Update() {
	a.Integrate()
	a.Contain()
	a.Turn()
}

// Heading returns the direction the agent visually faces.
func (a *Agent) Heading() geometry.Vector3 {
	return a.Orientation.Rotate(Forward)
}
