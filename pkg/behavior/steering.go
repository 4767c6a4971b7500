package behavior

import "github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"

// Each steering rule returns a desired correction to the velocity, capped at MaxForce.
// Neighbor scans take the whole flock plus the index of the agent itself:
// identity is a slot in the arena, never a pointer comparison.

// Seek steers toward target at full speed.
// It returns the zero vector when the agent already sits on target.
func (a *Agent) Seek(target geometry.Vector3) geometry.Vector3 {
	offset := target.Sub(a.Position)
	if offset.IsZero() {
		return geometry.Zero
	}
	desired := offset.Normalize().Mul(a.MaxSpeed)
	return desired.Sub(a.Velocity).ClampLen(a.MaxForce)
}

// Separation steers away from neighbors that come closer than
// SeparationBase plus both radii. Nearer neighbors push harder (1/distance).
func (a *Agent) Separation(flock []Agent, self int) geometry.Vector3 {
	desired := SeparationBase + a.Radius
	var steer geometry.Vector3
	count := 0

	for i := range flock {
		if i == self {
			continue
		}
		other := &flock[i]
		d := a.Position.DistanceTo(other.Position)
		if d >= desired+other.Radius {
			continue
		}
		count++
		if d == 0 {
			// coincident: no direction to flee, counts but adds nothing
			continue
		}
		steer = steer.Add(a.Position.Sub(other.Position).Normalize().Div(d))
	}

	if count > 0 {
		steer = steer.Div(float64(count))
	}
	if steer.IsZero() {
		return geometry.Zero
	}
	return steer.SetLen(a.MaxSpeed).Sub(a.Velocity).ClampLen(a.MaxForce)
}

// Alignment steers toward the average heading of neighbors within NeighborDistance.
func (a *Agent) Alignment(flock []Agent, self int) geometry.Vector3 {
	var sum geometry.Vector3
	count := 0

	for i := range flock {
		if i == self || a.Position.DistanceTo(flock[i].Position) >= NeighborDistance {
			continue
		}
		sum = sum.Add(flock[i].Velocity)
		count++
	}

	if count == 0 {
		return geometry.Zero
	}
	desired := sum.Div(float64(count)).SetLen(a.MaxSpeed)
	return desired.Sub(a.Velocity).ClampLen(a.MaxForce)
}

// Cohesion seeks the centroid of neighbors within NeighborDistance.
func (a *Agent) Cohesion(flock []Agent, self int) geometry.Vector3 {
	var sum geometry.Vector3
	count := 0

	for i := range flock {
		if i == self || a.Position.DistanceTo(flock[i].Position) >= NeighborDistance {
			continue
		}
		sum = sum.Add(flock[i].Position)
		count++
	}

	if count == 0 {
		return geometry.Zero
	}
	return a.Seek(sum.Div(float64(count)))
}

// Flock accumulates the three weighted rules into the acceleration,
// each one as its own force.
func (a *Agent) Flock(flock []Agent, self int) {
	sep := a.Separation(flock, self).Mul(SeparationWeight)
	ali := a.Alignment(flock, self).Mul(AlignmentWeight)
	coh := a.Cohesion(flock, self).Mul(CohesionWeight)

	a.ApplyForce(sep)
	a.ApplyForce(ali)
	a.ApplyForce(coh)
}
