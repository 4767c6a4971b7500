package simulation

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
	"go.uber.org/zap/zapcore"
)

// ErrInvariant reports an agent found too fast or outside its containment box.
var ErrInvariant = errors.New("flock invariant violated")

// speedSlack absorbs floating point noise on the speed cap.
const speedSlack = 1e-9

// BuildSchools creates one independent flock per species.
// Each species draws from its own PCG stream, so adding a species
// never changes where the others spawn.
func BuildSchools(cfg *Config) []*behavior.Flock {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	schools := make([]*behavior.Flock, 0, len(cfg.Species))
	for i, sp := range cfg.Species {
		rng := rand.New(rand.NewPCG(seed, uint64(i)))
		f := behavior.NewFlock(sp.Name, sp.Count, cfg.Bounds(), sp.Params(), rng)
		f.Workers = cfg.Workers
		schools = append(schools, f)
	}
	return schools
}

// CheckInvariants verifies the speed cap and the containment box of every agent.
func CheckInvariants(f *behavior.Flock) error {
	for i := range f.Agents {
		a := &f.Agents[i]
		if !a.Position.IsFinite() || !a.Velocity.IsFinite() {
			return fmt.Errorf("%w: %s[%d] has a non finite state %s %s", ErrInvariant, f.Name, i, a.Position, a.Velocity)
		}
		if speed := a.Velocity.Len(); speed > a.MaxSpeed+speedSlack {
			return fmt.Errorf("%w: %s[%d] speed %.6f exceeds %.6f", ErrInvariant, f.Name, i, speed, a.MaxSpeed)
		}
		lo, hi := a.ContainmentBox()
		p := a.Position
		if p.X < lo.X || p.Y < lo.Y || p.Z < lo.Z || p.X > hi.X || p.Y > hi.Y || p.Z > hi.Z {
			return fmt.Errorf("%w: %s[%d] at %s is outside %s..%s", ErrInvariant, f.Name, i, p, lo, hi)
		}
	}
	return nil
}

// FlockStats summarises one school for logs and the HUD.
type FlockStats struct {
	Species   string
	Count     int
	MeanSpeed float64
	TopSpeed  float64
	Centroid  geometry.Vector3
	Spread    float64 // mean distance to the centroid
}

// Measure computes statistics from positions and velocities.
func Measure(species string, agents []behavior.Agent) FlockStats {
	s := FlockStats{Species: species, Count: len(agents)}
	if len(agents) == 0 {
		return s
	}
	for i := range agents {
		speed := agents[i].Velocity.Len()
		s.MeanSpeed += speed
		s.TopSpeed = math.Max(s.TopSpeed, speed)
		s.Centroid = s.Centroid.Add(agents[i].Position)
	}
	n := float64(len(agents))
	s.MeanSpeed /= n
	s.Centroid = s.Centroid.Div(n)
	for i := range agents {
		s.Spread += agents[i].Position.DistanceTo(s.Centroid)
	}
	s.Spread /= n
	return s
}

// MeasureSnapshot computes the same statistics from a wire snapshot.
func MeasureSnapshot(snap *pb.FlockSnapshot) FlockStats {
	agents := make([]behavior.Agent, len(snap.GetBoids()))
	for i, b := range snap.GetBoids() {
		UpdateFromProto(&agents[i], b)
	}
	return Measure(snap.GetSpecies(), agents)
}

// MarshalLogObject lets the stats be logged with zap.Object.
func (s FlockStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("species", s.Species)
	enc.AddInt("count", s.Count)
	enc.AddFloat64("meanSpeed", round3(s.MeanSpeed))
	enc.AddFloat64("topSpeed", round3(s.TopSpeed))
	enc.AddString("centroid", s.Centroid.String())
	enc.AddFloat64("spread", round3(s.Spread))
	return nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Extents is a drawable that only records the region an agent has visited.
type Extents struct {
	Min, Max geometry.Vector3
	seen     bool
}

// SetTransform implements behavior.Drawable.
func (e *Extents) SetTransform(position geometry.Vector3, _ geometry.Quaternion) {
	if !e.seen {
		e.Min, e.Max, e.seen = position, position, true
		return
	}
	e.Min = geometry.Vector3{X: math.Min(e.Min.X, position.X), Y: math.Min(e.Min.Y, position.Y), Z: math.Min(e.Min.Z, position.Z)}
	e.Max = geometry.Vector3{X: math.Max(e.Max.X, position.X), Y: math.Max(e.Max.Y, position.Y), Z: math.Max(e.Max.Z, position.Z)}
}

// NewExtentTrackers returns n trackers, both typed and as drawables for Flock.Present.
func NewExtentTrackers(n int) ([]*Extents, []behavior.Drawable) {
	trackers := make([]*Extents, n)
	handles := make([]behavior.Drawable, n)
	for i := range trackers {
		trackers[i] = &Extents{}
		handles[i] = trackers[i]
	}
	return trackers, handles
}

// Reach merges the trackers into the overall region visited by the school.
func Reach(trackers []*Extents) (lo, hi geometry.Vector3) {
	first := true
	for _, t := range trackers {
		if !t.seen {
			continue
		}
		if first {
			lo, hi, first = t.Min, t.Max, false
			continue
		}
		lo = geometry.Vector3{X: math.Min(lo.X, t.Min.X), Y: math.Min(lo.Y, t.Min.Y), Z: math.Min(lo.Z, t.Min.Z)}
		hi = geometry.Vector3{X: math.Max(hi.X, t.Max.X), Y: math.Max(hi.Y, t.Max.Y), Z: math.Max(hi.Z, t.Max.Z)}
	}
	return lo, hi
}
