package behavior

import (
	"runtime"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// Drawable is the rendering side of an agent, owned by the host application.
// A Flock copies position and orientation onto it after every tick.
type Drawable interface {
	SetTransform(position geometry.Vector3, orientation geometry.Quaternion)
}

// parallelThreshold is the flock size under which the force phase always runs serially.
const parallelThreshold = 64

// Flock is an arena of agents steering against each other. Agents of different
// flocks never interact.
type Flock struct {
	Name   string
	Agents []Agent

	// Workers bounds the goroutines computing the force phase.
	// 0 or 1 runs it on the calling goroutine, a negative value uses GOMAXPROCS.
	Workers int

	frame    uint64
	previous []Agent
	forces   []geometry.Vector3
}

// NewFlock spawns count agents with the given parameters inside bounds.
func NewFlock(name string, count int, bounds geometry.Vector3, p Params, rng Random) *Flock {
	f := &Flock{Name: name, Agents: make([]Agent, count)}
	for i := range f.Agents {
		f.Agents[i] = NewAgent(bounds, p, rng)
	}
	return f
}

// Len returns the number of agents.
func (f *Flock) Len() int {
	return len(f.Agents)
}

// Frame returns the number of ticks already run.
func (f *Flock) Frame() uint64 {
	return f.frame
}

// Step advances every agent by one tick.
//
// The force phase reads a snapshot of the pre-tick state only, then the integrate
// phase moves every agent. No agent ever sees a neighbor that already moved during
// the same tick.
func (f *Flock) Step() {
	n := len(f.Agents)
	if cap(f.previous) < n {
		f.previous = make([]Agent, n)
		f.forces = make([]geometry.Vector3, n)
	}
	f.previous = f.previous[:n]
	f.forces = f.forces[:n]
	copy(f.previous, f.Agents)

	f.computeForces()

	for i := range f.Agents {
		a := &f.Agents[i]
		a.Acceleration = f.forces[i]
		a.Update()
	}
	f.frame++
}

func (f *Flock) computeForces() {
	workers := f.Workers
	if workers < 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(f.previous)
	if workers <= 1 || n < parallelThreshold {
		for i := 0; i < n; i++ {
			f.forces[i] = f.force(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				f.forces[i] = f.force(i)
			}
			return nil
		})
	}
	// barrier: integration must not start before every force is known
	_ = g.Wait()
}

// force computes the acceleration of agent i from the snapshot, without touching it.
func (f *Flock) force(i int) geometry.Vector3 {
	a := f.previous[i]
	a.Acceleration = geometry.Zero
	a.Flock(f.previous, i)
	return a.Acceleration
}

// Present copies each agent's transform onto the matching handle.
// Missing or nil handles are skipped.
func (f *Flock) Present(handles []Drawable) {
	for i := range f.Agents {
		if i >= len(handles) {
			return
		}
		if handles[i] == nil {
			continue
		}
		handles[i].SetTransform(f.Agents[i].Position, f.Agents[i].Orientation)
	}
}

// Snapshot returns a copy of the agents, safe to keep across ticks.
func (f *Flock) Snapshot() []Agent {
	out := make([]Agent, len(f.Agents))
	copy(out, f.Agents)
	return out
}
