package simulation

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildSchools(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234
	cfg.Workers = 3

	schools := BuildSchools(cfg)
	require.Len(t, schools, 2)
	for i, f := range schools {
		sp := cfg.Species[i]
		assert.Equal(t, sp.Name, f.Name)
		assert.Equal(t, sp.Count, f.Len())
		assert.Equal(t, 3, f.Workers)
		for _, a := range f.Agents {
			assert.Equal(t, sp.MaxSpeed, a.MaxSpeed)
			assert.Equal(t, sp.MaxForce, a.MaxForce)
			assert.InDelta(t, sp.Radius(), a.Radius, 1e-12)
			assert.Equal(t, cfg.Bounds(), a.Bounds)
		}
		assert.NoError(t, CheckInvariants(f))
	}
}

func TestBuildSchools_SeedIsReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	a, b := BuildSchools(cfg), BuildSchools(cfg)
	for i := range a {
		assert.Equal(t, a[i].Agents, b[i].Agents)
	}

	// a new species does not move the existing ones
	cfg.Species = append(cfg.Species, SpeciesConfig{Name: "shrimp", Count: 4, Scale: 0.1, MaxSpeed: 0.5, MaxForce: 0.05})
	c := BuildSchools(cfg)
	require.Len(t, c, 3)
	assert.Equal(t, a[0].Agents, c[0].Agents)
	assert.Equal(t, a[1].Agents, c[1].Agents)
}

func TestCheckInvariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	fish := BuildSchools(cfg)[0]
	for i := 0; i < 200; i++ {
		fish.Step()
		require.NoError(t, CheckInvariants(fish), "tick %d", i)
	}

	tooFast := BuildSchools(cfg)[0]
	tooFast.Agents[2].Velocity = geometry.Vector3{X: 10}
	assert.ErrorIs(t, CheckInvariants(tooFast), ErrInvariant)

	outside := BuildSchools(cfg)[0]
	outside.Agents[0].Position = geometry.Vector3{Y: -cfg.Tank.Height / 2}
	assert.ErrorIs(t, CheckInvariants(outside), ErrInvariant)
}

func TestMeasure(t *testing.T) {
	agents := []behavior.Agent{
		{Position: geometry.Vector3{X: -2}, Velocity: geometry.Vector3{X: 1}},
		{Position: geometry.Vector3{X: 2}, Velocity: geometry.Vector3{Z: 0.5}},
	}
	s := Measure("fish", agents)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 0.75, s.MeanSpeed, 1e-12)
	assert.InDelta(t, 1, s.TopSpeed, 1e-12)
	assert.True(t, s.Centroid.Eq(geometry.Zero))
	assert.InDelta(t, 2, s.Spread, 1e-12)

	empty := Measure("none", nil)
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.MeanSpeed)
}

func TestMeasureSnapshot_MatchesMeasure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	f := BuildSchools(cfg)[0]
	f.Step()

	want := Measure(f.Name, f.Agents)
	got := MeasureSnapshot(FlockToProto(f))
	assert.Equal(t, want.Species, got.Species)
	assert.InDelta(t, want.MeanSpeed, got.MeanSpeed, 1e-12)
	assert.InDelta(t, want.Spread, got.Spread, 1e-12)
}

func TestFlockStats_LogObject(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	logger.Info("stats", zap.Object("school", FlockStats{Species: "fish", Count: 3, MeanSpeed: 0.12345}))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	school, ok := fields["school"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "fish", school["species"])
	assert.Equal(t, 0.123, school["meanSpeed"])
}

func TestFlockToProto(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 11
	f := BuildSchools(cfg)[1]
	f.Step()
	f.Step()

	snap := FlockToProto(f)
	assert.Equal(t, "turtle", snap.GetSpecies())
	assert.Equal(t, uint64(2), snap.GetFrame())
	require.Len(t, snap.GetBoids(), f.Len())

	var back behavior.Agent
	UpdateFromProto(&back, snap.GetBoids()[4])
	assert.Equal(t, f.Agents[4].Position, back.Position)
	assert.Equal(t, f.Agents[4].Velocity, back.Velocity)
	assert.Equal(t, f.Agents[4].Orientation, back.Orientation)
	assert.Equal(t, "turtle", snap.GetBoids()[4].GetSpecies())
}

func TestFromProto_MissingFields(t *testing.T) {
	assert.Equal(t, geometry.Zero, VectorFromProto(nil))
	assert.Equal(t, geometry.Identity, QuaternionFromProto(nil))

	var a behavior.Agent
	UpdateFromProto(&a, &pb.BoidState{})
	assert.Equal(t, geometry.Identity, a.Orientation)
}

func TestPresentSnapshot_FeedsTrackers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 8
	f := BuildSchools(cfg)[0]
	trackers, handles := NewExtentTrackers(f.Len())
	handles[1] = nil

	for i := 0; i < 50; i++ {
		f.Step()
		PresentSnapshot(FlockToProto(f), handles)
	}

	lo, hi := Reach(trackers)
	boxLo, boxHi := f.Agents[0].ContainmentBox()
	for _, axis := range []struct{ lo, hi, boxLo, boxHi float64 }{
		{lo.X, hi.X, boxLo.X, boxHi.X},
		{lo.Y, hi.Y, boxLo.Y, boxHi.Y},
		{lo.Z, hi.Z, boxLo.Z, boxHi.Z},
	} {
		assert.LessOrEqual(t, axis.lo, axis.hi)
		assert.GreaterOrEqual(t, axis.lo, axis.boxLo)
		assert.LessOrEqual(t, axis.hi, axis.boxHi)
	}
	// the nil handle was skipped
	_, untouched := Reach(trackers[1:2])
	assert.Equal(t, geometry.Zero, untouched)
}
